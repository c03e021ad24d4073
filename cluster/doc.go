// Package cluster implements the component/cluster abstraction of spec.md
// §3/§9: an unordered accumulator with O(1) membership/insertion and O(k)
// merge, presented in two flavors behind the same Counter interface —
// Exact (backed by a hash set) and Sketch (backed by the
// github.com/axiomhq/hyperloglog cardinality estimator spec.md names as an
// external collaborator) — so that algorithms written against "some
// cardinality estimator" share their skeleton across both.
//
// Temporal wraps a Counter of edges together with the node set, cause/
// effect lifetime, mass and volume spec.md §3 defines for temporal
// clusters, plus the Covers(v, t) predicate backed by package interval.
package cluster
