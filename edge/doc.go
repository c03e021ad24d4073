// Package edge defines the generic edge family at the core of dagnet: a
// small closed set of concrete edge kinds — static/temporal, directed/
// undirected, dyadic/hyper — unified behind the Edge capability interface
// and its Static/Temporal/Delayed refinements.
//
// Rather than one type per combination of axes, each concrete kind embeds
// the data it needs (endpoints, cause time, delay) and implements whichever
// capability interfaces apply to it. Algorithms elsewhere in dagnet are
// written against Edge[V], Static[V] or Temporal[V, T] and never against a
// concrete kind, so a new kind can be added without touching any algorithm.
//
// Equality is content-equality: undirected endpoint order and hyperedge
// member order are canonicalized once, at construction, so that (u,v) ==
// (v,u) and {a,b,c} == {c,a,b}. Key returns a string encoding of that
// canonical form, suitable as a map key anywhere dagnet needs a hash set of
// edges (adjacency indices, event-graph node sets, cluster membership).
package edge
