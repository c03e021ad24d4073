// Package temporal assembles package eventgraph's per-event adjacency into
// the whole-network operations spec.md §4.F names: the static projection,
// event-graph materialization, temporal clusters (reachable from a single
// event or from every event at once, exact or HyperLogLog-backed), weak
// connectivity over the event graph, point-to-point reachability, and the
// per-static-edge link timeline.
//
// None of these operations require the caller's event to already be a
// member of the network: OutCluster/InCluster walk forward/backward from
// whatever edge.Temporal value they are given, so a query seeded "from
// vertex v at time t" (spec.md §4.F's in_cluster(N,P,v,t)/out_cluster
// family) is just a call with a synthetic, zero-duration self-loop built by
// the caller in the network's own concrete edge kind — no separate API or
// type-erased adapter is needed.
package temporal
