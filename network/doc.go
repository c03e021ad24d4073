// Package network implements the network container (spec.md §4.B): an
// immutable value built once from an unordered multiset of edges (+
// optional supplemental vertices) that derives vertex-indexed adjacency in
// four directions — in-cause, out-cause, in-effect, out-effect — plus
// sorted edge sequences.
//
// Network is generic over the edge kind E. NewTemporal builds the
// cause/effect-indexed container the spec centers on; NewStatic builds the
// degenerate case where cause order and effect order both collapse to the
// kind's static total order (used for static_projection results and the
// static algorithms in package static, which read the same adjacency
// indices regardless of which constructor produced them).
//
// Networks are plain immutable values once constructed: every query is a
// pure function of the network and its arguments (spec.md §5).
package network
