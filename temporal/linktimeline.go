package temporal

import (
	"cmp"

	"github.com/katalvlaran/dagnet/edge"
	"github.com/katalvlaran/dagnet/network"
)

// LinkTimeline returns the cause-ordered sequence of events that project
// onto the static edge s (spec.md §4.F): the temporal "history" of a single
// link. n.Edges() is already cause-sorted, so a single pass preserves order
// with no secondary sort.
func LinkTimeline[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]](n *network.Network[V, E], s edge.Static[V]) []E {
	out := make([]E, 0)
	key := s.Key()
	for _, e := range n.Edges() {
		if e.StaticProjection().Key() == key {
			out = append(out, e)
		}
	}
	return out
}

// LinkTimelines buckets every event by its static projection in a single
// O(|E|) pass, giving every link's timeline at once rather than calling
// LinkTimeline once per static edge.
func LinkTimelines[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]](n *network.Network[V, E]) map[string][]E {
	out := make(map[string][]E)
	for _, e := range n.Edges() {
		key := e.StaticProjection().Key()
		out[key] = append(out[key], e)
	}
	return out
}
