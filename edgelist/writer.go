package edgelist

import (
	"cmp"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/dagnet/edge"
)

// WriteStaticDirected emits "tail head" lines in the order given (callers
// typically pass a network's effect-ordered, i.e. lexicographic, edge
// slice for static edges, per spec.md §6).
func WriteStaticDirected[V cmp.Ordered](w io.Writer, edges []edge.StaticDirected[V], formatV FormatFunc[V]) error {
	for _, e := range edges {
		if _, err := fmt.Fprintf(w, "%s %s\n", formatV(e.Tail()), formatV(e.Head())); err != nil {
			return err
		}
	}
	return nil
}

func WriteStaticUndirected[V cmp.Ordered](w io.Writer, edges []edge.StaticUndirected[V], formatV FormatFunc[V]) error {
	for _, e := range edges {
		verts := e.IncidentVerts()
		if _, err := fmt.Fprintf(w, "%s %s\n", formatV(verts[0]), formatV(verts[1])); err != nil {
			return err
		}
	}
	return nil
}

func WriteStaticUndirectedHyper[V cmp.Ordered](w io.Writer, edges []edge.StaticUndirectedHyper[V], formatV FormatFunc[V]) error {
	for _, e := range edges {
		if err := writeVertexList(w, e.IncidentVerts(), formatV); err != nil {
			return err
		}
	}
	return nil
}

func WriteStaticDirectedHyper[V cmp.Ordered](w io.Writer, edges []edge.StaticDirectedHyper[V], formatV FormatFunc[V]) error {
	for _, e := range edges {
		tails := joinFormatted(e.MutatorVerts(), formatV, ";")
		heads := joinFormatted(e.MutatedVerts(), formatV, ";")
		if _, err := fmt.Fprintf(w, "%s %s\n", tails, heads); err != nil {
			return err
		}
	}
	return nil
}

func WriteTemporalDirected[V cmp.Ordered, T edge.Number](w io.Writer, edges []edge.TemporalDirected[V, T], formatV FormatFunc[V], formatT FormatFunc[T]) error {
	for _, e := range edges {
		if _, err := fmt.Fprintf(w, "%s %s %s\n", formatV(e.Tail()), formatV(e.Head()), formatT(e.CauseTime())); err != nil {
			return err
		}
	}
	return nil
}

func WriteTemporalUndirected[V cmp.Ordered, T edge.Number](w io.Writer, edges []edge.TemporalUndirected[V, T], formatV FormatFunc[V], formatT FormatFunc[T]) error {
	for _, e := range edges {
		verts := e.IncidentVerts()
		if _, err := fmt.Fprintf(w, "%s %s %s\n", formatV(verts[0]), formatV(verts[1]), formatT(e.CauseTime())); err != nil {
			return err
		}
	}
	return nil
}

func WriteDirectedDelayed[V cmp.Ordered, T edge.Number](w io.Writer, edges []edge.DirectedDelayed[V, T], formatV FormatFunc[V], formatT FormatFunc[T]) error {
	for _, e := range edges {
		if _, err := fmt.Fprintf(w, "%s %s %s %s\n", formatV(e.Tail()), formatV(e.Head()), formatT(e.CauseTime()), formatT(e.Delay())); err != nil {
			return err
		}
	}
	return nil
}

func writeVertexList[V cmp.Ordered](w io.Writer, verts []V, formatV FormatFunc[V]) error {
	_, err := fmt.Fprintln(w, joinFormatted(verts, formatV, " "))
	return err
}

func joinFormatted[V cmp.Ordered](verts []V, formatV FormatFunc[V], sep string) string {
	parts := make([]string, len(verts))
	for i, v := range verts {
		parts[i] = formatV(v)
	}
	return strings.Join(parts, sep)
}
