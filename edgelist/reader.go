package edgelist

import (
	"bufio"
	"cmp"
	"fmt"
	"io"

	"github.com/katalvlaran/dagnet/edge"
)

// scanLines returns an iterator over r's non-comment, non-blank lines.
// CRLF is handled by bufio.Scanner's default line-splitting, which strips
// a trailing '\r' along with the '\n'.
func scanLines(r io.Reader) func() (string, bool) {
	scanner := bufio.NewScanner(r)
	return func() (string, bool) {
		for scanner.Scan() {
			line := scanner.Text()
			if isComment(line) {
				continue
			}
			return line, true
		}
		return "", false
	}
}

// ReadStaticDirected parses "tail head" lines into directed dyadic edges.
func ReadStaticDirected[V cmp.Ordered](r io.Reader, parseV ParseFunc[V]) ([]edge.StaticDirected[V], error) {
	next := scanLines(r)
	var out []edge.StaticDirected[V]
	for line, ok := next(); ok; line, ok = next() {
		fields := splitFields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("edgelist: static directed line %q: %w", line, ErrIoFormat)
		}
		tail, err := parseV(fields[0])
		if err != nil {
			return nil, fmt.Errorf("edgelist: %w: %v", ErrIoFormat, err)
		}
		head, err := parseV(fields[1])
		if err != nil {
			return nil, fmt.Errorf("edgelist: %w: %v", ErrIoFormat, err)
		}
		out = append(out, edge.NewStaticDirected(tail, head))
	}
	return out, nil
}

// ReadStaticUndirected parses "u v" lines into undirected dyadic edges.
func ReadStaticUndirected[V cmp.Ordered](r io.Reader, parseV ParseFunc[V]) ([]edge.StaticUndirected[V], error) {
	next := scanLines(r)
	var out []edge.StaticUndirected[V]
	for line, ok := next(); ok; line, ok = next() {
		fields := splitFields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("edgelist: static undirected line %q: %w", line, ErrIoFormat)
		}
		u, err := parseV(fields[0])
		if err != nil {
			return nil, fmt.Errorf("edgelist: %w: %v", ErrIoFormat, err)
		}
		v, err := parseV(fields[1])
		if err != nil {
			return nil, fmt.Errorf("edgelist: %w: %v", ErrIoFormat, err)
		}
		out = append(out, edge.NewStaticUndirected(u, v))
	}
	return out, nil
}

// ReadStaticUndirectedHyper parses "v1 v2 v3 ..." variable-length lines.
func ReadStaticUndirectedHyper[V cmp.Ordered](r io.Reader, parseV ParseFunc[V]) ([]edge.StaticUndirectedHyper[V], error) {
	next := scanLines(r)
	var out []edge.StaticUndirectedHyper[V]
	for line, ok := next(); ok; line, ok = next() {
		fields := splitFields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("edgelist: static undirected hyper line %q: %w", line, ErrIoFormat)
		}
		verts, err := parseAll(fields, parseV)
		if err != nil {
			return nil, err
		}
		out = append(out, edge.NewStaticUndirectedHyper(verts))
	}
	return out, nil
}

// ReadStaticDirectedHyper parses "t1;t2;... h1;h2;..." lines: two
// semicolon-separated vertex lists.
func ReadStaticDirectedHyper[V cmp.Ordered](r io.Reader, parseV ParseFunc[V]) ([]edge.StaticDirectedHyper[V], error) {
	next := scanLines(r)
	var out []edge.StaticDirectedHyper[V]
	for line, ok := next(); ok; line, ok = next() {
		fields := splitFields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("edgelist: static directed hyper line %q: %w", line, ErrIoFormat)
		}
		tails, err := parseAll(splitVertexList(fields[0]), parseV)
		if err != nil {
			return nil, err
		}
		heads, err := parseAll(splitVertexList(fields[1]), parseV)
		if err != nil {
			return nil, err
		}
		out = append(out, edge.NewStaticDirectedHyper(tails, heads))
	}
	return out, nil
}

// ReadTemporalDirected parses "tail head t" lines.
func ReadTemporalDirected[V cmp.Ordered, T edge.Number](r io.Reader, parseV ParseFunc[V], parseT ParseFunc[T]) ([]edge.TemporalDirected[V, T], error) {
	next := scanLines(r)
	var out []edge.TemporalDirected[V, T]
	for line, ok := next(); ok; line, ok = next() {
		fields := splitFields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("edgelist: temporal directed line %q: %w", line, ErrIoFormat)
		}
		tail, head, t, err := parseDyadicTemporal(fields, parseV, parseT)
		if err != nil {
			return nil, err
		}
		out = append(out, edge.NewTemporalDirected(tail, head, t))
	}
	return out, nil
}

// ReadTemporalUndirected parses "u v t" lines.
func ReadTemporalUndirected[V cmp.Ordered, T edge.Number](r io.Reader, parseV ParseFunc[V], parseT ParseFunc[T]) ([]edge.TemporalUndirected[V, T], error) {
	next := scanLines(r)
	var out []edge.TemporalUndirected[V, T]
	for line, ok := next(); ok; line, ok = next() {
		fields := splitFields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("edgelist: temporal undirected line %q: %w", line, ErrIoFormat)
		}
		u, v, t, err := parseDyadicTemporal(fields, parseV, parseT)
		if err != nil {
			return nil, err
		}
		out = append(out, edge.NewTemporalUndirected(u, v, t))
	}
	return out, nil
}

// ReadDirectedDelayed parses "tail head t_cause delta" lines.
func ReadDirectedDelayed[V cmp.Ordered, T edge.Number](r io.Reader, parseV ParseFunc[V], parseT ParseFunc[T]) ([]edge.DirectedDelayed[V, T], error) {
	next := scanLines(r)
	var out []edge.DirectedDelayed[V, T]
	for line, ok := next(); ok; line, ok = next() {
		fields := splitFields(line)
		if len(fields) != 4 {
			return nil, fmt.Errorf("edgelist: directed delayed line %q: %w", line, ErrIoFormat)
		}
		tail, err := parseV(fields[0])
		if err != nil {
			return nil, fmt.Errorf("edgelist: %w: %v", ErrIoFormat, err)
		}
		head, err := parseV(fields[1])
		if err != nil {
			return nil, fmt.Errorf("edgelist: %w: %v", ErrIoFormat, err)
		}
		t, err := parseT(fields[2])
		if err != nil {
			return nil, fmt.Errorf("edgelist: %w: %v", ErrIoFormat, err)
		}
		delay, err := parseT(fields[3])
		if err != nil {
			return nil, fmt.Errorf("edgelist: %w: %v", ErrIoFormat, err)
		}
		out = append(out, edge.NewDirectedDelayed(tail, head, t, delay))
	}
	return out, nil
}

func parseDyadicTemporal[V cmp.Ordered, T edge.Number](fields []string, parseV ParseFunc[V], parseT ParseFunc[T]) (a, b V, t T, err error) {
	a, err = parseV(fields[0])
	if err != nil {
		return a, b, t, fmt.Errorf("edgelist: %w: %v", ErrIoFormat, err)
	}
	b, err = parseV(fields[1])
	if err != nil {
		return a, b, t, fmt.Errorf("edgelist: %w: %v", ErrIoFormat, err)
	}
	t, err = parseT(fields[2])
	if err != nil {
		return a, b, t, fmt.Errorf("edgelist: %w: %v", ErrIoFormat, err)
	}
	return a, b, t, nil
}

func parseAll[V cmp.Ordered](fields []string, parseV ParseFunc[V]) ([]V, error) {
	out := make([]V, len(fields))
	for i, f := range fields {
		v, err := parseV(f)
		if err != nil {
			return nil, fmt.Errorf("edgelist: %w: %v", ErrIoFormat, err)
		}
		out[i] = v
	}
	return out, nil
}
