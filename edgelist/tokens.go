package edgelist

import (
	"strconv"
	"strings"
)

// ParseFunc converts a single field token into a vertex or time value.
// ParseInt, ParseFloat64 and ParseString cover spec.md §6's three declared
// V kinds (integer, double, string); a caller may supply any other
// conversion (e.g. a symbol table lookup) that satisfies the signature.
type ParseFunc[X any] func(token string) (X, error)

// FormatFunc is ParseFunc's writer-side counterpart.
type FormatFunc[X any] func(x X) string

func ParseInt(token string) (int, error)         { return strconv.Atoi(token) }
func ParseFloat64(token string) (float64, error) { return strconv.ParseFloat(token, 64) }
func ParseString(token string) (string, error)   { return token, nil }

func FormatInt(x int) string         { return strconv.Itoa(x) }
func FormatFloat64(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }
func FormatString(x string) string   { return x }

// splitFields tokenizes a data line on runs of whitespace and/or commas.
func splitFields(line string) []string {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	return fields
}

// splitVertexList tokenizes a hyperedge endpoint-group on ';'.
func splitVertexList(group string) []string {
	parts := strings.Split(group, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// isComment reports whether a raw (untrimmed) line should be skipped: blank,
// or beginning with '#' after trimming whitespace.
func isComment(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}
