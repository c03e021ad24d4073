// Package edgelist reads and writes the text edgelist grammar: one edge per
// line, fields whitespace- or comma-separated, '#' lines are comments, CRLF
// and LF both accepted. The package never touches the filesystem itself —
// every function takes an io.Reader or io.Writer, mirroring the teacher's
// IDFn/WeightFn convention of a caller-supplied conversion function rather
// than a hardcoded vertex representation.
package edgelist
