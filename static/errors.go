package static

import "errors"

// ErrNotAcyclic is returned by TopologicalOrder when the network contains a
// directed cycle (spec.md §7 "NotAcyclic").
var ErrNotAcyclic = errors.New("static: network is not acyclic")
