package edgelist

import "errors"

// ErrIoFormat is returned for a malformed line: wrong field count for the
// requested edge kind, or a token that parseV/parseT rejects.
var ErrIoFormat = errors.New("edgelist: malformed line")
