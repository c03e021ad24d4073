package mrrm

import "errors"

// ErrInvalidArgument is returned when a shuffle is asked to operate on a
// network it cannot meaningfully shuffle (currently: one with zero edges).
var ErrInvalidArgument = errors.New("mrrm: invalid argument")
