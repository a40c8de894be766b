package position

import "errors"

// The two failure kinds for index lookups. Queries outside the valid domain
// are reported, never clamped, so caller bugs are not masked. Both are
// matchable with errors.Is on wrapped errors returned by Index methods.
var (
	// ErrOffsetOutOfRange reports a byte offset outside [0, Len()].
	ErrOffsetOutOfRange = errors.New("offset out of range")

	// ErrLineOutOfRange reports a line number outside [0, LineCount()).
	ErrLineOutOfRange = errors.New("line out of range")
)
