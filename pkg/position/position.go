// Package position maps byte offsets in an immutable text buffer to
// line/column positions and back.
//
// An Index is built once with a single scan of the buffer and then serves
// lookups in O(log lines) time via binary search over the recorded line
// start offsets. The index holds no reference to the buffer after
// construction, so the caller is free to release or reuse it.
//
// All arithmetic in this package is 0-indexed: lines, columns, and offsets.
// The 1-based form users expect is produced only by LineNumber.Display;
// callers rendering output should convert there and nowhere else.
package position

import (
	"fmt"
	"strconv"
)

// LineNumber is a distinct type for line numbers, to prevent confusion with
// columns, offsets, and other integer data. Zero-indexed internally.
type LineNumber int

// OneBased returns the user-facing 1-based form of the line number.
// Together with Display, this is the single conversion point between
// internal and display conventions.
func (n LineNumber) OneBased() int {
	return int(n) + 1
}

// Display renders the user-facing 1-based form of the line number.
func (n LineNumber) Display() string {
	return strconv.Itoa(n.OneBased())
}

func (n LineNumber) String() string {
	return fmt.Sprintf("line %s (zero-indexed %d)", n.Display(), int(n))
}

// Position is a line/column location within a buffer. Line and Column are
// both 0-indexed; Column is a byte offset from the start of the line.
type Position struct {
	Line   LineNumber
	Column int
}

// LineSpan is a byte range confined to a single line. StartColumn and
// EndColumn are 0-indexed byte offsets from the start of the line, with
// EndColumn exclusive. A span that runs to the end of a line has
// EndColumn equal to the line's length.
type LineSpan struct {
	Line        LineNumber
	StartColumn int
	EndColumn   int
}

func (s LineSpan) String() string {
	return fmt.Sprintf("%s:%d-%d", s.Line.Display(), s.StartColumn, s.EndColumn)
}
