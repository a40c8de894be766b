package position

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
)

// Index is a newline-offset table over a text buffer, built once and
// read-only thereafter. It records only the start offset of each line and
// the buffer length, never the content, so it is safe to share across
// concurrent readers and does not pin the buffer in memory.
//
// An Index built from a buffer describes that buffer only; it does not
// observe later edits.
type Index struct {
	// lineStarts[i] is the byte offset of the start of line i. The first
	// entry is always 0; every later entry is the offset immediately after
	// a '\n'. Strictly ascending.
	lineStarts []int
	size       int
}

// NewIndex builds an index from content in a single linear scan.
// Empty content is valid and produces a one-line index. Only '\n' splits
// lines; a '\r' before it is ordinary line content and counts toward
// columns.
func NewIndex(content []byte) *Index {
	lineStarts := []int{0}
	for off := 0; ; {
		i := bytes.IndexByte(content[off:], '\n')
		if i < 0 {
			break
		}
		off += i + 1
		lineStarts = append(lineStarts, off)
	}
	return &Index{lineStarts: lineStarts, size: len(content)}
}

// NewIndexString builds an index from a string without copying it.
func NewIndexString(content string) *Index {
	lineStarts := []int{0}
	for off := 0; ; {
		i := strings.IndexByte(content[off:], '\n')
		if i < 0 {
			break
		}
		off += i + 1
		lineStarts = append(lineStarts, off)
	}
	return &Index{lineStarts: lineStarts, size: len(content)}
}

// Len returns the length of the indexed buffer in bytes.
func (ix *Index) Len() int {
	return ix.size
}

// LineCount returns the number of lines in the indexed buffer. This is the
// newline count plus one; an empty buffer has one line, and a buffer ending
// in '\n' has an empty final line.
func (ix *Index) LineCount() int {
	return len(ix.lineStarts)
}

// PositionAt returns the line/column position of a byte offset.
// The valid domain is [0, Len()] inclusive: Len() addresses the position
// just past the last byte, which is the end of the last line (an empty
// final line if the buffer ends in '\n'). An offset at a '\n' belongs to
// the line the newline terminates. Offsets outside the domain return an
// error wrapping ErrOffsetOutOfRange.
func (ix *Index) PositionAt(offset int) (Position, error) {
	if offset < 0 || offset > ix.size {
		return Position{}, fmt.Errorf("%w: offset %d not in [0, %d]", ErrOffsetOutOfRange, offset, ix.size)
	}
	line := ix.lineAt(offset)
	return Position{Line: line, Column: offset - ix.lineStarts[line]}, nil
}

// lineAt returns the line containing offset. The caller has already
// range-checked offset, so the search cannot miss: lineStarts[0] is 0.
func (ix *Index) lineAt(offset int) LineNumber {
	i := sort.Search(len(ix.lineStarts), func(i int) bool {
		return ix.lineStarts[i] > offset
	})
	return LineNumber(i - 1)
}

// LineRange returns the half-open byte range [start, end) of a line's
// content, end exclusive of the terminating '\n'. For every line but the
// last, the next line's start is end+1; the last line's end is Len().
// Lines outside [0, LineCount()) return an error wrapping
// ErrLineOutOfRange.
func (ix *Index) LineRange(line LineNumber) (start, end int, err error) {
	if line < 0 || int(line) >= len(ix.lineStarts) {
		return 0, 0, fmt.Errorf("%w: %s, buffer has %d lines", ErrLineOutOfRange, line, len(ix.lineStarts))
	}
	return ix.lineStarts[line], ix.lineEnd(int(line)), nil
}

// lineEnd returns the offset one past the last content byte of line i,
// which is the offset of the terminating '\n' for all but the last line.
func (ix *Index) lineEnd(i int) int {
	if i+1 < len(ix.lineStarts) {
		return ix.lineStarts[i+1] - 1
	}
	return ix.size
}

// Spans splits the byte region [start, end] across the lines it touches,
// returning one span per line in ascending line order. Columns are clamped
// to each line's bounds; a region boundary at a '\n' yields an end column
// equal to the line's length. The region is invalid if either offset is
// outside [0, Len()] or start exceeds end.
func (ix *Index) Spans(start, end int) ([]LineSpan, error) {
	if start < 0 || end > ix.size {
		return nil, fmt.Errorf("%w: region [%d, %d] not in [0, %d]", ErrOffsetOutOfRange, start, end, ix.size)
	}
	if start > end {
		return nil, fmt.Errorf("%w: region start %d exceeds end %d", ErrOffsetOutOfRange, start, end)
	}

	first := ix.lineAt(start)
	last := ix.lineAt(end)

	spans := make([]LineSpan, 0, last-first+1)
	for line := first; line <= last; line++ {
		lineStart := ix.lineStarts[line]
		lineEnd := ix.lineEnd(int(line))

		startCol := 0
		if start > lineStart {
			startCol = start - lineStart
		}
		endCol := lineEnd - lineStart
		if end < lineEnd {
			endCol = end - lineStart
		}

		spans = append(spans, LineSpan{Line: line, StartColumn: startCol, EndColumn: endCol})
	}
	return spans, nil
}

// SpansRelativeTo computes the spans of [start, end] as in Spans, then
// re-bases them onto the coordinates of an enclosing text in which this
// index's buffer begins at base. Useful when the indexed buffer is a string
// nested inside a larger document: spans on the first line are shifted by
// base's start column, later lines by base's line number.
func (ix *Index) SpansRelativeTo(base LineSpan, start, end int) ([]LineSpan, error) {
	spans, err := ix.Spans(start, end)
	if err != nil {
		return nil, err
	}

	rebased := make([]LineSpan, 0, len(spans))
	for _, s := range spans {
		if s.Line == 0 {
			rebased = append(rebased, LineSpan{
				Line:        base.Line,
				StartColumn: base.StartColumn + s.StartColumn,
				EndColumn:   base.StartColumn + s.EndColumn,
			})
		} else {
			rebased = append(rebased, LineSpan{
				Line:        base.Line + s.Line,
				StartColumn: s.StartColumn,
				EndColumn:   s.EndColumn,
			})
		}
	}
	return rebased, nil
}
