// Package source extracts display-oriented slices of a text buffer using a
// position index, such as the context lines surrounding a byte span.
package source

import (
	"fmt"

	"github.com/praetorian-inc/linea/pkg/position"
)

// Context extracts up to N full lines before and after the span [start, end].
// Returns before, after byte slices that are independent copies (not
// sub-slices of content), so storing them will not pin the original content
// in memory. Handles buffer boundaries gracefully (returns empty at start or
// end of buffer). The spanned lines themselves are not included.
//
// The index must have been built from content; a span outside the buffer
// returns an error wrapping position.ErrOffsetOutOfRange.
func Context(content []byte, ix *position.Index, start, end, lines int) (before, after []byte, err error) {
	if lines <= 0 {
		return nil, nil, nil
	}
	if start > end {
		return nil, nil, fmt.Errorf("%w: span start %d exceeds end %d", position.ErrOffsetOutOfRange, start, end)
	}

	startPos, err := ix.PositionAt(start)
	if err != nil {
		return nil, nil, err
	}
	endPos, err := ix.PositionAt(end)
	if err != nil {
		return nil, nil, err
	}

	if b := linesBefore(content, ix, startPos.Line, lines); len(b) > 0 {
		before = append([]byte{}, b...)
	}
	if a := linesAfter(content, ix, endPos.Line, lines); len(a) > 0 {
		after = append([]byte{}, a...)
	}

	return before, after, nil
}

// linesBefore returns the content of up to n lines preceding line, each with
// its terminating newline.
func linesBefore(content []byte, ix *position.Index, line position.LineNumber, n int) []byte {
	if line == 0 {
		return nil
	}

	first := line - position.LineNumber(n)
	if first < 0 {
		first = 0
	}

	// Both lines are in range by construction.
	firstStart, _, _ := ix.LineRange(first)
	lineStart, _, _ := ix.LineRange(line)
	return content[firstStart:lineStart]
}

// linesAfter returns the content of up to n lines following line, each with
// its terminating newline where one exists (the buffer's last line may not
// have one).
func linesAfter(content []byte, ix *position.Index, line position.LineNumber, n int) []byte {
	last := int(line) + n
	if last > ix.LineCount()-1 {
		last = ix.LineCount() - 1
	}
	if last == int(line) {
		return nil
	}

	_, prevEnd, _ := ix.LineRange(line)
	if prevEnd >= len(content) {
		return nil
	}
	// Skip the spanned line's own newline.
	afterStart := prevEnd + 1

	_, afterEnd, _ := ix.LineRange(position.LineNumber(last))
	if afterEnd < len(content) {
		afterEnd++ // include the final context line's newline
	}

	if afterStart >= afterEnd {
		return nil
	}
	return content[afterStart:afterEnd]
}
