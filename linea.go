// Package linea maps byte offsets in immutable text to line/column
// positions and back, using a newline index built once and queried in
// logarithmic time.
//
// # Basic Usage
//
// Wrap a buffer in a Text and query it:
//
//	text := linea.NewText(content)
//
//	pos, err := text.PositionAt(512)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("offset 512 is line %s, column %d\n", pos.Line.Display(), pos.Column)
//
// # Index Only
//
// Callers that manage the buffer themselves can build the bare index from
// pkg/position and drop the buffer afterward:
//
//	ix := position.NewIndex(content)
//	pos, err := ix.PositionAt(512)
//
// Line numbers and columns are 0-indexed throughout; render line numbers
// with Display() for the 1-based user-facing form.
package linea

import (
	"github.com/praetorian-inc/linea/pkg/position"
	"github.com/praetorian-inc/linea/pkg/source"
)

// Text pairs a buffer with its position index, for callers that want
// content-aware helpers alongside the offset arithmetic. The buffer must
// not be mutated after NewText; the index describes it as it was.
//
// A Text has no mutable state and is safe for concurrent readers.
type Text struct {
	content []byte
	index   *position.Index
}

// NewText builds the index for content in one linear scan.
func NewText(content []byte) *Text {
	return &Text{
		content: content,
		index:   position.NewIndex(content),
	}
}

// NewTextString is NewText for string content.
func NewTextString(content string) *Text {
	return NewText([]byte(content))
}

// Index returns the underlying position index.
func (t *Text) Index() *position.Index {
	return t.index
}

// Len returns the buffer length in bytes.
func (t *Text) Len() int {
	return t.index.Len()
}

// LineCount returns the number of lines in the buffer.
func (t *Text) LineCount() int {
	return t.index.LineCount()
}

// PositionAt returns the line/column position of a byte offset.
// See position.Index.PositionAt for the domain and error contract.
func (t *Text) PositionAt(offset int) (position.Position, error) {
	return t.index.PositionAt(offset)
}

// LineRange returns the byte range [start, end) of a line's content,
// exclusive of the terminating newline.
func (t *Text) LineRange(line position.LineNumber) (start, end int, err error) {
	return t.index.LineRange(line)
}

// Line returns a line's content, without its terminating newline.
func (t *Text) Line(line position.LineNumber) (string, error) {
	start, end, err := t.index.LineRange(line)
	if err != nil {
		return "", err
	}
	return string(t.content[start:end]), nil
}

// Spans splits the byte region [start, end] into per-line spans.
func (t *Text) Spans(start, end int) ([]position.LineSpan, error) {
	return t.index.Spans(start, end)
}

// Context returns up to lines full lines before and after the span
// [start, end], as independent copies.
func (t *Text) Context(start, end, lines int) (before, after []byte, err error) {
	return source.Context(t.content, t.index, start, end, lines)
}
