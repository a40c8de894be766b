package linea

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praetorian-inc/linea/pkg/position"
)

func TestNewText(t *testing.T) {
	text := NewTextString("foo\nbar\nbaz\n")

	assert.Equal(t, 12, text.Len())
	assert.Equal(t, 4, text.LineCount())
}

func TestTextPositionAt(t *testing.T) {
	text := NewTextString("foo\nbar\nbaz\n")

	pos, err := text.PositionAt(5)
	require.NoError(t, err)
	assert.Equal(t, position.Position{Line: 1, Column: 1}, pos)
	assert.Equal(t, "2", pos.Line.Display())
}

func TestTextLine(t *testing.T) {
	text := NewTextString("foo\nbar\nbaz")

	line, err := text.Line(1)
	require.NoError(t, err)
	assert.Equal(t, "bar", line)

	_, err = text.Line(3)
	require.Error(t, err)
	assert.ErrorIs(t, err, position.ErrLineOutOfRange)
}

func TestTextSpans(t *testing.T) {
	text := NewTextString("foo\nbar\nbaz")

	spans, err := text.Spans(2, 5)
	require.NoError(t, err)
	assert.Equal(t, []position.LineSpan{
		{Line: 0, StartColumn: 2, EndColumn: 3},
		{Line: 1, StartColumn: 0, EndColumn: 1},
	}, spans)
}

func TestTextContext(t *testing.T) {
	text := NewTextString("one\ntwo\nthree\nfour\nfive\n")

	// Span covers "three" (offsets 8-12).
	before, after, err := text.Context(8, 12, 1)
	require.NoError(t, err)
	assert.Equal(t, "two\n", string(before))
	assert.Equal(t, "four\n", string(after))
}

func TestTextOffsetOutOfRange(t *testing.T) {
	text := NewTextString("foo")

	_, err := text.PositionAt(4)
	require.Error(t, err)
	assert.ErrorIs(t, err, position.ErrOffsetOutOfRange)
}
