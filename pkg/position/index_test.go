package position

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIndex(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		wantLineCount int
		wantLen       int
	}{
		{
			name:          "empty buffer is one line",
			content:       "",
			wantLineCount: 1,
			wantLen:       0,
		},
		{
			name:          "single line without newline",
			content:       "hello",
			wantLineCount: 1,
			wantLen:       5,
		},
		{
			name:          "trailing newline adds empty final line",
			content:       "hello\n",
			wantLineCount: 2,
			wantLen:       6,
		},
		{
			name:          "three lines",
			content:       "foo\nbar\nbaz",
			wantLineCount: 3,
			wantLen:       11,
		},
		{
			name:          "only newlines",
			content:       "\n\n\n",
			wantLineCount: 4,
			wantLen:       3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ix := NewIndex([]byte(tt.content))
			assert.Equal(t, tt.wantLineCount, ix.LineCount())
			assert.Equal(t, tt.wantLen, ix.Len())
		})
	}
}

func TestNewIndexStringMatchesBytes(t *testing.T) {
	content := "foo\r\nbar\nbaz\n"
	fromBytes := NewIndex([]byte(content))
	fromString := NewIndexString(content)

	assert.Equal(t, fromBytes.lineStarts, fromString.lineStarts)
	assert.Equal(t, fromBytes.Len(), fromString.Len())
}

func TestPositionAt(t *testing.T) {
	tests := []struct {
		name    string
		content string
		offset  int
		want    Position
	}{
		{
			name:    "empty buffer at offset 0",
			content: "",
			offset:  0,
			want:    Position{Line: 0, Column: 0},
		},
		{
			name:    "offset before first newline",
			content: "foo\nbar",
			offset:  2,
			want:    Position{Line: 0, Column: 2},
		},
		{
			name:    "offset at line start has column 0",
			content: "foo\nbar",
			offset:  4,
			want:    Position{Line: 1, Column: 0},
		},
		{
			name:    "offset at newline belongs to the line it terminates",
			content: "foo\nbar",
			offset:  3,
			want:    Position{Line: 0, Column: 3},
		},
		{
			name:    "second line interior",
			content: "foo\nbar\nbaz\n",
			offset:  5,
			want:    Position{Line: 1, Column: 1},
		},
		{
			name:    "offset at buffer length without trailing newline",
			content: "foo\nbar",
			offset:  7,
			want:    Position{Line: 1, Column: 3},
		},
		{
			name:    "offset at buffer length with trailing newline is the empty final line",
			content: "foo\nbar\n",
			offset:  8,
			want:    Position{Line: 2, Column: 0},
		},
		{
			name:    "carriage return counts as line content",
			content: "foo\r\nbar",
			offset:  5,
			want:    Position{Line: 1, Column: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ix := NewIndex([]byte(tt.content))
			got, err := ix.PositionAt(tt.offset)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPositionAtOutOfRange(t *testing.T) {
	ix := NewIndex([]byte("foo\nbar"))

	_, err := ix.PositionAt(8)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOffsetOutOfRange)

	_, err = ix.PositionAt(-1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOffsetOutOfRange)

	// Line errors are a distinct kind
	assert.NotErrorIs(t, err, ErrLineOutOfRange)
}

func TestPositionAtIdempotent(t *testing.T) {
	ix := NewIndex([]byte("alpha\nbeta\ngamma\n"))

	first, err := ix.PositionAt(9)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		got, err := ix.PositionAt(9)
		require.NoError(t, err)
		assert.Equal(t, first, got)
	}
}

func TestLineRange(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		line      LineNumber
		wantStart int
		wantEnd   int
	}{
		{
			name:      "empty buffer line 0",
			content:   "",
			line:      0,
			wantStart: 0,
			wantEnd:   0,
		},
		{
			name:      "first line excludes newline",
			content:   "foo\nbar",
			line:      0,
			wantStart: 0,
			wantEnd:   3,
		},
		{
			name:      "last line without trailing newline ends at buffer length",
			content:   "foo\nbar",
			line:      1,
			wantStart: 4,
			wantEnd:   7,
		},
		{
			name:      "empty final line after trailing newline",
			content:   "foo\n",
			line:      1,
			wantStart: 4,
			wantEnd:   4,
		},
		{
			name:      "carriage return stays in the range",
			content:   "foo\r\nbar",
			line:      0,
			wantStart: 0,
			wantEnd:   4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ix := NewIndex([]byte(tt.content))
			start, end, err := ix.LineRange(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestLineRangeOutOfRange(t *testing.T) {
	ix := NewIndex([]byte("foo\nbar"))

	_, _, err := ix.LineRange(2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLineOutOfRange)
	assert.NotErrorIs(t, err, ErrOffsetOutOfRange)

	_, _, err = ix.LineRange(-1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLineOutOfRange)
}

func TestSpans(t *testing.T) {
	tests := []struct {
		name    string
		content string
		start   int
		end     int
		want    []LineSpan
	}{
		{
			name:    "within first line",
			content: "foo",
			start:   1,
			end:     3,
			want:    []LineSpan{{Line: 0, StartColumn: 1, EndColumn: 3}},
		},
		{
			name:    "empty region at first char",
			content: "foo",
			start:   0,
			end:     0,
			want:    []LineSpan{{Line: 0, StartColumn: 0, EndColumn: 0}},
		},
		{
			name:    "split over two lines",
			content: "foo\nbar\nbaz\naaaaaaaaaaa",
			start:   5,
			end:     10,
			want: []LineSpan{
				{Line: 1, StartColumn: 1, EndColumn: 3},
				{Line: 2, StartColumn: 0, EndColumn: 2},
			},
		},
		{
			name:    "region boundary at newline clamps to line length",
			content: "foo\nbar",
			start:   0,
			end:     3,
			want:    []LineSpan{{Line: 0, StartColumn: 0, EndColumn: 3}},
		},
		{
			name:    "three full lines",
			content: "ab\ncd\nef",
			start:   0,
			end:     8,
			want: []LineSpan{
				{Line: 0, StartColumn: 0, EndColumn: 2},
				{Line: 1, StartColumn: 0, EndColumn: 2},
				{Line: 2, StartColumn: 0, EndColumn: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ix := NewIndex([]byte(tt.content))
			got, err := ix.Spans(tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSpansInvalidRegion(t *testing.T) {
	ix := NewIndex([]byte("foo\nbar"))

	_, err := ix.Spans(5, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOffsetOutOfRange)

	_, err = ix.Spans(0, 8)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOffsetOutOfRange)

	_, err = ix.Spans(-1, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOffsetOutOfRange)
}

func TestSpansRelativeTo(t *testing.T) {
	// An embedded string starting at line 2, column 4 of an enclosing
	// document. Spans on its first line shift by the base column; later
	// lines shift by the base line only.
	ix := NewIndex([]byte("foo\nbar"))
	base := LineSpan{Line: 2, StartColumn: 4, EndColumn: 4}

	spans, err := ix.SpansRelativeTo(base, 1, 6)
	require.NoError(t, err)
	assert.Equal(t, []LineSpan{
		{Line: 2, StartColumn: 5, EndColumn: 7},
		{Line: 3, StartColumn: 0, EndColumn: 2},
	}, spans)
}

func TestSpansRelativeToInvalidRegion(t *testing.T) {
	ix := NewIndex([]byte("foo"))

	_, err := ix.SpansRelativeTo(LineSpan{}, 0, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOffsetOutOfRange)
}

// TestRoundTrip checks that for every valid offset, the reported line's
// range contains the offset (or, for an offset at a line's terminating
// newline or the buffer end, sits on the range's end boundary).
func TestRoundTrip(t *testing.T) {
	buffers := []string{
		"",
		"x",
		"foo\nbar\nbaz\n",
		"foo\r\nbar\r\n",
		"\n",
		"\n\nmiddle\n\n",
		strings.Repeat("line with some width\n", 50),
	}

	for _, content := range buffers {
		t.Run(fmt.Sprintf("len_%d", len(content)), func(t *testing.T) {
			ix := NewIndex([]byte(content))

			for offset := 0; offset <= len(content); offset++ {
				pos, err := ix.PositionAt(offset)
				require.NoError(t, err)

				start, end, err := ix.LineRange(pos.Line)
				require.NoError(t, err)

				assert.GreaterOrEqual(t, offset, start, "offset %d below line %s start", offset, pos.Line.Display())
				assert.LessOrEqual(t, offset, end, "offset %d above line %s end", offset, pos.Line.Display())
				assert.Equal(t, offset-start, pos.Column)
			}
		})
	}
}

// TestLineAdjacency checks that consecutive line ranges tile the buffer:
// each line's range is well-formed and the next line starts one past the
// previous line's end (the excluded newline).
func TestLineAdjacency(t *testing.T) {
	content := "alpha\n\nbeta\ngamma"
	ix := NewIndex([]byte(content))

	prevEnd := -1
	for line := 0; line < ix.LineCount(); line++ {
		start, end, err := ix.LineRange(LineNumber(line))
		require.NoError(t, err)

		assert.LessOrEqual(t, start, end)
		assert.LessOrEqual(t, end, ix.Len())
		if line > 0 {
			assert.Equal(t, prevEnd+1, start)
		}
		prevEnd = end
	}
	assert.Equal(t, ix.Len(), prevEnd)
}

// TestAgainstNaiveScan cross-checks the binary search against a character
// by character count over a buffer exercising every edge shape at once.
func TestAgainstNaiveScan(t *testing.T) {
	content := []byte("first\n\nthird line\r\nfourth\n")
	ix := NewIndex(content)

	for offset := 0; offset <= len(content); offset++ {
		wantLine, wantCol := 0, 0
		for i := 0; i < offset; i++ {
			if content[i] == '\n' {
				wantLine++
				wantCol = 0
			} else {
				wantCol++
			}
		}

		got, err := ix.PositionAt(offset)
		require.NoError(t, err)
		assert.Equal(t, Position{Line: LineNumber(wantLine), Column: wantCol}, got, "offset %d", offset)
	}
}
