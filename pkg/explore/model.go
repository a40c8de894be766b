// Package explore is an interactive file viewer driven by a position
// index: the cursor is a byte offset, and the status bar shows where that
// offset falls in line:column terms.
package explore

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/praetorian-inc/linea"
	"github.com/praetorian-inc/linea/pkg/position"
)

// prompt tracks which goto prompt is active.
type prompt int

const (
	promptNone prompt = iota
	promptOffset
	promptLine
)

// Model is the root Bubble Tea model for the explore TUI.
type Model struct {
	path string
	text *linea.Text
	keys keyMap

	// Cursor state. offset is always in [0, text.Len()]; top is the first
	// visible line.
	offset int
	top    int

	activePrompt prompt
	input        string
	status       string

	width  int
	height int
}

// New creates a Model by reading the file at path.
func New(path string) (Model, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Model{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return NewFromContent(path, content), nil
}

// NewFromContent creates a Model over content already in memory.
func NewFromContent(path string, content []byte) Model {
	return Model{
		path: path,
		text: linea.NewText(content),
		keys: defaultKeyMap(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("linea explore")
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.activePrompt != promptNone {
			return m.updatePrompt(msg), nil
		}
		return m.updateNormal(msg)
	}

	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		if m.offset > 0 {
			m.offset--
		}
	case key.Matches(msg, m.keys.Right):
		if m.offset < m.text.Len() {
			m.offset++
		}
	case key.Matches(msg, m.keys.Up):
		m = m.moveLine(-1)
	case key.Matches(msg, m.keys.Down):
		m = m.moveLine(1)
	case key.Matches(msg, m.keys.PageUp):
		m = m.moveLine(-m.pageSize())
	case key.Matches(msg, m.keys.PageDown):
		m = m.moveLine(m.pageSize())
	case key.Matches(msg, m.keys.Home):
		m.offset = 0
	case key.Matches(msg, m.keys.End):
		m.offset = m.text.Len()

	case key.Matches(msg, m.keys.GotoOffset):
		m.activePrompt = promptOffset
		m.input = ""
	case key.Matches(msg, m.keys.GotoLine):
		m.activePrompt = promptLine
		m.input = ""
	}

	return m, nil
}

func (m Model) updatePrompt(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.activePrompt = promptNone
		m.input = ""
	case key.Matches(msg, m.keys.Confirm):
		m = m.commitPrompt()
	case msg.Type == tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case msg.Type == tea.KeyRunes:
		for _, r := range msg.Runes {
			if r >= '0' && r <= '9' {
				m.input += string(r)
			}
		}
	}
	return m
}

// commitPrompt resolves the goto input. Out-of-range targets leave the
// cursor where it is and surface the lookup error in the status bar.
func (m Model) commitPrompt() Model {
	active, input := m.activePrompt, m.input
	m.activePrompt = promptNone
	m.input = ""

	n, err := strconv.Atoi(input)
	if err != nil {
		return m
	}

	switch active {
	case promptOffset:
		if _, err := m.text.PositionAt(n); err != nil {
			m.status = err.Error()
			return m
		}
		m.offset = n
	case promptLine:
		// Prompt input is 1-based, like the gutter.
		start, _, err := m.text.LineRange(position.LineNumber(n - 1))
		if err != nil {
			m.status = err.Error()
			return m
		}
		m.offset = start
	}
	return m
}

// moveLine moves the cursor by whole lines, keeping the column where the
// target line is wide enough and clamping to its end otherwise.
func (m Model) moveLine(delta int) Model {
	pos, err := m.text.PositionAt(m.offset)
	if err != nil {
		return m
	}

	target := int(pos.Line) + delta
	if target < 0 {
		target = 0
	}
	if target > m.text.LineCount()-1 {
		target = m.text.LineCount() - 1
	}

	start, end, err := m.text.LineRange(position.LineNumber(target))
	if err != nil {
		return m
	}

	col := pos.Column
	if col > end-start {
		col = end - start
	}
	m.offset = start + col
	return m
}

func (m Model) pageSize() int {
	if size := m.viewHeight(); size > 1 {
		return size - 1
	}
	return 1
}

// viewHeight is the number of content rows: total minus title, status,
// and help rows.
func (m Model) viewHeight() int {
	if m.height <= 3 {
		return 1
	}
	return m.height - 3
}

func (m Model) View() string {
	pos, err := m.text.PositionAt(m.offset)
	if err != nil {
		// Unreachable: the cursor is clamped on every move.
		return err.Error()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.path))
	b.WriteString("\n")

	m.top = m.clampTop(int(pos.Line))
	height := m.viewHeight()
	for i := m.top; i < m.top+height && i < m.text.LineCount(); i++ {
		line := position.LineNumber(i)
		b.WriteString(m.renderLine(line, pos))
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatus(pos))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("h/j/k/l move • o offset • : line • g/G start/end • q quit"))
	return b.String()
}

// clampTop scrolls just far enough to keep the cursor line visible.
func (m Model) clampTop(cursorLine int) int {
	top := m.top
	if cursorLine < top {
		top = cursorLine
	}
	if cursorLine >= top+m.viewHeight() {
		top = cursorLine - m.viewHeight() + 1
	}
	return top
}

func (m Model) renderLine(line position.LineNumber, pos position.Position) string {
	content, err := m.text.Line(line)
	if err != nil {
		return ""
	}

	gutter := fmt.Sprintf("%5s ", line.Display())
	if line != pos.Line {
		return gutterStyle.Render(gutter) + content
	}

	// Cursor line: reverse-video the byte under the cursor. At end of
	// line (or end of buffer) the cursor sits on the excluded newline, so
	// render a phantom cell.
	col := pos.Column
	if col >= len(content) {
		return gutterCursorStyle.Render(gutter) + content + cursorStyle.Render(" ")
	}
	return gutterCursorStyle.Render(gutter) +
		content[:col] + cursorStyle.Render(string(content[col])) + content[col+1:]
}

func (m Model) renderStatus(pos position.Position) string {
	if m.activePrompt == promptOffset {
		return promptStyle.Render("go to offset: ") + m.input
	}
	if m.activePrompt == promptLine {
		return promptStyle.Render("go to line: ") + m.input
	}
	if m.status != "" {
		return statusErrorStyle.Render(m.status)
	}

	return statusStyle.Render(fmt.Sprintf(" offset %d/%d • line %s, col %d • %d lines ",
		m.offset, m.text.Len(), pos.Line.Display(), pos.Column, m.text.LineCount()))
}
