package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/praetorian-inc/linea"
	"github.com/praetorian-inc/linea/pkg/position"
)

var (
	locateFormat  string
	locateContext int
	locateColor   string
)

var locateCmd = &cobra.Command{
	Use:   "locate <file> <offset> [end-offset]",
	Short: "Map byte offsets to line:column positions",
	Long: `Map a byte offset in a file to its line:column position.

With a second offset, the byte region [offset, end-offset] is split into
per-line spans instead, one per line it touches.

Line numbers are 1-based; columns are 0-based byte offsets from the start
of the line. Pass "-" as the file to read from stdin.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runLocate,
}

func init() {
	locateCmd.Flags().StringVar(&locateFormat, "format", "human", "Output format: human, json, yaml")
	locateCmd.Flags().IntVarP(&locateContext, "context", "C", 0, "Lines of context around the position (human format only)")
	locateCmd.Flags().StringVar(&locateColor, "color", "auto", "Colorize output: auto, always, never")
}

func runLocate(cmd *cobra.Command, args []string) error {
	content, err := readContent(args[0])
	if err != nil {
		return err
	}
	text := linea.NewText(content)

	start, err := parseOffset(args[1])
	if err != nil {
		return err
	}

	if len(args) == 3 {
		end, parseErr := parseOffset(args[2])
		if parseErr != nil {
			return parseErr
		}
		return locateRegion(cmd, args[0], text, start, end)
	}
	return locateOffset(cmd, args[0], text, start)
}

func locateOffset(cmd *cobra.Command, path string, text *linea.Text, offset int) error {
	pos, err := text.PositionAt(offset)
	if err != nil {
		return err
	}

	switch locateFormat {
	case "json", "yaml":
		payload := struct {
			Offset int `json:"offset" yaml:"offset"`
			Line   int `json:"line" yaml:"line"`
			Column int `json:"column" yaml:"column"`
		}{offset, pos.Line.OneBased(), pos.Column}
		return outputMarshaled(cmd, locateFormat, payload)
	case "human":
		return outputOffsetHuman(cmd, path, text, offset, pos)
	default:
		return fmt.Errorf("unknown output format: %s", locateFormat)
	}
}

func locateRegion(cmd *cobra.Command, path string, text *linea.Text, start, end int) error {
	spans, err := text.Spans(start, end)
	if err != nil {
		return err
	}

	switch locateFormat {
	case "json", "yaml":
		type spanPayload struct {
			Line        int `json:"line" yaml:"line"`
			StartColumn int `json:"startColumn" yaml:"startColumn"`
			EndColumn   int `json:"endColumn" yaml:"endColumn"`
		}
		payload := struct {
			Start int           `json:"start" yaml:"start"`
			End   int           `json:"end" yaml:"end"`
			Spans []spanPayload `json:"spans" yaml:"spans"`
		}{Start: start, End: end}
		for _, s := range spans {
			payload.Spans = append(payload.Spans, spanPayload{s.Line.OneBased(), s.StartColumn, s.EndColumn})
		}
		return outputMarshaled(cmd, locateFormat, payload)
	case "human":
		return outputRegionHuman(cmd, path, text, start, end, spans)
	default:
		return fmt.Errorf("unknown output format: %s", locateFormat)
	}
}

// =============================================================================
// HELPERS
// =============================================================================

// styles holds color formatters for human locate output
type styles struct {
	location *color.Color
	span     *color.Color
	gutter   *color.Color
	caret    *color.Color
}

func newStyles(enabled bool) *styles {
	s := &styles{
		location: color.New(color.Bold, color.FgHiWhite),
		span:     color.New(color.FgYellow),
		gutter:   color.New(color.FgHiBlue),
		caret:    color.New(color.Bold, color.FgHiGreen),
	}

	if !enabled {
		s.location.DisableColor()
		s.span.DisableColor()
		s.gutter.DisableColor()
		s.caret.DisableColor()
	}

	return s
}

// resolveStyles applies the --color flag, falling back to TTY detection.
func resolveStyles() *styles {
	switch locateColor {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default: // "auto"
		if !term.IsTerminal(int(os.Stdout.Fd())) || os.Getenv("NO_COLOR") != "" {
			color.NoColor = true
		} else {
			color.NoColor = false
		}
	}
	return newStyles(!color.NoColor)
}

func outputMarshaled(cmd *cobra.Command, format string, payload any) error {
	if format == "yaml" {
		data, err := yaml.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func outputOffsetHuman(cmd *cobra.Command, path string, text *linea.Text, offset int, pos position.Position) error {
	out := cmd.OutOrStdout()
	s := resolveStyles()

	fmt.Fprintf(out, "%s (offset %d)\n",
		s.location.Sprintf("%s:%s:%d", path, pos.Line.Display(), pos.Column), offset)

	if locateContext <= 0 {
		return nil
	}

	before, after, err := text.Context(offset, offset, locateContext)
	if err != nil {
		return err
	}

	firstContext := int(pos.Line) - countLines(before)
	printGutteredLines(out, s, before, firstContext)

	line, err := text.Line(pos.Line)
	if err != nil {
		return err
	}
	gutter := s.gutter.Sprintf("%6s | ", pos.Line.Display())
	fmt.Fprintf(out, "%s%s\n", gutter, line)
	fmt.Fprintf(out, "%6s | %s%s\n", "", strings.Repeat(" ", pos.Column), s.caret.Sprint("^"))

	printGutteredLines(out, s, after, int(pos.Line)+1)
	return nil
}

func outputRegionHuman(cmd *cobra.Command, path string, text *linea.Text, start, end int, spans []position.LineSpan) error {
	out := cmd.OutOrStdout()
	s := resolveStyles()

	fmt.Fprintf(out, "%s (offsets %d-%d, %d line(s))\n",
		s.location.Sprintf("%s:%s:%d", path, spans[0].Line.Display(), spans[0].StartColumn),
		start, end, len(spans))

	if locateContext <= 0 {
		for _, sp := range spans {
			fmt.Fprintf(out, "  %s\n", sp)
		}
		return nil
	}

	before, after, err := text.Context(start, end, locateContext)
	if err != nil {
		return err
	}

	firstContext := int(spans[0].Line) - countLines(before)
	printGutteredLines(out, s, before, firstContext)

	for _, sp := range spans {
		line, lineErr := text.Line(sp.Line)
		if lineErr != nil {
			return lineErr
		}
		gutter := s.gutter.Sprintf("%6s | ", sp.Line.Display())
		fmt.Fprintf(out, "%s%s%s%s\n",
			gutter, line[:sp.StartColumn], s.span.Sprint(line[sp.StartColumn:sp.EndColumn]), line[sp.EndColumn:])
	}

	printGutteredLines(out, s, after, int(spans[len(spans)-1].Line)+1)
	return nil
}

// printGutteredLines writes newline-separated context with a line-number
// gutter, numbering from firstLine (0-indexed; displayed 1-based).
func printGutteredLines(out io.Writer, s *styles, block []byte, firstLine int) {
	if len(block) == 0 {
		return
	}
	lines := strings.Split(strings.TrimSuffix(string(block), "\n"), "\n")
	for i, line := range lines {
		gutter := s.gutter.Sprintf("%6s | ", position.LineNumber(firstLine+i).Display())
		fmt.Fprintf(out, "%s%s\n", gutter, line)
	}
}

// countLines counts the lines in a context block (each ends in '\n' except
// possibly the last).
func countLines(block []byte) int {
	if len(block) == 0 {
		return 0
	}
	return len(strings.Split(strings.TrimSuffix(string(block), "\n"), "\n"))
}
