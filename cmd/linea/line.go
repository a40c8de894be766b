package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/praetorian-inc/linea"
	"github.com/praetorian-inc/linea/pkg/position"
)

var lineFormat string

var lineCmd = &cobra.Command{
	Use:   "line <file> <line-number>",
	Short: "Show the byte range and content of a line",
	Long: `Show the byte range [start, end) and content of a line.

Line numbers are 1-based. The range excludes the terminating newline, so
the next line starts at end+1. Pass "-" as the file to read from stdin.`,
	Args: cobra.ExactArgs(2),
	RunE: runLine,
}

func init() {
	lineCmd.Flags().StringVar(&lineFormat, "format", "human", "Output format: human, json, yaml")
}

func runLine(cmd *cobra.Command, args []string) error {
	content, err := readContent(args[0])
	if err != nil {
		return err
	}
	text := linea.NewText(content)

	line, err := parseLineNumber(args[1])
	if err != nil {
		return err
	}

	start, end, err := text.LineRange(line)
	if err != nil {
		return err
	}
	lineContent, err := text.Line(line)
	if err != nil {
		return err
	}

	switch lineFormat {
	case "json", "yaml":
		payload := struct {
			Line    int    `json:"line" yaml:"line"`
			Start   int    `json:"start" yaml:"start"`
			End     int    `json:"end" yaml:"end"`
			Length  int    `json:"length" yaml:"length"`
			Content string `json:"content" yaml:"content"`
		}{line.OneBased(), start, end, end - start, lineContent}
		return outputMarshaled(cmd, lineFormat, payload)
	case "human":
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "line %s: bytes [%d, %d), length %d\n", line.Display(), start, end, end-start)
		fmt.Fprintf(out, "%s\n", lineContent)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", lineFormat)
	}
}

// parseLineNumber parses a 1-based line argument into the internal 0-based
// form. This is the only place CLI input crosses that boundary.
func parseLineNumber(arg string) (position.LineNumber, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid line number %q: expected a positive integer", arg)
	}
	return position.LineNumber(n - 1), nil
}
