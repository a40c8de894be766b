package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/praetorian-inc/linea"
	"github.com/praetorian-inc/linea/pkg/position"
)

var linesFormat string

var linesCmd = &cobra.Command{
	Use:   "lines <file>",
	Short: "Print the line table of a file",
	Long: `Print every line of a file with its byte range and length.

Ranges exclude the terminating newline. A file ending in a newline has an
empty final line, which is listed too. Pass "-" to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runLines,
}

func init() {
	linesCmd.Flags().StringVar(&linesFormat, "format", "table", "Output format: table, json, yaml")
}

type lineEntry struct {
	Line   int `json:"line" yaml:"line"`
	Start  int `json:"start" yaml:"start"`
	End    int `json:"end" yaml:"end"`
	Length int `json:"length" yaml:"length"`
}

func runLines(cmd *cobra.Command, args []string) error {
	content, err := readContent(args[0])
	if err != nil {
		return err
	}
	text := linea.NewText(content)

	entries := make([]lineEntry, 0, text.LineCount())
	for i := 0; i < text.LineCount(); i++ {
		line := position.LineNumber(i)
		start, end, rangeErr := text.LineRange(line)
		if rangeErr != nil {
			return rangeErr
		}
		entries = append(entries, lineEntry{Line: line.OneBased(), Start: start, End: end, Length: end - start})
	}

	switch linesFormat {
	case "json", "yaml":
		return outputMarshaled(cmd, linesFormat, entries)
	case "table":
		return outputLinesTable(cmd, entries)
	default:
		return fmt.Errorf("unknown output format: %s", linesFormat)
	}
}

func outputLinesTable(cmd *cobra.Command, entries []lineEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "Line\tStart\tEnd\tLength\n")
	fmt.Fprintf(w, "----\t-----\t---\t------\n")
	for _, e := range entries {
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\n", e.Line, e.Start, e.End, e.Length)
	}

	return nil
}
