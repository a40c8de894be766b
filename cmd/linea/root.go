package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "linea",
	Short: "Linea - byte offset to line:column lookup for text files",
	Long: `Linea maps byte offsets in a file to line:column positions and back.
It builds a newline index once per file, so repeated lookups are cheap,
and reports positions the way editors and compilers do: 1-based line
numbers, 0-based byte columns.`,
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(locateCmd)
	rootCmd.AddCommand(lineCmd)
	rootCmd.AddCommand(linesCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// readContent reads the named file, or stdin when path is "-".
func readContent(path string) ([]byte, error) {
	if path == "-" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return content, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return content, nil
}

// parseOffset parses a non-negative byte offset argument.
func parseOffset(arg string) (int, error) {
	offset, err := strconv.Atoi(arg)
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("invalid offset %q: expected a non-negative integer", arg)
	}
	return offset, nil
}
