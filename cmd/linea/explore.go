package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/praetorian-inc/linea/pkg/explore"
)

var exploreCmd = &cobra.Command{
	Use:   "explore <file>",
	Short: "Interactively explore a file's positions",
	Long: `Launch an interactive TUI viewer for a file.

The cursor is a byte offset; the status bar shows the offset and its
line:column position. Jump to an arbitrary offset with 'o' or a line
with ':', and move with vi-style keys (hjkl, Ctrl-f/b, g/G).`,
	Args: cobra.ExactArgs(1),
	RunE: runExplore,
}

func runExplore(cmd *cobra.Command, args []string) error {
	model, err := explore.New(args[0])
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running explore TUI: %w", err)
	}

	return nil
}
