package cmd

import (
	"fmt"

	"github.com/theirongolddev/stash/internal/config"
	"github.com/theirongolddev/stash/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dbPath := flagDBPath
	if dbPath == "" {
		dbPath = cfg.DBPath()
	}

	// Force TrueColor profile so all styling produces ANSI codes.
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(tui.Config{
		DBPath:   dbPath,
		Location: cfg.Location(),
		Tuning:   cfg.EngineTuning(),
		Currency: cfg.General.Currency,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
