package cmd

import (
	"fmt"
	"time"

	"github.com/theirongolddev/stash/internal/config"
	"github.com/theirongolddev/stash/internal/engine"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	timezone := cfg.General.Timezone
	currency := cfg.General.Currency
	agreed := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Reference timezone").
				Description("Day boundaries are computed in this IANA zone, wherever you run stash.").
				Value(&timezone).
				Validate(func(s string) error {
					_, err := time.LoadLocation(s)
					if err != nil {
						return fmt.Errorf("unknown timezone %q", s)
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Currency symbol").
				Options(huh.NewOptions("$", "€", "£", "¥", "₩")...).
				Value(&currency),
			huh.NewConfirm().
				Title("Keep all data on this machine only?").
				Description("stash stores everything in a local database; nothing leaves your computer.").
				Affirmative("Agreed").
				Negative("Quit").
				Value(&agreed),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("setup aborted: %w", err)
	}
	if !agreed {
		fmt.Println("\n  Setup canceled.")
		return nil
	}

	cfg.General.Timezone = timezone
	cfg.General.Currency = currency
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	// Record agreement in the document so every surface can check it.
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()
	s.doc.TosAgreed = true
	if err := s.save(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Printf("  Today in %s is %s\n", timezone, engine.Today(s.cfg.Location()))
	fmt.Println("  Run `stash setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
