package cmd

import (
	"fmt"

	"github.com/theirongolddev/stash/internal/cli"
	"github.com/theirongolddev/stash/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the active configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	tun := cfg.EngineTuning()

	fmt.Println()
	if config.Exists() {
		fmt.Printf("  Config file: %s\n", config.ConfigPath())
	} else {
		fmt.Printf("  No config file yet (defaults active). Run `stash setup` or create %s\n", config.ConfigPath())
	}
	fmt.Printf("  Database:    %s\n\n", cfg.DBPath())

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "General",
		Headers: []string{"Setting", "Value"},
		Rows: [][]string{
			{"timezone", cfg.General.Timezone},
			{"currency", cfg.General.Currency},
		},
	}))

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Tuning",
		Headers: []string{"Setting", "Value"},
		Rows: [][]string{
			{"indefinite_share", fmt.Sprintf("%.2f", tun.IndefiniteShare)},
			{"surcharge_min_allowance", fmt.Sprintf("%.0f", tun.SurchargeMinAllowance)},
			{"surcharge_below_target", fmt.Sprintf("%.0f", tun.SurchargeBelowTarget)},
			{"surcharge_rate", fmt.Sprintf("%.2f", tun.SurchargeRate)},
			{"projection_ceiling_days", fmt.Sprintf("%d", tun.ProjectionCeilingDays)},
		},
	}))

	return nil
}
