package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/theirongolddev/stash/internal/config"
	"github.com/theirongolddev/stash/internal/daemon"

	"github.com/spf13/cobra"
)

var (
	flagDaemonAddr     string
	flagDaemonInterval time.Duration
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Watch for day changes and roll over automatically",
	Long:  "Runs in the foreground, applies the daily rollover the moment the reference-timezone day changes, and serves a local status API.",
	RunE:  runDaemon,
}

func init() {
	daemonCmd.Flags().StringVar(&flagDaemonAddr, "addr", "127.0.0.1:8878", "HTTP listen address")
	daemonCmd.Flags().DurationVar(&flagDaemonInterval, "interval", time.Minute, "Day-change check interval")
	rootCmd.AddCommand(daemonCmd)
}

func runDaemon(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dbPath := flagDBPath
	if dbPath == "" {
		dbPath = cfg.DBPath()
	}

	svc := daemon.New(daemon.Config{
		DBPath:   dbPath,
		Location: cfg.Location(),
		Interval: flagDaemonInterval,
		Addr:     flagDaemonAddr,
	})

	fmt.Printf("  stash daemon listening on http://%s\n", flagDaemonAddr)
	fmt.Printf("  Checking for day changes every %s (%s)\n", flagDaemonInterval, cfg.General.Timezone)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := svc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
