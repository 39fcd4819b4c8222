package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/theirongolddev/stash/internal/cli"
	"github.com/theirongolddev/stash/internal/config"
	"github.com/theirongolddev/stash/internal/engine"
	"github.com/theirongolddev/stash/internal/logging"
	"github.com/theirongolddev/stash/internal/model"
	"github.com/theirongolddev/stash/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDBPath  string
	flagDate    string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "stash",
	Short: "Allowance-to-savings planner",
	Long:  "Plan savings goals, declare a daily allowance, spend against it, and let stash tell you how much to set aside each day.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logging.Setup(flagVerbose)
	},
	RunE: runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Document database path (default: XDG data dir)")
	rootCmd.PersistentFlags().StringVar(&flagDate, "date", "", "Override today's date (YYYY-MM-DD, for inspection)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")
}

// session bundles everything a command needs for one read-modify-write
// cycle against the document.
type session struct {
	cfg   config.Config
	tun   engine.Tuning
	store *store.Store
	doc   *model.Document
	today string
}

// openSession is the shared load path used by all commands: config, store,
// document, then the daily rollover — which runs first on every entry
// point and persists immediately when it closes a day.
func openSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		slog.Warn("config unreadable, using defaults", "err", err)
		cfg = config.DefaultConfig()
	}

	dbPath := flagDBPath
	if dbPath == "" {
		dbPath = cfg.DBPath()
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}

	doc, err := st.Load()
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	today := flagDate
	if today == "" {
		today = engine.Today(cfg.Location())
	} else if _, err := engine.ParseDate(today); err != nil {
		_ = st.Close()
		return nil, err
	}

	if engine.Rollover(doc, today) {
		slog.Debug("rollover applied", "today", today)
		if err := st.Save(doc); err != nil {
			_ = st.Close()
			return nil, fmt.Errorf("persisting rollover: %w", err)
		}
	}

	return &session{
		cfg:   cfg,
		tun:   cfg.EngineTuning(),
		store: st,
		doc:   doc,
		today: today,
	}, nil
}

func (s *session) close() {
	_ = s.store.Close()
}

// save persists the whole document.
func (s *session) save() error {
	return s.store.Save(s.doc)
}

// plan resolves a plan reference (ID, name, or ID prefix) or errors with
// a hint.
func (s *session) plan(ref string) (*model.Plan, error) {
	p := s.doc.FindPlan(ref)
	if p == nil {
		return nil, fmt.Errorf("no plan matching %q (try `stash plan list`)", ref)
	}
	return p, nil
}

// money renders an amount with the configured currency symbol.
func (s *session) money(amount float64) string {
	return cli.FormatMoney(s.cfg.General.Currency, amount)
}
