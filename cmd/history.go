package cmd

import (
	"fmt"

	"github.com/theirongolddev/stash/internal/cli"
	"github.com/theirongolddev/stash/internal/engine"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history [plan]",
	Short: "Show the rolling savings history (last 30 closed days)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	if len(args) == 1 {
		return planHistory(s, args[0])
	}

	if len(s.doc.History) == 0 {
		fmt.Println("\n  No history yet — it accrues as days roll over.")
		return nil
	}

	rows := make([][]string, 0, len(s.doc.History))
	for _, snap := range s.doc.History {
		rows = append(rows, []string{snap.Date, weekdayOf(snap.Date), s.money(snap.Savings)})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Total savings by day",
		Headers: []string{"Date", "Day", "Savings"},
		Rows:    rows,
	}))
	return nil
}

func planHistory(s *session, ref string) error {
	p, err := s.plan(ref)
	if err != nil {
		return err
	}

	if len(p.History) == 0 {
		fmt.Printf("\n  No history for %q yet.\n", p.Name)
		return nil
	}

	rows := make([][]string, 0, len(p.History))
	for _, snap := range p.History {
		rows = append(rows, []string{snap.Date, weekdayOf(snap.Date), s.money(snap.TotalSaved)})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   p.Name,
		Headers: []string{"Date", "Day", "Saved"},
		Rows:    rows,
	}))
	return nil
}

func weekdayOf(date string) string {
	t, err := engine.ParseDate(date)
	if err != nil {
		return "???"
	}
	return cli.FormatDayOfWeek(int(t.Weekday()))
}
