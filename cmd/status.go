package cmd

import (
	"fmt"

	"github.com/theirongolddev/stash/internal/cli"
	"github.com/theirongolddev/stash/internal/engine"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show all plans with today's targets",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("STASH  %s", s.today)))
	fmt.Println()

	if !s.doc.TosAgreed {
		fmt.Println("  Run `stash setup` to finish first-time setup.")
		fmt.Println()
	}

	if len(s.doc.Plans) == 0 {
		fmt.Println("  No plans yet. Create one with `stash plan add <name>`.")
		fmt.Println()
		return nil
	}

	rows := make([][]string, 0, len(s.doc.Plans))
	for _, p := range s.doc.Plans {
		progress := "-"
		if p.Goal > 0 {
			progress = cli.RenderBar(p.TotalSaved/p.Goal, 16)
		}

		today := "not started"
		if p.DayActive {
			today = fmt.Sprintf("%s / %s spent, save %s",
				s.money(p.DailySpent), s.money(p.DailyAllowance), s.money(p.DailySavingsGoal))
		} else if engine.IsExcluded(s.today, p.Exclusions) {
			today = "excluded"
		}

		debt := "-"
		if p.PenaltyDebt > 0 {
			debt = s.money(p.PenaltyDebt)
		}

		rows = append(rows, []string{
			p.Name,
			s.money(p.TotalSaved),
			progress,
			today,
			debt,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Plan", "Saved", "Progress", "Today", "Debt"},
		Rows:    rows,
	}))

	fmt.Printf("  Total savings: %s\n\n", s.money(s.doc.TotalSavings))
	return nil
}
