package cmd

import (
	"fmt"

	"github.com/theirongolddev/stash/internal/cli"
	"github.com/theirongolddev/stash/internal/engine"
	"github.com/theirongolddev/stash/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagPlanStart   string
	flagPlanEnd     string
	flagPlanGoal    float64
	flagPlanMode    string
	flagPlanPenalty bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage savings plans",
	RunE:  runPlanList,
}

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all plans",
	RunE:  runPlanList,
}

var planAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a new plan",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlanAdd,
}

var planRemoveCmd = &cobra.Command{
	Use:     "rm <plan>",
	Aliases: []string{"remove"},
	Short:   "Delete a plan",
	Args:    cobra.ExactArgs(1),
	RunE:    runPlanRemove,
}

func init() {
	planAddCmd.Flags().StringVar(&flagPlanStart, "start", "", "Start date (YYYY-MM-DD, default today)")
	planAddCmd.Flags().StringVar(&flagPlanEnd, "end", "", "End date (YYYY-MM-DD, omit for an indefinite plan)")
	planAddCmd.Flags().Float64Var(&flagPlanGoal, "goal", 0, "Goal amount (0 means no goal)")
	planAddCmd.Flags().StringVar(&flagPlanMode, "mode", "estimate", "Target mode: estimate or manual")
	planAddCmd.Flags().BoolVar(&flagPlanPenalty, "penalty", false, "Track shortfall as penalty debt")

	planCmd.AddCommand(planListCmd)
	planCmd.AddCommand(planAddCmd)
	planCmd.AddCommand(planRemoveCmd)
	rootCmd.AddCommand(planCmd)
}

func runPlanList(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	if len(s.doc.Plans) == 0 {
		fmt.Println("\n  No plans yet. Create one with `stash plan add <name>`.")
		return nil
	}

	rows := make([][]string, 0, len(s.doc.Plans))
	for _, p := range s.doc.Plans {
		end := p.EndDate
		if p.Indefinite() {
			end = "indefinite"
		}
		goal := "-"
		if p.Goal > 0 {
			goal = s.money(p.Goal)
		}
		day := "closed"
		if p.DayActive {
			day = "open"
		}
		rows = append(rows, []string{
			shortID(p.ID),
			p.Name,
			cli.FormatMode(p.Mode.String(), p.PenaltyMode),
			p.StartDate,
			end,
			goal,
			s.money(p.TotalSaved),
			day,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Name", "Mode", "Start", "End", "Goal", "Saved", "Day"},
		Rows:    rows,
	}))
	return nil
}

func runPlanAdd(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	name := args[0]
	if name == "" {
		return fmt.Errorf("%w: plan name is required", engine.ErrInvalidInput)
	}

	start := flagPlanStart
	if start == "" {
		start = s.today
	}
	if _, err := engine.ParseDate(start); err != nil {
		return err
	}
	if flagPlanEnd != "" {
		if _, err := engine.ParseDate(flagPlanEnd); err != nil {
			return err
		}
		if flagPlanEnd < start {
			return fmt.Errorf("%w: end date %s before start date %s", engine.ErrInvalidInput, flagPlanEnd, start)
		}
	}
	if flagPlanGoal < 0 {
		return fmt.Errorf("%w: goal must be >= 0", engine.ErrInvalidInput)
	}
	mode, err := model.ParseMode(flagPlanMode)
	if err != nil {
		return err
	}

	p := model.NewPlan(name, start)
	p.EndDate = flagPlanEnd
	p.Goal = flagPlanGoal
	p.Mode = mode
	p.PenaltyMode = flagPlanPenalty
	s.doc.Plans = append(s.doc.Plans, p)

	if err := s.save(); err != nil {
		return err
	}

	fmt.Printf("\n  Created plan %q (%s)\n", p.Name, shortID(p.ID))
	return nil
}

func runPlanRemove(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	p, err := s.plan(args[0])
	if err != nil {
		return err
	}

	s.doc.RemovePlan(p.ID)
	if err := s.save(); err != nil {
		return err
	}

	fmt.Printf("\n  Deleted plan %q\n", p.Name)
	return nil
}

// shortID trims a UUID to its first group for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
