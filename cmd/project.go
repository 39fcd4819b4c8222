package cmd

import (
	"fmt"

	"github.com/theirongolddev/stash/internal/engine"

	"github.com/spf13/cobra"
)

var projectCmd = &cobra.Command{
	Use:   "project <plan>",
	Short: "Estimate when the plan's goal will be met",
	Args:  cobra.ExactArgs(1),
	RunE:  runProject,
}

func init() {
	rootCmd.AddCommand(projectCmd)
}

func runProject(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	p, err := s.plan(args[0])
	if err != nil {
		return err
	}

	proj, ok := engine.ProjectCompletion(p, s.today, s.tun)
	if !ok {
		fmt.Println("\n  No projection available: the plan needs a goal and a savings target for today.")
		fmt.Println("  Start the day first with `stash day start`.")
		return nil
	}

	fmt.Println()
	switch {
	case proj.GoalMet:
		fmt.Printf("  Goal met! %q has %s saved of %s.\n", p.Name, s.money(p.TotalSaved), s.money(p.Goal))
	case proj.Capped:
		fmt.Printf("  At %s/day the goal is still out of reach by %s — treat this as a lower bound.\n",
			s.money(p.DailySavingsGoal), proj.Date)
	default:
		fmt.Printf("  Saving %s every working day, %q reaches %s on %s.\n",
			s.money(p.DailySavingsGoal), p.Name, s.money(p.Goal), proj.Date)
	}
	fmt.Println()
	return nil
}
