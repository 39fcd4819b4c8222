package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/stash/internal/engine"

	"github.com/spf13/cobra"
)

var (
	flagDayAllowance float64
	flagDayTarget    float64
)

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Start a day and spend against its allowance",
}

var dayStartCmd = &cobra.Command{
	Use:   "start <plan>",
	Short: "Open the plan's day with an allowance",
	Args:  cobra.ExactArgs(1),
	RunE:  runDayStart,
}

var daySpendCmd = &cobra.Command{
	Use:   "spend <plan> <amount>",
	Short: "Record spending against today's allowance",
	Args:  cobra.ExactArgs(2),
	RunE:  runDaySpend,
}

func init() {
	dayStartCmd.Flags().Float64Var(&flagDayAllowance, "allowance", -1, "Today's spending allowance (required)")
	dayStartCmd.Flags().Float64Var(&flagDayTarget, "target", 0, "Manual savings target (manual-mode plans)")
	_ = dayStartCmd.MarkFlagRequired("allowance")

	dayCmd.AddCommand(dayStartCmd)
	dayCmd.AddCommand(daySpendCmd)
	rootCmd.AddCommand(dayCmd)
}

func runDayStart(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	p, err := s.plan(args[0])
	if err != nil {
		return err
	}

	if err := engine.StartDay(p, flagDayAllowance, flagDayTarget, s.today, s.tun); err != nil {
		return err
	}
	if err := s.save(); err != nil {
		return err
	}

	fmt.Printf("\n  Day started for %q\n", p.Name)
	fmt.Printf("  Allowance: %s   Savings target: %s\n", s.money(p.DailyAllowance), s.money(p.DailySavingsGoal))
	if engine.IsExcluded(s.today, p.Exclusions) {
		fmt.Println("  Today is inside an exclusion window — no target accrues.")
	}
	return nil
}

func runDaySpend(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	p, err := s.plan(args[0])
	if err != nil {
		return err
	}

	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("%w: amount %q is not a number", engine.ErrInvalidInput, args[1])
	}

	if err := engine.Spend(p, amount); err != nil {
		return err
	}
	if err := s.save(); err != nil {
		return err
	}

	left := p.DailyAllowance - p.DailySpent
	fmt.Printf("\n  Spent %s — %s left of today's allowance\n", s.money(amount), s.money(left))
	return nil
}
