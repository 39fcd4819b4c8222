package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/stash/internal/cli"
	"github.com/theirongolddev/stash/internal/engine"

	"github.com/spf13/cobra"
)

var excludeCmd = &cobra.Command{
	Use:   "exclude",
	Short: "Manage a plan's exclusion periods",
	Long:  "Exclusion periods are inclusive date ranges during which no savings target accrues (holidays, trips).",
}

var excludeListCmd = &cobra.Command{
	Use:   "list <plan>",
	Short: "List the plan's exclusion periods",
	Args:  cobra.ExactArgs(1),
	RunE:  runExcludeList,
}

var excludeAddCmd = &cobra.Command{
	Use:   "add <plan> <start> <end>",
	Short: "Add an exclusion period (dates YYYY-MM-DD, inclusive)",
	Args:  cobra.ExactArgs(3),
	RunE:  runExcludeAdd,
}

var excludeRemoveCmd = &cobra.Command{
	Use:     "rm <plan> <index>",
	Aliases: []string{"remove"},
	Short:   "Remove the exclusion period at the listed index",
	Args:    cobra.ExactArgs(2),
	RunE:    runExcludeRemove,
}

func init() {
	excludeCmd.AddCommand(excludeListCmd)
	excludeCmd.AddCommand(excludeAddCmd)
	excludeCmd.AddCommand(excludeRemoveCmd)
	rootCmd.AddCommand(excludeCmd)
}

func runExcludeList(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	p, err := s.plan(args[0])
	if err != nil {
		return err
	}

	if len(p.Exclusions) == 0 {
		fmt.Printf("\n  No exclusion periods for %q.\n", p.Name)
		return nil
	}

	rows := make([][]string, 0, len(p.Exclusions))
	for i, r := range p.Exclusions {
		rows = append(rows, []string{strconv.Itoa(i), r.Start, r.End})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   p.Name,
		Headers: []string{"#", "Start", "End"},
		Rows:    rows,
	}))
	return nil
}

func runExcludeAdd(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	p, err := s.plan(args[0])
	if err != nil {
		return err
	}

	if err := engine.AddExclusion(p, args[1], args[2]); err != nil {
		return err
	}
	if err := s.save(); err != nil {
		return err
	}

	fmt.Printf("\n  Excluded %s to %s for %q (%d merged periods)\n", args[1], args[2], p.Name, len(p.Exclusions))
	return nil
}

func runExcludeRemove(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	p, err := s.plan(args[0])
	if err != nil {
		return err
	}

	index, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: index %q is not a number", engine.ErrInvalidInput, args[1])
	}

	if err := engine.RemoveExclusion(p, index); err != nil {
		return err
	}
	if err := s.save(); err != nil {
		return err
	}

	fmt.Printf("\n  Removed exclusion %d from %q\n", index, p.Name)
	return nil
}
