package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/stash/internal/cli"
	"github.com/theirongolddev/stash/internal/engine"
	"github.com/theirongolddev/stash/internal/model"

	"github.com/spf13/cobra"
)

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Manage a plan's product catalog",
}

var productListCmd = &cobra.Command{
	Use:   "list <plan>",
	Short: "List the plan's products",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductList,
}

var productAddCmd = &cobra.Command{
	Use:   "add <plan> <name> <price>",
	Short: "Add a product to the plan's catalog",
	Args:  cobra.ExactArgs(3),
	RunE:  runProductAdd,
}

var productRemoveCmd = &cobra.Command{
	Use:     "rm <plan> <name>",
	Aliases: []string{"remove"},
	Short:   "Remove a product from the plan's catalog",
	Args:    cobra.ExactArgs(2),
	RunE:    runProductRemove,
}

var buyCmd = &cobra.Command{
	Use:   "buy <plan> <product>",
	Short: "Buy a catalog product against today's allowance",
	Args:  cobra.ExactArgs(2),
	RunE:  runBuy,
}

func init() {
	productCmd.AddCommand(productListCmd)
	productCmd.AddCommand(productAddCmd)
	productCmd.AddCommand(productRemoveCmd)
	rootCmd.AddCommand(productCmd)
	rootCmd.AddCommand(buyCmd)
}

func runProductList(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	p, err := s.plan(args[0])
	if err != nil {
		return err
	}

	if len(p.Products) == 0 {
		fmt.Printf("\n  No products for %q. Add one with `stash product add`.\n", p.Name)
		return nil
	}

	rows := make([][]string, 0, len(p.Products))
	for _, prod := range p.Products {
		rows = append(rows, []string{prod.Name, s.money(prod.Price)})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   p.Name,
		Headers: []string{"Product", "Price"},
		Rows:    rows,
	}))
	return nil
}

func runProductAdd(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	p, err := s.plan(args[0])
	if err != nil {
		return err
	}

	name := args[1]
	price, err := strconv.ParseFloat(args[2], 64)
	if err != nil || price < 0 {
		return fmt.Errorf("%w: price %q must be a number >= 0", engine.ErrInvalidInput, args[2])
	}
	if p.Product(name) != nil {
		return fmt.Errorf("%w: product %q already exists", engine.ErrInvalidInput, name)
	}

	p.Products = append(p.Products, model.Product{Name: name, Price: price})
	if err := s.save(); err != nil {
		return err
	}

	fmt.Printf("\n  Added %q (%s) to %q\n", name, s.money(price), p.Name)
	return nil
}

func runProductRemove(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	p, err := s.plan(args[0])
	if err != nil {
		return err
	}

	name := args[1]
	for i, prod := range p.Products {
		if prod.Name == name {
			p.Products = append(p.Products[:i], p.Products[i+1:]...)
			if err := s.save(); err != nil {
				return err
			}
			fmt.Printf("\n  Removed %q from %q\n", name, p.Name)
			return nil
		}
	}
	return fmt.Errorf("%w: no product named %q", engine.ErrInvalidInput, name)
}

func runBuy(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	p, err := s.plan(args[0])
	if err != nil {
		return err
	}

	if err := engine.Buy(p, args[1]); err != nil {
		return err
	}
	if err := s.save(); err != nil {
		return err
	}

	left := p.DailyAllowance - p.DailySpent
	fmt.Printf("\n  Bought %q — %s left of today's allowance\n", args[1], s.money(left))
	return nil
}
