package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"
	"text/tabwriter"

	"stockalloc/cmd"
	"stockalloc/internal"
	"stockalloc/internal/app"
	"stockalloc/internal/domain"
	"stockalloc/internal/logger"
	"stockalloc/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	symbols      []string
	budget       float64
	asJson       bool
	universeFile string
)

var rootCmd = &cobra.Command{
	Use:   "allocate",
	Short: "Split a cash budget into whole-share purchases",
	Long: `Splits a cash budget across the selected tickers into whole-share
quantities. Every ticker gets an equal slice of the budget, then any
leftover cash is distributed across the selection where whole shares
still fit.`,
	RunE: runAllocate,
}

var universeCmd = &cobra.Command{
	Use:   "universe",
	Short: "List the tickers available for allocation",
	RunE:  runUniverse,
}

func init() {
	rootCmd.Flags().StringSliceVarP(&symbols, "symbols", "s", nil, "tickers to allocate across (required)")
	rootCmd.Flags().Float64VarP(&budget, "budget", "b", 0, "cash available to invest (required)")
	rootCmd.Flags().BoolVar(&asJson, "json", false, "dump the raw allocation as json instead of a table")
	rootCmd.MarkFlagRequired("symbols")
	rootCmd.MarkFlagRequired("budget")

	universeCmd.Flags().StringVarP(&universeFile, "universe", "u", "", "universe csv file (overrides config)")

	rootCmd.AddCommand(universeCmd)
}

func runAllocate(c *cobra.Command, args []string) error {
	handler, _, err := cmd.InitializeDependencies()
	if err != nil {
		return err
	}

	ctx := context.WithValue(context.Background(), logger.ContextKey, logger.New())
	allocation, err := handler.AllocatorHandler.Allocate(ctx, app.AllocateInput{
		Symbols:   symbols,
		MaxInvest: decimal.NewFromFloat(budget).Round(2),
	})
	if err != nil {
		return err
	}

	if asJson {
		internal.Pprint(allocation)
		return nil
	}

	printAllocation(allocation)
	return nil
}

func printAllocation(allocation *domain.Allocation) {
	orderedSymbols := make([]string, 0, len(allocation.Lines))
	for symbol := range allocation.Lines {
		orderedSymbols = append(orderedSymbols, symbol)
	}
	sort.Strings(orderedSymbols)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TICKER\tSHARES\tPRICE\tSPENT\tPERCENT")
	for _, symbol := range orderedSymbols {
		line := allocation.Lines[symbol]
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
			line.Symbol,
			line.Shares,
			line.Price.StringFixed(2),
			line.Spent.StringFixed(2),
			line.PercentOfSpend.StringFixed(2),
		)
	}
	w.Flush()

	fmt.Printf("\ntotal invested: %s\n", allocation.TotalSpent.StringFixed(2))
	fmt.Printf("remaining: %s\n", allocation.Leftover.StringFixed(2))

	if allocation.TopUp != nil {
		fmt.Printf("\nwith %s more cash you could also buy:\n", allocation.TopUp.AdditionalCash.StringFixed(2))
		topUpSymbols := make([]string, 0, len(allocation.TopUp.Shares))
		for symbol, count := range allocation.TopUp.Shares {
			if count > 0 {
				topUpSymbols = append(topUpSymbols, symbol)
			}
		}
		sort.Strings(topUpSymbols)
		for _, symbol := range topUpSymbols {
			fmt.Printf("  %s x%d\n", symbol, allocation.TopUp.Shares[symbol])
		}
	}
}

func runUniverse(c *cobra.Command, args []string) error {
	handler, config, err := cmd.InitializeDependencies()
	if err != nil {
		return err
	}

	universeRepository := handler.UniverseRepository
	if universeFile != "" && universeFile != config.UniverseFile {
		universeRepository = repository.NewUniverseRepository(universeFile)
	}

	tickers, err := universeRepository.List()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SYMBOL\tNAME")
	for _, ticker := range tickers {
		fmt.Fprintf(w, "%s\t%s\n", ticker.Symbol, ticker.Name)
	}
	return w.Flush()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
