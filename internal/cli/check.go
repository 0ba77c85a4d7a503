package cli

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/matzehuels/knapsack/pkg/errors"
	"github.com/matzehuels/knapsack/pkg/knapsack"
)

// checkCommand compares the search with exhaustive enumeration.
func (c *CLI) checkCommand() *cobra.Command {
	var (
		trials    int
		maxItems  int
		maxValue  int
		maxWeight int
		seed      uint64
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the search against exhaustive enumeration",
		Long: `Generate random instances and solve each one three ways: recursive search,
iterative search and exhaustive enumeration of every subset. The optimal
values must agree, selections must fit the capacity and reproduce their
reported totals, and the density order must hold.`,
		Example: `  knapsack check --trials 1000 --max-items 16`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			out := cmd.OutOrStdout()

			if trials <= 0 {
				return errors.New(errors.ErrCodeInvalidInput, "--trials must be positive")
			}
			if maxItems < 0 || maxItems > knapsack.MaxExhaustiveItems {
				return errors.New(errors.ErrCodeInvalidInput, "--max-items must be in [0, %d]", knapsack.MaxExhaustiveItems)
			}
			if err := errors.ValidateRange("value", 0, maxValue); err != nil {
				return err
			}
			if err := errors.ValidateRange("weight", 0, maxWeight); err != nil {
				return err
			}

			spin := newSpinner(ctx, cmd.ErrOrStderr(), "Checking...")
			spin.Start()
			defer spin.Stop()

			prog := newProgress(logger)
			rng := knapsack.NewRand(seed)
			failures := 0
			for trial := 1; trial <= trials; trial++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				spin.Update("Trial %d/%d", trial, trials)

				items, capacity := randomInstance(rng, maxItems, maxValue, maxWeight)
				if msg := checkInstance(items, capacity); msg != "" {
					failures++
					logger.Error("mismatch", "trial", trial, "capacity", capacity, "items", items, "reason", msg)
				}
			}
			spin.Stop()
			prog.done(fmt.Sprintf("Checked %d instances", trials))

			if failures > 0 {
				printError(out, "%d of %d instances failed", failures, trials)
				return errors.New(errors.ErrCodeInternal, "%d mismatches", failures)
			}
			printSuccess(out, "%d instances agree with exhaustive enumeration", trials)
			return nil
		},
	}

	cmd.Flags().IntVar(&trials, "trials", 500, "number of random instances")
	cmd.Flags().IntVar(&maxItems, "max-items", 12, "largest instance size")
	cmd.Flags().IntVar(&maxValue, "max-value", 20, "largest item value")
	cmd.Flags().IntVar(&maxWeight, "max-weight", 15, "largest item weight")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")

	return cmd
}

// randomInstance draws items with values and weights from zero up, so
// worthless and weightless items are exercised too. The capacity ranges
// from slightly negative to slightly above the total weight.
func randomInstance(rng *rand.Rand, maxItems, maxValue, maxWeight int) ([]knapsack.Item, int) {
	n := rng.IntN(maxItems + 1)
	items := make([]knapsack.Item, n)
	for i := range items {
		items[i] = knapsack.Item{Value: rng.IntN(maxValue + 1), Weight: rng.IntN(maxWeight + 1)}
	}
	capacity := rng.IntN(knapsack.SumWeights(items)+3) - 1
	return items, capacity
}

// checkInstance returns a description of the first disagreement, or "".
func checkInstance(items []knapsack.Item, capacity int) string {
	oracle, oracleOK, err := knapsack.Exhaustive(items, capacity)
	if err != nil {
		return err.Error()
	}

	sorted := knapsack.SortByDensity(items)
	if v := knapsack.CheckOrdering(sorted); len(v) > 0 {
		return fmt.Sprintf("density order violated at %d pairs", len(v))
	}

	for _, iterative := range []bool{false, true} {
		res, _, ok := knapsack.Searcher{Iterative: iterative}.Solve(items, capacity)
		if ok != oracleOK {
			return fmt.Sprintf("iterative=%v: found %v, exhaustive found %v", iterative, ok, oracleOK)
		}
		if !ok {
			continue
		}
		if res.Value != oracle.Value {
			return fmt.Sprintf("iterative=%v: value %d, exhaustive %d", iterative, res.Value, oracle.Value)
		}
		if res.Weight > capacity {
			return fmt.Sprintf("iterative=%v: weight %d exceeds capacity", iterative, res.Weight)
		}
		sel := knapsack.SelectItems(sorted, res.Path)
		if knapsack.SumWeights(sel) != res.Weight || knapsack.SumValues(sel) != res.Value {
			return fmt.Sprintf("iterative=%v: path %v does not reproduce totals", iterative, res.Path)
		}
	}
	return ""
}
