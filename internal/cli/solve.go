package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/knapsack/pkg/io"
	"github.com/matzehuels/knapsack/pkg/knapsack"
)

// solveCommand creates the solve command, the main driver.
func (c *CLI) solveCommand() *cobra.Command {
	var (
		pf      problemFlags
		cf      cacheFlags
		save    string
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a generated or loaded knapsack instance",
		Long: `Solve a knapsack instance and print the optimal selection.

Without --input, items are generated from the value and weight ranges with a
fixed seed, so repeated runs solve the same instance. The selection is printed
as indices into the density-sorted items and cross-checked by recomputing its
weight and value.

An instance without a solution (negative capacity) is reported, not treated
as an error.`,
		Example: `  # Default instance: 15 items, capacity 100
  knapsack solve

  # Larger random instance, saved for later
  knapsack solve -n 40 -c 250 --seed 7 --save problem.toml

  # Solve a problem file with a different capacity
  knapsack solve -i problem.toml -c 30`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			out := cmd.OutOrStdout()

			opts, err := pf.options(cmd)
			if err != nil {
				return err
			}
			runner, err := c.newRunner(ctx, cf)
			if err != nil {
				return err
			}
			defer runner.Close()

			sl := newSearchLogger(ctx)
			opts.Refresh = cf.refresh
			opts.Progress = sl.onProgress
			opts.Logger = logger

			prog := newProgress(logger)
			res, err := runner.Solve(ctx, opts)
			if err != nil {
				return err
			}
			logOrdering(logger, res.Sorted)
			prog.done(fmt.Sprintf("Solved %d items", len(res.Items)))

			if save != "" {
				capacity := res.Capacity
				if err := io.WriteFile(&io.Problem{Capacity: &capacity, Items: res.Items}, save); err != nil {
					return err
				}
			}

			if jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}

			printTitle(out, "Parameters")
			printKeyValue(out, "Items", strconv.Itoa(len(res.Items)))
			printKeyValue(out, "Total value", strconv.Itoa(knapsack.SumValues(res.Items)))
			printKeyValue(out, "Total weight", strconv.Itoa(knapsack.SumWeights(res.Items)))
			printKeyValue(out, "Capacity", strconv.Itoa(res.Capacity))
			fmt.Fprintln(out)

			if !res.Found {
				printWarning(out, "No solution found!")
				return nil
			}

			printTitle(out, "Solution")
			printKeyValue(out, "Weight", strconv.Itoa(res.Solution.Weight))
			printKeyValue(out, "Value", strconv.Itoa(res.Solution.Value))
			printKeyValue(out, "Path", formatPath(res.Solution.Path))
			printStats(out, res.Stats, res.CacheHit)
			fmt.Fprintln(out, itemsTable(res.Sorted, res.Solution.Path))

			printKeyValue(out, "Check", fmt.Sprintf("weight %d, value %d",
				knapsack.SumWeights(res.Selected), knapsack.SumValues(res.Selected)))
			if err := res.Verify(); err != nil {
				printError(out, "Selection does not match the solution")
				return err
			}
			printSuccess(out, "Selection verified (%d of %d items)", len(res.Selected), len(res.Items))
			if save != "" {
				printFile(out, save)
			}
			return nil
		},
	}

	pf.register(cmd, true)
	cf.register(cmd)
	cmd.Flags().StringVar(&save, "save", "", "write the instance to a problem file (.json or .toml)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the result as JSON")

	return cmd
}
