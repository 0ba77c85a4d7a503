package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/knapsack/pkg/errors"
)

// sweepCommand solves one item set over a range of capacities.
func (c *CLI) sweepCommand() *cobra.Command {
	var (
		pf       problemFlags
		cf       cacheFlags
		from, to int
		jsonOut  bool
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Solve one item set at every capacity of a range",
		Long: `Solve the same items at each capacity from --from to --to.

The searches are independent and run in parallel. The optimal value can only
grow with the capacity; a decrease is reported as an error.`,
		Example: `  # Seven rods, capacities 27 to 34
  knapsack sweep -i rods.toml --from 27 --to 34`,
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
			opts.Refresh = cf.refresh
			opts.Logger = logger

			prog := newProgress(logger)
			points, err := runner.Sweep(ctx, opts, from, to)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Solved %d capacities", len(points)))

			if jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(points); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(out, sweepTable(points))
			}

			if capacity, ok := points.Monotonic(); !ok {
				return errors.New(errors.ErrCodeInternal, "optimal value decreases at capacity %d", capacity)
			}
			return nil
		},
	}

	pf.register(cmd, false)
	cf.register(cmd)
	cmd.Flags().IntVar(&from, "from", 0, "smallest capacity")
	cmd.Flags().IntVar(&to, "to", 0, "largest capacity")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the points as JSON")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
