package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/knapsack/pkg/errors"
	"github.com/matzehuels/knapsack/pkg/knapsack"
	"github.com/matzehuels/knapsack/pkg/render/tree"
)

// treeCommand renders the decision tree explored by one search.
func (c *CLI) treeCommand() *cobra.Command {
	var (
		pf     problemFlags
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Render the explored decision tree (debug tool)",
		Long: fmt.Sprintf(`Render every decision node the search visits, including pruned branches.

Include edges are solid, exclude edges dashed; the path to the optimal leaf
is drawn in bold. The tree grows exponentially, so at most %d items are
accepted.`, tree.MaxItems),
		Example: `  # Three items at capacity 4, as SVG
  knapsack tree -i three.json -o tree.svg

  # Small generated instance as DOT on stdout
  knapsack tree -n 6 -c 20 --format dot`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			if format == "" {
				format = "svg"
				if output != "" {
					f, err := errors.ValidateFormat(output, "svg", "dot")
					if err != nil {
						return err
					}
					format = f
				}
			}
			if format != "svg" && format != "dot" {
				return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (must be one of: svg, dot)", format)
			}

			opts, err := pf.options(cmd)
			if err != nil {
				return err
			}
			opts.MaxItems = tree.MaxItems
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			items := opts.Items
			if items == nil {
				items, err = knapsack.MakeItems(knapsack.NewRand(opts.Seed), opts.Count,
					knapsack.Range{Min: opts.MinValue, Max: opts.MaxValue},
					knapsack.Range{Min: opts.MinWeight, Max: opts.MaxWeight})
				if err != nil {
					return err
				}
			}

			t, sorted, err := tree.Trace(items, opts.Capacity, opts.Iterative)
			if err != nil {
				return err
			}
			logger.Debug("traced search",
				"nodes", len(t.Nodes),
				"leaves", t.Count(knapsack.OutcomeLeaf),
				"pruned", t.Count(knapsack.OutcomePruned))

			var data []byte
			if format == "dot" {
				data = []byte(t.ToDOT(sorted))
			} else if data, err = t.RenderSVG(ctx, sorted); err != nil {
				return fmt.Errorf("render: %w", err)
			}
			if err := writeFile(cmd.OutOrStdout(), data, output); err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			if output != "" {
				out := cmd.OutOrStdout()
				printSuccess(out, "Decision tree generated")
				printKeyValue(out, "Nodes", fmt.Sprint(len(t.Nodes)))
				printKeyValue(out, "Best value", fmt.Sprint(t.Solution.Value))
				printFile(out, output)
			}
			return nil
		},
	}

	pf.register(cmd, true)
	setFlagDefault(cmd, "count", &pf.count, 6)
	setFlagDefault(cmd, "capacity", &pf.capacity, 20)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&format, "format", "", "svg or dot (default from --output extension, else svg)")

	return cmd
}

// setFlagDefault lowers a shared flag's default for one command.
func setFlagDefault(cmd *cobra.Command, name string, v *int, def int) {
	*v = def
	cmd.Flags().Lookup(name).DefValue = fmt.Sprint(def)
}
