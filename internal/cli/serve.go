package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/knapsack/internal/server"
)

// serveCommand runs the HTTP API until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr string
		cf   cacheFlags
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve the solver over HTTP.

  GET  /healthz
  GET  /version
  POST /v1/solve   {"items": [...], "capacity": 30}
  POST /v1/sweep   {"items": [...], "from": 27, "to": 34}

Solutions are cached like the CLI's; use --redis to share a cache between
instances.`,
		Example: `  knapsack serve --addr :9000 --redis localhost:6379`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx, cf)
			if err != nil {
				return err
			}
			defer runner.Close()

			printNextStep(cmd.OutOrStdout(), "Try", "curl -s localhost"+addr+"/healthz")
			return server.New(runner, loggerFromContext(ctx)).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cf.register(cmd)

	return cmd
}
