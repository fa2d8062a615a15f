package main

import (
	"github.com/spf13/cobra"

	c7mcp "github.com/fwojciec/context7/mcp"
)

func newServeCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the context7 tool over MCP on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd, g, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.close()

			if !a.cfg.Configured() {
				a.log.Warn("no mcporter config found; lookups will report the tool as not configured")
			}
			a.log.WithField("version", version).Info("serving context7 over stdio")
			server, err := c7mcp.NewServer(a.lookup, version)
			if err != nil {
				return err
			}
			return c7mcp.Serve(cmd.Context(), server)
		},
	}
}
