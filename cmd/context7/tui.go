package main

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fwojciec/context7"
	bt "github.com/fwojciec/context7/bubbletea"
	c7logrus "github.com/fwojciec/context7/logrus"
)

func newTUICmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Look up documentation interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// The alternate screen owns the terminal; logging to stderr would
			// corrupt it.
			a, err := setup(cmd, g, io.Discard)
			if err != nil {
				return err
			}
			defer a.close()

			if err := bt.Run(cmd.Context(), bt.New(tuiLookup(a), context7.DefaultTheme())); err != nil {
				return fmt.Errorf("TUI: %w", err)
			}
			return nil
		},
	}
}

func tuiLookup(a *app) bt.LookupFunc {
	return func(ctx context.Context, req context7.LookupRequest) (*context7.ToolResult, error) {
		requestID := uuid.NewString()
		result, err := a.lookup.Lookup(context7.WithRequestID(ctx, requestID), req)
		if err != nil {
			a.log.WithFields(c7logrus.ErrorFields(err)).WithFields(logFields(requestID, req)).Error("lookup failed")
		}
		return result, err
	}
}
