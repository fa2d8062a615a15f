package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fwojciec/context7"
	"github.com/fwojciec/context7/goldmark"
	c7json "github.com/fwojciec/context7/json"
	c7logrus "github.com/fwojciec/context7/logrus"
)

type lookupOptions struct {
	library     string
	versionHint string
	json        bool
	render      bool
	width       int
}

func newLookupCmd(g *globalOptions) *cobra.Command {
	var o lookupOptions
	cmd := &cobra.Command{
		Use:   "lookup [flags] <query...>",
		Short: "Look up documentation for a library",
		Example: `  context7 lookup --library fastapi how to add middleware
  context7 lookup --library /vercel/next.js --render app router`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, g, o, strings.Join(args, " "))
		},
	}
	cmd.Flags().StringVarP(&o.library, "library", "l", "", "Library name or Context7 libraryId (e.g. /vercel/next.js)")
	cmd.Flags().StringVar(&o.versionHint, "version-hint", "", "Optional version hint (best-effort)")
	cmd.Flags().BoolVar(&o.json, "json", false, "Print the result as JSON")
	cmd.Flags().BoolVar(&o.render, "render", false, "Render the result as terminal markdown")
	cmd.Flags().IntVar(&o.width, "width", 80, "Wrap width for --render")
	cmd.MarkFlagsMutuallyExclusive("json", "render")
	return cmd
}

func runLookup(cmd *cobra.Command, g *globalOptions, o lookupOptions, query string) error {
	a, err := setup(cmd, g, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.close()

	requestID := uuid.NewString()
	ctx := context7.WithRequestID(cmd.Context(), requestID)
	req := context7.LookupRequest{
		Library:     o.library,
		Query:       query,
		VersionHint: o.versionHint,
	}
	result, err := a.lookup.Lookup(ctx, req)
	if err != nil {
		a.log.WithFields(c7logrus.ErrorFields(err)).WithFields(logFields(requestID, req)).Error("lookup failed")
		return &ExitError{Code: exitBridge, Err: err}
	}

	out := cmd.OutOrStdout()
	switch {
	case o.json:
		data, err := c7json.MarshalToolResult(result)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	case o.render:
		_, err = fmt.Fprintln(out, goldmark.RenderResult(result.Text(), o.width, context7.DefaultTheme()))
		return err
	default:
		_, err = fmt.Fprintln(out, result.Text())
		return err
	}
}

func logFields(requestID string, req context7.LookupRequest) logrus.Fields {
	return logrus.Fields{
		"request_id": requestID,
		"library":    req.Library,
		"query":      req.Query,
	}
}
