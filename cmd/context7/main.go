// Command context7 looks up library documentation through the mcporter
// bridge.
//
// Usage:
//
//	context7 lookup --library fastapi how to add middleware
//	context7 serve
//	context7 tui
//	context7 schema
//
// The bridge config path comes from --mcporter-config, the
// CONTEXT7_MCPORTER_CONFIG environment variable, a plugin config file given
// with --config, or a mcporter.json discovered in the working or home
// directory.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

// Set via ldflags at build time.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCmd(os.Getenv, searchDirs())
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "context7: %v\n", err)
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// searchDirs returns the directories searched for a bridge config file when
// none is configured: the working directory, then the home directory.
func searchDirs() []string {
	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	return dirs
}
