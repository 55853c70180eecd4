// Package main provides the entry point for the bookshelf CLI tool.
package main

import (
	"context"
	"github.com/gostonefire/bookshelf/internal/app"
	"os"
)

// Version information populated at build time with -ldflags.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	application, err := app.New(version, commit, date)
	if err != nil {
		app.ExitOnError(err)
	}

	// Create context with signal handling so the shell stops on Ctrl-C
	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	if err := application.Execute(ctx, os.Args[1:]); err != nil {
		cancel()
		app.ExitOnError(err)
	}
}
