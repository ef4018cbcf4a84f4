// Package main implements the entry point for the Prepwise API server,
// which serves the AI study tools and the study-plan catalog.
package main

import (
	"context"
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		slog.Error("command execution failed", "error", err)
		os.Exit(1)
	}
}
