// Command gridlab solves the grid and network puzzles of the gridlab
// packages from input files.
//
// Usage:
//
//	gridlab [--config file.yaml] [--log-level debug] <solver> <input>
//
// Solvers: pipes, beam, crucible, platform, pulse. Inputs ending in .zst are
// decompressed on the fly.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
