// Command itemcheck bootstraps a seeded items table and verifies that a
// fixed IN-list query and a JSON batch query return the same rows.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/roach88/itemcheck/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Cancel the in-flight statement on Ctrl-C
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return cli.GetExitCode(err)
	}
	return cli.ExitSuccess
}
