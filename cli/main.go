// Command pslcheck validates the Postgres indexes of Prisma schemas.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/satishbabariya/pslcheck/cli/commands"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return commands.NewRootCommand().ExecuteContext(ctx)
}
