package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/3-lines-studio/pagegen/internal/adapters/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	output := cli.NewOutput()
	cmd := newRootCmd(output, os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			output.PrintError("%v", err)
		}
		stop()
		os.Exit(1)
	}
}
