package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/isbnkit/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	os.Exit(run(ctx, os.Args[1:]))
}

func run(ctx context.Context, args []string) int {
	c := cli.New(os.Stdout, os.Stderr, cli.LogInfo)
	c.SetInput(os.Stdin)
	defer c.Close()

	err := c.Execute(ctx, args)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130 // Standard shell convention for SIGINT
	case errors.Is(err, cli.ErrUsage):
		return 1
	default:
		c.ReportError(err)
		return 1
	}
}
