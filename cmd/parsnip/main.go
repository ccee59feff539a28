// Package main is the entry point for the parsnip CLI.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/parsnip/cmd/parsnip/commands"
	"go.trai.ch/parsnip/internal/app"
	_ "go.trai.ch/parsnip/internal/wiring"
)

// componentsProvider initializes the application components. Swapped out in
// tests.
type componentsProvider func(ctx context.Context) (*app.Components, func(), error)

func graftProvider(ctx context.Context) (*app.Components, func(), error) {
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		return nil, nil, err
	}
	return components, func() {
		_ = components.Telemetry.Close()
	}, nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	os.Exit(run(ctx, os.Args[1:], os.Stderr, graftProvider))
}

func run(ctx context.Context, args []string, stderr io.Writer, provider componentsProvider) int {
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr
		_, _ = io.WriteString(stderr, "Error: "+err.Error()+"\n")
		return 1
	}
	defer cleanup()

	cli := commands.New(components.App)
	cli.SetArgs(args)

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
