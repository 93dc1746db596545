// Package main is the entry point for the podfiler CLI.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/podfiler/cmd/podfiler/commands"
	"go.trai.ch/podfiler/internal/app"
	"go.trai.ch/podfiler/internal/core/domain"
	_ "go.trai.ch/podfiler/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run(opts ...graft.Option) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx, opts...)
	if err != nil {
		// The logger is not available when initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer func() {
		if err := components.App.Close(); err != nil {
			components.Logger.Error(err)
		}
	}()

	cli := commands.New(components.App)
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrLocksDiffer) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
