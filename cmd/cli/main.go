package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/amirasaad/ledger/infra/initializer"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/fatih/color"
)

const usage = `Usage: cli <command> [arguments]
Commands:
  register <name> <phone>
  show <phone>
  deposit <phone> <amount>
  transfer <phone> <receiver_phone> <amount>
  history <phone> [limit]
Commands acting on an account prompt for its password.`

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(2)
	}
	if err := run(os.Args[1:]); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err) //nolint:errcheck
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}
	// Keep the terminal for command output.
	cfg.Log.Level = int(slog.LevelError)

	ctx := context.Background()
	deps, err := initializer.InitializeDependencies(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := deps.Close(); err != nil {
			color.New(color.FgRed).Fprintln(os.Stderr, "Failed to close store:", err) //nolint:errcheck
		}
	}()

	c := newCLI(app.New(deps, cfg), os.Stdin, os.Stdout)
	return c.dispatch(ctx, args)
}
