package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/lipgloss"
	"github.com/djmisieq/chmurowy-system-mrp/internal/cli"
	"github.com/djmisieq/chmurowy-system-mrp/internal/config"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Plain output when piped so --apply and --format json stay machine-readable.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := &cli.App{Config: config.LoadConfig()}
	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
