package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/specialistvlad/bmicalc/internal/app"
	"github.com/specialistvlad/bmicalc/internal/cli"
	"github.com/specialistvlad/bmicalc/internal/hcl"
)

// main is the entrypoint for the bmicalc application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The real main function handles errors and exit codes.
	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, args []string, inR io.Reader, outW, errW io.Writer) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Instantiate the concrete HCL loader to pass to the app.
	loader := hcl.NewLoader()
	bmiApp, err := app.NewApp(outW, errW, appConfig, loader, app.WithInput(inR))
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}

	if err := bmiApp.Run(ctx); err != nil {
		if errors.Is(err, app.ErrInvalidInput) {
			// The field errors are already on stdout.
			return &cli.ExitError{Code: 1}
		}
		return err
	}
	return nil
}
