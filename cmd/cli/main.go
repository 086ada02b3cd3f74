package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/bundlegrid/internal/app"
	"github.com/specialistvlad/bundlegrid/internal/cli"
	"github.com/specialistvlad/bundlegrid/internal/hcl"
)

// main is the entrypoint for the bundlegrid application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(inR io.Reader, outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Instantiate the concrete HCL loader to pass to the app.
	loader := hcl.NewLoader()
	if appConfig.Year > 0 {
		loader.Year = appConfig.Year
	}

	bundleApp, err := app.NewApp(app.Streams{In: inR, Out: outW, Err: errW}, appConfig, loader)
	if err != nil {
		return fmt.Errorf("application startup failed: %w", err)
	}

	return bundleApp.Run(context.Background())
}
