package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/trfilter/internal/app"
	"github.com/specialistvlad/trfilter/internal/cli"
	"github.com/specialistvlad/trfilter/internal/hcl"
)

// main is the entrypoint for the tr filter.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:], os.Getenv); err != nil {
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
func run(in io.Reader, out, errW io.Writer, args []string, getenv func(string) string) error {
	cfg, err := cli.Parse(args, getenv)
	if err != nil {
		return err
	}

	// Instantiate the concrete HCL loader to pass to the app.
	loader := hcl.NewLoader()
	trApp, err := app.NewApp(errW, cfg, loader)
	if err != nil {
		return err
	}

	return trApp.Run(context.Background(), cfg, in, out)
}
