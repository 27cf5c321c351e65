package main

// The entry point of the moose editor. It parses the command line, loads the
// configuration, sets up logging and the terminal backend, and runs the editor
// loop.

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"moose/internal/config"
	"moose/internal/terminal"
)

// Version of the editor, injected at build time.
var Version = "0.0.1"

func main() {
	var (
		flags     = &Flags{}
		cfg       *config.Config
		logger    = zerolog.Nop()
		logCloser = func() {}
	)

	app := &cli.Command{
		Name:      "moose",
		Usage:     "a small modeless terminal text editor",
		UsageText: "moose [options] [file]",
		Version:   Version,
		Flags:     flags.cliFlags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			loaded, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.apply(c, loaded)
			if err := loaded.Validate(); err != nil {
				return ctx, fmt.Errorf("invalid options: %w", err)
			}
			cfg = loaded

			l, closer, err := newLogger(cfg.LogLevel, cfg.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			logger, logCloser = l, closer

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			logCloser()
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "profiles",
				Usage: "list the syntax profiles and the files they apply to",
				Action: func(ctx context.Context, c *cli.Command) error {
					return PrintProfiles(os.Stdout, cfg.Registry())
				},
			},
			{
				Name:  "colors",
				Usage: "print every highlight class in its color",
				Action: func(ctx context.Context, c *cli.Command) error {
					return PrintColors(os.Stdout)
				},
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() > 1 {
				return fmt.Errorf("expected at most one file, got %d", c.Args().Len())
			}
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return errors.New("stdin is not a terminal")
			}

			screen, err := terminal.New(cfg.Backend)
			if err != nil {
				return err
			}

			editor := NewEditor(screen, cfg, logger)
			if c.Args().Len() == 1 {
				// Open before the terminal is taken over so the error stays readable.
				if err := editor.Open(c.Args().First()); err != nil {
					return err
				}
			}

			if err := screen.Init(); err != nil {
				return err
			}
			defer screen.Close()

			logger.Info().Str("backend", cfg.Backend).Str("file", editor.session.Filename).Msg("editor started")
			return editor.Run(ctx)
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "moose: %v\n", err)
		os.Exit(1)
	}
}
