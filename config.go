package main

// Command-line flags. Every flag can also come from a MOOSE_* environment
// variable; flags that are set override the configuration file.

import (
	"github.com/urfave/cli/v3"

	"moose/internal/config"
)

// Flags holds the values of the string flags; numeric flags are read back
// from the command when set.
type Flags struct {
	ConfigPath string
	LogLevel   string
	LogFile    string
	Backend    string
}

func (f *Flags) cliFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "path to config file",
			Sources:     cli.EnvVars("MOOSE_CONFIG"),
			Value:       config.DefaultPath(),
			Destination: &f.ConfigPath,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Sources:     cli.EnvVars("MOOSE_LOG_LEVEL"),
			Destination: &f.LogLevel,
		},
		&cli.StringFlag{
			Name:        "log-file",
			Usage:       "write JSON logs to this file (logging is off without it)",
			Sources:     cli.EnvVars("MOOSE_LOG_FILE"),
			Destination: &f.LogFile,
		},
		&cli.StringFlag{
			Name:        "backend",
			Usage:       "terminal backend (termbox, tcell)",
			Sources:     cli.EnvVars("MOOSE_BACKEND"),
			Destination: &f.Backend,
		},
		&cli.IntFlag{
			Name:    "tab-stop",
			Usage:   "tab expansion width",
			Sources: cli.EnvVars("MOOSE_TAB_STOP"),
		},
		&cli.IntFlag{
			Name:    "quit-times",
			Usage:   "extra Ctrl-Q presses needed to quit with unsaved changes",
			Sources: cli.EnvVars("MOOSE_QUIT_TIMES"),
		},
		&cli.DurationFlag{
			Name:    "status-timeout",
			Usage:   "how long status messages stay visible",
			Sources: cli.EnvVars("MOOSE_STATUS_TIMEOUT"),
		},
	}
}

// apply copies the flags that were set onto cfg.
func (f *Flags) apply(c *cli.Command, cfg *config.Config) {
	if c.IsSet("log-level") {
		cfg.LogLevel = f.LogLevel
	}
	if c.IsSet("log-file") {
		cfg.LogFile = f.LogFile
	}
	if c.IsSet("backend") {
		cfg.Backend = f.Backend
	}
	if c.IsSet("tab-stop") {
		cfg.TabStop = int(c.Int("tab-stop"))
	}
	if c.IsSet("quit-times") {
		cfg.QuitTimes = int(c.Int("quit-times"))
	}
	if c.IsSet("status-timeout") {
		cfg.StatusTimeout = c.Duration("status-timeout")
	}
}
