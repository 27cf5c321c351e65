package config

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog"

	"moose/internal/buffer"
)

// MaxTabStop is the widest accepted tab stop.
const MaxTabStop = 32

// Validate checks the configuration and returns criterio field errors.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		c.validateNumbers(),
		criterio.Run("backend", c.Backend, validBackend),
		criterio.Run("log_level", c.LogLevel, validLogLevel),
		c.validateProfiles(),
	)
}

func (c *Config) validateNumbers() error {
	var errs criterio.FieldErrorsBuilder
	if c.TabStop < 1 || c.TabStop > MaxTabStop {
		errs = errs.Append("tab_stop", fmt.Errorf("must be between 1 and %d, got %d", MaxTabStop, c.TabStop))
	}
	if c.QuitTimes < 0 {
		errs = errs.Append("quit_times", fmt.Errorf("cannot be negative, got %d", c.QuitTimes))
	}
	if c.StatusTimeout <= 0 {
		errs = errs.Append("status_timeout", fmt.Errorf("must be positive, got %s", c.StatusTimeout))
	}
	return errs.ToError()
}

func validBackend(name string) error {
	switch name {
	case BackendTermbox, BackendTcell:
		return nil
	}
	return fmt.Errorf("unknown backend %q (want %s or %s)", name, BackendTermbox, BackendTcell)
}

func validLogLevel(level string) error {
	if _, err := zerolog.ParseLevel(level); err != nil {
		return fmt.Errorf("unknown log level %q", level)
	}
	return nil
}

func (c *Config) validateProfiles() error {
	var errs criterio.FieldErrorsBuilder
	seen := map[string]bool{}

	for i, p := range c.Profiles {
		field := fmt.Sprintf("profiles[%d]", i)

		name := strings.TrimSpace(p.Name)
		switch {
		case name == "":
			errs = errs.Append(field+".name", fmt.Errorf("name is required"))
		case seen[name]:
			errs = errs.Append(field+".name", fmt.Errorf("duplicate profile %q", name))
		}
		seen[name] = true

		if len(p.FileMatch) == 0 {
			errs = errs.Append(field+".filematch", fmt.Errorf("at least one pattern is required"))
		}
		for j, pattern := range p.FileMatch {
			if err := validPattern(pattern); err != nil {
				errs = errs.Append(fmt.Sprintf("%s.filematch[%d]", field, j), err)
			}
		}

		if (p.BlockCommentStart == "") != (p.BlockCommentEnd == "") {
			errs = errs.Append(field+".block_comment_start", fmt.Errorf("block comment markers must be set together"))
		}
	}

	return errs.ToError()
}

func validPattern(pattern string) error {
	if pattern == "" {
		return fmt.Errorf("pattern cannot be empty")
	}
	if buffer.IsGlob(pattern) && !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("invalid glob %q", pattern)
	}
	return nil
}
