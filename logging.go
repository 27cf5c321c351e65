package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// newLogger returns a JSON logger writing to file at the given level. The
// terminal belongs to the editor, so without a file the logger discards
// everything.
func newLogger(level, file string) (zerolog.Logger, func(), error) {
	closer := func() {}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), closer, err
	}
	if file == "" {
		return zerolog.Nop(), closer, nil
	}

	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return zerolog.Nop(), closer, fmt.Errorf("create logs dir: %w", err)
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), closer, err
	}
	closer = func() { _ = f.Close() }

	l := zerolog.New(f).
		With().
		Timestamp().
		Logger().
		Level(lvl)

	return l, closer, nil
}
