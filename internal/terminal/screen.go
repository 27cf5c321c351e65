// Package terminal hides the terminal library behind a small Screen interface
// and decodes raw input into logical keys.
package terminal

import (
	"errors"
	"fmt"

	"moose/internal/keys"
)

// Backend names accepted by New.
const (
	Termbox = "termbox"
	Tcell   = "tcell"
)

// ErrClosed is returned by PollKey once the screen has been shut down.
var ErrClosed = errors.New("terminal closed")

// Style is how a cell is painted. FG is an SGR foreground code (30-37, 90-97);
// 0 keeps the terminal default.
type Style struct {
	FG      int
	Reverse bool
}

// Screen is a full-screen, cell addressed terminal.
type Screen interface {
	Init() error
	Close()
	Size() (width, height int)
	Clear()
	SetCell(x, y int, ch rune, st Style)
	SetCursor(x, y int)
	Flush() error
	// PollKey blocks for the next input event. Events that do not map to a
	// key (resize, mouse) come back as keys.None.
	PollKey() (keys.Key, error)
}

// New returns an uninitialized screen for the named backend.
func New(backend string) (Screen, error) {
	switch backend {
	case Termbox, "":
		return &TermboxScreen{}, nil
	case Tcell:
		return NewTcell()
	}
	return nil, fmt.Errorf("unknown terminal backend %q", backend)
}

// paletteIndex maps an SGR foreground code onto the 16 color palette.
func paletteIndex(sgr int) (int, bool) {
	switch {
	case sgr >= 30 && sgr <= 37:
		return sgr - 30, true
	case sgr >= 90 && sgr <= 97:
		return sgr - 90 + 8, true
	}
	return 0, false
}

// ctrlLetter returns the key for control chord number n (1 is Ctrl-A).
func ctrlLetter(n int) keys.Key {
	return keys.CtrlKey(byte('a' + n - 1))
}

// asciiKey returns the key for a plain typed rune; anything outside ASCII is
// dropped.
func asciiKey(r rune) keys.Key {
	if r <= 0 || r >= 0x80 {
		return keys.Of(keys.None)
	}
	return keys.Rune(byte(r))
}
