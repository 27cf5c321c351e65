// Package keys defines the closed set of logical keys the editor core consumes.
// Terminal backends decode their raw events into these values.
package keys

import "fmt"

// Code identifies the kind of a logical key.
type Code int

const (
	None Code = iota // Nothing to handle (resize, unsupported input).
	Char             // A plain byte, stored in Key.Ch.
	Ctrl             // A control chord; Key.Ch holds the lower-case letter.
	Enter
	Escape
	Backspace
	Delete
	ArrowLeft
	ArrowRight
	ArrowUp
	ArrowDown
	Home
	End
	PageUp
	PageDown
)

// Key is one decoded keypress.
type Key struct {
	Code Code
	Ch   byte
}

// Rune returns a plain character key.
func Rune(c byte) Key { return Key{Code: Char, Ch: c} }

// CtrlKey returns the control chord for letter c (e.g. CtrlKey('s') for Ctrl-S).
func CtrlKey(c byte) Key {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	return Key{Code: Ctrl, Ch: c}
}

// Of returns a key without a payload byte.
func Of(code Code) Key { return Key{Code: code} }

// IsCtrl reports whether k is the control chord for letter c.
func (k Key) IsCtrl(c byte) bool {
	return k.Code == Ctrl && k == CtrlKey(c)
}

// Printable reports whether k carries a byte that can go into a prompt.
func (k Key) Printable() bool {
	return k.Code == Char && k.Ch >= 0x20 && k.Ch < 0x7f
}

func (k Key) String() string {
	switch k.Code {
	case Char:
		return fmt.Sprintf("%q", k.Ch)
	case Ctrl:
		return "ctrl-" + string(k.Ch)
	}
	return k.Code.String()
}

func (c Code) String() string {
	switch c {
	case None:
		return "none"
	case Char:
		return "char"
	case Ctrl:
		return "ctrl"
	case Enter:
		return "enter"
	case Escape:
		return "escape"
	case Backspace:
		return "backspace"
	case Delete:
		return "delete"
	case ArrowLeft:
		return "left"
	case ArrowRight:
		return "right"
	case ArrowUp:
		return "up"
	case ArrowDown:
		return "down"
	case Home:
		return "home"
	case End:
		return "end"
	case PageUp:
		return "pgup"
	case PageDown:
		return "pgdn"
	}
	return fmt.Sprintf("code(%d)", int(c))
}
