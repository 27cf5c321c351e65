package main

// Input processing. It contains the main loop and the mapping from logical
// keys to editing operations, plus the line prompt used by save-as and find.

import (
	"context"
	"fmt"

	"moose/internal/keys"
)

// Run draws and handles keys until the user quits or the terminal fails.
func (e *Editor) Run(ctx context.Context) error {
	for {
		if e.err != nil {
			return e.err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.draw(); err != nil {
			return fmt.Errorf("draw: %w", err)
		}

		k, err := e.screen.PollKey()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		if e.processKey(ctx, k) {
			e.log.Debug().Msg("quit")
			return nil
		}
	}
}

// processKey applies one key to the session. It returns true when the editor
// should exit.
func (e *Editor) processKey(ctx context.Context, k keys.Key) bool {
	s := e.session

	switch {
	case k.Code == keys.None:
		return false

	case k.Code == keys.Enter:
		s.InsertNewline()

	case k.IsCtrl('q'):
		if s.Doc.Dirty() > 0 && e.quitLeft > 0 {
			s.SetStatus(quitWarning, e.quitLeft)
			e.quitLeft--
			return false
		}
		return true

	case k.IsCtrl('s'):
		e.save(ctx)

	case k.IsCtrl('f'):
		e.find()

	case k.Code == keys.Backspace, k.IsCtrl('h'):
		s.DeleteChar()

	case k.Code == keys.Delete:
		s.DeleteForward()

	case k.Code == keys.ArrowLeft, k.Code == keys.ArrowRight,
		k.Code == keys.ArrowUp, k.Code == keys.ArrowDown,
		k.Code == keys.Home, k.Code == keys.End,
		k.Code == keys.PageUp, k.Code == keys.PageDown:
		s.MoveCursor(k)

	case k.IsCtrl('l'), k.Code == keys.Escape:

	case k.Code == keys.Char:
		s.InsertChar(k.Ch)
	}

	e.quitLeft = e.quitTimes
	return false
}

// prompt reads a line on the message bar. format holds one %s for the text
// typed so far. cb, when set, runs after every key with the current text.
// It returns false when the user pressed Escape or the terminal failed.
func (e *Editor) prompt(format string, cb func(string, keys.Key)) (string, bool) {
	s := e.session
	var buf []byte

	for {
		s.SetStatus(format, buf)
		if err := e.draw(); err != nil {
			e.err = fmt.Errorf("draw: %w", err)
			return "", false
		}

		k, err := e.screen.PollKey()
		if err != nil {
			e.err = fmt.Errorf("read key: %w", err)
			return "", false
		}

		switch {
		case k.Code == keys.None:
			continue

		case k.Code == keys.Backspace, k.Code == keys.Delete, k.IsCtrl('h'):
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}

		case k.Code == keys.Escape:
			s.SetStatus("")
			if cb != nil {
				cb(string(buf), k)
			}
			return "", false

		case k.Code == keys.Enter:
			if len(buf) > 0 {
				s.SetStatus("")
				if cb != nil {
					cb(string(buf), k)
				}
				return string(buf), true
			}

		case k.Printable():
			buf = append(buf, k.Ch)
		}

		if cb != nil {
			cb(string(buf), k)
		}
	}
}
