package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"moose/internal/keys"
)

// TcellScreen draws through tcell.
type TcellScreen struct {
	screen tcell.Screen
}

// NewTcell returns a screen bound to the controlling terminal.
func NewTcell() (*TcellScreen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create tcell screen: %w", err)
	}
	return &TcellScreen{screen: screen}, nil
}

func (t *TcellScreen) Init() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init tcell: %w", err)
	}
	return nil
}

func (t *TcellScreen) Close() { t.screen.Fini() }

func (t *TcellScreen) Size() (int, int) { return t.screen.Size() }

func (t *TcellScreen) Clear() { t.screen.Clear() }

func (t *TcellScreen) SetCell(x, y int, ch rune, st Style) {
	t.screen.SetContent(x, y, ch, nil, tcellStyle(st))
}

func (t *TcellScreen) SetCursor(x, y int) { t.screen.ShowCursor(x, y) }

func (t *TcellScreen) Flush() error {
	t.screen.Show()
	return nil
}

func (t *TcellScreen) PollKey() (keys.Key, error) {
	ev := t.screen.PollEvent()
	switch e := ev.(type) {
	case nil:
		return keys.Key{}, ErrClosed
	case *tcell.EventKey:
		return tcellKey(e), nil
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return keys.Of(keys.None), nil
}

func tcellStyle(st Style) tcell.Style {
	style := tcell.StyleDefault
	if idx, ok := paletteIndex(st.FG); ok {
		style = style.Foreground(tcell.PaletteColor(idx))
	}
	if st.Reverse {
		style = style.Reverse(true)
	}
	return style
}

func tcellKey(ev *tcell.EventKey) keys.Key {
	// Enter, Tab and Backspace alias control codes, so this is not a value
	// switch either.
	k := ev.Key()
	switch {
	case k == tcell.KeyRune:
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return keys.CtrlKey(byte(r))
		}
		return asciiKey(r)
	case k == tcell.KeyEnter:
		return keys.Of(keys.Enter)
	case k == tcell.KeyTab:
		return keys.Rune('\t')
	case k == tcell.KeyBackspace || k == tcell.KeyBackspace2:
		return keys.Of(keys.Backspace)
	case k == tcell.KeyEscape:
		return keys.Of(keys.Escape)
	case k == tcell.KeyDelete:
		return keys.Of(keys.Delete)
	case k == tcell.KeyLeft:
		return keys.Of(keys.ArrowLeft)
	case k == tcell.KeyRight:
		return keys.Of(keys.ArrowRight)
	case k == tcell.KeyUp:
		return keys.Of(keys.ArrowUp)
	case k == tcell.KeyDown:
		return keys.Of(keys.ArrowDown)
	case k == tcell.KeyHome:
		return keys.Of(keys.Home)
	case k == tcell.KeyEnd:
		return keys.Of(keys.End)
	case k == tcell.KeyPgUp:
		return keys.Of(keys.PageUp)
	case k == tcell.KeyPgDn:
		return keys.Of(keys.PageDown)
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return ctrlLetter(int(k-tcell.KeyCtrlA) + 1)
	}
	return keys.Of(keys.None)
}

// tcellEvent is the inverse of tcellKey.
func tcellEvent(k keys.Key) (tcell.Key, rune, tcell.ModMask) {
	switch k.Code {
	case keys.Char:
		if k.Ch == '\t' {
			return tcell.KeyTab, '\t', tcell.ModNone
		}
		return tcell.KeyRune, rune(k.Ch), tcell.ModNone
	case keys.Ctrl:
		n := int(k.Ch - 'a')
		return tcell.KeyCtrlA + tcell.Key(n), rune(n + 1), tcell.ModCtrl
	case keys.Enter:
		return tcell.KeyEnter, '\r', tcell.ModNone
	case keys.Escape:
		return tcell.KeyEscape, 0x1b, tcell.ModNone
	case keys.Backspace:
		return tcell.KeyBackspace2, 0x7f, tcell.ModNone
	case keys.Delete:
		return tcell.KeyDelete, 0, tcell.ModNone
	case keys.ArrowLeft:
		return tcell.KeyLeft, 0, tcell.ModNone
	case keys.ArrowRight:
		return tcell.KeyRight, 0, tcell.ModNone
	case keys.ArrowUp:
		return tcell.KeyUp, 0, tcell.ModNone
	case keys.ArrowDown:
		return tcell.KeyDown, 0, tcell.ModNone
	case keys.Home:
		return tcell.KeyHome, 0, tcell.ModNone
	case keys.End:
		return tcell.KeyEnd, 0, tcell.ModNone
	case keys.PageUp:
		return tcell.KeyPgUp, 0, tcell.ModNone
	case keys.PageDown:
		return tcell.KeyPgDn, 0, tcell.ModNone
	}
	return tcell.KeyNUL, 0, tcell.ModNone
}
