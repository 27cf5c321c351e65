package terminal

import (
	"fmt"

	"github.com/nsf/termbox-go"

	"moose/internal/keys"
)

// TermboxScreen draws through termbox-go in 256 color mode.
type TermboxScreen struct{}

func (t *TermboxScreen) Init() error {
	if err := termbox.Init(); err != nil {
		return fmt.Errorf("init termbox: %w", err)
	}
	// Escape arrives as its own key instead of starting an Alt chord.
	termbox.SetInputMode(termbox.InputEsc)
	termbox.SetOutputMode(termbox.Output256)
	return nil
}

func (t *TermboxScreen) Close() { termbox.Close() }

func (t *TermboxScreen) Size() (int, int) { return termbox.Size() }

func (t *TermboxScreen) Clear() {
	_ = termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
}

func (t *TermboxScreen) SetCell(x, y int, ch rune, st Style) {
	termbox.SetCell(x, y, ch, termboxAttr(st), termbox.ColorDefault)
}

func (t *TermboxScreen) SetCursor(x, y int) { termbox.SetCursor(x, y) }

func (t *TermboxScreen) Flush() error { return termbox.Flush() }

func (t *TermboxScreen) PollKey() (keys.Key, error) {
	ev := termbox.PollEvent()
	switch ev.Type {
	case termbox.EventError:
		return keys.Key{}, fmt.Errorf("poll termbox: %w", ev.Err)
	case termbox.EventInterrupt:
		return keys.Key{}, ErrClosed
	case termbox.EventKey:
		return termboxKey(ev), nil
	}
	return keys.Of(keys.None), nil
}

// termboxAttr converts a style to a foreground attribute. In 256 color mode
// attribute n+1 selects palette color n.
func termboxAttr(st Style) termbox.Attribute {
	fg := termbox.ColorDefault
	if idx, ok := paletteIndex(st.FG); ok {
		fg = termbox.Attribute(idx + 1)
	}
	if st.Reverse {
		fg |= termbox.AttrReverse
	}
	return fg
}

func termboxKey(ev termbox.Event) keys.Key {
	if ev.Ch != 0 {
		return asciiKey(ev.Ch)
	}

	// Several termbox keys share a control code, so this is not a value switch.
	k := ev.Key
	switch {
	case k == termbox.KeyEnter:
		return keys.Of(keys.Enter)
	case k == termbox.KeyTab:
		return keys.Rune('\t')
	case k == termbox.KeySpace:
		return keys.Rune(' ')
	case k == termbox.KeyBackspace || k == termbox.KeyBackspace2:
		return keys.Of(keys.Backspace)
	case k == termbox.KeyEsc:
		return keys.Of(keys.Escape)
	case k == termbox.KeyDelete:
		return keys.Of(keys.Delete)
	case k == termbox.KeyArrowLeft:
		return keys.Of(keys.ArrowLeft)
	case k == termbox.KeyArrowRight:
		return keys.Of(keys.ArrowRight)
	case k == termbox.KeyArrowUp:
		return keys.Of(keys.ArrowUp)
	case k == termbox.KeyArrowDown:
		return keys.Of(keys.ArrowDown)
	case k == termbox.KeyHome:
		return keys.Of(keys.Home)
	case k == termbox.KeyEnd:
		return keys.Of(keys.End)
	case k == termbox.KeyPgup:
		return keys.Of(keys.PageUp)
	case k == termbox.KeyPgdn:
		return keys.Of(keys.PageDown)
	case k >= termbox.KeyCtrlA && k <= termbox.KeyCtrlZ:
		return ctrlLetter(int(k-termbox.KeyCtrlA) + 1)
	}
	return keys.Of(keys.None)
}
