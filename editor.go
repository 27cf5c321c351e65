package main

// Editor ties one editing session to a terminal screen. It owns drawing, the
// quit counter, saving and the post-save syntax check. The session itself
// lives in internal/core.

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"moose/internal/buffer"
	"moose/internal/config"
	"moose/internal/core"
	"moose/internal/syntaxcheck"
	"moose/internal/terminal"
)

const (
	saveAsPrompt = "Save as: %s (ESC to cancel)"
	quitWarning  = "WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit."
	noName       = "[No Name]"
)

// Editor is the top-level application state.
type Editor struct {
	screen  terminal.Screen
	session *core.Session
	log     zerolog.Logger

	quitTimes int // Extra Ctrl-Q presses needed while dirty.
	quitLeft  int

	// Parsers are built on first save and reused; nil marks a profile
	// without a grammar.
	checkers map[string]*syntaxcheck.Checker

	// err is a poll failure seen while a prompt was reading keys. Run
	// returns it on the next turn of the loop.
	err error
}

// NewEditor creates an editor with an empty document.
func NewEditor(screen terminal.Screen, cfg *config.Config, log zerolog.Logger) *Editor {
	doc := buffer.New(
		buffer.WithTabStop(cfg.TabStop),
		buffer.WithLogger(log),
	)
	session := core.NewSession(doc, 0, 0,
		core.WithRegistry(cfg.Registry()),
		core.WithStatusTimeout(cfg.StatusTimeout),
		core.WithLogger(log),
	)
	session.SetStatus("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find")

	return &Editor{
		screen:    screen,
		session:   session,
		log:       log,
		quitTimes: cfg.QuitTimes,
		quitLeft:  cfg.QuitTimes,
		checkers:  make(map[string]*syntaxcheck.Checker),
	}
}

// Open loads filename into the document.
func (e *Editor) Open(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("open %s: %w", filename, err)
	}
	defer f.Close()

	if err := e.session.Open(filename, f); err != nil {
		return fmt.Errorf("open %s: %w", filename, err)
	}
	return nil
}

// save writes the document to its file, asking for a name first when it has
// none.
func (e *Editor) save(ctx context.Context) {
	s := e.session

	if s.Filename == "" {
		name, ok := e.prompt(saveAsPrompt, nil)
		if !ok {
			s.SetStatus("Save aborted")
			return
		}
		s.SetFilename(name)
	}

	data := s.Doc.Serialize()
	if err := os.WriteFile(s.Filename, data, 0o644); err != nil {
		e.log.Error().Err(err).Str("file", s.Filename).Msg("save failed")
		s.SetStatus("Can't save! I/O error: %s", err)
		return
	}
	s.Doc.Clean()
	e.log.Debug().Str("file", s.Filename).Int("bytes", len(data)).Msg("file saved")

	msg := fmt.Sprintf("%d bytes written to disk", len(data))
	if row, ok := e.check(ctx, data); !ok {
		msg += fmt.Sprintf(" (syntax error near line %d)", row+1)
	}
	s.SetStatus("%s", msg)
}

// check parses data with the grammar of the active profile. It returns false
// and the first error row when the parse failed; profiles without a grammar
// always pass.
func (e *Editor) check(ctx context.Context, data []byte) (int, bool) {
	p := e.session.Doc.Profile()
	if p == nil {
		return 0, true
	}

	c, ok := e.checkers[p.Name()]
	if !ok {
		var err error
		c, err = syntaxcheck.New(p.Name())
		if err != nil {
			e.log.Warn().Err(err).Str("profile", p.Name()).Msg("syntax checker unavailable")
		}
		e.checkers[p.Name()] = c
	}
	if c == nil {
		return 0, true
	}

	res, err := c.Check(ctx, data)
	if err != nil {
		e.log.Warn().Err(err).Str("profile", p.Name()).Msg("syntax check failed")
		return 0, true
	}
	e.log.Debug().Str("profile", p.Name()).Int("errors", res.Errors).Int("row", res.FirstRow).Msg("syntax checked")
	return res.FirstRow, res.OK()
}

// find runs an incremental search from the message line.
func (e *Editor) find() {
	e.session.Find(e.prompt)
}

// draw repaints the whole screen: text rows, status bar and message line.
func (e *Editor) draw() error {
	w, h := e.screen.Size()
	s := e.session

	s.Resize(max(h-2, 1), w)
	s.Scroll()

	e.screen.Clear()
	e.drawRows()
	e.drawStatusBar(s.View.Rows)
	e.drawMessageBar(s.View.Rows + 1)

	e.screen.SetCursor(s.Cursor.RX-s.View.ColOffset, s.Cursor.Y-s.View.RowOffset)
	return e.screen.Flush()
}

func (e *Editor) drawRows() {
	s := e.session
	v := s.View

	for y := 0; y < v.Rows; y++ {
		filerow := y + v.RowOffset
		if filerow >= s.Doc.Len() {
			if s.Doc.Len() == 0 && y == v.Rows/3 {
				e.drawWelcome(y, v.Cols)
			} else {
				e.screen.SetCell(0, y, '~', GetThemeColor(ColorEmptyLine))
			}
			continue
		}

		row := s.Doc.Row(filerow)
		render, hl := row.Render(), row.Highlight()
		if v.ColOffset >= len(render) {
			continue
		}
		render, hl = render[v.ColOffset:], hl[v.ColOffset:]
		if len(render) > v.Cols {
			render, hl = render[:v.Cols], hl[:v.Cols]
		}

		for x, c := range render {
			if isControl(c) {
				sym := '?'
				if c <= 26 {
					sym = rune('@' + c)
				}
				e.screen.SetCell(x, y, sym, GetThemeColor(ColorControlChar))
				continue
			}
			e.screen.SetCell(x, y, rune(c), tagStyle(hl[x]))
		}
	}
}

func isControl(c byte) bool { return c < 0x20 || c == 0x7f }

func (e *Editor) drawStatusBar(y int) {
	s := e.session
	width := s.View.Cols
	st := GetThemeColor(ColorStatusBar)

	name := s.Filename
	if name == "" {
		name = noName
	}
	modified := ""
	if s.Doc.Dirty() > 0 {
		modified = "(modified)"
	}

	left := fmt.Sprintf("%.20s - %d lines %s", name, s.Doc.Len(), modified)
	right := fmt.Sprintf("%s | %d/%d", s.FileType(), s.Cursor.Y+1, s.Doc.Len())
	if len(left) > width {
		left = left[:width]
	}

	line := []byte(left)
	for len(line) < width {
		if width-len(line) == len(right) {
			line = append(line, right...)
			break
		}
		line = append(line, ' ')
	}

	for x, c := range line {
		e.screen.SetCell(x, y, rune(c), st)
	}
}

func (e *Editor) drawMessageBar(y int) {
	msg := e.session.StatusMessage()
	if len(msg) > e.session.View.Cols {
		msg = msg[:e.session.View.Cols]
	}
	st := GetThemeColor(ColorMessage)
	for x := 0; x < len(msg); x++ {
		e.screen.SetCell(x, y, rune(msg[x]), st)
	}
}
