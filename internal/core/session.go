// Package core holds the editing session: one document together with the
// cursor, the viewport and the status line. Every operation takes the session
// explicitly; there is no package-level state.
package core

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"moose/internal/buffer"
)

// DefaultStatusTimeout is how long a status message stays visible.
const DefaultStatusTimeout = 5 * time.Second

// Cursor is a position in the document.
type Cursor struct {
	X  int // Character column (0-based).
	Y  int // Row index (0-based); Doc.Len() is the virtual line past the end.
	RX int // Render column, derived from X on every Scroll.
}

// Session is the state owned by the control loop.
type Session struct {
	Doc      *buffer.Document
	Cursor   Cursor
	View     Viewport
	Filename string
	Registry *buffer.Registry
	Log      zerolog.Logger

	status        string
	statusTime    time.Time
	statusTimeout time.Duration
	now           func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithRegistry sets the profiles used to pick a syntax from the filename.
func WithRegistry(r *buffer.Registry) Option {
	return func(s *Session) { s.Registry = r }
}

// WithLogger sets the session logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.Log = l }
}

// WithStatusTimeout sets how long status messages stay visible.
func WithStatusTimeout(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.statusTimeout = d
		}
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// NewSession returns a session over doc with a text area of rows x cols.
func NewSession(doc *buffer.Document, rows, cols int, opts ...Option) *Session {
	s := &Session{
		Doc:           doc,
		View:          Viewport{Rows: rows, Cols: cols},
		Registry:      buffer.DefaultRegistry(),
		Log:           zerolog.Nop(),
		statusTimeout: DefaultStatusTimeout,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open selects the syntax for filename and loads the document from r.
func (s *Session) Open(filename string, r io.Reader) error {
	s.SetFilename(filename)
	if err := s.Doc.Load(r); err != nil {
		return err
	}
	s.Log.Debug().Str("file", filename).Int("rows", s.Doc.Len()).Msg("file opened")
	return nil
}

// SetFilename changes the file the session saves to and re-selects the
// syntax profile.
func (s *Session) SetFilename(filename string) {
	s.Filename = filename
	s.Doc.SelectSyntax(filename, s.Registry)
}

// FileType returns the active profile name, or "no ft".
func (s *Session) FileType() string {
	if p := s.Doc.Profile(); p != nil {
		return p.Name()
	}
	return "no ft"
}

// Resize sets the size of the text area.
func (s *Session) Resize(rows, cols int) {
	s.View.Rows = rows
	s.View.Cols = cols
}
