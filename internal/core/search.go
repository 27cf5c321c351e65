package core

import (
	"bytes"

	"moose/internal/buffer"
	"moose/internal/keys"
)

// FindPrompt is the text shown while an incremental search is running.
const FindPrompt = "Search: %s (Use ESC/Arrows/Enter)"

// PromptFunc reads a line from the user. format holds one %s for the text typed
// so far; cb, when not nil, runs after every key. It returns false when the
// prompt was cancelled.
type PromptFunc func(format string, cb func(query string, k keys.Key)) (string, bool)

type snapshot struct {
	row  int
	tags []buffer.Tag
}

// Search is one incremental search session. It owns the highlight snapshot of
// the row carrying the current match.
type Search struct {
	lastMatch int
	direction int
	saved     *snapshot
}

// NewSearch returns a search with no match yet, scanning forward.
func NewSearch() *Search {
	return &Search{lastMatch: -1, direction: 1}
}

// LastMatch returns the row of the current match, or -1.
func (f *Search) LastMatch() int { return f.lastMatch }

// Step is the prompt callback. It undoes the previous match highlight, then
// looks for query starting one row past the last match in the current
// direction, wrapping at both ends of the document.
func (f *Search) Step(s *Session, query string, k keys.Key) {
	if f.saved != nil {
		s.Doc.Restore(f.saved.row, f.saved.tags)
		f.saved = nil
	}

	switch k.Code {
	case keys.Enter, keys.Escape:
		f.lastMatch = -1
		f.direction = 1
		return
	case keys.ArrowRight, keys.ArrowDown:
		f.direction = 1
	case keys.ArrowLeft, keys.ArrowUp:
		f.direction = -1
	default:
		f.lastMatch = -1
		f.direction = 1
	}

	if f.lastMatch == -1 {
		f.direction = 1
	}
	if query == "" {
		return
	}

	needle := []byte(query)
	n := s.Doc.Len()
	current := f.lastMatch
	for range n {
		current += f.direction
		if current == -1 {
			current = n - 1
		} else if current == n {
			current = 0
		}

		idx := bytes.Index(s.Doc.Row(current).Render(), needle)
		if idx < 0 {
			continue
		}

		f.lastMatch = current
		s.Cursor.Y = current
		s.Cursor.X = s.Doc.RxToCx(current, idx)
		// Past the end so the next Scroll puts the match on the top row.
		s.View.RowOffset = n

		f.saved = &snapshot{row: current, tags: s.Doc.Snapshot(current)}
		s.Doc.Mark(current, idx, len(needle), buffer.HLMatch)
		return
	}
}

// Find runs an incremental search through prompt. Cancelling puts the cursor
// and the viewport back where they were; confirming leaves the cursor on the
// match.
func (s *Session) Find(prompt PromptFunc) (string, bool) {
	cursor := s.Cursor
	rowOff, colOff := s.View.RowOffset, s.View.ColOffset

	search := NewSearch()
	query, ok := prompt(FindPrompt, func(q string, k keys.Key) {
		search.Step(s, q, k)
	})

	if !ok {
		s.Cursor = cursor
		s.View.RowOffset, s.View.ColOffset = rowOff, colOff
		s.Log.Debug().Msg("search cancelled")
		return "", false
	}

	s.Log.Debug().Str("query", query).Int("row", s.Cursor.Y).Msg("search confirmed")
	return query, true
}
