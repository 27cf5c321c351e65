package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moose/internal/buffer"
	"moose/internal/keys"
)

func newSession(t *testing.T, lines ...string) *Session {
	t.Helper()
	doc := buffer.New()
	for _, l := range lines {
		doc.InsertRow(doc.Len(), []byte(l))
	}
	doc.Clean()
	return NewSession(doc, 10, 40)
}

// scripted returns a prompt that feeds ks through the same line editing rules
// as the interactive prompt.
func scripted(ks ...keys.Key) PromptFunc {
	return func(_ string, cb func(string, keys.Key)) (string, bool) {
		var buf []byte
		for _, k := range ks {
			switch {
			case k.Code == keys.Backspace:
				if len(buf) > 0 {
					buf = buf[:len(buf)-1]
				}
			case k.Code == keys.Escape:
				if cb != nil {
					cb(string(buf), k)
				}
				return "", false
			case k.Code == keys.Enter:
				if len(buf) > 0 {
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
		return "", false
	}
}

func typed(s string) []keys.Key {
	out := make([]keys.Key, 0, len(s))
	for i := range len(s) {
		out = append(out, keys.Rune(s[i]))
	}
	return out
}

func TestSearch_StepWrapsForward(t *testing.T) {
	s := newSession(t, "bar", "foo", "baz", "foo")
	f := NewSearch()

	f.Step(s, "foo", keys.Rune('o'))
	assert.Equal(t, 1, s.Cursor.Y)

	f.Step(s, "foo", keys.Of(keys.ArrowDown))
	assert.Equal(t, 3, s.Cursor.Y)

	f.Step(s, "foo", keys.Of(keys.ArrowRight))
	assert.Equal(t, 1, s.Cursor.Y)
	assert.Equal(t, 1, f.LastMatch())
}

func TestSearch_StepBackward(t *testing.T) {
	s := newSession(t, "bar", "foo", "baz", "foo")
	f := NewSearch()

	f.Step(s, "foo", keys.Rune('o'))
	require.Equal(t, 1, s.Cursor.Y)

	f.Step(s, "foo", keys.Of(keys.ArrowUp))
	assert.Equal(t, 3, s.Cursor.Y, "wraps past the first row")

	f.Step(s, "foo", keys.Of(keys.ArrowLeft))
	assert.Equal(t, 1, s.Cursor.Y)
}

func TestSearch_NoPriorMatchScansForward(t *testing.T) {
	s := newSession(t, "foo", "bar", "foo")
	f := NewSearch()

	// An arrow without a previous match still starts at the first row.
	f.Step(s, "foo", keys.Of(keys.ArrowUp))
	assert.Equal(t, 0, s.Cursor.Y)
}

func TestSearch_MatchHighlightIsRestored(t *testing.T) {
	s := newSession(t, "bar", "a foo", "foo")
	s.Doc.SelectSyntax("x.c", s.Registry)
	before1 := s.Doc.Snapshot(1)
	before2 := s.Doc.Snapshot(2)

	f := NewSearch()
	f.Step(s, "foo", keys.Rune('o'))
	assert.Equal(t, []buffer.Tag{
		buffer.HLNormal, buffer.HLNormal,
		buffer.HLMatch, buffer.HLMatch, buffer.HLMatch,
	}, s.Doc.Row(1).Highlight())

	f.Step(s, "foo", keys.Of(keys.ArrowDown))
	assert.Equal(t, before1, s.Doc.Row(1).Highlight())
	assert.Equal(t, []buffer.Tag{buffer.HLMatch, buffer.HLMatch, buffer.HLMatch}, s.Doc.Row(2).Highlight())

	f.Step(s, "foo", keys.Of(keys.Enter))
	assert.Equal(t, before2, s.Doc.Row(2).Highlight())
	assert.Equal(t, -1, f.LastMatch())
}

func TestSearch_MatchColumnIsCharacterColumn(t *testing.T) {
	s := newSession(t, "\tfoo")
	f := NewSearch()

	f.Step(s, "foo", keys.Rune('o'))
	assert.Equal(t, 0, s.Cursor.Y)
	assert.Equal(t, 1, s.Cursor.X)
}

func TestSearch_MatchScrollsToTop(t *testing.T) {
	s := newSession(t, "a", "b", "c", "foo", "d")
	s.View.Rows = 2

	NewSearch().Step(s, "foo", keys.Rune('o'))
	assert.Equal(t, s.Doc.Len(), s.View.RowOffset)

	s.Scroll()
	assert.Equal(t, 3, s.View.RowOffset)
}

func TestSearch_EmptyQueryDoesNotMove(t *testing.T) {
	s := newSession(t, "foo")
	s.Cursor = Cursor{X: 2}

	NewSearch().Step(s, "", keys.Of(keys.Backspace))
	assert.Equal(t, Cursor{X: 2}, s.Cursor)
}

func TestSession_Find(t *testing.T) {
	t.Run("cancel restores cursor and viewport", func(t *testing.T) {
		s := newSession(t, "bar", "foo", "baz", "foo")
		s.Cursor = Cursor{X: 2, Y: 0}
		s.View.RowOffset, s.View.ColOffset = 0, 1
		before := s.Doc.Snapshot(2)

		_, ok := s.Find(scripted(append(typed("baz"), keys.Of(keys.Escape))...))

		assert.False(t, ok)
		assert.Equal(t, Cursor{X: 2, Y: 0}, s.Cursor)
		assert.Equal(t, 0, s.View.RowOffset)
		assert.Equal(t, 1, s.View.ColOffset)
		assert.Equal(t, before, s.Doc.Row(2).Highlight())
	})

	t.Run("confirm keeps match", func(t *testing.T) {
		s := newSession(t, "bar", "foo", "baz", "foo")

		ks := append(typed("foo"), keys.Of(keys.ArrowDown), keys.Of(keys.Enter))
		query, ok := s.Find(scripted(ks...))

		require.True(t, ok)
		assert.Equal(t, "foo", query)
		assert.Equal(t, 3, s.Cursor.Y)
		assert.Equal(t, 0, s.Cursor.X)
		for _, tag := range s.Doc.Row(3).Highlight() {
			assert.NotEqual(t, buffer.HLMatch, tag)
		}
	})

	t.Run("backspace restarts from the top", func(t *testing.T) {
		s := newSession(t, "ab", "abc", "abd")

		ks := append(typed("abd"), keys.Of(keys.Backspace), keys.Of(keys.Enter))
		query, ok := s.Find(scripted(ks...))

		require.True(t, ok)
		assert.Equal(t, "ab", query)
		assert.Equal(t, 0, s.Cursor.Y)
	})
}
