package core

import "moose/internal/keys"

// InsertChar inserts c at the cursor. On the virtual line past the end a new
// row is appended first.
func (s *Session) InsertChar(c byte) {
	if s.Cursor.Y == s.Doc.Len() {
		s.Doc.InsertRow(s.Doc.Len(), nil)
	}
	s.Doc.InsertChar(s.Cursor.Y, s.Cursor.X, c)
	s.Cursor.X++
}

// InsertNewline splits the current row at the cursor. At column 0 an empty row
// is inserted above instead.
func (s *Session) InsertNewline() {
	c := &s.Cursor
	row := s.Doc.Row(c.Y)
	if c.X == 0 || row == nil {
		s.Doc.InsertRow(c.Y, nil)
	} else {
		s.Doc.InsertRow(c.Y+1, row.Chars()[c.X:])
		s.Doc.Truncate(c.Y, c.X)
	}
	c.Y++
	c.X = 0
}

// DeleteChar removes the character left of the cursor. At column 0 the row is
// joined onto the previous one.
func (s *Session) DeleteChar() {
	c := &s.Cursor
	if c.Y == s.Doc.Len() {
		return
	}
	if c.X == 0 && c.Y == 0 {
		return
	}

	row := s.Doc.Row(c.Y)
	if c.X > 0 {
		s.Doc.DeleteChar(c.Y, c.X-1)
		c.X--
		return
	}

	c.X = s.Doc.Row(c.Y - 1).Len()
	s.Doc.AppendBytes(c.Y-1, row.Chars())
	s.Doc.DeleteRow(c.Y)
	c.Y--
}

// DeleteForward removes the character under the cursor, joining the next row
// when the cursor is at the end of a row.
func (s *Session) DeleteForward() {
	if s.Cursor.Y >= s.Doc.Len() {
		return
	}
	s.MoveCursor(keys.Of(keys.ArrowRight))
	s.DeleteChar()
}
