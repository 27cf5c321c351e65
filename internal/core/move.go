package core

import "moose/internal/keys"

// MoveCursor applies a navigation key. Left and right wrap across row
// boundaries; the column is clamped to the new row afterwards.
func (s *Session) MoveCursor(k keys.Key) {
	c := &s.Cursor
	row := s.Doc.Row(c.Y)

	switch k.Code {
	case keys.ArrowLeft:
		if c.X != 0 {
			c.X--
		} else if c.Y > 0 {
			c.Y--
			c.X = s.Doc.Row(c.Y).Len()
		}
	case keys.ArrowRight:
		if row != nil && c.X < row.Len() {
			c.X++
		} else if row != nil && c.X == row.Len() {
			c.Y++
			c.X = 0
		}
	case keys.ArrowUp:
		if c.Y != 0 {
			c.Y--
		}
	case keys.ArrowDown:
		if c.Y < s.Doc.Len() {
			c.Y++
		}
	case keys.Home:
		c.X = 0
	case keys.End:
		if row != nil {
			c.X = row.Len()
		}
	case keys.PageUp, keys.PageDown:
		s.page(k.Code)
		return
	}

	s.clampX()
}

// page jumps to the top or bottom visible row and then moves a full screen.
func (s *Session) page(code keys.Code) {
	c, v := &s.Cursor, &s.View

	dir := keys.ArrowUp
	if code == keys.PageUp {
		c.Y = v.RowOffset
	} else {
		dir = keys.ArrowDown
		c.Y = min(v.RowOffset+v.Rows-1, s.Doc.Len())
	}

	for range v.Rows {
		s.MoveCursor(keys.Of(dir))
	}
	s.clampX()
}

func (s *Session) clampX() {
	n := 0
	if row := s.Doc.Row(s.Cursor.Y); row != nil {
		n = row.Len()
	}
	if s.Cursor.X > n {
		s.Cursor.X = n
	}
}
