package core

// Viewport is the window of the document that is currently drawn.
type Viewport struct {
	RowOffset int // First visible row.
	ColOffset int // First visible render column.
	Rows      int // Text area height.
	Cols      int // Text area width.
}

// Scroll recomputes the cursor's render column and moves the viewport so the
// cursor is visible. It runs once per draw.
func (s *Session) Scroll() {
	c, v := &s.Cursor, &s.View

	c.RX = 0
	if c.Y < s.Doc.Len() {
		c.RX = s.Doc.CxToRx(c.Y, c.X)
	}

	rows, cols := max(v.Rows, 1), max(v.Cols, 1)

	if c.Y < v.RowOffset {
		v.RowOffset = c.Y
	}
	if c.Y >= v.RowOffset+rows {
		v.RowOffset = c.Y - rows + 1
	}
	if c.RX < v.ColOffset {
		v.ColOffset = c.RX
	}
	if c.RX >= v.ColOffset+cols {
		v.ColOffset = c.RX - cols + 1
	}
}
