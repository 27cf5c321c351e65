package buffer

// DefaultTabStop is the width tabs expand to when no other stop is configured.
const DefaultTabStop = 8

// renderChars expands every tab in chars to spaces up to the next tab stop.
func renderChars(chars []byte, tabStop int) []byte {
	tabs := 0
	for _, c := range chars {
		if c == '\t' {
			tabs++
		}
	}

	out := make([]byte, 0, len(chars)+tabs*(tabStop-1))
	for _, c := range chars {
		if c != '\t' {
			out = append(out, c)
			continue
		}
		out = append(out, ' ')
		for len(out)%tabStop != 0 {
			out = append(out, ' ')
		}
	}
	return out
}

// cxToRx converts a character column into a render column.
func cxToRx(chars []byte, cx, tabStop int) int {
	rx := 0
	for j := 0; j < cx && j < len(chars); j++ {
		if chars[j] == '\t' {
			rx += (tabStop - 1) - (rx % tabStop)
		}
		rx++
	}
	return rx
}

// rxToCx is the inverse of cxToRx: it returns the character whose expanded
// span covers render column rx, or len(chars) when rx lies past the end.
func rxToCx(chars []byte, rx, tabStop int) int {
	cur := 0
	for cx, c := range chars {
		if c == '\t' {
			cur += (tabStop - 1) - (cur % tabStop)
		}
		cur++
		if cur > rx {
			return cx
		}
	}
	return len(chars)
}

// CxToRx returns the render column of character column cx in row at.
// Out-of-range rows map to 0.
func (d *Document) CxToRx(at, cx int) int {
	row := d.Row(at)
	if row == nil {
		return 0
	}
	return cxToRx(row.chars, cx, d.tabStop)
}

// RxToCx returns the character column covering render column rx in row at.
// Out-of-range rows map to 0.
func (d *Document) RxToCx(at, rx int) int {
	row := d.Row(at)
	if row == nil {
		return 0
	}
	return rxToCx(row.chars, rx, d.tabStop)
}
