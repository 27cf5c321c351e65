package buffer

import "bytes"

// Tag classifies one rendered byte for colorization.
type Tag uint8

const (
	HLNormal Tag = iota
	HLComment
	HLBlockComment
	HLKeyword
	HLType
	HLString
	HLNumber
	HLMatch
)

// Color maps a tag to an SGR foreground code.
func (t Tag) Color() int {
	switch t {
	case HLComment, HLBlockComment:
		return 34
	case HLKeyword:
		return 33
	case HLType:
		return 32
	case HLString:
		return 35
	case HLNumber:
		return 31
	case HLMatch:
		return 34
	default:
		return 37
	}
}

func (t Tag) String() string {
	switch t {
	case HLNormal:
		return "normal"
	case HLComment:
		return "comment"
	case HLBlockComment:
		return "block-comment"
	case HLKeyword:
		return "keyword"
	case HLType:
		return "type"
	case HLString:
		return "string"
	case HLNumber:
		return "number"
	case HLMatch:
		return "match"
	}
	return "unknown"
}

// Tags lists every tag in declaration order.
func Tags() []Tag {
	return []Tag{HLNormal, HLComment, HLBlockComment, HLKeyword, HLType, HLString, HLNumber, HLMatch}
}

var separators = []byte(",.()+-/*=~%<>[];")

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSeparator(c byte) bool {
	return isSpace(c) || c == 0 || bytes.IndexByte(separators, c) >= 0
}

// updateSyntax re-highlights the row at index at and keeps going down the
// document while each row's trailing block-comment state changes.
func (d *Document) updateSyntax(at int) {
	for i := at; i >= 0 && i < len(d.rows); i++ {
		if !d.highlightRow(d.rows[i]) {
			return
		}
	}
}

// rehighlightAll retags every row in order, e.g. after the profile changed.
func (d *Document) rehighlightAll() {
	for _, row := range d.rows {
		d.highlightRow(row)
	}
}

// highlightRow retags a single row and reports whether its trailing
// block-comment state changed.
func (d *Document) highlightRow(row *Row) bool {
	if cap(row.hl) >= len(row.render) {
		row.hl = row.hl[:len(row.render)]
		clear(row.hl)
	} else {
		row.hl = make([]Tag, len(row.render))
	}

	p := d.profile
	if p == nil {
		changed := row.openComment
		row.openComment = false
		return changed
	}

	render, hl := row.render, row.hl

	prevSep := true
	var inString byte
	inComment := row.idx > 0 && d.rows[row.idx-1].openComment

	i := 0
	for i < len(render) {
		c := render[i]
		prevTag := HLNormal
		if i > 0 {
			prevTag = hl[i-1]
		}

		if len(p.lineComment) > 0 && inString == 0 && !inComment {
			if bytes.HasPrefix(render[i:], p.lineComment) {
				fill(hl[i:], HLComment)
				break
			}
		}

		if len(p.blockStart) > 0 && len(p.blockEnd) > 0 && inString == 0 {
			if inComment {
				hl[i] = HLBlockComment
				if bytes.HasPrefix(render[i:], p.blockEnd) {
					fill(hl[i:i+len(p.blockEnd)], HLBlockComment)
					i += len(p.blockEnd)
					inComment = false
					prevSep = true
					continue
				}
				i++
				continue
			} else if bytes.HasPrefix(render[i:], p.blockStart) {
				fill(hl[i:i+len(p.blockStart)], HLBlockComment)
				i += len(p.blockStart)
				inComment = true
				continue
			}
		}

		if p.syntax.Strings {
			if inString != 0 {
				hl[i] = HLString
				// An escape swallows the following byte.
				if c == '\\' && i+1 < len(render) {
					hl[i+1] = HLString
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			} else if c == '"' || c == '\'' {
				inString = c
				hl[i] = HLString
				i++
				continue
			}
		}

		if p.syntax.Numbers {
			if (isDigit(c) && (prevSep || prevTag == HLNumber)) || (c == '.' && prevTag == HLNumber) {
				hl[i] = HLNumber
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			if n, tag := p.matchKeyword(render[i:]); n > 0 {
				fill(hl[i:i+n], tag)
				i += n
				prevSep = false
				continue
			}
		}

		prevSep = isSeparator(c)
		i++
	}

	changed := row.openComment != inComment
	row.openComment = inComment
	return changed
}

func fill(tags []Tag, t Tag) {
	for i := range tags {
		tags[i] = t
	}
}

// Snapshot returns a copy of the highlight tags of row at, or nil.
func (d *Document) Snapshot(at int) []Tag {
	row := d.Row(at)
	if row == nil {
		return nil
	}
	out := make([]Tag, len(row.hl))
	copy(out, row.hl)
	return out
}

// Restore puts back tags taken by Snapshot. It is a no-op when the row no
// longer has the same rendered length.
func (d *Document) Restore(at int, tags []Tag) {
	row := d.Row(at)
	if row == nil || len(tags) != len(row.hl) {
		return
	}
	copy(row.hl, tags)
}

// Mark overlays tag t on n rendered bytes of row at starting at start. The
// range is clipped to the row.
func (d *Document) Mark(at, start, n int, t Tag) {
	row := d.Row(at)
	if row == nil || start < 0 || start >= len(row.hl) || n <= 0 {
		return
	}
	end := min(start+n, len(row.hl))
	fill(row.hl[start:end], t)
}
