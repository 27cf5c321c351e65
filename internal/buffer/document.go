// Package buffer holds the in-memory document model: rows of bytes, their
// tab-expanded render form and the per-byte highlight tags derived from the
// active syntax profile.
package buffer

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"slices"

	"github.com/rs/zerolog"
)

// Document is an ordered sequence of rows plus the state needed to derive
// their rendering. It is not safe for concurrent use.
type Document struct {
	rows    []*Row
	dirty   int
	profile *Profile
	tabStop int
	log     zerolog.Logger
}

// Option configures a Document.
type Option func(*Document)

// WithTabStop sets the tab expansion width. Values below 1 are ignored.
func WithTabStop(n int) Option {
	return func(d *Document) {
		if n >= 1 {
			d.tabStop = n
		}
	}
}

// WithLogger sets the logger used for document events.
func WithLogger(l zerolog.Logger) Option {
	return func(d *Document) { d.log = l }
}

// New returns an empty document.
func New(opts ...Option) *Document {
	d := &Document{
		tabStop: DefaultTabStop,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Len returns the number of rows.
func (d *Document) Len() int { return len(d.rows) }

// Row returns the row at index at, or nil when out of range.
func (d *Document) Row(at int) *Row {
	if at < 0 || at >= len(d.rows) {
		return nil
	}
	return d.rows[at]
}

// TabStop returns the tab expansion width.
func (d *Document) TabStop() int { return d.tabStop }

// Dirty returns the number of modifications since the last load or save.
func (d *Document) Dirty() int { return d.dirty }

// Clean marks the document as saved.
func (d *Document) Clean() { d.dirty = 0 }

// updateRow recomputes the render of row and re-highlights from it.
func (d *Document) updateRow(row *Row) {
	row.render = renderChars(row.chars, d.tabStop)
	d.updateSyntax(row.idx)
}

// InsertRow inserts a row holding a copy of s at index at. Indices outside
// [0, Len()] are ignored.
func (d *Document) InsertRow(at int, s []byte) {
	if at < 0 || at > len(d.rows) {
		return
	}

	row := &Row{idx: at, chars: slices.Clone(s)}
	if row.chars == nil {
		row.chars = []byte{}
	}
	d.rows = slices.Insert(d.rows, at, row)
	for j := at + 1; j < len(d.rows); j++ {
		d.rows[j].idx++
	}

	d.updateRow(row)
	d.dirty++
}

// DeleteRow removes the row at index at. Out-of-range indices are ignored.
func (d *Document) DeleteRow(at int) {
	if at < 0 || at >= len(d.rows) {
		return
	}

	d.rows[at] = nil
	d.rows = slices.Delete(d.rows, at, at+1)
	for j := at; j < len(d.rows); j++ {
		d.rows[j].idx--
	}

	// The row sliding into at now inherits from a different predecessor.
	if at < len(d.rows) {
		d.updateSyntax(at)
	}
	d.dirty++
}

// InsertChar inserts c into row at before column col. A column outside
// [0, len] appends to the end of the row.
func (d *Document) InsertChar(at, col int, c byte) {
	row := d.Row(at)
	if row == nil {
		return
	}
	if col < 0 || col > len(row.chars) {
		col = len(row.chars)
	}

	chars := make([]byte, 0, len(row.chars)+1)
	chars = append(chars, row.chars[:col]...)
	chars = append(chars, c)
	chars = append(chars, row.chars[col:]...)
	row.chars = chars

	d.updateRow(row)
	d.dirty++
}

// DeleteChar removes the character at column col of row at. Out-of-range
// positions are ignored.
func (d *Document) DeleteChar(at, col int) {
	row := d.Row(at)
	if row == nil || col < 0 || col >= len(row.chars) {
		return
	}

	chars := make([]byte, 0, len(row.chars)-1)
	chars = append(chars, row.chars[:col]...)
	chars = append(chars, row.chars[col+1:]...)
	row.chars = chars

	d.updateRow(row)
	d.dirty++
}

// AppendBytes concatenates s to the end of row at.
func (d *Document) AppendBytes(at int, s []byte) {
	row := d.Row(at)
	if row == nil {
		return
	}

	chars := make([]byte, 0, len(row.chars)+len(s))
	chars = append(chars, row.chars...)
	chars = append(chars, s...)
	row.chars = chars

	d.updateRow(row)
	d.dirty++
}

// Truncate drops every character of row at from column col on.
func (d *Document) Truncate(at, col int) {
	row := d.Row(at)
	if row == nil || col < 0 || col > len(row.chars) {
		return
	}

	row.chars = slices.Clone(row.chars[:col])
	d.updateRow(row)
	d.dirty++
}

// Load appends one row per line read from r. Line terminators ("\n" and a
// trailing "\r") are stripped. The document is clean afterwards.
func (d *Document) Load(r io.Reader) error {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if errors.Is(err, io.EOF) && len(line) == 0 {
			break
		}

		line = bytes.TrimRight(line, "\r\n")
		d.InsertRow(len(d.rows), line)

		if errors.Is(err, io.EOF) {
			break
		}
	}

	d.log.Debug().Int("rows", len(d.rows)).Msg("document loaded")
	d.dirty = 0
	return nil
}

// Serialize joins all rows with '\n', including a trailing newline.
func (d *Document) Serialize() []byte {
	total := 0
	for _, row := range d.rows {
		total += len(row.chars) + 1
	}

	buf := make([]byte, 0, total)
	for _, row := range d.rows {
		buf = append(buf, row.chars...)
		buf = append(buf, '\n')
	}
	return buf
}
