package buffer

// Row is one line of a Document. It owns its characters and derives the
// rendered bytes and the highlight tags from them; Render and Highlight always
// have the same length.
type Row struct {
	idx         int    // Position in the owning document.
	chars       []byte // Raw bytes, never containing '\n'.
	render      []byte // chars with tabs expanded.
	hl          []Tag  // One tag per rendered byte.
	openComment bool   // Row ends inside a block comment.
}

// Index returns the row's position in its document.
func (r *Row) Index() int { return r.idx }

// Len returns the number of characters in the row.
func (r *Row) Len() int { return len(r.chars) }

// Chars returns the row's characters. The slice is owned by the row and must
// not be modified.
func (r *Row) Chars() []byte { return r.chars }

// Render returns the display bytes of the row (tabs expanded).
func (r *Row) Render() []byte { return r.render }

// Highlight returns one tag per rendered byte.
func (r *Row) Highlight() []Tag { return r.hl }

// OpenComment reports whether the row ends inside an unterminated block
// comment.
func (r *Row) OpenComment() bool { return r.openComment }

func (r *Row) String() string { return string(r.chars) }
