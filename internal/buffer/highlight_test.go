package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tags builds an expected highlight slice from runs of (tag, count).
func tags(runs ...any) []Tag {
	var out []Tag
	for i := 0; i+1 < len(runs); i += 2 {
		for range runs[i+1].(int) {
			out = append(out, runs[i].(Tag))
		}
	}
	return out
}

func cDoc(t *testing.T, lines ...string) *Document {
	t.Helper()
	d := newDoc(t, lines...)
	p := d.SelectSyntax("main.c", DefaultRegistry())
	require.NotNil(t, p)
	require.Equal(t, "c", p.Name())
	return d
}

func TestHighlight_Row(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []Tag
	}{
		{
			name: "line comment",
			line: "x // hi",
			want: tags(HLNormal, 2, HLComment, 5),
		},
		{
			name: "type keyword",
			line: "int x;",
			want: tags(HLType, 3, HLNormal, 3),
		},
		{
			name: "keyword needs trailing separator",
			line: "intx",
			want: tags(HLNormal, 4),
		},
		{
			name: "keyword at end of row",
			line: "return",
			want: tags(HLKeyword, 6),
		},
		{
			name: "numbers",
			line: "x = 12.5;",
			want: tags(HLNormal, 4, HLNumber, 4, HLNormal, 1),
		},
		{
			name: "digits inside identifier",
			line: "a1",
			want: tags(HLNormal, 2),
		},
		{
			name: "string with escape",
			line: `"a\"b" x`,
			want: tags(HLString, 6, HLNormal, 2),
		},
		{
			name: "comment marker inside string",
			line: `'//'`,
			want: tags(HLString, 4),
		},
		{
			name: "closed block comment",
			line: "/* c */ if",
			want: tags(HLBlockComment, 7, HLNormal, 1, HLKeyword, 2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := cDoc(t, tt.line)
			assert.Equal(t, tt.want, d.Row(0).Highlight())
			assert.False(t, d.Row(0).OpenComment())
		})
	}
}

func TestHighlight_BlockCommentAcrossRows(t *testing.T) {
	d := cDoc(t, "a /* b", "c */ d")

	assert.True(t, d.Row(0).OpenComment())
	assert.Equal(t, tags(HLNormal, 2, HLBlockComment, 4), d.Row(0).Highlight())

	assert.False(t, d.Row(1).OpenComment())
	assert.Equal(t, tags(HLBlockComment, 4, HLNormal, 2), d.Row(1).Highlight())
}

func TestHighlight_PropagationStopsWhenClosed(t *testing.T) {
	d := cDoc(t, "/*", "a", "b", "c", "d", "e", "*/ int")

	for i := 1; i <= 5; i++ {
		assert.True(t, d.Row(i).OpenComment(), "row %d", i)
		assert.Equal(t, tags(HLBlockComment, 1), d.Row(i).Highlight(), "row %d", i)
	}
	assert.Equal(t, tags(HLBlockComment, 2, HLNormal, 1, HLType, 3), d.Row(6).Highlight())

	// Turn "/*" into "/" so nothing is opened any more.
	d.DeleteChar(0, 1)

	for i := 1; i <= 5; i++ {
		assert.False(t, d.Row(i).OpenComment(), "row %d", i)
		assert.Equal(t, tags(HLNormal, 1), d.Row(i).Highlight(), "row %d", i)
	}
	assert.Equal(t, tags(HLNormal, 3, HLType, 3), d.Row(6).Highlight())

	// And reopen it.
	d.InsertChar(0, 1, '*')
	for i := 1; i <= 5; i++ {
		assert.True(t, d.Row(i).OpenComment(), "row %d", i)
	}
}

func TestHighlight_DeleteRowRehighlightsSuccessor(t *testing.T) {
	d := cDoc(t, "/*", "a", "*/")
	require.True(t, d.Row(1).OpenComment())

	d.DeleteRow(0)

	assert.False(t, d.Row(0).OpenComment())
	assert.Equal(t, tags(HLNormal, 1), d.Row(0).Highlight())
	assert.Equal(t, tags(HLNormal, 2), d.Row(1).Highlight())
	assertConsistent(t, d)
}

func TestHighlight_LongestKeywordFirst(t *testing.T) {
	d := newDoc(t, "int in")
	d.SetProfile(Compile(Syntax{
		Name:     "t",
		Keywords: []string{"in"},
		Types:    []string{"int"},
	}))

	assert.Equal(t, tags(HLType, 3, HLNormal, 1, HLKeyword, 2), d.Row(0).Highlight())
}

func TestHighlight_NoProfile(t *testing.T) {
	d := cDoc(t, "/* int", "x")
	require.True(t, d.Row(0).OpenComment())

	d.SelectSyntax("README", DefaultRegistry())

	assert.Nil(t, d.Profile())
	assert.False(t, d.Row(0).OpenComment())
	assert.Equal(t, tags(HLNormal, 6), d.Row(0).Highlight())
	assert.Equal(t, tags(HLNormal, 1), d.Row(1).Highlight())
}

func TestHighlight_TabsAreRendered(t *testing.T) {
	d := cDoc(t, "\tif")
	assert.Equal(t, tags(HLNormal, 8, HLKeyword, 2), d.Row(0).Highlight())
}

func TestSnapshotMarkRestore(t *testing.T) {
	d := cDoc(t, "int foo")
	saved := d.Snapshot(0)

	d.Mark(0, 4, 3, HLMatch)
	assert.Equal(t, tags(HLType, 3, HLNormal, 1, HLMatch, 3), d.Row(0).Highlight())

	d.Mark(0, 6, 10, HLMatch)
	d.Mark(0, -1, 2, HLMatch)
	d.Mark(0, 7, 1, HLMatch)
	assert.Len(t, d.Row(0).Highlight(), 7)

	d.Restore(0, saved)
	assert.Equal(t, saved, d.Row(0).Highlight())

	d.Restore(0, saved[:2])
	assert.Equal(t, saved, d.Row(0).Highlight())
	assert.Nil(t, d.Snapshot(3))
}

func TestTagColor(t *testing.T) {
	want := map[Tag]int{
		HLNormal:       37,
		HLComment:      34,
		HLBlockComment: 34,
		HLKeyword:      33,
		HLType:         32,
		HLString:       35,
		HLNumber:       31,
		HLMatch:        34,
	}
	for _, tag := range Tags() {
		assert.Equal(t, want[tag], tag.Color(), tag.String())
	}
	assert.Equal(t, 37, Tag(200).Color())
}
