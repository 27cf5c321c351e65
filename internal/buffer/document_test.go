package buffer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDoc(t *testing.T, lines ...string) *Document {
	t.Helper()
	d := New()
	for _, l := range lines {
		d.InsertRow(d.Len(), []byte(l))
	}
	return d
}

func rowsOf(d *Document) []string {
	out := make([]string, 0, d.Len())
	for i := range d.Len() {
		out = append(out, d.Row(i).String())
	}
	return out
}

func assertConsistent(t *testing.T, d *Document) {
	t.Helper()
	for i := range d.Len() {
		row := d.Row(i)
		assert.Equal(t, i, row.Index(), "row %d index", i)
		assert.Len(t, row.Highlight(), len(row.Render()), "row %d highlight length", i)
	}
}

func TestDocument_InsertDeleteRows(t *testing.T) {
	d := newDoc(t, "one", "two", "three")
	d.InsertRow(0, []byte("zero"))
	d.InsertRow(2, []byte("one and a half"))
	d.InsertRow(d.Len(), nil)
	d.DeleteRow(3)
	d.DeleteRow(0)

	assert.Equal(t, []string{"one", "one and a half", "three", ""}, rowsOf(d))
	assertConsistent(t, d)
	assert.Equal(t, 8, d.Dirty())
}

func TestDocument_OutOfRangeIsIgnored(t *testing.T) {
	d := newDoc(t, "abc")
	d.Clean()

	d.InsertRow(-1, []byte("x"))
	d.InsertRow(5, []byte("x"))
	d.DeleteRow(1)
	d.DeleteRow(-1)
	d.DeleteChar(0, 3)
	d.DeleteChar(4, 0)
	d.InsertChar(9, 0, 'x')
	d.AppendBytes(1, []byte("x"))
	d.Truncate(0, 4)

	assert.Equal(t, []string{"abc"}, rowsOf(d))
	assert.Zero(t, d.Dirty())
	assert.Nil(t, d.Row(1))
}

func TestDocument_CharEdits(t *testing.T) {
	d := newDoc(t, "ac")

	d.InsertChar(0, 1, 'b')
	assert.Equal(t, "abc", d.Row(0).String())

	d.InsertChar(0, 99, 'd')
	assert.Equal(t, "abcd", d.Row(0).String())

	d.DeleteChar(0, 0)
	assert.Equal(t, "bcd", d.Row(0).String())

	d.AppendBytes(0, []byte("\tef"))
	assert.Equal(t, "bcd\tef", d.Row(0).String())
	assert.Equal(t, "bcd     ef", string(d.Row(0).Render()))

	d.Truncate(0, 2)
	assert.Equal(t, "bc", d.Row(0).String())
	assertConsistent(t, d)
}

func TestDocument_LoadSerialize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		rows  int
	}{
		{name: "empty", input: "", want: "", rows: 0},
		{name: "single line", input: "hello\n", want: "hello\n", rows: 1},
		{name: "blank lines", input: "a\n\n\tb\n\n", want: "a\n\n\tb\n\n", rows: 4},
		{name: "missing final newline", input: "a\nb", want: "a\nb\n", rows: 2},
		{name: "crlf", input: "a\r\nb\r\n", want: "a\nb\n", rows: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New()
			require.NoError(t, d.Load(strings.NewReader(tt.input)))

			assert.Equal(t, tt.rows, d.Len())
			assert.Zero(t, d.Dirty())
			assert.Equal(t, tt.want, string(d.Serialize()))
			assertConsistent(t, d)
		})
	}
}

func TestDocument_IndicesAfterMixedEdits(t *testing.T) {
	d := New()
	for i := range 20 {
		d.InsertRow(i/2, []byte(strings.Repeat("x", i)))
	}
	for _, at := range []int{0, 5, 17, 3, 3, 10} {
		d.DeleteRow(at)
	}
	d.InsertRow(7, []byte("mid"))

	assert.Equal(t, 15, d.Len())
	assertConsistent(t, d)
}

func TestDocument_TabStopOption(t *testing.T) {
	d := New(WithTabStop(4))
	d.InsertRow(0, []byte("a\tb"))
	assert.Equal(t, "a   b", string(d.Row(0).Render()))

	d = New(WithTabStop(0))
	assert.Equal(t, DefaultTabStop, d.TabStop())
}
