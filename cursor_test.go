package textunit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type cursorItem struct {
	s      Scalar
	status Status
	pos    Cursor
}

func collectUTF8(p []byte) (items []cursorItem) {
	c := NewCursor()
	for {
		pos := c
		var o Outcome
		o, c = c.NextUTF8(p)
		if o.Size == 0 {
			return
		}
		pos.afterCR = false
		items = append(items, cursorItem{o.Scalar, o.Status, pos})
	}
}

func TestCursorNextUTF8(t *testing.T) {
	in := []byte("a\tb\r\nc\rd\ne\xff\tf")
	expected := []cursorItem{
		{'a', Valid, Cursor{Offset: 0, Line: 1, Column: 1}},
		{'\t', Valid, Cursor{Offset: 1, Line: 1, Column: 2}},
		{'b', Valid, Cursor{Offset: 2, Line: 1, Column: 9}},
		{'\r', Valid, Cursor{Offset: 3, Line: 1, Column: 10}},
		{'\n', Valid, Cursor{Offset: 4, Line: 2, Column: 1}},
		{'c', Valid, Cursor{Offset: 5, Line: 2, Column: 1}},
		{'\r', Valid, Cursor{Offset: 6, Line: 2, Column: 2}},
		{'d', Valid, Cursor{Offset: 7, Line: 3, Column: 1}},
		{'\n', Valid, Cursor{Offset: 8, Line: 3, Column: 2}},
		{'e', Valid, Cursor{Offset: 9, Line: 4, Column: 1}},
		{ReplacementScalar, Invalid, Cursor{Offset: 10, Line: 4, Column: 2}},
		{'\t', Valid, Cursor{Offset: 11, Line: 4, Column: 3}},
		{'f', Valid, Cursor{Offset: 12, Line: 4, Column: 9}},
	}
	assert.Equal(t, expected, collectUTF8(in))
}

func TestCursorMultiByte(t *testing.T) {
	c := NewCursor()
	in := []byte("é😀\xe2\x82")

	o, c := c.NextUTF8(in)
	assert.Equal(t, Outcome{Valid, 0xe9, 2}, o)
	assert.Equal(t, "line 1 column 2 (offset 2)", c.String())

	o, c = c.NextUTF8(in)
	assert.Equal(t, Outcome{Valid, 0x1f600, 4}, o)
	assert.Equal(t, 6, c.Offset)

	o, c = c.NextUTF8(in)
	assert.Equal(t, Outcome{Incomplete, ReplacementScalar, 2}, o)
	assert.Equal(t, 8, c.Offset)
	assert.Equal(t, 4, c.Column)

	o, c2 := c.NextUTF8(in)
	assert.Equal(t, Outcome{Incomplete, ReplacementScalar, 0}, o)
	assert.Equal(t, c, c2)
}

func TestCursorNextUTF16(t *testing.T) {
	in := []uint16{'a', 0xd83d, 0xde00, '\n', 0xdc00, 'b'}
	c := NewCursor()

	var offsets, lines, columns []int
	for {
		var o Outcome
		o, c = c.NextUTF16(in)
		if o.Size == 0 {
			break
		}
		offsets = append(offsets, c.Offset)
		lines = append(lines, c.Line)
		columns = append(columns, c.Column)
	}
	assert.Equal(t, []int{1, 3, 4, 5, 6}, offsets)
	assert.Equal(t, []int{1, 1, 2, 2, 2}, lines)
	assert.Equal(t, []int{2, 3, 1, 2, 3}, columns)
}

func TestCursorAdvanceZeroSize(t *testing.T) {
	c := NewCursor()
	assert.Equal(t, c, c.Advance(incomplete(0)))
}
