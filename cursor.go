package textunit

import (
	"fmt"
)

// Cursor is a position within a text buffer, threaded through decode calls by
// the caller. The decoders are stateless; everything that must survive from
// one call to the next lives in a Cursor value owned by the caller.
type Cursor struct {
	// Offset is measured in source units.
	Offset int
	Line   int
	Column int

	// afterCR is set after a CR so that a following LF does not count as a
	// second line break.
	afterCR bool
}

// NewCursor returns the Cursor for the start of a text.
func NewCursor() Cursor {
	return Cursor{Line: 1, Column: 1}
}

// Advance returns the cursor moved past the scalar described by o. Ill-formed
// units count as one column, the way a replacement character would be
// displayed.
func (c Cursor) Advance(o Outcome) Cursor {
	if o.Size <= 0 {
		return c
	}

	c.Offset += o.Size
	switch {
	case o.Status == Valid && o.Scalar == '\r':
		c.Line++
		c.Column = 1
		c.afterCR = true
	case o.Status == Valid && o.Scalar == '\n' && c.afterCR:
		c.afterCR = false
	case o.Status == Valid && o.Scalar == '\n':
		c.Line++
		c.Column = 1
	case o.Status == Valid && o.Scalar == '\t':
		c.Column += 8 - ((c.Column - 1) % 8)
		c.afterCR = false
	default:
		c.Column++
		c.afterCR = false
	}
	return c
}

// NextUTF8 decodes the scalar at the cursor's offset in p and returns it with
// the advanced cursor. At the end of p it returns an Incomplete outcome of
// size 0 and the unchanged cursor.
func (c Cursor) NextUTF8(p []byte) (Outcome, Cursor) {
	if c.Offset >= len(p) {
		return incomplete(0), c
	}
	o := DecodeUTF8(p[c.Offset:])
	return o, c.Advance(o)
}

// NextUTF16 is like [Cursor.NextUTF8] for UTF-16 code units.
func (c Cursor) NextUTF16(p []uint16) (Outcome, Cursor) {
	if c.Offset >= len(p) {
		return incomplete(0), c
	}
	o := DecodeUTF16(p[c.Offset:])
	return o, c.Advance(o)
}

func (c Cursor) String() string {
	return fmt.Sprintf("line %d column %d (offset %d)", c.Line, c.Column, c.Offset)
}
