package textunit

// ScalarIterator walks a UTF-8 buffer one decode outcome at a time.
//
//	it := textunit.Scalars(b)
//	for it.Next() {
//		o := it.Outcome()
//		// ...
//	}
//
// The iterator never substitutes or skips: Invalid and Incomplete outcomes are
// reported like any other, and the caller decides what to do with them.
type ScalarIterator struct {
	src  []byte
	pos  Cursor // position of the current outcome
	next Cursor // position after the current outcome
	o    Outcome
}

// Scalars returns an iterator over the decode outcomes of b.
func Scalars(b []byte) ScalarIterator {
	c := NewCursor()
	return ScalarIterator{src: b, pos: c, next: c}
}

// Next advances to the next outcome and reports whether there was one.
func (it *ScalarIterator) Next() bool {
	it.pos = it.next
	it.o, it.next = it.next.NextUTF8(it.src)
	return it.o.Size > 0
}

// Outcome returns the current decode outcome.
func (it *ScalarIterator) Outcome() Outcome {
	return it.o
}

// Offset returns the byte offset of the current outcome.
func (it *ScalarIterator) Offset() int {
	return it.pos.Offset
}

// Cursor returns the position of the current outcome.
func (it *ScalarIterator) Cursor() Cursor {
	return it.pos
}

// ReverseScalarIterator walks a UTF-8 buffer from its end, one decode outcome
// at a time, using [DecodeLastUTF8]. It reports the same outcomes as
// [ScalarIterator] in reverse order: only a truncated sequence at the very end
// of the buffer is Incomplete.
type ReverseScalarIterator struct {
	src []byte
	end int // end offset of the current outcome
	o   Outcome
}

// ReverseScalars returns an iterator over the decode outcomes of b in reverse
// order.
func ReverseScalars(b []byte) ReverseScalarIterator {
	return ReverseScalarIterator{src: b, end: len(b)}
}

// Next moves to the previous outcome and reports whether there was one.
func (it *ReverseScalarIterator) Next() bool {
	it.end -= it.o.Size
	it.o = interior(DecodeLastUTF8(it.src[:it.end]), it.end < len(it.src))
	return it.o.Size > 0
}

// Outcome returns the current decode outcome.
func (it *ReverseScalarIterator) Outcome() Outcome {
	return it.o
}

// Offset returns the byte offset of the current outcome.
func (it *ReverseScalarIterator) Offset() int {
	return it.end - it.o.Size
}

// ReverseUTF16Iterator is the UTF-16 counterpart of [ReverseScalarIterator],
// using [DecodeLastUTF16].
type ReverseUTF16Iterator struct {
	src []uint16
	end int
	o   Outcome
}

// ReverseScalarsUTF16 returns an iterator over the decode outcomes of p in
// reverse order.
func ReverseScalarsUTF16(p []uint16) ReverseUTF16Iterator {
	return ReverseUTF16Iterator{src: p, end: len(p)}
}

// Next moves to the previous outcome and reports whether there was one.
func (it *ReverseUTF16Iterator) Next() bool {
	it.end -= it.o.Size
	it.o = interior(DecodeLastUTF16(it.src[:it.end]), it.end < len(it.src))
	return it.o.Size > 0
}

// Outcome returns the current decode outcome.
func (it *ReverseUTF16Iterator) Outcome() Outcome {
	return it.o
}

// Offset returns the offset in code units of the current outcome.
func (it *ReverseUTF16Iterator) Offset() int {
	return it.end - it.o.Size
}

// GraphemeIterator walks the extended grapheme clusters of a UTF-8 buffer.
type GraphemeIterator struct {
	rest    []byte
	cluster []byte
	offset  int
	index   int
}

// Graphemes returns an iterator over the grapheme clusters of b.
func Graphemes(b []byte) GraphemeIterator {
	return GraphemeIterator{rest: b, index: -1}
}

// Next advances to the next cluster and reports whether there was one.
func (it *GraphemeIterator) Next() bool {
	if len(it.rest) == 0 {
		it.offset += len(it.cluster)
		it.cluster = nil
		return false
	}
	it.offset += len(it.cluster)
	it.cluster, it.rest = Step(it.rest)
	it.index++
	return true
}

// Cluster returns the current cluster.
func (it *GraphemeIterator) Cluster() []byte {
	return it.cluster
}

// Offset returns the byte offset of the current cluster.
func (it *GraphemeIterator) Offset() int {
	return it.offset
}

// Index returns the number of clusters before the current one.
func (it *GraphemeIterator) Index() int {
	return it.index
}
