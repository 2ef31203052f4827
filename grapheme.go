package textunit

// scalarSource reads scalars from the front of a buffer, in whatever unit the
// buffer is measured in.
type scalarSource interface {
	// len returns the number of units left.
	len() int
	// decode returns the category and size of the scalar at offset off.
	decode(off int) (Category, int)
}

type utf8Source []byte

func (s utf8Source) len() int { return len(s) }

func (s utf8Source) decode(off int) (Category, int) {
	o := DecodeUTF8(s[off:])
	return CategoryOf(o.Scalar), o.Size
}

type utf16Source []uint16

func (s utf16Source) len() int { return len(s) }

func (s utf16Source) decode(off int) (Category, int) {
	o := DecodeUTF16(s[off:])
	return CategoryOf(o.Scalar), o.Size
}

type stringSource string

func (s stringSource) len() int { return len(s) }

func (s stringSource) decode(off int) (Category, int) {
	o := DecodeUTF8([]byte(s[off:min(off+utfMax, len(s))]))
	return CategoryOf(o.Scalar), o.Size
}

// firstGraphemeCluster runs the grapheme cluster parser over src and returns
// the number of units in the first cluster. Ill-formed input is treated as
// U+FFFD spanning the units reported by the decoder, so a cluster never ends
// inside an encoded scalar.
func firstGraphemeCluster(src scalarSource) int {
	n := src.len()
	if n == 0 {
		return 0
	}

	// The next scalar is decoded once and kept until it is consumed.
	var (
		length = 0
		state  = grStart
		cat    Category
		size   int
	)
	cat, size = src.decode(0)
	for {
		var consume bool
		state, consume = grTransition(state, cat)
		if consume {
			// GB2: the end of text is always a boundary.
			length += size
			if length >= n {
				return n
			}
			cat, size = src.decode(length)
		}
		if state == grDone {
			return length
		}
	}
}

// FirstGraphemeClusterUTF8 returns the length in bytes of the first extended
// grapheme cluster of the UTF-8 text p, or 0 if p is empty.
func FirstGraphemeClusterUTF8(p []byte) int {
	return firstGraphemeCluster(utf8Source(p))
}

// FirstGraphemeClusterUTF16 returns the length in code units of the first
// extended grapheme cluster of the UTF-16 text p, or 0 if p is empty.
func FirstGraphemeClusterUTF16(p []uint16) int {
	return firstGraphemeCluster(utf16Source(p))
}

// FirstGraphemeClusterInString is like [FirstGraphemeClusterUTF8] but its
// input is a string.
func FirstGraphemeClusterInString(str string) int {
	return firstGraphemeCluster(stringSource(str))
}
