package textunit

// Stats counts the decode outcomes of a buffer.
type Stats struct {
	Scalars    int // Valid outcomes
	Invalid    int // Invalid outcomes (maximal subparts)
	Incomplete int // Incomplete outcomes; at most one, at the end
	Units      int // Units examined
}

// Ok reports whether every outcome was Valid.
func (s Stats) Ok() bool {
	return s.Invalid == 0 && s.Incomplete == 0
}

func (s *Stats) add(o Outcome) {
	switch o.Status {
	case Valid:
		s.Scalars++
	case Invalid:
		s.Invalid++
	case Incomplete:
		s.Incomplete++
	}
	s.Units += o.Size
}

// CountUTF8 decodes all of b and counts the outcomes.
func CountUTF8(b []byte) (s Stats) {
	for len(b) > 0 {
		o := DecodeUTF8(b)
		s.add(o)
		b = b[o.Size:]
	}
	return
}

// CountUTF16 decodes all of p and counts the outcomes.
func CountUTF16(p []uint16) (s Stats) {
	for len(p) > 0 {
		o := DecodeUTF16(p)
		s.add(o)
		p = p[o.Size:]
	}
	return
}

// Validate reports whether b is entirely well-formed UTF-8. If it is not,
// err is a *[DecodeError] describing the first ill-formed subsequence.
func Validate(b []byte) error {
	for off := 0; off < len(b); {
		o := DecodeUTF8(b[off:])
		if o.Status != Valid {
			return o.ErrAt(off)
		}
		off += o.Size
	}
	return nil
}

// ValidUTF16 reports whether p is entirely well-formed UTF-16.
func ValidUTF16(p []uint16) bool {
	for len(p) > 0 {
		o := DecodeUTF16(p)
		if o.Status != Valid {
			return false
		}
		p = p[o.Size:]
	}
	return true
}

// ReplaceInvalidUTF8 appends src to dst with every ill-formed subsequence
// replaced by a single U+FFFD, one per maximal subpart, as recommended by the
// Unicode Standard. A truncated sequence at the end of src is replaced as
// well.
func ReplaceInvalidUTF8(dst, src []byte) []byte {
	for len(src) > 0 {
		// Copy well-formed runs in one go.
		i := 0
		for i < len(src) {
			o := DecodeUTF8(src[i:])
			if o.Status != Valid {
				break
			}
			i += o.Size
		}
		dst = append(dst, src[:i]...)
		src = src[i:]
		if len(src) == 0 {
			break
		}
		o := DecodeUTF8(src)
		dst = AppendUTF8(dst, ReplacementScalar)
		src = src[o.Size:]
	}
	return dst
}

// Transcode16To8 appends the UTF-8 encoding of the UTF-16 text src to dst.
// Ill-formed units are replaced by U+FFFD.
func Transcode16To8(dst []byte, src []uint16) []byte {
	for len(src) > 0 {
		o := DecodeUTF16(src)
		dst = AppendUTF8(dst, o.Scalar)
		src = src[o.Size:]
	}
	return dst
}

// Transcode8To16 appends the UTF-16 encoding of the UTF-8 text src to dst.
// Each ill-formed subpart is replaced by one U+FFFD.
func Transcode8To16(dst []uint16, src []byte) []uint16 {
	for len(src) > 0 {
		o := DecodeUTF8(src)
		dst = AppendUTF16(dst, o.Scalar)
		src = src[o.Size:]
	}
	return dst
}
