package textunit

// UTF-8 bit patterns.
const (
	utfMax = 4 // maximum number of bytes of an encoded scalar

	tx = 0b10000000
	t2 = 0b11000000
	t3 = 0b11100000
	t4 = 0b11110000

	maskx = 0b00111111
	mask2 = 0b00011111
	mask3 = 0b00001111
	mask4 = 0b00000111
)

// Bounds on the value formed by the first two bytes of a 3- or 4-byte
// sequence, i.e. lead&mask<<6 | cont&maskx. They let the decoder reject
// overlong, surrogate and out-of-range sequences after looking at two bytes.
const (
	// 3-byte sequences: values below 0x800 are overlong, so the first two
	// bytes must combine to at least 0x800>>6.
	min3Prefix = 0x800 >> 6
	// Surrogates D800..DFFF have first-two-byte values 0x360..0x37F.
	surrogatePrefixMin = surrogateMin >> 6
	surrogatePrefixMax = surrogateMax >> 6
	// 4-byte sequences must lie in [0x10000, 0x10FFFF].
	min4Prefix = 0x10000 >> 12
	max4Prefix = 0x10ffff >> 12
)

// isContinuation reports whether b has the form 10xxxxxx. Interpreted as a
// signed byte, continuation bytes are exactly those below -64.
func isContinuation(b byte) bool {
	return int8(b) < -64
}

// DecodeUTF8 decodes the scalar at the start of p.
//
// For well-formed input it returns a Valid outcome whose Size is the encoded
// length of the scalar (1 to 4). Otherwise the returned Size follows the
// maximal subpart rule:
//
//   - A byte that can never start a sequence (0x80-0xC1, 0xF5-0xFF) is
//     Invalid with size 1.
//   - A valid lead byte not followed by a continuation byte is Invalid with
//     size 1.
//   - A lead byte and a continuation byte that together can only encode an
//     overlong form, a surrogate, or a value above U+10FFFF are Invalid with
//     size 2.
//   - A later continuation byte that is missing is Invalid with a size equal
//     to the number of bytes that passed validation.
//   - If p ends before the sequence is complete, and every byte so far was
//     acceptable, the outcome is Incomplete with size len(p).
//
// An empty p yields an Incomplete outcome of size 0. DecodeUTF8 never reads
// past the end of p and never retains it.
func DecodeUTF8(p []byte) Outcome {
	n := len(p)
	if n < 1 {
		return incomplete(0)
	}

	// ASCII fast path.
	p0 := p[0]
	if p0 < tx {
		return valid(Scalar(p0), 1)
	}

	// 2-byte sequences.
	if p0 >= 0xc2 && p0 <= 0xdf {
		if n < 2 {
			return incomplete(1)
		}
		if !isContinuation(p[1]) {
			return invalid(1)
		}
		return valid(Scalar(p0&mask2)<<6|Scalar(p[1]&maskx), 2)
	}

	// 3-byte sequences.
	if p0 >= 0xe0 && p0 <= 0xef {
		if n < 2 {
			return incomplete(1)
		}
		b1 := p[1]
		if !isContinuation(b1) {
			return invalid(1)
		}
		prefix := uint32(p0&mask3)<<6 | uint32(b1&maskx)
		if prefix < min3Prefix || (prefix >= surrogatePrefixMin && prefix <= surrogatePrefixMax) {
			return invalid(2)
		}
		if n < 3 {
			return incomplete(2)
		}
		b2 := p[2]
		if !isContinuation(b2) {
			return invalid(2)
		}
		return valid(Scalar(prefix<<6|uint32(b2&maskx)), 3)
	}

	// 4-byte sequences.
	if p0 >= 0xf0 && p0 <= 0xf4 {
		if n < 2 {
			return incomplete(1)
		}
		b1 := p[1]
		if !isContinuation(b1) {
			return invalid(1)
		}
		// The lead byte contributes bits 18-20 and the first continuation
		// byte bits 12-17.
		prefix := uint32(p0&mask4)<<6 | uint32(b1&maskx)
		if prefix < min4Prefix || prefix > max4Prefix {
			return invalid(2)
		}
		if n < 3 {
			return incomplete(2)
		}
		b2 := p[2]
		if !isContinuation(b2) {
			return invalid(2)
		}
		if n < 4 {
			return incomplete(3)
		}
		b3 := p[3]
		if !isContinuation(b3) {
			return invalid(3)
		}
		return valid(Scalar(prefix<<12|uint32(b2&maskx)<<6|uint32(b3&maskx)), 4)
	}

	// Continuation bytes, 0xC0, 0xC1 and 0xF5-0xFF never start a sequence.
	return invalid(1)
}

// FullUTF8 reports whether p begins with a complete encoding, that is,
// whether [DecodeUTF8] would return something other than Incomplete.
func FullUTF8(p []byte) bool {
	return DecodeUTF8(p).Status != Incomplete
}
