package textunit

// 0xd800-0xdc00 encodes the high 10 bits of a pair.
// 0xdc00-0xe000 encodes the low 10 bits of a pair.
// the value is those 20 bits plus 0x10000.
const (
	surr1    = 0xd800
	surr2    = 0xdc00
	surr3    = 0xe000
	surrSelf = 0x10000
)

func isHighSurrogate(u uint16) bool { return u >= surr1 && u < surr2 }
func isLowSurrogate(u uint16) bool  { return u >= surr2 && u < surr3 }

// DecodeUTF16 decodes the scalar at the start of p, a sequence of UTF-16 code
// units in native order.
//
// A unit outside the surrogate range is a Valid scalar of size 1. A high
// surrogate followed by a low surrogate is a Valid supplementary scalar of
// size 2. A high surrogate that is the last unit of p is Incomplete with size
// 1. Any other surrogate is Invalid with size 1. An empty p yields an
// Incomplete outcome of size 0.
func DecodeUTF16(p []uint16) Outcome {
	if len(p) < 1 {
		return incomplete(0)
	}

	r1 := p[0]
	if r1 < surr1 || surr3 <= r1 {
		return valid(Scalar(r1), 1)
	}
	if !isHighSurrogate(r1) {
		return invalid(1)
	}
	if len(p) < 2 {
		return incomplete(1)
	}
	r2 := p[1]
	if !isLowSurrogate(r2) {
		return invalid(1)
	}
	return valid((Scalar(r1)-surr1)<<10|(Scalar(r2)-surr2)+surrSelf, 2)
}

// DecodeLastUTF16 decodes the scalar that ends at the last unit of p.
//
// A trailing low surrogate preceded by a high surrogate is a Valid scalar of
// size 2. A trailing high surrogate is Incomplete with size 1, just as
// [DecodeUTF16] would report it. Any other trailing surrogate is Invalid with
// size 1. An empty p yields an Incomplete outcome of size 0.
func DecodeLastUTF16(p []uint16) Outcome {
	n := len(p)
	if n < 1 {
		return incomplete(0)
	}

	last := p[n-1]
	switch {
	case last < surr1 || surr3 <= last:
		return valid(Scalar(last), 1)
	case isHighSurrogate(last):
		return incomplete(1)
	case n >= 2 && isHighSurrogate(p[n-2]):
		return DecodeUTF16(p[n-2:])
	}
	return invalid(1)
}
