package textunit

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestDecodeUTF8RoundTrip(t *testing.T) {
	buf := make([]byte, 0, utfMax)
	for r := rune(0); r <= utf8.MaxRune; r++ {
		s := Scalar(r)
		if !s.IsValid() {
			continue
		}
		buf = AppendUTF8(buf[:0], s)

		var want int
		switch {
		case r < 0x80:
			want = 1
		case r < 0x800:
			want = 2
		case r < 0x10000:
			want = 3
		default:
			want = 4
		}

		got := DecodeUTF8(buf)
		if got != (Outcome{Status: Valid, Scalar: s, Size: want}) {
			t.Fatalf("DecodeUTF8(% x) = %+v, want %v size %d", buf, got, s, want)
		}
	}
}

func TestDecodeUTF8(t *testing.T) {
	testCases := []struct {
		name string
		in   []byte
		want Outcome
	}{
		{"empty", nil, Outcome{Incomplete, ReplacementScalar, 0}},
		{"ascii", []byte("A"), Outcome{Valid, 'A', 1}},
		{"nul", []byte{0}, Outcome{Valid, 0, 1}},
		{"ascii followed by garbage", []byte{'a', 0xff}, Outcome{Valid, 'a', 1}},
		{"two bytes", []byte("é"), Outcome{Valid, 0xe9, 2}},
		{"three bytes", []byte("€"), Outcome{Valid, 0x20ac, 3}},
		{"four bytes", []byte("😀"), Outcome{Valid, 0x1f600, 4}},
		{"max scalar", []byte{0xf4, 0x8f, 0xbf, 0xbf}, Outcome{Valid, 0x10ffff, 4}},
		{"last before surrogates", []byte{0xed, 0x9f, 0xbf}, Outcome{Valid, 0xd7ff, 3}},
		{"first after surrogates", []byte{0xee, 0x80, 0x80}, Outcome{Valid, 0xe000, 3}},
		{"smallest 3-byte", []byte{0xe0, 0xa0, 0x80}, Outcome{Valid, 0x800, 3}},
		{"smallest 4-byte", []byte{0xf0, 0x90, 0x80, 0x80}, Outcome{Valid, 0x10000, 4}},

		// Lead bytes that are never valid.
		{"lone continuation", []byte{0x80}, Outcome{Invalid, ReplacementScalar, 1}},
		{"continuation bf", []byte{0xbf, 0x80}, Outcome{Invalid, ReplacementScalar, 1}},
		{"overlong NUL", []byte{0xc0, 0x80}, Outcome{Invalid, ReplacementScalar, 1}},
		{"overlong c1", []byte{0xc1, 0xbf}, Outcome{Invalid, ReplacementScalar, 1}},
		{"f5", []byte{0xf5, 0x80, 0x80, 0x80}, Outcome{Invalid, ReplacementScalar, 1}},
		{"ff", []byte{0xff}, Outcome{Invalid, ReplacementScalar, 1}},

		// Valid lead byte followed by a non-continuation byte.
		{"c2 ascii", []byte{0xc2, 0x41}, Outcome{Invalid, ReplacementScalar, 1}},
		{"e2 lead", []byte{0xe2, 0xe2, 0x82, 0xac}, Outcome{Invalid, ReplacementScalar, 1}},
		{"f0 ascii", []byte{0xf0, 0x41}, Outcome{Invalid, ReplacementScalar, 1}},

		// Overlong, surrogate or out of range after two bytes.
		{"surrogate", []byte{0xed, 0xa0, 0x80}, Outcome{Invalid, ReplacementScalar, 2}},
		{"surrogate truncated", []byte{0xed, 0xbf}, Outcome{Invalid, ReplacementScalar, 2}},
		{"overlong 3-byte", []byte{0xe0, 0x80, 0x80}, Outcome{Invalid, ReplacementScalar, 2}},
		{"overlong 3-byte max", []byte{0xe0, 0x9f, 0xbf}, Outcome{Invalid, ReplacementScalar, 2}},
		{"overlong 4-byte", []byte{0xf0, 0x8f, 0xbf, 0xbf}, Outcome{Invalid, ReplacementScalar, 2}},
		{"above max", []byte{0xf4, 0x90, 0x80, 0x80}, Outcome{Invalid, ReplacementScalar, 2}},

		// Missing later continuation bytes.
		{"e2 82 ascii", []byte{0xe2, 0x82, 0x41}, Outcome{Invalid, ReplacementScalar, 2}},
		{"f0 90 ascii", []byte{0xf0, 0x90, 0x41}, Outcome{Invalid, ReplacementScalar, 2}},
		{"f0 90 80 ascii", []byte{0xf0, 0x90, 0x80, 0x41}, Outcome{Invalid, ReplacementScalar, 3}},
		{"f0 90 80 lead", []byte{0xf0, 0x90, 0x80, 0xf0}, Outcome{Invalid, ReplacementScalar, 3}},

		// Truncated.
		{"e2", []byte{0xe2}, Outcome{Incomplete, ReplacementScalar, 1}},
		{"e2 82", []byte{0xe2, 0x82}, Outcome{Incomplete, ReplacementScalar, 2}},
		{"c3", []byte{0xc3}, Outcome{Incomplete, ReplacementScalar, 1}},
		{"f0", []byte{0xf0}, Outcome{Incomplete, ReplacementScalar, 1}},
		{"f0 9f", []byte{0xf0, 0x9f}, Outcome{Incomplete, ReplacementScalar, 2}},
		{"f0 9f 98", []byte{0xf0, 0x9f, 0x98}, Outcome{Incomplete, ReplacementScalar, 3}},
		{"ed", []byte{0xed}, Outcome{Incomplete, ReplacementScalar, 1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DecodeUTF8(tc.in))
		})
	}
}

func TestDecodeUTF8Truncation(t *testing.T) {
	assert.Equal(t, Outcome{Incomplete, ReplacementScalar, 1}, DecodeUTF8([]byte{0xe2}))
	assert.Equal(t, Outcome{Incomplete, ReplacementScalar, 2}, DecodeUTF8([]byte{0xe2, 0x82}))
	assert.Equal(t, Outcome{Valid, 0x20ac, 3}, DecodeUTF8([]byte{0xe2, 0x82, 0xac}))

	assert.False(t, FullUTF8([]byte{0xe2, 0x82}))
	assert.True(t, FullUTF8([]byte{0xe2, 0x82, 0xac}))
	assert.True(t, FullUTF8([]byte{0x80}))
}

// referenceDecodeUTF8 is an independent formulation of the decoder in terms of
// the valid byte ranges listed in table 3-7 of the Unicode Standard.
func referenceDecodeUTF8(p []byte) Outcome {
	if len(p) == 0 {
		return Outcome{Incomplete, ReplacementScalar, 0}
	}
	b0 := p[0]
	var size int
	lo, hi := byte(0x80), byte(0xbf)
	switch {
	case b0 < 0x80:
		return Outcome{Valid, Scalar(b0), 1}
	case b0 >= 0xc2 && b0 <= 0xdf:
		size = 2
	case b0 == 0xe0:
		size, lo = 3, 0xa0
	case b0 == 0xed:
		size, hi = 3, 0x9f
	case b0 >= 0xe1 && b0 <= 0xef:
		size = 3
	case b0 == 0xf0:
		size, lo = 4, 0x90
	case b0 == 0xf4:
		size, hi = 4, 0x8f
	case b0 >= 0xf1 && b0 <= 0xf3:
		size = 4
	default:
		return Outcome{Invalid, ReplacementScalar, 1}
	}
	for i := 1; i < size; i++ {
		if i >= len(p) {
			return Outcome{Incomplete, ReplacementScalar, i}
		}
		b := p[i]
		if b < 0x80 || b > 0xbf {
			return Outcome{Invalid, ReplacementScalar, i}
		}
		if i == 1 && (b < lo || b > hi) {
			return Outcome{Invalid, ReplacementScalar, 2}
		}
	}
	r, n := utf8.DecodeRune(p[:size])
	if n != size {
		panic("reference decoder disagrees with unicode/utf8")
	}
	return Outcome{Valid, Scalar(r), size}
}

func TestDecodeUTF8Exhaustive(t *testing.T) {
	check := func(p []byte) {
		got := DecodeUTF8(p)
		want := referenceDecodeUTF8(p)
		if got != want {
			t.Fatalf("DecodeUTF8(% x) = %+v, want %+v", p, got, want)
		}
		if got.Size < 1 || got.Size > len(p) {
			t.Fatalf("DecodeUTF8(% x) size %d out of range", p, got.Size)
		}
		if got.Status == Valid {
			r, n := utf8.DecodeRune(p)
			if Scalar(r) != got.Scalar || n != got.Size {
				t.Fatalf("DecodeUTF8(% x) = %+v, unicode/utf8 says %U size %d", p, got, r, n)
			}
		}
	}

	p := make([]byte, 4)
	for b0 := 0; b0 < 256; b0++ {
		p[0] = byte(b0)
		check(p[:1])
		for b1 := 0; b1 < 256; b1++ {
			p[1] = byte(b1)
			check(p[:2])
			if b0 < 0xc0 {
				continue
			}
			for b2 := 0; b2 < 256; b2++ {
				p[2] = byte(b2)
				check(p[:3])
				if b0 < 0xf0 || b0 > 0xf4 {
					continue
				}
				for _, b3 := range []byte{0x00, 0x7f, 0x80, 0x9f, 0xa0, 0xbf, 0xc0, 0xff} {
					p[3] = b3
					check(p[:4])
				}
			}
		}
	}
}

func TestDecodeUTF8ReplaceAndContinue(t *testing.T) {
	// Table 3-8 of the Unicode Standard.
	in := []byte{0x61, 0xf1, 0x80, 0x80, 0xe1, 0x80, 0xc2, 0x62, 0x80, 0x63, 0x80, 0xbf, 0x64}
	var got []Outcome
	for len(in) > 0 {
		o := DecodeUTF8(in)
		got = append(got, o)
		in = in[o.Size:]
	}
	want := []Outcome{
		{Valid, 'a', 1},
		{Invalid, ReplacementScalar, 3},
		{Invalid, ReplacementScalar, 2},
		{Invalid, ReplacementScalar, 1},
		{Valid, 'b', 1},
		{Invalid, ReplacementScalar, 1},
		{Valid, 'c', 1},
		{Invalid, ReplacementScalar, 1},
		{Invalid, ReplacementScalar, 1},
		{Valid, 'd', 1},
	}
	assert.Equal(t, want, got)
}

func TestOutcomeErr(t *testing.T) {
	assert.NoError(t, DecodeUTF8([]byte("a")).Err())

	err := DecodeUTF8([]byte{0xe2}).ErrAt(7)
	assert.ErrorIs(t, err, ErrIncompleteSequence)
	var de *DecodeError
	if assert.True(t, errors.As(err, &de)) {
		assert.Equal(t, 7, de.Offset)
		assert.Equal(t, 1, de.Size)
	}

	err = DecodeUTF8([]byte{0xff}).Err()
	assert.ErrorIs(t, err, ErrInvalidSequence)
	assert.EqualError(t, err, "textunit: invalid encoded sequence: 1 unit(s) at offset 0")
}

func BenchmarkDecodeUTF8ASCII(b *testing.B) {
	in := []byte("The quick brown fox jumps over the lazy dog.")
	b.SetBytes(int64(len(in)))
	for i := 0; i < b.N; i++ {
		for p := in; len(p) > 0; {
			p = p[DecodeUTF8(p).Size:]
		}
	}
}

func BenchmarkDecodeUTF8Mixed(b *testing.B) {
	in := []byte("English español 日本語 😀🇺🇸")
	b.SetBytes(int64(len(in)))
	for i := 0; i < b.N; i++ {
		for p := in; len(p) > 0; {
			p = p[DecodeUTF8(p).Size:]
		}
	}
}
