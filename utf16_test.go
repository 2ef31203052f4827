package textunit

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
)

var defaultUTF16 = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// encodeUTF16 converts UTF-8 text to UTF-16 code units using x/text.
func encodeUTF16(t testing.TB, s string) []uint16 {
	t.Helper()
	b, err := defaultUTF16.NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	require.Zero(t, len(b)%2)
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = binary.BigEndian.Uint16(b[2*i:])
	}
	return units
}

func TestDecodeUTF16(t *testing.T) {
	testCases := []struct {
		name string
		in   []uint16
		want Outcome
	}{
		{"empty", nil, Outcome{Incomplete, ReplacementScalar, 0}},
		{"ascii", []uint16{'A'}, Outcome{Valid, 'A', 1}},
		{"bmp", []uint16{0x20ac}, Outcome{Valid, 0x20ac, 1}},
		{"below surrogates", []uint16{0xd7ff}, Outcome{Valid, 0xd7ff, 1}},
		{"above surrogates", []uint16{0xe000}, Outcome{Valid, 0xe000, 1}},
		{"ffff", []uint16{0xffff}, Outcome{Valid, 0xffff, 1}},
		{"pair", []uint16{0xd83d, 0xde00}, Outcome{Valid, 0x1f600, 2}},
		{"first supplementary", []uint16{0xd800, 0xdc00}, Outcome{Valid, 0x10000, 2}},
		{"max scalar", []uint16{0xdbff, 0xdfff}, Outcome{Valid, 0x10ffff, 2}},
		{"pair followed by more", []uint16{0xd83c, 0xddfa, 'x'}, Outcome{Valid, 0x1f1fa, 2}},
		{"lone high at end", []uint16{0xd83d}, Outcome{Incomplete, ReplacementScalar, 1}},
		{"high then bmp", []uint16{0xd83d, 'x'}, Outcome{Invalid, ReplacementScalar, 1}},
		{"high then high", []uint16{0xd83d, 0xd83d, 0xde00}, Outcome{Invalid, ReplacementScalar, 1}},
		{"lone low", []uint16{0xde00}, Outcome{Invalid, ReplacementScalar, 1}},
		{"low then high", []uint16{0xdc00, 0xd800}, Outcome{Invalid, ReplacementScalar, 1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DecodeUTF16(tc.in))
		})
	}
}

func TestDecodeUTF16RoundTrip(t *testing.T) {
	buf := make([]uint16, 0, 2)
	for r := Scalar(0); r <= MaxScalar; r++ {
		if !r.IsValid() {
			continue
		}
		buf = AppendUTF16(buf[:0], r)
		got := DecodeUTF16(buf)
		if got != (Outcome{Valid, r, r.UTF16Len()}) {
			t.Fatalf("DecodeUTF16(%x) = %+v, want %v", buf, got, r)
		}
	}
}

func TestDecodeUTF16AgainstEncoder(t *testing.T) {
	in := "English español 日本語 😀🇺🇸 𝄞"
	units := encodeUTF16(t, in)

	var got []rune
	for len(units) > 0 {
		o := DecodeUTF16(units)
		require.Equal(t, Valid, o.Status)
		got = append(got, rune(o.Scalar))
		units = units[o.Size:]
	}
	assert.Equal(t, []rune(in), got)
}

func TestDecodeLastUTF16(t *testing.T) {
	testCases := []struct {
		name string
		in   []uint16
		want Outcome
	}{
		{"empty", nil, Outcome{Incomplete, ReplacementScalar, 0}},
		{"bmp", []uint16{'a', 0x20ac}, Outcome{Valid, 0x20ac, 1}},
		{"pair", []uint16{'a', 0xd83d, 0xde00}, Outcome{Valid, 0x1f600, 2}},
		{"trailing high", []uint16{'a', 0xd83d}, Outcome{Incomplete, ReplacementScalar, 1}},
		{"lone low", []uint16{0xde00}, Outcome{Invalid, ReplacementScalar, 1}},
		{"low after bmp", []uint16{'a', 0xde00}, Outcome{Invalid, ReplacementScalar, 1}},
		{"low after low", []uint16{0xdc00, 0xde00}, Outcome{Invalid, ReplacementScalar, 1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DecodeLastUTF16(tc.in))
		})
	}
}

func TestDecodeLastUTF16MatchesForward(t *testing.T) {
	alphabet := []uint16{'a', 0xd7ff, 0xd800, 0xdbff, 0xdc00, 0xdfff, 0xe000}
	buf := make([]uint16, 0, 4)
	var gen func(depth int)
	gen = func(depth int) {
		if len(buf) > 0 {
			var last Outcome
			for p := buf; len(p) > 0; p = p[last.Size:] {
				last = DecodeUTF16(p)
			}
			if got := DecodeLastUTF16(buf); got != last {
				t.Fatalf("DecodeLastUTF16(%x) = %+v, forward pass ends with %+v", buf, got, last)
			}
		}
		if depth == 0 {
			return
		}
		for _, u := range alphabet {
			buf = append(buf, u)
			gen(depth - 1)
			buf = buf[:len(buf)-1]
		}
	}
	gen(4)
}
