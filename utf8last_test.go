package textunit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestDecodeLastUTF8(t *testing.T) {
	testCases := []struct {
		name string
		in   []byte
		want Outcome
	}{
		{"empty", nil, Outcome{Incomplete, ReplacementScalar, 0}},
		{"ascii", []byte("ab"), Outcome{Valid, 'b', 1}},
		{"two bytes", []byte("aé"), Outcome{Valid, 0xe9, 2}},
		{"three bytes", []byte("a€"), Outcome{Valid, 0x20ac, 3}},
		{"four bytes", []byte("a😀"), Outcome{Valid, 0x1f600, 4}},
		{"only scalar", []byte("😀"), Outcome{Valid, 0x1f600, 4}},
		{"trailing lead", []byte{'a', 0xe2}, Outcome{Incomplete, ReplacementScalar, 1}},
		{"truncated three", []byte{'a', 0xe2, 0x82}, Outcome{Incomplete, ReplacementScalar, 2}},
		{"truncated four", []byte{0xf0, 0x9f, 0x98}, Outcome{Incomplete, ReplacementScalar, 3}},
		{"stray continuation", []byte{'a', 0x80}, Outcome{Invalid, ReplacementScalar, 1}},
		{"continuation after scalar", []byte{0xe2, 0x82, 0xac, 0x80}, Outcome{Invalid, ReplacementScalar, 1}},
		{"continuation after four", []byte{0xf0, 0x9f, 0x98, 0x80, 0x80}, Outcome{Invalid, ReplacementScalar, 1}},
		{"only continuations", []byte{0x80, 0x80, 0x80, 0x80, 0x80}, Outcome{Invalid, ReplacementScalar, 1}},
		{"never a lead", []byte{'a', 0xff}, Outcome{Invalid, ReplacementScalar, 1}},
		{"surrogate prefix", []byte{0xed, 0xa0}, Outcome{Invalid, ReplacementScalar, 2}},
		{"surrogate full", []byte{0xed, 0xa0, 0x80}, Outcome{Invalid, ReplacementScalar, 1}},
		{"overlong", []byte{0xc0, 0x80}, Outcome{Invalid, ReplacementScalar, 1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DecodeLastUTF8(tc.in))
		})
	}
}

// lastForwardOutcome decodes all of p from the front, replacing and
// continuing, and returns the final outcome.
func lastForwardOutcome(p []byte) (last Outcome) {
	last = incomplete(0)
	for len(p) > 0 {
		last = DecodeUTF8(p)
		p = p[last.Size:]
	}
	return
}

// The backward decoder re-slices at most four bytes from the end and falls
// back to a one-byte Invalid outcome if the forward decode of that slice falls
// short. Every buffer built from bytes in each interesting class must still
// agree with a full forward pass.
func TestDecodeLastUTF8MatchesForward(t *testing.T) {
	alphabet := []byte{
		0x00, 0x41, 0x7f, // ASCII
		0x80, 0x8f, 0x90, 0x9f, 0xa0, 0xbf, // continuation bytes at range edges
		0xc0, 0xc1, 0xc2, 0xdf, // 2-byte leads
		0xe0, 0xe1, 0xed, 0xef, // 3-byte leads
		0xf0, 0xf1, 0xf4, // 4-byte leads
		0xf5, 0xff, // never valid
	}
	maxLen := 5
	if testing.Short() {
		maxLen = 4
	}

	buf := make([]byte, 0, maxLen)
	var gen func(depth int)
	gen = func(depth int) {
		if len(buf) > 0 {
			want := lastForwardOutcome(buf)
			if got := DecodeLastUTF8(buf); got != want {
				t.Fatalf("DecodeLastUTF8(% x) = %+v, forward pass ends with %+v", buf, got, want)
			}
		}
		if depth == 0 {
			return
		}
		for _, b := range alphabet {
			buf = append(buf, b)
			gen(depth - 1)
			buf = buf[:len(buf)-1]
		}
	}
	gen(maxLen)
}

func TestDecodeLastUTF8AllPairsAndTriples(t *testing.T) {
	p := make([]byte, 3)
	for b0 := 0; b0 < 256; b0++ {
		p[0] = byte(b0)
		for b1 := 0; b1 < 256; b1++ {
			p[1] = byte(b1)
			if got, want := DecodeLastUTF8(p[:2]), lastForwardOutcome(p[:2]); got != want {
				t.Fatalf("DecodeLastUTF8(% x) = %+v, want %+v", p[:2], got, want)
			}
			if b0 < 0xc0 || b1 < 0x80 || b1 > 0xbf {
				continue
			}
			for b2 := 0; b2 < 256; b2++ {
				p[2] = byte(b2)
				if got, want := DecodeLastUTF8(p), lastForwardOutcome(p); got != want {
					t.Fatalf("DecodeLastUTF8(% x) = %+v, want %+v", p, got, want)
				}
			}
		}
	}
}

func TestDecodeSymmetry(t *testing.T) {
	inputs := []string{
		"",
		"hello",
		"English\r\nespañol\r\n日本語\r\n",
		"😀🇺🇸👨‍👩‍👧‍👦",
		"a\xffb\xe2\x82c\xf0\x9f\x98",
		"\x80\x80\x80\x80\x80",
		"\xed\xa0\x80\xc0\x80",
	}

	for _, in := range inputs {
		var forward []Outcome
		for p := []byte(in); len(p) > 0; {
			o := DecodeUTF8(p)
			forward = append(forward, o)
			p = p[o.Size:]
		}

		var backward []Outcome
		it := ReverseScalars([]byte(in))
		for it.Next() {
			backward = append(backward, it.Outcome())
		}
		for i, j := 0, len(backward)-1; i < j; i, j = i+1, j-1 {
			backward[i], backward[j] = backward[j], backward[i]
		}

		if diff := cmp.Diff(forward, backward); diff != "" {
			t.Errorf("%q: backward decode mismatch (-forward +backward):\n%s", in, diff)
		}
	}
}

func TestFullLastUTF8(t *testing.T) {
	assert.True(t, FullLastUTF8([]byte("a€")))
	assert.True(t, FullLastUTF8([]byte{'a', 0x80}))
	assert.False(t, FullLastUTF8([]byte{'a', 0xf0, 0x9f}))
	assert.False(t, FullLastUTF8(nil))
}
