package textunit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepEmpty(t *testing.T) {
	c, rest := Step(nil)
	assert.Nil(t, c)
	assert.Nil(t, rest)

	s, r := StepString("")
	assert.Empty(t, s)
	assert.Empty(t, r)

	u, ur := StepUTF16(nil)
	assert.Nil(t, u)
	assert.Nil(t, ur)

	rest, c = StepLast(nil)
	assert.Nil(t, rest)
	assert.Nil(t, c)
}

func TestStepLast(t *testing.T) {
	for _, tc := range graphemeTestCases {
		t.Run(tc.name, func(t *testing.T) {
			var got []string
			for b := []byte(tc.original); len(b) > 0; {
				var c []byte
				b, c = StepLast(b)
				got = append([]string{string(c)}, got...)
			}
			assert.Equal(t, tc.expected, got)
		})
	}
}

// The last cluster found by StepLast must match the last cluster of a forward
// pass over the same buffer, including ill-formed and RI-heavy input.
func TestStepLastMatchesForward(t *testing.T) {
	alphabet := [][]byte{
		[]byte("a"), []byte("\r"), []byte("\n"), []byte("\x01"),
		[]byte("\u0300"), []byte("\u200d"), []byte("🇺"), []byte("😀"),
		[]byte("؀"), []byte("가"), []byte("ᆨ"),
		{0xff}, {0x80}, {0xe2, 0x82},
	}

	var buf []byte
	var gen func(depth int)
	gen = func(depth int) {
		if len(buf) > 0 {
			var last []byte
			for b := buf; len(b) > 0; {
				last, b = Step(b)
			}
			rest, c := StepLast(buf)
			if string(c) != string(last) || len(rest)+len(c) != len(buf) {
				t.Fatalf("StepLast(%+q) = %+q, %+q; forward pass ends with %+q", buf, rest, c, last)
			}
		}
		if depth == 0 {
			return
		}
		n := len(buf)
		for _, s := range alphabet {
			buf = append(buf[:n], s...)
			gen(depth - 1)
		}
		buf = buf[:n]
	}
	gen(4)
}

func TestStepLastRegionalIndicators(t *testing.T) {
	// Pairing is decided from the start of the run, so an odd run ends with a
	// lone indicator and an even run ends with a flag.
	rest, c := StepLast([]byte("🇺🇸🇩"))
	assert.Equal(t, "🇩", string(c))
	assert.Equal(t, "🇺🇸", string(rest))

	rest, c = StepLast([]byte("x🇺🇸🇩🇪"))
	assert.Equal(t, "🇩🇪", string(c))
	assert.Equal(t, "x🇺🇸", string(rest))
}

func TestGraphemeClusterCount(t *testing.T) {
	testCases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"a", 1},
		{"abc", 3},
		{"\r\n", 1},
		{"🇺🇸🇩", 2},
		{"👨\u200d👩\u200d👧\u200d👦", 1},
		{"한국어", 3},
		{"\xff\xfe", 2},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, GraphemeClusterCountString(tc.in), "%+q", tc.in)
		assert.Equal(t, tc.want, GraphemeClusterCount([]byte(tc.in)), "%+q", tc.in)
	}
}
