package textunit

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rivo/uniseg"
	"github.com/stretchr/testify/assert"
)

// splitClusters splits str using StepString.
func splitClusters(str string) (clusters []string) {
	for len(str) > 0 {
		var c string
		c, str = StepString(str)
		clusters = append(clusters, c)
	}
	return
}

var graphemeTestCases = []struct {
	name     string
	original string
	expected []string
}{
	{"empty", "", nil},
	{"ascii", "abc", []string{"a", "b", "c"}},
	{"crlf", "a\r\nb", []string{"a", "\r\n", "b"}},
	{"lf cr", "\n\r", []string{"\n", "\r"}},
	{"cr cr lf", "\r\r\n", []string{"\r", "\r\n"}},
	{"control then extend", "\x01\u0300", []string{"\x01", "\u0300"}},
	{"lf then extend", "\n\u0300", []string{"\n", "\u0300"}},
	{"combining", "e\u0301x", []string{"e\u0301", "x"}},
	{"many marks", "a\u0300\u0301\u0302b", []string{"a\u0300\u0301\u0302", "b"}},
	{"extend at start", "\u0300a", []string{"\u0300", "a"}},
	{"spacing mark", "कः", []string{"कः"}},
	{"prepend", "؀a", []string{"؀a"}},
	{"prepend prepend", "؀؁a", []string{"؀؁a"}},
	{"prepend control", "؀\n", []string{"؀", "\n"}},
	{"prepend at end", "a؀", []string{"a", "؀"}},
	{"hangul jamo", "각ᄀ", []string{"각", "ᄀ"}},
	{"hangul L LVT", "ᄀ각ᆨ", []string{"ᄀ각ᆨ"}},
	{"hangul LV V T", "가ᅡᆨ", []string{"가ᅡᆨ"}},
	{"hangul LVT V", "각ᅡ", []string{"각", "ᅡ"}},
	{"hangul T L", "ᆨᄀ", []string{"ᆨ", "ᄀ"}},
	{"hangul syllables", "한국어", []string{"한", "국", "어"}},
	{"flag", "🇺🇸", []string{"🇺🇸"}},
	{"two flags", "🇩🇪🇫🇷", []string{"🇩🇪", "🇫🇷"}},
	{"unpaired indicator", "🇺🇸🇩", []string{"🇺🇸", "🇩"}},
	{"indicator then extend", "🇺\u0300🇸", []string{"🇺\u0300", "🇸"}},
	{"zwj sequence", "👨\u200d👩\u200d👧\u200d👦", []string{"👨\u200d👩\u200d👧\u200d👦"}},
	{"no zwj", "👨👩", []string{"👨", "👩"}},
	{"emoji modifier", "👍🏽!", []string{"👍🏽", "!"}},
	{"zwj with extend", "👁\ufe0f\u200d🗨\ufe0f", []string{"👁\ufe0f\u200d🗨\ufe0f"}},
	{"rainbow flag", "🏳\ufe0f\u200d🌈x", []string{"🏳\ufe0f\u200d🌈", "x"}},
	{"zwj after letter", "a\u200d👩", []string{"a\u200d", "👩"}},
	{"double zwj", "👨\u200d\u200d👩", []string{"👨\u200d\u200d", "👩"}},
	{"trailing zwj", "👨\u200d", []string{"👨\u200d"}},
	{"tag sequence", "🏴\U000e0067\U000e0062\U000e0065\U000e006e\U000e0067\U000e007f", []string{"🏴\U000e0067\U000e0062\U000e0065\U000e006e\U000e0067\U000e007f"}},
}

func TestStepString(t *testing.T) {
	for _, tc := range graphemeTestCases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.expected, splitClusters(tc.original)); diff != "" {
				t.Errorf("clusters mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStepBytes(t *testing.T) {
	for _, tc := range graphemeTestCases {
		t.Run(tc.name, func(t *testing.T) {
			var got []string
			for b := []byte(tc.original); len(b) > 0; {
				var c []byte
				c, b = Step(b)
				got = append(got, string(c))
			}
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestStepUTF16(t *testing.T) {
	for _, tc := range graphemeTestCases {
		t.Run(tc.name, func(t *testing.T) {
			var got []string
			for p := encodeUTF16(t, tc.original); len(p) > 0; {
				var c []uint16
				c, p = StepUTF16(p)
				got = append(got, string(Transcode16To8(nil, c)))
			}
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestFirstGraphemeCluster(t *testing.T) {
	assert.Equal(t, 0, FirstGraphemeClusterUTF8(nil))
	assert.Equal(t, 0, FirstGraphemeClusterUTF16(nil))
	assert.Equal(t, 0, FirstGraphemeClusterInString(""))

	// A US flag is two regional indicators, 8 bytes or 4 code units.
	assert.Equal(t, 8, FirstGraphemeClusterUTF8([]byte("🇺🇸")))
	assert.Equal(t, 4, FirstGraphemeClusterUTF16([]uint16{0xd83c, 0xddfa, 0xd83c, 0xddf8}))

	// Every ASCII character other than CR is a cluster of its own.
	for r := byte(0); r < 0x80; r++ {
		if r == '\r' {
			continue
		}
		assert.Equal(t, 1, FirstGraphemeClusterUTF8([]byte{r, 'a'}), "%#x", r)
	}
	assert.Equal(t, 2, FirstGraphemeClusterUTF8([]byte("\r\n")))
	assert.Equal(t, 1, FirstGraphemeClusterUTF8([]byte("\r\r")))
}

func TestFirstGraphemeClusterIllFormed(t *testing.T) {
	testCases := []struct {
		name string
		in   []byte
		want int
	}{
		// Each ill-formed subpart behaves like a lone U+FFFD.
		{"invalid byte", []byte{0xff, 'a'}, 1},
		{"invalid then mark", []byte{0xff, 0xcc, 0x80}, 3},
		{"surrogate subpart", []byte{0xed, 0xa0, 0x80}, 2},
		{"truncated", []byte{0xe2, 0x82}, 2},
		{"truncated emoji", []byte{0xf0, 0x9f, 0x98}, 3},
		{"letter then invalid", []byte{'a', 0x80}, 1},
		{"emoji then truncated", []byte{0xf0, 0x9f, 0x98, 0x80, 0xf0, 0x9f}, 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FirstGraphemeClusterUTF8(tc.in))
		})
	}

	assert.Equal(t, 1, FirstGraphemeClusterUTF16([]uint16{0xdc00, 0xdc00}))
	assert.Equal(t, 2, FirstGraphemeClusterUTF16([]uint16{0xdc00, 0x0300}))
	assert.Equal(t, 1, FirstGraphemeClusterUTF16([]uint16{0xd83d}))
}

// Clusters never end inside the units the decoder reports for one scalar.
func TestClustersAlignWithDecoder(t *testing.T) {
	in := []byte("a\xffb\xe2\x82\xcc\x80c\xf0\x9f\x98\x80\xed\xa0\x80\u0301🇺\xf0\x9f\x87")

	var boundaries []int
	for off := 0; off < len(in); {
		boundaries = append(boundaries, off)
		off += DecodeUTF8(in[off:]).Size
	}
	isBoundary := func(off int) bool {
		for _, b := range boundaries {
			if b == off {
				return true
			}
		}
		return off == len(in)
	}

	for off := 0; off < len(in); {
		n := FirstGraphemeClusterUTF8(in[off:])
		assert.Positive(t, n)
		off += n
		assert.True(t, isBoundary(off), "cluster ends at %d", off)
	}
}

// segmentationAlphabet holds one scalar of every grapheme cluster break
// category, avoiding Indic conjunct sequences.
var segmentationAlphabet = []string{
	"a", "\r", "\n", "\x01", "\u0300", "\u200d", "🇺", "؀", "ः",
	"ᄀ", "ᅡ", "ᆨ", "가", "각", "😀", "\u00ad",
}

func TestGraphemesAgainstUniseg(t *testing.T) {
	maxLen := 4
	if testing.Short() {
		maxLen = 3
	}

	var parts []string
	var gen func(depth int)
	gen = func(depth int) {
		if len(parts) > 0 {
			str := strings.Join(parts, "")
			var want []string
			g := uniseg.NewGraphemes(str)
			for g.Next() {
				want = append(want, g.Str())
			}
			if diff := cmp.Diff(want, splitClusters(str)); diff != "" {
				t.Fatalf("%+q: clusters differ from uniseg (-uniseg +got):\n%s", str, diff)
			}
		}
		if depth == 0 {
			return
		}
		for _, s := range segmentationAlphabet {
			parts = append(parts, s)
			gen(depth - 1)
			parts = parts[:len(parts)-1]
		}
	}
	gen(maxLen)
}

func TestGraphemeClusterCountAgainstUniseg(t *testing.T) {
	for _, str := range []string{
		"",
		"Hello, world!",
		"ᄀ각ᆨ 한국어 日本語",
		"🇦🇧🇨🇩🇪 👩🏾\u200d💻 👨\u200d👩\u200d👧\u200d👦 🏳\ufe0f\u200d🌈",
		"Chào thế giới e\u0301\u0302",
		"line one\r\nline two\nline three\r",
	} {
		assert.Equal(t, uniseg.GraphemeClusterCount(str), GraphemeClusterCountString(str), "%q", str)
		assert.Equal(t, uniseg.GraphemeClusterCount(str), GraphemeClusterCount([]byte(str)), "%q", str)
	}
}

func BenchmarkStepString(b *testing.B) {
	in := strings.Repeat("Hello 👨\u200d👩\u200d👧\u200d👦 🇺🇸 한국어 e\u0301 ", 16)
	b.SetBytes(int64(len(in)))
	for i := 0; i < b.N; i++ {
		for str := in; len(str) > 0; {
			_, str = StepString(str)
		}
	}
}
