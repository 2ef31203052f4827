package textunit

import (
	"testing"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScalar(t *testing.T) {
	testCases := []struct {
		in    int32
		valid bool
	}{
		{0, true},
		{0x7f, true},
		{0xd7ff, true},
		{0xd800, false},
		{0xdbff, false},
		{0xdc00, false},
		{0xdfff, false},
		{0xe000, true},
		{0xfffd, true},
		{0x10ffff, true},
		{0x110000, false},
		{-1, false},
	}

	for _, tc := range testCases {
		s, err := NewScalar(tc.in)
		if tc.valid {
			require.NoError(t, err, "%#x", tc.in)
			assert.Equal(t, Scalar(tc.in), s)
		} else {
			assert.ErrorIs(t, err, ErrInvalidScalar, "%#x", tc.in)
			assert.Equal(t, ReplacementScalar, s)
		}
	}
}

func TestScalarLengths(t *testing.T) {
	testCases := []struct {
		s     Scalar
		utf8  int
		utf16 int
	}{
		{0, 1, 1},
		{0x7f, 1, 1},
		{0x80, 2, 1},
		{0x7ff, 2, 1},
		{0x800, 3, 1},
		{0xffff, 3, 1},
		{0x10000, 4, 2},
		{0x10ffff, 4, 2},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.utf8, tc.s.UTF8Len(), "%v", tc.s)
		assert.Equal(t, tc.utf16, tc.s.UTF16Len(), "%v", tc.s)
	}
}

func TestScalarString(t *testing.T) {
	assert.Equal(t, "U+0041", Scalar('A').String())
	assert.Equal(t, "U+20AC", Scalar(0x20ac).String())
	assert.Equal(t, "U+1F1FA", Scalar(0x1f1fa).String())
}

func TestAppendMatchesStandardLibrary(t *testing.T) {
	for r := rune(0); r <= utf8.MaxRune; r++ {
		s := Scalar(r)
		if !s.IsValid() {
			continue
		}
		want8 := utf8.AppendRune(nil, r)
		got8 := AppendUTF8(nil, s)
		if string(got8) != string(want8) {
			t.Fatalf("AppendUTF8(%v) = % x, want % x", s, got8, want8)
		}
		want16 := utf16.Encode([]rune{r})
		got16 := AppendUTF16(nil, s)
		if len(got16) != len(want16) || got16[0] != want16[0] || (len(got16) == 2 && got16[1] != want16[1]) {
			t.Fatalf("AppendUTF16(%v) = %x, want %x", s, got16, want16)
		}
	}
}

func TestAppendInvalidScalar(t *testing.T) {
	assert.Equal(t, []byte("�"), AppendUTF8(nil, Scalar(0xd800)))
	assert.Equal(t, []uint16{0xfffd}, AppendUTF16(nil, Scalar(0x110000)))
}

func TestScalarPlanes(t *testing.T) {
	assert.True(t, Scalar('~').IsASCII())
	assert.False(t, Scalar(0x80).IsASCII())
	assert.True(t, Scalar(0xffff).IsBMP())
	assert.False(t, Scalar(0x10000).IsBMP())
}
