package textunit

import (
	"encoding/binary"
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountUTF8(t *testing.T) {
	s := CountUTF8([]byte("a€\xff\x80b\xe2\x82"))
	assert.Equal(t, Stats{Scalars: 3, Invalid: 2, Incomplete: 1, Units: 9}, s)
	assert.False(t, s.Ok())

	s = CountUTF8([]byte("日本語"))
	assert.Equal(t, Stats{Scalars: 3, Units: 9}, s)
	assert.True(t, s.Ok())

	assert.True(t, CountUTF8(nil).Ok())
}

func TestCountUTF16(t *testing.T) {
	s := CountUTF16([]uint16{'a', 0xd83d, 0xde00, 0xdc00, 0xd83d})
	assert.Equal(t, Stats{Scalars: 2, Invalid: 1, Incomplete: 1, Units: 5}, s)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(nil))
	assert.NoError(t, Validate([]byte("English español 日本語 😀")))

	testCases := []struct {
		in     []byte
		offset int
		size   int
		target error
	}{
		{[]byte("abc\xff"), 3, 1, ErrInvalidSequence},
		{[]byte("€\xed\xa0\x80"), 3, 2, ErrInvalidSequence},
		{[]byte("ok\xf0\x9f\x98"), 2, 3, ErrIncompleteSequence},
		{[]byte("\xc0\x80"), 0, 1, ErrInvalidSequence},
	}

	for _, tc := range testCases {
		err := Validate(tc.in)
		require.Error(t, err, "%+q", tc.in)
		assert.ErrorIs(t, err, tc.target)

		var de *DecodeError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, tc.offset, de.Offset, "%+q", tc.in)
		assert.Equal(t, tc.size, de.Size, "%+q", tc.in)
	}
}

func TestValidateAgreesWithStandardLibrary(t *testing.T) {
	p := make([]byte, 3)
	for b0 := 0; b0 < 256; b0++ {
		p[0] = byte(b0)
		for b1 := 0; b1 < 256; b1++ {
			p[1] = byte(b1)
			for _, b2 := range []byte{0x41, 0x80, 0xa0, 0xbf, 0xc2} {
				p[2] = b2
				assert.Equal(t, utf8.Valid(p), Validate(p) == nil, "% x", p)
			}
		}
	}
}

func TestValidUTF16(t *testing.T) {
	assert.True(t, ValidUTF16(nil))
	assert.True(t, ValidUTF16(encodeUTF16(t, "a😀b")))
	assert.False(t, ValidUTF16([]uint16{'a', 0xdc00}))
	assert.False(t, ValidUTF16([]uint16{'a', 0xd800}))
}

func TestReplaceInvalidUTF8(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"a\xffb", "a�b"},
		{"\xff\xfe", "��"},
		// Table 3-8 of the Unicode Standard.
		{"a\xf1\x80\x80\xe1\x80\xc2b\x80c\x80\xbfd", "a���b�c��d"},
		{"\xed\xa0\x80", "��"},
		{"\xc0\xaf", "��"},
		{"end\xe2\x82", "end�"},
	}

	for _, tc := range testCases {
		got := ReplaceInvalidUTF8(nil, []byte(tc.in))
		assert.Equal(t, tc.want, string(got), "%+q", tc.in)
		assert.True(t, utf8.Valid(got))
	}

	// dst is appended to.
	assert.Equal(t, "x:a�", string(ReplaceInvalidUTF8([]byte("x:"), []byte("a\x80"))))
}

func TestTranscode(t *testing.T) {
	in := "English español 日本語 😀🇺🇸 𝄞"

	units := Transcode8To16(nil, []byte(in))
	assert.Equal(t, encodeUTF16(t, in), units)
	assert.Equal(t, in, string(Transcode16To8(nil, units)))

	// The x/text decoder substitutes lone surrogates the same way.
	ill := []uint16{'a', 0xdc00, 'b', 0xd800, 'c'}
	raw := make([]byte, 2*len(ill))
	for i, u := range ill {
		binary.BigEndian.PutUint16(raw[2*i:], u)
	}
	want, err := defaultUTF16.NewDecoder().Bytes(raw)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(Transcode16To8(nil, ill)))

	assert.Equal(t, []uint16{'a', 0xfffd, 0xfffd, 'b'}, Transcode8To16(nil, []byte("a\xed\xa0\x80b")))
}
