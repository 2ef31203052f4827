package textunit

import (
	"errors"
	"fmt"
)

// Scalar is a Unicode scalar value: a code point in the range [0, 0xD7FF] or
// [0xE000, 0x10FFFF]. Values in the surrogate range are never scalars.
type Scalar rune

// Well-known scalar values.
const (
	// ReplacementScalar (U+FFFD) stands in for ill-formed input when a caller
	// chooses lossy decoding.
	ReplacementScalar Scalar = 0xfffd

	// MaxScalar is the largest Unicode scalar value.
	MaxScalar Scalar = 0x10ffff
)

// Code points in the surrogate range are not scalar values.
const (
	surrogateMin = 0xd800
	surrogateMax = 0xdfff
)

// ErrInvalidScalar is returned by [NewScalar] for values outside the scalar
// value range.
var ErrInvalidScalar = errors.New("textunit: value is not a Unicode scalar value")

// NewScalar returns v as a Scalar, or an error wrapping [ErrInvalidScalar] if v
// is negative, a surrogate code point, or greater than [MaxScalar].
func NewScalar(v int32) (Scalar, error) {
	s := Scalar(v)
	if !s.IsValid() {
		return ReplacementScalar, fmt.Errorf("%w: %#x", ErrInvalidScalar, v)
	}
	return s, nil
}

// IsValid reports whether s lies in the scalar value range.
func (s Scalar) IsValid() bool {
	// Negative values wrap around to huge unsigned values.
	u := uint32(s)
	return u < surrogateMin || (u > surrogateMax && u <= uint32(MaxScalar))
}

// IsASCII reports whether s is in the range [0, 0x7F].
func (s Scalar) IsASCII() bool {
	return uint32(s) <= 0x7f
}

// IsBMP reports whether s is in the Basic Multilingual Plane.
func (s Scalar) IsBMP() bool {
	return uint32(s) <= 0xffff
}

// UTF8Len returns the number of bytes needed to encode s in UTF-8.
func (s Scalar) UTF8Len() int {
	switch u := uint32(s); {
	case u < 0x80:
		return 1
	case u < 0x800:
		return 2
	case u < 0x10000:
		return 3
	default:
		return 4
	}
}

// UTF16Len returns the number of code units needed to encode s in UTF-16.
func (s Scalar) UTF16Len() int {
	if s.IsBMP() {
		return 1
	}
	return 2
}

// String returns s in the "U+XXXX" notation.
func (s Scalar) String() string {
	return fmt.Sprintf("U+%04X", uint32(s))
}

// AppendUTF8 appends the UTF-8 encoding of s to dst. Invalid scalars are
// encoded as [ReplacementScalar].
func AppendUTF8(dst []byte, s Scalar) []byte {
	if !s.IsValid() {
		s = ReplacementScalar
	}
	switch u := uint32(s); {
	case u < 0x80:
		return append(dst, byte(u))
	case u < 0x800:
		return append(dst, t2|byte(u>>6), tx|byte(u)&maskx)
	case u < 0x10000:
		return append(dst, t3|byte(u>>12), tx|byte(u>>6)&maskx, tx|byte(u)&maskx)
	default:
		return append(dst, t4|byte(u>>18), tx|byte(u>>12)&maskx, tx|byte(u>>6)&maskx, tx|byte(u)&maskx)
	}
}

// AppendUTF16 appends the UTF-16 encoding of s to dst. Invalid scalars are
// encoded as [ReplacementScalar].
func AppendUTF16(dst []uint16, s Scalar) []uint16 {
	if !s.IsValid() {
		s = ReplacementScalar
	}
	if s.IsBMP() {
		return append(dst, uint16(s))
	}
	u := uint32(s) - surrSelf
	return append(dst, uint16(surr1+(u>>10)&0x3ff), uint16(surr2+u&0x3ff))
}
