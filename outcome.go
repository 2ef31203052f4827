package textunit

import (
	"errors"
	"fmt"
)

// Status classifies the result of a single decode step.
type Status uint8

// The three possible decode statuses.
const (
	// Valid means a well-formed scalar was decoded.
	Valid Status = iota

	// Invalid means the examined units can never form a scalar, no matter
	// what follows them. They must be skipped.
	Invalid

	// Incomplete means the buffer ended before a full sequence could be read.
	// A streaming caller should retry once more data has arrived.
	Incomplete
)

func (s Status) String() string {
	switch s {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	case Incomplete:
		return "incomplete"
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// Outcome is the result of decoding one scalar from the front (or the back)
// of a buffer.
//
// Size is measured in source units: bytes for UTF-8, 16-bit code units for
// UTF-16. For Valid outcomes it is the canonical encoded length of Scalar. For
// Invalid outcomes it is the length of the maximal subpart of the ill-formed
// sequence. For Incomplete outcomes it is the number of units present. Size is
// positive whenever the buffer is non-empty and never exceeds its length.
//
// Scalar is [ReplacementScalar] unless Status is Valid.
type Outcome struct {
	Status Status
	Scalar Scalar
	Size   int
}

func valid(s Scalar, size int) Outcome {
	return Outcome{Status: Valid, Scalar: s, Size: size}
}

func invalid(size int) Outcome {
	return Outcome{Status: Invalid, Scalar: ReplacementScalar, Size: size}
}

func incomplete(size int) Outcome {
	return Outcome{Status: Incomplete, Scalar: ReplacementScalar, Size: size}
}

// interior adjusts an outcome decoded from a prefix of a larger buffer. A
// sequence cut short by the end of the prefix is Invalid, not Incomplete, when
// more input follows it.
func interior(o Outcome, more bool) Outcome {
	if more && o.Status == Incomplete && o.Size > 0 {
		return invalid(o.Size)
	}
	return o
}

// Sentinel errors reported through [DecodeError].
var (
	ErrInvalidSequence    = errors.New("textunit: invalid encoded sequence")
	ErrIncompleteSequence = errors.New("textunit: incomplete encoded sequence")
)

// DecodeError describes an ill-formed sequence at a given offset.
type DecodeError struct {
	Offset int
	Status Status
	Size   int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v: %d unit(s) at offset %d", e.Unwrap(), e.Size, e.Offset)
}

// Unwrap returns [ErrInvalidSequence] or [ErrIncompleteSequence].
func (e *DecodeError) Unwrap() error {
	if e.Status == Incomplete {
		return ErrIncompleteSequence
	}
	return ErrInvalidSequence
}

// Err returns nil for a Valid outcome and a *[DecodeError] at offset 0
// otherwise. Use [Outcome.ErrAt] to report a position.
func (o Outcome) Err() error {
	return o.ErrAt(0)
}

// ErrAt is like [Outcome.Err] but records the given offset in the error.
func (o Outcome) ErrAt(offset int) error {
	if o.Status == Valid {
		return nil
	}
	return &DecodeError{Offset: offset, Status: o.Status, Size: o.Size}
}
