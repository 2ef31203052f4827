package textunit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestScalars(t *testing.T) {
	in := []byte("a\n€\xff\xe2\x82")

	var outcomes []Outcome
	var offsets, lines []int
	it := Scalars(in)
	for it.Next() {
		outcomes = append(outcomes, it.Outcome())
		offsets = append(offsets, it.Offset())
		lines = append(lines, it.Cursor().Line)
	}

	assert.Equal(t, []Outcome{
		{Valid, 'a', 1},
		{Valid, '\n', 1},
		{Valid, 0x20ac, 3},
		{Invalid, ReplacementScalar, 1},
		{Incomplete, ReplacementScalar, 2},
	}, outcomes)
	assert.Equal(t, []int{0, 1, 2, 5, 6}, offsets)
	assert.Equal(t, []int{1, 1, 2, 2, 2}, lines)

	// Exhausted iterators stay exhausted.
	assert.False(t, it.Next())

	empty := Scalars(nil)
	assert.False(t, empty.Next())
}

func TestReverseScalars(t *testing.T) {
	in := []byte("a\n€\xff\xe2\x82")

	var outcomes []Outcome
	var offsets []int
	it := ReverseScalars(in)
	for it.Next() {
		outcomes = append(outcomes, it.Outcome())
		offsets = append(offsets, it.Offset())
	}

	want := []Outcome{
		{Incomplete, ReplacementScalar, 2},
		{Invalid, ReplacementScalar, 1},
		{Valid, 0x20ac, 3},
		{Valid, '\n', 1},
		{Valid, 'a', 1},
	}
	if diff := cmp.Diff(want, outcomes); diff != "" {
		t.Errorf("outcomes mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int{6, 5, 2, 1, 0}, offsets)
	assert.False(t, it.Next())
}

func TestReverseScalarsInterior(t *testing.T) {
	// A truncated sequence followed by more input is Invalid in both
	// directions.
	in := []byte("b\xe2\x82c\xf0\x9f\x98")

	var got []Outcome
	it := ReverseScalars(in)
	for it.Next() {
		got = append(got, it.Outcome())
	}

	want := []Outcome{
		{Incomplete, ReplacementScalar, 3},
		{Valid, 'c', 1},
		{Invalid, ReplacementScalar, 2},
		{Valid, 'b', 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("outcomes mismatch (-want +got):\n%s", diff)
	}
}

func TestReverseScalarsUTF16(t *testing.T) {
	testCases := []struct {
		name    string
		in      []uint16
		want    []Outcome
		offsets []int
	}{
		{
			name: "interior high surrogate",
			in:   []uint16{0xd83d, 'A'},
			want: []Outcome{
				{Valid, 'A', 1},
				{Invalid, ReplacementScalar, 1},
			},
			offsets: []int{1, 0},
		},
		{
			name: "trailing high surrogate",
			in:   []uint16{'A', 0xd83d, 0xde00, 0xd83d},
			want: []Outcome{
				{Incomplete, ReplacementScalar, 1},
				{Valid, 0x1f600, 2},
				{Valid, 'A', 1},
			},
			offsets: []int{3, 1, 0},
		},
		{
			name: "lone low surrogate",
			in:   []uint16{0xdc00, 0xd800, 0xd800, 'x'},
			want: []Outcome{
				{Valid, 'x', 1},
				{Invalid, ReplacementScalar, 1},
				{Invalid, ReplacementScalar, 1},
				{Invalid, ReplacementScalar, 1},
			},
			offsets: []int{3, 2, 1, 0},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got []Outcome
			var offsets []int
			it := ReverseScalarsUTF16(tc.in)
			for it.Next() {
				got = append(got, it.Outcome())
				offsets = append(offsets, it.Offset())
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("outcomes mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tc.offsets, offsets)

			// Forward decoding yields the same outcomes in the other order.
			var forward []Outcome
			for p := tc.in; len(p) > 0; {
				o := DecodeUTF16(p)
				forward = append(forward, o)
				p = p[o.Size:]
			}
			for i, j := 0, len(forward)-1; i < j; i, j = i+1, j-1 {
				forward[i], forward[j] = forward[j], forward[i]
			}
			assert.Equal(t, forward, got)
		})
	}
}

func TestGraphemes(t *testing.T) {
	in := []byte("🇩🇪🏳\ufe0f\u200d🌈!\r\n")

	var clusters []string
	var offsets, indexes []int
	it := Graphemes(in)
	for it.Next() {
		clusters = append(clusters, string(it.Cluster()))
		offsets = append(offsets, it.Offset())
		indexes = append(indexes, it.Index())
	}

	assert.Equal(t, []string{"🇩🇪", "🏳\ufe0f\u200d🌈", "!", "\r\n"}, clusters)
	assert.Equal(t, []int{0, 8, 22, 23}, offsets)
	assert.Equal(t, []int{0, 1, 2, 3}, indexes)

	assert.Nil(t, it.Cluster())
	assert.Equal(t, len(in), it.Offset())
	assert.False(t, it.Next())
	assert.Equal(t, len(in), it.Offset())
}
