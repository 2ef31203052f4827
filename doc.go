/*
Package textunit decodes UTF-8 and UTF-16 text into Unicode scalar values, one
scalar at a time, and groups scalars into extended grapheme clusters.

This package conforms to:
  - The Unicode Standard, chapter 3 (D92, D91 and the U+FFFD substitution
    practice) for the UTF-8 and UTF-16 encoding forms
  - Unicode Standard Annex #29 (https://unicode.org/reports/tr29/) for grapheme
    cluster boundaries
  - Unicode version 15.0

# Decoding

[DecodeUTF8], [DecodeUTF16], [DecodeLastUTF8] and [DecodeLastUTF16] each look
at one scalar and return an [Outcome] with one of three statuses:

  - [Valid]: a scalar was decoded; Size is its encoded length.
  - [Invalid]: the units can never form a scalar; Size is the length of the
    maximal subpart to skip.
  - [Incomplete]: the buffer ended in the middle of a sequence; a streaming
    caller should wait for more data.

The decoders are stateless and never substitute anything on their own. Policy
belongs to the caller: replace with U+FFFD and continue ([ReplaceInvalidUTF8]),
stop with an error ([Validate]), or wait for more data. A caller walking a
buffer keeps its position in a [Cursor]:

	c := textunit.NewCursor()
	for {
		var o textunit.Outcome
		o, c = c.NextUTF8(b)
		if o.Size == 0 {
			break
		}
		// ...
	}

# Grapheme Clusters

A grapheme cluster is what users perceive as a single "character". For example,
the family emoji 👨‍👩‍👧‍👦 appears as one character but contains 7 scalars
(25 bytes in UTF-8):

	len("👨‍👩‍👧‍👦")                             // 25 (bytes)
	len([]rune("👨‍👩‍👧‍👦"))                     // 7 (code points)
	textunit.GraphemeClusterCountString("👨‍👩‍👧‍👦") // 1 (what users see)

[FirstGraphemeClusterUTF8] and [FirstGraphemeClusterUTF16] return the length of
the first cluster in source units. [Step], [StepString], [StepUTF16] and
[StepLast] split clusters off a buffer, and [Graphemes] iterates over them.

The grapheme cluster break property of a scalar is available through
[CategoryOf], backed by a table generated from the Unicode 15.0.0 character
database. All functions are pure and safe for concurrent use.
*/
package textunit
