package textunit

// Step returns the first grapheme cluster (user-perceived character) found in
// the given byte slice and the remainder of the slice after it.
//
// This function can be called continuously to extract all grapheme clusters
// from a byte slice:
//
//	for len(b) > 0 {
//		var c []byte
//		c, b = textunit.Step(b)
//		// process c
//	}
//
// Given an empty byte slice "b", the function returns nil values. Ill-formed
// UTF-8 never causes a cluster to end in the middle of the units the decoder
// reports for it.
func Step(b []byte) (cluster, rest []byte) {
	// An empty byte slice returns nothing.
	if len(b) == 0 {
		return
	}
	length := FirstGraphemeClusterUTF8(b)
	return b[:length], b[length:]
}

// StepString is like [Step] but its input and outputs are strings.
func StepString(str string) (cluster, rest string) {
	// An empty string returns nothing.
	if len(str) == 0 {
		return
	}
	length := FirstGraphemeClusterInString(str)
	return str[:length], str[length:]
}

// StepUTF16 is like [Step] but operates on UTF-16 code units.
func StepUTF16(p []uint16) (cluster, rest []uint16) {
	if len(p) == 0 {
		return
	}
	length := FirstGraphemeClusterUTF16(p)
	return p[:length], p[length:]
}

// StepLast returns the last grapheme cluster of b and everything before it.
//
// The search walks backward one scalar at a time until it reaches a scalar
// that always starts a cluster (a control character, or a CR LF pair) or the
// start of b, then parses forward from there. Cost is proportional to the
// length of the final run without hard breaks.
func StepLast(b []byte) (rest, cluster []byte) {
	if len(b) == 0 {
		return
	}

	from := len(b)
search:
	for from > 0 {
		o := DecodeLastUTF8(b[:from])
		from -= o.Size
		switch CategoryOf(o.Scalar) {
		case CategoryLF:
			if from > 0 && b[from-1] == '\r' {
				from--
			}
			break search
		case CategoryCR, CategoryControl:
			break search
		}
	}

	tail := b[from:]
	for {
		length := FirstGraphemeClusterUTF8(tail)
		if length == len(tail) {
			return b[:len(b)-length], tail
		}
		tail = tail[length:]
	}
}

// GraphemeClusterCount returns the number of user-perceived characters
// (grapheme clusters) in the given UTF-8 text.
func GraphemeClusterCount(b []byte) (n int) {
	for len(b) > 0 {
		b = b[FirstGraphemeClusterUTF8(b):]
		n++
	}
	return
}

// GraphemeClusterCountString is like [GraphemeClusterCount] but its input is a
// string.
func GraphemeClusterCountString(str string) (n int) {
	for len(str) > 0 {
		str = str[FirstGraphemeClusterInString(str):]
		n++
	}
	return
}
