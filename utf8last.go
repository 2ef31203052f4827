package textunit

// DecodeLastUTF8 decodes the scalar that ends at the last byte of p. It is the
// building block for reverse iteration and right-to-left trimming.
//
// The function walks back over at most three continuation bytes to find the
// start of the final subsequence and decodes forward from there with
// [DecodeUTF8]. If that forward decode does not account for every byte up to
// the end of p, the trailing continuation byte cannot belong to any
// well-formed sequence and the outcome is Invalid with size 1, exactly what a
// forward pass over all of p would report for it.
//
// An empty p yields an Incomplete outcome of size 0.
func DecodeLastUTF8(p []byte) Outcome {
	end := len(p)
	if end < 1 {
		return incomplete(0)
	}

	// ASCII fast path.
	if p[end-1] < tx {
		return valid(Scalar(p[end-1]), 1)
	}

	// Find the last byte that is not a continuation byte, looking back at
	// most 3 bytes past the final one.
	start := end - 1
	lim := end - 4
	if lim < 0 {
		lim = 0
	}
	for start > lim && isContinuation(p[start]) {
		start--
	}

	o := DecodeUTF8(p[start:end])
	if start+o.Size != end {
		return invalid(1)
	}
	return o
}

// FullLastUTF8 reports whether the final sequence of p is not Incomplete.
func FullLastUTF8(p []byte) bool {
	return DecodeLastUTF8(p).Status != Incomplete
}
