package textunit

// grState is a state of the grapheme cluster parser. The parser starts in
// grStart, and every transition either consumes the scalar it looked at or
// hands it to the next state unconsumed.
type grState uint8

// The states of the grapheme cluster parser.
const (
	grStart             grState = iota // Nothing consumed yet
	grPrepend                          // After one or more Prepend
	grCore                             // Next scalar is the cluster's core
	grCR                               // After a core CR
	grL                                // After Hangul L
	grV                                // After Hangul V or LV
	grT                                // After Hangul T or LVT
	grPictographic                     // After Extended_Pictographic Extend*
	grPictographicZWJ                  // After Extended_Pictographic Extend* ZWJ
	grRegionalIndicator                // After an unpaired Regional_Indicator
	grTrail                            // Draining Extend, ZWJ and SpacingMark
	grDone                             // Boundary found
)

// grTransition maps the current state and the category of the next scalar to
// a new state and whether that scalar belongs to the cluster. When consume is
// false the same scalar is presented again in the new state, unless the new
// state is grDone.
//
// A cluster holds at most one pair of regional indicators (GB12, GB13), so a
// run of indicators splits into flags two at a time from its start.
//
// Unicode version 15.0.0.
func grTransition(state grState, cat Category) (newState grState, consume bool) {
	switch state {
	case grStart:
		// GB9b
		if cat == CategoryPrepend {
			return grPrepend, true
		}
		return grCore, false

	case grPrepend:
		switch cat {
		case CategoryPrepend:
			// GB9b
			return grPrepend, true
		case CategoryControl, CategoryCR, CategoryLF:
			// GB5
			return grDone, false
		}
		return grCore, false

	case grCore:
		switch cat {
		case CategoryCR:
			return grCR, true
		case CategoryControl, CategoryLF:
			// GB4
			return grDone, true
		case CategoryL:
			return grL, true
		case CategoryV, CategoryLV:
			return grV, true
		case CategoryT, CategoryLVT:
			return grT, true
		case CategoryExtendedPictographic:
			return grPictographic, true
		case CategoryRegionalIndicator:
			return grRegionalIndicator, true
		}
		return grTrail, true

	case grCR:
		// GB3, GB4
		return grDone, cat == CategoryLF

	case grL:
		// GB6
		switch cat {
		case CategoryL:
			return grL, true
		case CategoryV, CategoryLV:
			return grV, true
		case CategoryLVT:
			return grT, true
		}
		return grTrail, false

	case grV:
		// GB7
		switch cat {
		case CategoryV:
			return grV, true
		case CategoryT:
			return grT, true
		}
		return grTrail, false

	case grT:
		// GB8
		if cat == CategoryT {
			return grT, true
		}
		return grTrail, false

	case grPictographic:
		// GB11
		switch cat {
		case CategoryExtend:
			return grPictographic, true
		case CategoryZWJ:
			return grPictographicZWJ, true
		}
		return grTrail, false

	case grPictographicZWJ:
		// GB11
		if cat == CategoryExtendedPictographic {
			return grPictographic, true
		}
		return grTrail, false

	case grRegionalIndicator:
		// GB12, GB13
		if cat == CategoryRegionalIndicator {
			return grTrail, true
		}
		return grTrail, false

	case grTrail:
		// GB9, GB9a
		switch cat {
		case CategoryExtend, CategoryZWJ, CategorySpacingMark:
			return grTrail, true
		}
		return grDone, false
	}

	// GB999
	return grDone, false
}
