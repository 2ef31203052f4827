package textunit

import "fmt"

// Category is the Grapheme_Cluster_Break property of a scalar, extended with
// Extended_Pictographic, as used by the grapheme cluster rules of UAX #29.
type Category uint8

// Grapheme cluster break categories (UAX #29, table 2).
const (
	CategoryNone                 Category = iota // Any other scalar (must be 0)
	CategoryCR                                   // Carriage return
	CategoryLF                                   // Line feed
	CategoryControl                              // Control characters
	CategoryExtend                               // Extending characters (combining marks)
	CategoryZWJ                                  // Zero Width Joiner
	CategoryRegionalIndicator                    // Flag emoji components (paired)
	CategoryPrepend                              // Characters that don't break before the following char
	CategorySpacingMark                          // Spacing combining marks
	CategoryL                                    // Hangul leading consonant (Jamo L)
	CategoryV                                    // Hangul vowel (Jamo V)
	CategoryT                                    // Hangul trailing consonant (Jamo T)
	CategoryLV                                   // Hangul syllable LV
	CategoryLVT                                  // Hangul syllable LVT
	CategoryExtendedPictographic                 // Emoji and pictographic characters

	numCategories
)

var categoryNames = [numCategories]string{
	CategoryNone:                 "None",
	CategoryCR:                   "CR",
	CategoryLF:                   "LF",
	CategoryControl:              "Control",
	CategoryExtend:               "Extend",
	CategoryZWJ:                  "ZWJ",
	CategoryRegionalIndicator:    "Regional_Indicator",
	CategoryPrepend:              "Prepend",
	CategorySpacingMark:          "SpacingMark",
	CategoryL:                    "L",
	CategoryV:                    "V",
	CategoryT:                    "T",
	CategoryLV:                   "LV",
	CategoryLVT:                  "LVT",
	CategoryExtendedPictographic: "Extended_Pictographic",
}

func (c Category) String() string {
	if c < numCategories {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// asciiCategories covers [0, 0x7F] without touching the range table.
var asciiCategories = func() (t [0x80]Category) {
	for r := range t {
		if r < 0x20 || r == 0x7f {
			t[r] = CategoryControl
		}
	}
	t['\r'] = CategoryCR
	t['\n'] = CategoryLF
	return
}()

// categoryRange assigns a category to the code points from lo to hi
// inclusive. [graphemeCodePoints] is sorted by lo and its ranges do not
// overlap. Code points not covered are CategoryNone.
type categoryRange struct {
	lo, hi rune
	cat    Category
}

// propertySearch performs a binary search on a sorted property table.
// Returns the matching entry, or a zero entry if not found.
func propertySearch(dictionary []categoryRange, r rune) (result categoryRange) {
	// Run a binary search.
	from := 0
	to := len(dictionary)
	for to > from {
		middle := (from + to) / 2
		cpRange := dictionary[middle]
		if r < cpRange.lo {
			to = middle
			continue
		}
		if r > cpRange.hi {
			from = middle + 1
			continue
		}
		return cpRange
	}
	return
}

// CategoryOf returns the grapheme cluster break category of s, fast tracking
// ASCII. It is safe for concurrent use.
func CategoryOf(s Scalar) Category {
	if uint32(s) < 0x80 {
		return asciiCategories[s]
	}
	return propertySearch(graphemeCodePoints, rune(s)).cat
}
