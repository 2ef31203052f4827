package textunit

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryOf(t *testing.T) {
	testCases := []struct {
		s    Scalar
		want Category
	}{
		{'a', CategoryNone},
		{' ', CategoryNone},
		{'\r', CategoryCR},
		{'\n', CategoryLF},
		{'\t', CategoryControl},
		{0x00, CategoryControl},
		{0x7f, CategoryControl},
		{0x85, CategoryControl},   // NEXT LINE
		{0xad, CategoryControl},   // SOFT HYPHEN
		{0x200b, CategoryControl}, // ZERO WIDTH SPACE
		{0x2028, CategoryControl}, // LINE SEPARATOR
		{0x2029, CategoryControl}, // PARAGRAPH SEPARATOR
		{0xfeff, CategoryControl},
		{0xfff0, CategoryControl}, // unassigned default ignorable
		{0xe0001, CategoryControl},
		{0x0300, CategoryExtend},
		{0x0488, CategoryExtend}, // enclosing mark
		{0x09be, CategoryExtend}, // Other_Grapheme_Extend spacing mark
		{0x200c, CategoryExtend},
		{0xfe0f, CategoryExtend},
		{0x1f3fb, CategoryExtend},
		{0xe0020, CategoryExtend}, // tag space
		{0xe007f, CategoryExtend},
		{0x200d, CategoryZWJ},
		{0x1f1e6, CategoryRegionalIndicator},
		{0x1f1ff, CategoryRegionalIndicator},
		{0x0600, CategoryPrepend},
		{0x0d4e, CategoryPrepend},
		{0x110bd, CategoryPrepend},
		{0x0903, CategorySpacingMark},
		{0x0e33, CategorySpacingMark},
		{0x102b, CategoryNone}, // Mc excluded from SpacingMark
		{0x1100, CategoryL},
		{0xa97c, CategoryL},
		{0x1160, CategoryV},
		{0xd7c6, CategoryV},
		{0x11a8, CategoryT},
		{0xd7fb, CategoryT},
		{0xac00, CategoryLV},
		{0xac01, CategoryLVT},
		{0xac1c, CategoryLV},
		{0xd7a3, CategoryLVT},
		{0x00a9, CategoryExtendedPictographic},
		{0x1f600, CategoryExtendedPictographic},
		{0x1f468, CategoryExtendedPictographic},
		{0x1fffd, CategoryExtendedPictographic},
		{0xfffd, CategoryNone},
		{0x10ffff, CategoryNone},
		{0xd800, CategoryNone}, // not a scalar
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, CategoryOf(tc.s), "%v", tc.s)
	}
}

func TestCategoryOfASCIIMatchesTable(t *testing.T) {
	for r := rune(0); r < 0x80; r++ {
		want := propertySearch(graphemeCodePoints, r).cat
		assert.Equal(t, want, asciiCategories[r], "%U", r)
	}
}

func TestGraphemeCodePointsSorted(t *testing.T) {
	assert.NotEmpty(t, graphemeCodePoints)
	for i, entry := range graphemeCodePoints {
		assert.LessOrEqual(t, entry.lo, entry.hi, "entry %d", i)
		assert.NotEqual(t, CategoryNone, entry.cat, "entry %d", i)
		assert.Less(t, entry.cat, numCategories, "entry %d", i)
		if i > 0 {
			assert.Greater(t, entry.lo, graphemeCodePoints[i-1].hi, "entry %d", i)
		}
	}
}

func TestCategoryOfHangulSyllables(t *testing.T) {
	const (
		sBase  = 0xac00
		tCount = 28
		sCount = 11172
	)
	for s := Scalar(sBase); s < sBase+sCount; s++ {
		want := CategoryLVT
		if (s-sBase)%tCount == 0 {
			want = CategoryLV
		}
		if got := CategoryOf(s); got != want {
			t.Fatalf("CategoryOf(%v) = %v, want %v", s, got, want)
		}
	}
	assert.Equal(t, CategoryNone, CategoryOf(sBase-1))
	assert.Equal(t, CategoryNone, CategoryOf(sBase+sCount))
}

func TestCategoryOfConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, s := range []Scalar{0x1f1e6, 0xac00, 0x0300, 0x1f600} {
				if CategoryOf(s) == CategoryNone {
					t.Errorf("CategoryOf(%v) = None", s)
				}
			}
		}()
	}
	wg.Wait()
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "Regional_Indicator", CategoryRegionalIndicator.String())
	assert.Equal(t, "LVT", CategoryLVT.String())
	assert.Equal(t, "Category(99)", Category(99).String())
}
