package textunit_test

import (
	"fmt"

	"github.com/scalecode-solutions/textunit"
)

func ExampleDecodeUTF8() {
	b := []byte("a\xe2\x82\xacb\xed\xa0\x80\xf0\x9f")
	for len(b) > 0 {
		o := textunit.DecodeUTF8(b)
		fmt.Println(o.Status, o.Scalar, o.Size)
		b = b[o.Size:]
	}
	// Output: valid U+0061 1
	//valid U+20AC 3
	//valid U+0062 1
	//invalid U+FFFD 2
	//invalid U+FFFD 1
	//incomplete U+FFFD 2
}

func ExampleDecodeUTF16() {
	p := []uint16{0xd83d, 0xde00, 0xdc00, 0xd83d}
	for len(p) > 0 {
		o := textunit.DecodeUTF16(p)
		fmt.Println(o.Status, o.Scalar, o.Size)
		p = p[o.Size:]
	}
	// Output: valid U+1F600 2
	//invalid U+FFFD 1
	//incomplete U+FFFD 1
}

func ExampleDecodeLastUTF8() {
	b := []byte("\x80\xe2\x82\xac")
	for len(b) > 0 {
		o := textunit.DecodeLastUTF8(b)
		fmt.Println(o.Status, o.Scalar, o.Size)
		b = b[:len(b)-o.Size]
	}
	// Output: valid U+20AC 3
	//invalid U+FFFD 1
}

func ExampleValidate() {
	err := textunit.Validate([]byte("abc\xffdef"))
	fmt.Println(err)
	// Output: textunit: invalid encoded sequence: 1 unit(s) at offset 3
}

func ExampleReplaceInvalidUTF8() {
	b := textunit.ReplaceInvalidUTF8(nil, []byte("a\xf1\x80\x80\xe1\x80\xc2b"))
	fmt.Printf("%+q\n", b)
	// Output: "a\ufffd\ufffd\ufffdb"
}

func ExampleCursor() {
	b := []byte("one\r\ntwo\tx")
	c := textunit.NewCursor()
	for {
		var o textunit.Outcome
		o, c = c.NextUTF8(b)
		if o.Size == 0 {
			break
		}
		if o.Scalar == 'x' {
			fmt.Println(c)
		}
	}
	// Output: line 2 column 10 (offset 10)
}

func ExampleGraphemeClusterCountString() {
	n := textunit.GraphemeClusterCountString("🇩🇪🏳️‍🌈")
	fmt.Println(n)
	// Output: 2
}

func ExampleStep() {
	b := []byte("🇩🇪🏳️‍🌈!")
	var c []byte
	for len(b) > 0 {
		c, b = textunit.Step(b)
		fmt.Println(string(c), len(c))
	}
	// Output: 🇩🇪 8
	//🏳️‍🌈 14
	//! 1
}

func ExampleStepString() {
	str := "🇩🇪🏳️‍🌈!"
	var c string
	for len(str) > 0 {
		c, str = textunit.StepString(str)
		fmt.Println(c)
	}
	// Output: 🇩🇪
	//🏳️‍🌈
	//!
}

func ExampleStepLast() {
	b := []byte("e\u0301🇩🇪🏳️‍🌈")
	var c []byte
	for len(b) > 0 {
		b, c = textunit.StepLast(b)
		fmt.Printf("%+q\n", c)
	}
	// Output: "\U0001f3f3\ufe0f\u200d\U0001f308"
	//"\U0001f1e9\U0001f1ea"
	//"e\u0301"
}

func ExampleGraphemes() {
	it := textunit.Graphemes([]byte("🇩🇪🏳️‍🌈\r\n"))
	for it.Next() {
		fmt.Println(it.Index(), it.Offset(), len(it.Cluster()))
	}
	// Output: 0 0 8
	//1 8 14
	//2 22 2
}

func ExampleCategoryOf() {
	for _, s := range []textunit.Scalar{'a', '\r', 0x0300, 0x200d, 0x1f1e9, 0xac00, 0x1f600} {
		fmt.Println(s, textunit.CategoryOf(s))
	}
	// Output: U+0061 None
	//U+000D CR
	//U+0300 Extend
	//U+200D ZWJ
	//U+1F1E9 Regional_Indicator
	//U+AC00 LV
	//U+1F600 Extended_Pictographic
}
