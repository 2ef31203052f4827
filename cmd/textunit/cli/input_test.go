package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scalecode-solutions/textunit/internal/logutil"
)

func TestNewDocument(t *testing.T) {
	logger := logutil.Discard()

	testCases := []struct {
		name     string
		in       []byte
		encoding string
		want     string
		utf8     []byte
		utf16    []uint16
	}{
		{"plain", []byte("ab"), encodingAuto, encodingUTF8, []byte("ab"), nil},
		{"utf8 bom", []byte("\xef\xbb\xbfab"), encodingAuto, encodingUTF8, []byte("ab"), nil},
		{"utf16be bom", []byte{0xfe, 0xff, 0x00, 0x61}, encodingAuto, encodingUTF16BE, nil, []uint16{'a'}},
		{"utf16le bom", []byte{0xff, 0xfe, 0x61, 0x00}, encodingAuto, encodingUTF16LE, nil, []uint16{'a'}},
		{"forced utf8 keeps utf16 bom", []byte{0xff, 0xfe}, encodingUTF8, encodingUTF8, []byte{0xff, 0xfe}, nil},
		{"forced utf16le", []byte{0x3d, 0xd8, 0x00, 0xde}, encodingUTF16LE, encodingUTF16LE, nil, []uint16{0xd83d, 0xde00}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDocument("test", tc.in, tc.encoding, logger)
			assert.Equal(t, tc.want, d.encoding)
			assert.Equal(t, tc.utf8, d.utf8)
			assert.Equal(t, tc.utf16, d.utf16)
			assert.Equal(t, len(tc.in), d.raw)
		})
	}
}

func TestNewDocumentOddLength(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logutil.New(&buf, "warn", logutil.ColorNever)
	assert.NoError(t, err)

	d := newDocument("odd.txt", []byte{0x00, 0x61, 0x00}, encodingUTF16BE, logger)
	assert.Equal(t, []uint16{'a'}, d.utf16)
	assert.Equal(t, 1, d.units())
	assert.Contains(t, buf.String(), "odd number of bytes")
}
