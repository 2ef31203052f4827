package cli

import (
	"bytes"
	"encoding/binary"
	"io"
	"log/slog"
	"os"
)

// document is an input file in either encoding form. Exactly one of utf8 and
// utf16 is used, depending on encoding.
type document struct {
	name     string
	encoding string
	utf8     []byte
	utf16    []uint16
	raw      int // size of the input in bytes
}

func (d *document) isUTF16() bool {
	return d.encoding != encodingUTF8
}

// units returns the document length in code units.
func (d *document) units() int {
	if d.isUTF16() {
		return len(d.utf16)
	}
	return len(d.utf8)
}

var (
	bomUTF8    = []byte{0xef, 0xbb, 0xbf}
	bomUTF16BE = []byte{0xfe, 0xff}
	bomUTF16LE = []byte{0xff, 0xfe}
)

// readDocument reads name, or stdin when name is empty or "-".
func readDocument(stdin io.Reader, name, encoding string, logger *slog.Logger) (*document, error) {
	var (
		b   []byte
		err error
	)
	if name == "" || name == "-" {
		name = "<stdin>"
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, err
	}
	return newDocument(name, b, encoding, logger), nil
}

// newDocument interprets b in the given encoding. In auto mode a byte order
// mark selects the encoding and UTF-8 is assumed otherwise. A byte order mark
// matching the encoding is stripped.
func newDocument(name string, b []byte, encoding string, logger *slog.Logger) *document {
	d := &document{name: name, encoding: encoding, raw: len(b)}

	if encoding == encodingAuto {
		switch {
		case bytes.HasPrefix(b, bomUTF8):
			d.encoding = encodingUTF8
		case bytes.HasPrefix(b, bomUTF16BE):
			d.encoding = encodingUTF16BE
		case bytes.HasPrefix(b, bomUTF16LE):
			d.encoding = encodingUTF16LE
		default:
			d.encoding = encodingUTF8
		}
		logger.Debug("detected encoding", "file", name, "encoding", d.encoding)
	}

	switch d.encoding {
	case encodingUTF8:
		d.utf8 = bytes.TrimPrefix(b, bomUTF8)
	case encodingUTF16BE:
		d.utf16 = decodeUnits(bytes.TrimPrefix(b, bomUTF16BE), binary.BigEndian, name, logger)
	case encodingUTF16LE:
		d.utf16 = decodeUnits(bytes.TrimPrefix(b, bomUTF16LE), binary.LittleEndian, name, logger)
	}
	return d
}

func decodeUnits(b []byte, order binary.ByteOrder, name string, logger *slog.Logger) []uint16 {
	if len(b)%2 != 0 {
		logger.Warn("odd number of bytes in UTF-16 input, ignoring the last one", "file", name)
		b = b[:len(b)-1]
	}
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = order.Uint16(b[2*i:])
	}
	return units
}
