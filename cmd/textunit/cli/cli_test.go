package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Execute(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return result{code, stdout.String(), stderr.String()}
}

func writeFile(t *testing.T, name string, b []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, b, 0o644))
	return path
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestScalars(t *testing.T) {
	res := run(t, "a\xff€", "scalars")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, []string{
		"0\t1:1\tvalid\tU+0061\t1",
		"1\t1:2\tinvalid\tU+FFFD\t1",
		"2\t1:3\tvalid\tU+20AC\t3",
	}, lines(res.stdout))
}

func TestScalarsReverse(t *testing.T) {
	res := run(t, "a\xff€", "scalars", "--reverse", "-")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, []string{
		"2\t-\tvalid\tU+20AC\t3",
		"1\t-\tinvalid\tU+FFFD\t1",
		"0\t-\tvalid\tU+0061\t1",
	}, lines(res.stdout))
}

func TestScalarsUTF16(t *testing.T) {
	// Little endian with a byte order mark: "a", U+1F600, then a lone high
	// surrogate.
	path := writeFile(t, "in.txt", []byte{0xff, 0xfe, 0x61, 0x00, 0x3d, 0xd8, 0x00, 0xde, 0x3d, 0xd8})

	res := run(t, "", "scalars", path)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, []string{
		"0\t1:1\tvalid\tU+0061\t1",
		"1\t1:2\tvalid\tU+1F600\t2",
		"3\t1:3\tincomplete\tU+FFFD\t1",
	}, lines(res.stdout))

	res = run(t, "", "scalars", "-r", path)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, []string{
		"3\t-\tincomplete\tU+FFFD\t1",
		"1\t-\tvalid\tU+1F600\t2",
		"0\t-\tvalid\tU+0061\t1",
	}, lines(res.stdout))

	// A high surrogate followed by more input is invalid, not incomplete.
	path = writeFile(t, "interior.txt", []byte{0xff, 0xfe, 0x3d, 0xd8, 0x41, 0x00})
	res = run(t, "", "scalars", "-r", path)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, []string{
		"1\t-\tvalid\tU+0041\t1",
		"0\t-\tinvalid\tU+FFFD\t1",
	}, lines(res.stdout))

	// Explicit big endian without a byte order mark.
	res = run(t, "\x00\x62", "scalars", "--encoding", "utf16be")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, []string{"0\t1:1\tvalid\tU+0062\t1"}, lines(res.stdout))
}

func TestScalarsJSON(t *testing.T) {
	res := run(t, "a\n", "scalars", "--format", "json")
	require.Equal(t, 0, res.code, res.stderr)

	var got []scalarRecord
	dec := json.NewDecoder(strings.NewReader(res.stdout))
	for dec.More() {
		var r scalarRecord
		require.NoError(t, dec.Decode(&r))
		got = append(got, r)
	}
	assert.Equal(t, []scalarRecord{
		{Offset: 0, Line: 1, Column: 1, Status: "valid", Scalar: "U+0061", Size: 1},
		{Offset: 1, Line: 1, Column: 2, Status: "valid", Scalar: "U+000A", Size: 1},
	}, got)
}

func TestGraphemes(t *testing.T) {
	res := run(t, "e\u0301😀\n", "graphemes")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, []string{
		"0\t0\t3\t1\t\"e\\u0301\"",
		"1\t3\t4\t2\t\"\\U0001f600\"",
		"2\t7\t1\t0\t\"\\n\"",
	}, lines(res.stdout))

	// A ZWJ sequence is measured as one glyph.
	res = run(t, "\U0001f468\u200d\U0001f469\u200d\U0001f467a", "graphemes")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, []string{
		"0\t0\t18\t2\t\"\\U0001f468\\u200d\\U0001f469\\u200d\\U0001f467\"",
		"1\t18\t1\t1\t\"a\"",
	}, lines(res.stdout))

	res = run(t, "🇺🇸🇩\r\n", "graphemes", "--count")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "3\n", res.stdout)
}

func TestGraphemesUTF16(t *testing.T) {
	// Big endian with a byte order mark: U+1F1FA U+1F1F8 "x".
	in := []byte{0xfe, 0xff, 0xd8, 0x3c, 0xdd, 0xfa, 0xd8, 0x3c, 0xdd, 0xf8, 0x00, 0x78}
	res := run(t, string(in), "graphemes", "--format", "json")
	require.Equal(t, 0, res.code, res.stderr)

	var got []graphemeRecord
	dec := json.NewDecoder(strings.NewReader(res.stdout))
	for dec.More() {
		var r graphemeRecord
		require.NoError(t, dec.Decode(&r))
		got = append(got, r)
	}
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].Offset)
	assert.Equal(t, 4, got[0].Units)
	assert.Equal(t, "🇺🇸", got[0].Text)
	assert.Equal(t, graphemeRecord{Index: 1, Offset: 4, Units: 1, Width: 1, Text: "x"}, got[1])
}

func TestValidate(t *testing.T) {
	good := writeFile(t, "good.txt", []byte("日本語"))
	bad := writeFile(t, "bad.txt", []byte("a\xff\xe2\x82"))

	res := run(t, "", "validate", good)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, good+": ok, utf8 (9 B), 3 scalars, 0 invalid, 0 incomplete\n", res.stdout)

	res = run(t, "", "validate", good, bad)
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, bad+": ILL-FORMED, utf8 (4 B), 1 scalars, 1 invalid, 1 incomplete")
	assert.Contains(t, res.stderr, "ill-formed UTF-8")
	assert.Contains(t, res.stderr, "validation failed")
	assert.NotContains(t, res.stderr, "textunit: ill-formed input")

	res = run(t, "plain", "validate")
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "<stdin>: ok, utf8 (5 B), 5 scalars, 0 invalid, 0 incomplete\n", res.stdout)
}

func TestSanitize(t *testing.T) {
	res := run(t, "a\xffb\xed\xa0\x80", "sanitize")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "a�b��", res.stdout)

	out := filepath.Join(t.TempDir(), "out.txt")
	in := writeFile(t, "in.txt", []byte{0xfe, 0xff, 0x00, 0x61, 0xdc, 0x00})
	res = run(t, "", "sanitize", "-o", out, in)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Empty(t, res.stdout)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "a�", string(b))
}

func TestConfig(t *testing.T) {
	t.Setenv("TEXTUNIT_FORMAT", "json")
	res := run(t, "a", "graphemes")
	require.Equal(t, 0, res.code, res.stderr)
	assert.JSONEq(t, `{"index":0,"offset":0,"units":1,"width":1,"text":"a"}`, res.stdout)

	// Flags take precedence over the environment.
	res = run(t, "a", "graphemes", "--format", "text")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "0\t0\t1\t1\t\"a\"\n", res.stdout)

	cfg := writeFile(t, "textunit.yaml", []byte("format: text\nencoding: utf16be\n"))
	t.Setenv("TEXTUNIT_FORMAT", "")
	res = run(t, "\x00\x61", "scalars", "--config", cfg)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "0\t1:1\tvalid\tU+0061\t1\n", res.stdout)
}

func TestBadConfig(t *testing.T) {
	res := run(t, "", "scalars", "--encoding", "latin1")
	assert.Equal(t, 1, res.code)
	assert.Equal(t, "textunit: unknown encoding \"latin1\"\n", res.stderr)

	res = run(t, "", "scalars", "--log-level", "loud")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, `unknown log level "loud"`)

	res = run(t, "", "scalars", filepath.Join(t.TempDir(), "missing"))
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "no such file")
}
