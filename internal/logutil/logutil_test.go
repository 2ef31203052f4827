package logutil

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tc := range testCases {
		got, err := ParseLevel(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := ParseLevel("loud")
	assert.EqualError(t, err, `unknown log level "loud"`)
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer

	colored, err := UseColor(&buf, ColorAuto)
	require.NoError(t, err)
	assert.False(t, colored)

	colored, err = UseColor(&buf, ColorAlways)
	require.NoError(t, err)
	assert.True(t, colored)

	colored, err = UseColor(&buf, ColorNever)
	require.NoError(t, err)
	assert.False(t, colored)

	_, err = UseColor(&buf, "sometimes")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "warn", ColorNever)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("ill-formed input", "offset", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "ill-formed input")
	assert.Contains(t, out, "offset=3")
	assert.NotContains(t, out, "\x1b[")

	_, err = New(&buf, "nope", ColorNever)
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}
