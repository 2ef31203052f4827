// Package logutil builds the structured logger used by the textunit command.
package logutil

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Color modes accepted by New.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ParseLevel maps a level name to a slog level. The empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// UseColor reports whether output to w should be colored under the given
// mode. In auto mode only terminals get color.
func UseColor(w io.Writer, mode string) (bool, error) {
	switch strings.ToLower(mode) {
	case "", ColorAuto:
		f, ok := w.(*os.File)
		if !ok {
			return false, nil
		}
		fd := f.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd), nil
	case ColorAlways:
		return true, nil
	case ColorNever:
		return false, nil
	}
	return false, fmt.Errorf("unknown color mode %q", mode)
}

// New returns a logger writing human-readable records to w.
func New(w io.Writer, level, color string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	colored, err := UseColor(w, color)
	if err != nil {
		return nil, err
	}

	h := tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: time.Kitchen,
		NoColor:    !colored,
	})
	return slog.New(h), nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
