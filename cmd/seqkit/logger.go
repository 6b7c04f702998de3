package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Log formats accepted by --log-format.
const (
	formatText = "text"
	formatJSON = "json"
)

// newLogger builds a slog.Logger writing to w with the given level and format.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case formatText, "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case formatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("seqkit: unknown log format %q (want %s or %s)", format, formatText, formatJSON)
	}
}

// parseLevel maps debug/info/warn/error to a slog.Level.
func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("seqkit: unknown log level %q: %w", s, err)
	}

	return lvl, nil
}
