// SPDX-License-Identifier: MIT
// Package: evroute/internal/cli
//
// logging.go — zerolog construction.

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns a logger writing to w at the configured level.
// Console output is human-readable and uncolored unless color is true.
func NewLogger(w io.Writer, lc LogConfig, color bool) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(lc.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("%w: log level %q: %v", ErrConfig, lc.Level, err)
	}

	out := w
	if lc.Format != LogFormatJSON {
		out = zerolog.ConsoleWriter{Out: w, NoColor: !color, TimeFormat: time.Kitchen}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Str("component", "evroute").Logger(), nil
}
