// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cfg1

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Logging contains the slog handler settings.
type Logging struct {
	Level  string // one of debug, info, warn, or error
	Format string // either text or json

	level slog.Level
}

// ValidateAndNormalize parses the logging level (info by default) and
// checks the format (text by default).
func (l *Logging) ValidateAndNormalize() error {
	if l.Level == "" {
		l.Level = "info"
	}
	if err := l.level.UnmarshalText([]byte(l.Level)); err != nil {
		return fmt.Errorf("parsing logging level: %w", err)
	}
	l.Format = strings.ToLower(l.Format)
	switch l.Format {
	case "":
		l.Format = "text"
	case "text", "json":
	default:
		return fmt.Errorf("unknown logging format: %q", l.Format)
	}
	return nil
}

// NewLogger instantiates a slog logger which writes to w.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.Logging.level}
	if c.Logging.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
