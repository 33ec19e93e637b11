// Package logging builds the zerolog loggers used across the explorer and
// defines the field names shared by all components.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Standard field names for structured logging.
const (
	FieldComponent = "component"
	FieldScreen    = "screen"
	FieldSurface   = "surface"
	FieldEndpoint  = "endpoint"
	FieldHeight    = "height"
	FieldAddress   = "address"
	FieldDenom     = "denom"
	FieldTxHash    = "tx_hash"
	FieldCode      = "code"
	FieldState     = "state"
	FieldReason    = "reason"
	FieldQuery     = "query"
	FieldMatcher   = "matcher"
	FieldCount     = "count"
	FieldDuration  = "duration"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
)

// NewWithWriter returns the root logger writing to w.
// format is "console" for human readable output or "json".
func NewWithWriter(w io.Writer, level, format string) zerolog.Logger {
	if format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// ForComponent returns a child logger tagged with the component name.
func ForComponent(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str(FieldComponent, component).Logger()
}
