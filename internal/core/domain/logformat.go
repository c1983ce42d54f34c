package domain

import "go.trai.ch/zerr"

// LogFormat selects how diagnostics are written to stderr.
type LogFormat uint8

const (
	// LogFormatPretty writes coloured, human-readable lines.
	LogFormatPretty LogFormat = iota
	// LogFormatPlain writes the pretty layout without colour.
	LogFormatPlain
	// LogFormatJSON writes one JSON object per record.
	LogFormatJSON
)

// ErrUnknownLogFormat is returned when a log format name is not recognized.
var ErrUnknownLogFormat = zerr.New("unknown log format")

// String returns the flag name of the format.
func (f LogFormat) String() string {
	switch f {
	case LogFormatPlain:
		return "plain"
	case LogFormatJSON:
		return "json"
	default:
		return "pretty"
	}
}
