// Package detector selects the log format from the terminal environment.
package detector

import (
	"os"

	"go.trai.ch/glimpse/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// FlagAuto is the flag value that defers to DetectEnvironment.
const FlagAuto = "auto"

// DetectEnvironment returns the recommended log format for the given file descriptor.
// Colour is only used on an interactive terminal outside CI.
func DetectEnvironment(fd uintptr) domain.LogFormat {
	isTTY := term.IsTerminal(int(fd)) //nolint:gosec // fd comes from an *os.File

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return domain.LogFormatPlain
	}
	return domain.LogFormatPretty
}

// ResolveFormat applies the user's --log-format flag to auto-detection.
// userFlag should be one of: "auto", "pretty", "plain", "json", or empty.
func ResolveFormat(autoDetected domain.LogFormat, userFlag string) (domain.LogFormat, error) {
	switch userFlag {
	case "pretty":
		return domain.LogFormatPretty, nil
	case "plain":
		return domain.LogFormatPlain, nil
	case "json":
		return domain.LogFormatJSON, nil
	case FlagAuto, "":
		return autoDetected, nil
	default:
		return autoDetected, zerr.With(domain.ErrUnknownLogFormat, "log_format", userFlag)
	}
}
