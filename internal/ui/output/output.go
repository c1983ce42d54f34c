// Package output creates termenv outputs with the colour handling shared by
// every glimpse log format.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile returns the colour profile for an interactive terminal.
// NO_COLOR forces Ascii, otherwise the terminal's capabilities are detected.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a termenv.Output writing to w with the detected colour profile.
// A nil writer means stderr.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	return newOutput(w, ColorProfile(), opts)
}

// NewPlain creates a termenv.Output that never emits escape sequences.
func NewPlain(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	return newOutput(w, termenv.Ascii, opts)
}

func newOutput(w io.Writer, profile termenv.Profile, opts []termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(profile),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
