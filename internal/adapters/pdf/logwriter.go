package pdf

import (
	"bytes"
	"strings"

	"go.trai.ch/glimpse/internal/core/ports"
)

// logWriter forwards renderer diagnostics to the logger one line at a time.
type logWriter struct {
	logger ports.Logger
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}

		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSpace(string(line))
	if msg == "" || w.logger == nil {
		return
	}
	w.logger.Warn("pdftocairo: " + msg)
}
