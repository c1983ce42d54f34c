// Package pdf renders PDF pages to SVG markup through the poppler pdftocairo tool.
package pdf

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strconv"

	"go.trai.ch/glimpse/internal/adapters/svg"
	"go.trai.ch/glimpse/internal/core/domain"
	"go.trai.ch/glimpse/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.VectorRenderer = (*Renderer)(nil)

// Renderer implements ports.VectorRenderer by running pdftocairo.
type Renderer struct {
	logger  ports.Logger
	command string
}

// NewRenderer creates a Renderer. The executable is taken from GLIMPSE_PDFTOCAIRO
// when set, and pdftocairo otherwise.
func NewRenderer(logger ports.Logger) *Renderer {
	command := os.Getenv(domain.RendererEnvVar)
	if command == "" {
		command = domain.DefaultRendererCommand
	}
	return NewRendererWithCommand(logger, command)
}

// NewRendererWithCommand creates a Renderer running the given executable.
func NewRendererWithCommand(logger ports.Logger, command string) *Renderer {
	return &Renderer{
		logger:  logger,
		command: command,
	}
}

// Command returns the executable the renderer runs.
func (r *Renderer) Command() string {
	return r.command
}

// RenderToSVG renders one page of the document at path and fits the drawing into
// opts.Width x opts.Height.
func (r *Renderer) RenderToSVG(ctx context.Context, path string, opts domain.RenderOptions) ([]byte, error) {
	opts = opts.Normalize()

	executable, err := exec.LookPath(r.command)
	if err != nil {
		return nil, errors.Join(domain.ErrRendererUnavailable, zerr.With(err, "command", r.command))
	}

	page := strconv.Itoa(opts.PageNumber)
	cmd := exec.CommandContext(ctx, executable, "-svg", "-f", page, "-l", page, path, "-") //nolint:gosec // path is a resolved graphics source

	var stdout bytes.Buffer
	stderr := &logWriter{logger: r.logger}
	cmd.Stdout = &stdout
	cmd.Stderr = stderr

	err = cmd.Run()
	_ = stderr.Close()
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		err = zerr.With(zerr.Wrap(err, "pdftocairo failed"), "exit_code", exitCode)
		return nil, zerr.With(err, "path", path)
	}

	markup := stdout.Bytes()
	if !bytes.Contains(markup, []byte("<svg")) {
		return nil, zerr.With(domain.ErrRendererOutputInvalid, "path", path)
	}

	return svg.Fit(markup, opts.Width, opts.Height), nil
}
