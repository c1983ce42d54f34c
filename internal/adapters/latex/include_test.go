package latex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/glimpse/internal/adapters/latex"
	"go.trai.ch/glimpse/internal/core/domain"
)

const document = `\documentclass{article}
\usepackage{graphicx}
\begin{document}
\includegraphics[width=0.5\linewidth, page=3]{figures/plot.pdf} and \includegraphics{logo.png}
  \includegraphics {photo.jpg}
\end{document}`

func TestFindInclude(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pos     domain.Position
		path    string
		options string
		page    int
		start   int
		end     int
	}{
		{"command start", domain.Position{Line: 3, Character: 0}, "figures/plot.pdf", `width=0.5\linewidth, page=3`, 3, 0, 63},
		{"inside path", domain.Position{Line: 3, Character: 50}, "figures/plot.pdf", `width=0.5\linewidth, page=3`, 3, 0, 63},
		{"end is inclusive", domain.Position{Line: 3, Character: 63}, "figures/plot.pdf", `width=0.5\linewidth, page=3`, 3, 0, 63},
		{"second on line", domain.Position{Line: 3, Character: 75}, "logo.png", "", 1, 68, 94},
		{"space before brace", domain.Position{Line: 4, Character: 10}, "photo.jpg", "", 1, 2, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ref, err := latex.FindInclude(document, tt.pos)
			require.NoError(t, err)
			assert.Equal(t, tt.path, ref.Path)
			assert.Equal(t, tt.options, ref.Options)
			assert.Equal(t, tt.page, ref.Page)
			assert.Equal(t, domain.Position{Line: tt.pos.Line, Character: tt.start}, ref.Range.Start)
			assert.Equal(t, domain.Position{Line: tt.pos.Line, Character: tt.end}, ref.Range.End)
		})
	}
}

func TestFindInclude_NoMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		pos  domain.Position
	}{
		{"between commands", document, domain.Position{Line: 3, Character: 65}},
		{"other line", document, domain.Position{Line: 0, Character: 3}},
		{"line out of range", document, domain.Position{Line: 42, Character: 0}},
		{"negative line", document, domain.Position{Line: -1, Character: 0}},
		{"empty path", `\includegraphics{}`, domain.Position{Line: 0, Character: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := latex.FindInclude(tt.text, tt.pos)
			require.Error(t, err)
			assert.Contains(t, err.Error(), domain.ErrNoIncludeAtPosition.Error())
		})
	}
}

func TestFindInclude_CountsCharactersNotBytes(t *testing.T) {
	t.Parallel()

	text := `Größe: \includegraphics{größe.pdf}`
	ref, err := latex.FindInclude(text, domain.Position{Line: 0, Character: 10})
	require.NoError(t, err)
	assert.Equal(t, "größe.pdf", ref.Path)
	assert.Equal(t, 7, ref.Range.Start.Character)
	assert.Equal(t, 34, ref.Range.End.Character)
}

func TestFindInclude_CRLF(t *testing.T) {
	t.Parallel()

	text := "\\begin{figure}\r\n\\includegraphics{a.pdf}\r\n"
	ref, err := latex.FindInclude(text, domain.Position{Line: 1, Character: 23})
	require.NoError(t, err)
	assert.Equal(t, "a.pdf", ref.Path)
}

func TestFindAll(t *testing.T) {
	t.Parallel()

	text := document + "\n% \\includegraphics{commented.pdf}\n100\\% \\includegraphics{kept.pdf}"
	refs := latex.FindAll(text)

	paths := make([]string, 0, len(refs))
	for _, ref := range refs {
		paths = append(paths, ref.Path)
	}
	assert.Equal(t, []string{"figures/plot.pdf", "logo.png", "photo.jpg", "kept.pdf"}, paths)
	assert.Equal(t, 3, refs[0].Page)
}

func TestPageOption(t *testing.T) {
	t.Parallel()

	tests := []struct {
		options string
		want    int
	}{
		{"", 1},
		{"page=2", 2},
		{"width=3cm, page = 12", 12},
		{"page=0", 1},
		{"page=abc", 1},
		{"page=99999999999999999999999", 1},
		{"scale=0.5", 1},
	}

	for _, tt := range tests {
		t.Run(tt.options, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, latex.PageOption(tt.options))
		})
	}
}
