// Package latex extracts graphics inclusions and search paths from LaTeX source.
package latex

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.trai.ch/glimpse/internal/core/domain"
	"go.trai.ch/zerr"
)

var (
	includePattern = regexp.MustCompile(`\\includegraphics\s*(?:\[(.*?)\])?\s*\{(.*?)\}`)
	pagePattern    = regexp.MustCompile(`page\s*=\s*(\d+)`)
)

// FindInclude returns the \includegraphics command on the line of pos whose span
// contains pos. The end of the span counts as inside, so a cursor right after the
// closing brace still matches.
func FindInclude(text string, pos domain.Position) (domain.Reference, error) {
	lines := splitLines(text)
	if pos.Line < 0 || pos.Line >= len(lines) || pos.Character < 0 {
		return domain.Reference{}, zerr.With(domain.ErrNoIncludeAtPosition, "line", pos.Line)
	}

	for _, ref := range lineIncludes(lines[pos.Line], pos.Line) {
		if ref.Range.Contains(pos) {
			return ref, nil
		}
	}
	return domain.Reference{}, zerr.With(zerr.With(domain.ErrNoIncludeAtPosition, "line", pos.Line), "character", pos.Character)
}

// FindAll returns every \includegraphics command in text, in document order.
// Commands inside comments are skipped.
func FindAll(text string) []domain.Reference {
	var refs []domain.Reference
	for i, line := range splitLines(text) {
		refs = append(refs, lineIncludes(stripComment(line), i)...)
	}
	return refs
}

// PageOption parses the page key of an \includegraphics option list.
// Absent, unparsable, or non-positive values yield page 1.
func PageOption(options string) int {
	m := pagePattern.FindStringSubmatch(options)
	if m == nil {
		return domain.DefaultPageNumber
	}
	page, err := strconv.Atoi(m[1])
	if err != nil || page < 1 {
		return domain.DefaultPageNumber
	}
	return page
}

func lineIncludes(line string, lineNo int) []domain.Reference {
	var refs []domain.Reference
	for _, m := range includePattern.FindAllStringSubmatchIndex(line, -1) {
		path := strings.TrimSpace(line[m[4]:m[5]])
		if path == "" {
			continue
		}

		var options string
		if m[2] >= 0 {
			options = line[m[2]:m[3]]
		}

		refs = append(refs, domain.Reference{
			Path:    path,
			Options: options,
			Page:    PageOption(options),
			Range: domain.Range{
				Start: domain.Position{Line: lineNo, Character: utf8.RuneCountInString(line[:m[0]])},
				End:   domain.Position{Line: lineNo, Character: utf8.RuneCountInString(line[:m[1]])},
			},
		})
	}
	return refs
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// stripComment drops everything from the first unescaped % on.
func stripComment(line string) string {
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++
		case '%':
			return line[:i]
		}
	}
	return line
}
