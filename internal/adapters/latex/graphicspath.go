package latex

import (
	"regexp"
	"strings"
)

var (
	graphicsPathPattern = regexp.MustCompile(`\\graphicspath\s*\{((?:\s*\{[^{}]*\})*)\s*\}`)
	groupPattern        = regexp.MustCompile(`\{([^{}]*)\}`)
)

// GraphicsPaths returns the directories declared with \graphicspath{{a/}{b/}},
// in declaration order and without duplicates.
func GraphicsPaths(text string) []string {
	lines := splitLines(text)
	for i, line := range lines {
		lines[i] = stripComment(line)
	}
	body := strings.Join(lines, "\n")

	var dirs []string
	seen := make(map[string]struct{})
	for _, decl := range graphicsPathPattern.FindAllStringSubmatch(body, -1) {
		for _, group := range groupPattern.FindAllStringSubmatch(decl[1], -1) {
			dir := strings.TrimSpace(group[1])
			if dir == "" {
				continue
			}
			if _, ok := seen[dir]; ok {
				continue
			}
			seen[dir] = struct{}{}
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
