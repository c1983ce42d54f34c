package domain

// Project is the resolution context of graphics references.
type Project struct {
	// Root is the absolute project root. Empty means no project context.
	Root string
	// SearchDirs are auxiliary directories relative to Root, tried in order.
	SearchDirs []string
	// Width and Height are the configured preview size, 0 for the defaults.
	Width  int
	Height int
}

// HasRoot reports whether a project root is established.
func (p Project) HasRoot() bool {
	return p.Root != ""
}

// WithSearchDirs returns a copy of p with dirs appended to its search path.
func (p Project) WithSearchDirs(dirs ...string) Project {
	merged := make([]string, 0, len(p.SearchDirs)+len(dirs))
	merged = append(merged, p.SearchDirs...)
	merged = append(merged, dirs...)
	p.SearchDirs = merged
	return p
}

// RenderOptions returns the project's preview size for the given page.
func (p Project) RenderOptions(page int) RenderOptions {
	return RenderOptions{Height: p.Height, Width: p.Width, PageNumber: page}.Normalize()
}
