package domain

// Position is a zero-based line and character offset in a document.
type Position struct {
	Line      int
	Character int
}

// Range is a span of document text. End is exclusive.
type Range struct {
	Start Position
	End   Position
}

// Contains reports whether pos lies within r, treating End as inclusive
// so that a cursor placed right after the closing brace still matches.
func (r Range) Contains(pos Position) bool {
	if pos.Line < r.Start.Line || pos.Line > r.End.Line {
		return false
	}
	if pos.Line == r.Start.Line && pos.Character < r.Start.Character {
		return false
	}
	if pos.Line == r.End.Line && pos.Character > r.End.Character {
		return false
	}
	return true
}

// Reference is a graphics inclusion found in document text.
type Reference struct {
	// Path is the raw file reference as written in the document.
	Path string
	// Options is the raw inline option string, empty when absent.
	Options string
	// Page is the page parsed from Options, 1 when absent.
	Page int
	// Range is the span of the whole inclusion command.
	Range Range
}

// Hover is a rendered preview anchored to document text.
type Hover struct {
	Markdown string
	Range    Range
	Preview  Preview
}
