// Package svg post-processes SVG markup produced by the vector renderer.
package svg

import (
	"bytes"
	"regexp"
)

// rootTag matches the opening tag of the root element, with or without the svg: prefix.
var rootTag = regexp.MustCompile(`<(?:svg:)?svg(?:\s[^>]*)?>`)

var styleClosers = [][]byte{[]byte("</svg:style>"), []byte("</style>")}

// SetBackground forces a background colour onto the markup.
//
// The directive is inserted ahead of the first style-block closing marker. Markup
// without a style block gets one right after the root opening tag. Markup without a
// root svg element is returned unchanged.
func SetBackground(markup []byte, color string) []byte {
	directive := []byte("svg { background-color: " + color + " };")

	if idx := firstStyleCloser(markup); idx >= 0 {
		return splice(markup, idx, directive)
	}

	loc := rootTag.FindIndex(markup)
	if loc == nil {
		return markup
	}

	element := "style"
	if bytes.HasPrefix(markup[loc[0]:], []byte("<svg:svg")) {
		element = "svg:style"
	}
	block := make([]byte, 0, len(directive)+2*len(element)+5)
	block = append(block, "<"+element+">"...)
	block = append(block, directive...)
	block = append(block, "</"+element+">"...)
	return splice(markup, loc[1], block)
}

// firstStyleCloser returns the offset of the earliest style closing marker, or -1.
func firstStyleCloser(markup []byte) int {
	first := -1
	for _, closer := range styleClosers {
		if idx := bytes.Index(markup, closer); idx >= 0 && (first < 0 || idx < first) {
			first = idx
		}
	}
	return first
}

func splice(markup []byte, at int, insert []byte) []byte {
	out := make([]byte, 0, len(markup)+len(insert))
	out = append(out, markup[:at]...)
	out = append(out, insert...)
	out = append(out, markup[at:]...)
	return out
}
