package svg

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var attrPatterns = map[string]*regexp.Regexp{
	"width":   regexp.MustCompile(`\swidth\s*=\s*"([^"]*)"`),
	"height":  regexp.MustCompile(`\sheight\s*=\s*"([^"]*)"`),
	"viewBox": regexp.MustCompile(`\sviewBox\s*=\s*"([^"]*)"`),
}

// Fit scales the root element so the drawing fits into width x height pixels while
// keeping its aspect ratio. A viewBox is added when missing so that the drawing
// scales with the new size. Markup whose root size is unknown is returned unchanged.
func Fit(markup []byte, width, height int) []byte {
	if width <= 0 || height <= 0 {
		return markup
	}

	loc := rootTag.FindIndex(markup)
	if loc == nil {
		return markup
	}
	tag := string(markup[loc[0]:loc[1]])

	w, okW := dimension(attr(tag, "width"))
	h, okH := dimension(attr(tag, "height"))
	if !okW || !okH {
		return markup
	}

	scale := math.Min(float64(width)/w, float64(height)/h)
	fitted := tag
	if attr(tag, "viewBox") == "" {
		fitted = setAttr(fitted, "viewBox", "0 0 "+format(w)+" "+format(h))
	}
	fitted = setAttr(fitted, "width", format(w*scale))
	fitted = setAttr(fitted, "height", format(h*scale))

	out := make([]byte, 0, len(markup)+len(fitted)-len(tag))
	out = append(out, markup[:loc[0]]...)
	out = append(out, fitted...)
	out = append(out, markup[loc[1]:]...)
	return out
}

func attr(tag, name string) string {
	m := attrPatterns[name].FindStringSubmatch(tag)
	if m == nil {
		return ""
	}
	return m[1]
}

func setAttr(tag, name, value string) string {
	re := attrPatterns[name]
	if re.MatchString(tag) {
		replaced := false
		return re.ReplaceAllStringFunc(tag, func(string) string {
			if replaced {
				return ""
			}
			replaced = true
			return " " + name + `="` + value + `"`
		})
	}

	end := len(tag) - 1
	if strings.HasSuffix(tag, "/>") {
		end = len(tag) - 2
	}
	return tag[:end] + " " + name + `="` + value + `"` + tag[end:]
}

// dimension parses a length such as "612pt" or "300", ignoring the unit.
// Percentages are rejected since they carry no absolute size.
func dimension(v string) (float64, bool) {
	v = strings.TrimSpace(v)
	if v == "" || strings.HasSuffix(v, "%") {
		return 0, false
	}
	v = strings.TrimRight(v, "abcdefghijklmnopqrstuvwxyz")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		return 0, false
	}
	return f, true
}

func format(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
