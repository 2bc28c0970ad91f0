package vanilla

import (
	"strings"
	"unicode"
)

// controlID derives the DOM id of an input from its field name, falling back
// to the label when the name is blank.
func controlID(name, label string) string {
	source := strings.TrimSpace(name)
	if source == "" {
		source = label
	}
	var b strings.Builder
	b.WriteString("fw-")
	dash := false
	for _, r := range strings.ToLower(source) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
