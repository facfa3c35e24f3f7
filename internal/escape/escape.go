// Package escape produces CSON string literals and property names.
package escape

import (
	"fmt"
	"strings"
	"unicode"
)

// needsEscape reports whether a rune cannot appear verbatim inside a
// double-quoted CSON string. U+0085, U+2028 and U+2029 are line separators
// that CoffeeScript treats as newlines, so they must be escaped too.
func needsEscape(r rune) bool {
	return r < 0x20 || r == 0x85 || r == 0x2028 || r == 0x2029
}

// StringLiteral wraps s in double quotes, escaping control characters,
// backslashes, double quotes, and the interpolation opener "#{" in a single
// left-to-right pass.
func StringLiteral(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == '"':
			b.WriteString(`\"`)
		case r == '#' && i+1 < len(runes) && runes[i+1] == '{':
			b.WriteString(`\#{`)
			i++
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\f':
			b.WriteString(`\f`)
		case r == '\b':
			b.WriteString(`\b`)
		case needsEscape(r):
			fmt.Fprintf(&b, `\u%04X`, r)
		default:
			b.WriteRune(r)
		}
	}

	b.WriteByte('"')
	return b.String()
}

// IsBareName reports whether name can appear unquoted as a CSON property
// name: a non-empty run of Unicode letters, digits, and underscores that
// does not start with a digit.
func IsBareName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if i == 0 && unicode.IsDigit(r) {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

// PropertyName renders a mapping key: bare when IsBareName allows it,
// otherwise as a quoted string literal.
func PropertyName(name string) string {
	if IsBareName(name) {
		return name
	}
	return StringLiteral(name)
}
