package rulesrc

import (
	"strings"

	"github.com/yaraqc/yaraqc/internal/domain"
)

// ParseStrings extracts typed pattern definitions from a strings region in
// a single left-to-right pass. Every definition is classified exactly once
// by its leading delimiter: quoted text, brace-delimited hex, or
// slash-delimited regex. Tokens after the closing delimiter on the same
// line become the modifier set. baseLine is the 1-based source line where
// the region starts, used to compute per-definition lines.
func ParseStrings(section string, baseLine int) []domain.StringDefinition {
	var defs []domain.StringDefinition

	i := 0
	for i < len(section) {
		sigil := strings.IndexByte(section[i:], '$')
		if sigil < 0 {
			break
		}
		start := i + sigil

		// Identifier: $name, or a bare $ for anonymous strings.
		idEnd := start + 1
		for idEnd < len(section) && isIdentByte(section[idEnd]) {
			idEnd++
		}

		// Must be an assignment, otherwise this $ is part of something
		// else (a condition fragment, a comment) and is skipped.
		j := skipSpaces(section, idEnd)
		if j >= len(section) || section[j] != '=' {
			i = idEnd
			continue
		}
		j = skipSpaces(section, j+1)
		if j >= len(section) {
			break
		}

		def := domain.StringDefinition{
			ID:   section[start:idEnd],
			Line: baseLine + strings.Count(section[:start], "\n"),
		}

		var close int
		switch section[j] {
		case '"':
			def.Kind = domain.KindText
			close = skipQuoted(section, j, '"')
		case '{':
			def.Kind = domain.KindHex
			close = j + 1
			for close < len(section) && section[close] != '}' {
				close++
			}
			if close >= len(section) {
				close = len(section) - 1
			}
		case '/':
			def.Kind = domain.KindRegex
			close = skipQuoted(section, j, '/')
		default:
			// Not a recognized literal; resume after the sigil.
			i = idEnd
			continue
		}

		def.Value = section[j+1 : close]
		if def.Kind == domain.KindHex {
			def.Value = strings.TrimSpace(def.Value)
		}

		// Trailing tokens up to end of line are modifiers.
		lineEnd := len(section)
		if nl := strings.IndexByte(section[close:], '\n'); nl >= 0 {
			lineEnd = close + nl
		}
		if lineEnd < close+1 {
			lineEnd = close + 1
		}
		if fields := strings.Fields(section[close+1 : lineEnd]); len(fields) > 0 {
			def.Modifiers = fields
		}

		defs = append(defs, def)
		i = lineEnd
	}
	return defs
}

func isIdentByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

func skipSpaces(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}
