package rulesrc

import (
	"strings"

	"github.com/yaraqc/yaraqc/internal/domain"
)

// DecodeHex converts a raw hex pattern body (braces already stripped) into
// concrete bytes plus the set of wildcard offsets. Full wildcards (??) and
// single-nibble wildcards (4?, ?4) each occupy one placeholder position.
// Jump and alternation tokens are skipped without advancing the position
// counter, so the decoded length under-counts the pattern's true matched
// length whenever such constructs are present. That is a known limitation
// of this decoder, kept so byte counts stay comparable across rules.
func DecodeHex(raw string) domain.DecodedPattern {
	pattern := domain.DecodedPattern{Wildcards: map[int]bool{}}

	for _, tok := range strings.Fields(raw) {
		switch {
		case tok == "??":
			pattern.Wildcards[len(pattern.Bytes)] = true
			pattern.Bytes = append(pattern.Bytes, 0x00)
		case len(tok) == 2 && isHexDigit(tok[0]) && tok[1] == '?':
			pattern.Wildcards[len(pattern.Bytes)] = true
			pattern.Bytes = append(pattern.Bytes, 0x00)
		case len(tok) == 2 && tok[0] == '?' && isHexDigit(tok[1]):
			pattern.Wildcards[len(pattern.Bytes)] = true
			pattern.Bytes = append(pattern.Bytes, 0x00)
		case len(tok) == 2 && isHexDigit(tok[0]) && isHexDigit(tok[1]):
			pattern.Bytes = append(pattern.Bytes, hexValue(tok[0])<<4|hexValue(tok[1]))
		}
		// Anything else (jumps like [4-6], alternation brackets) is
		// ignored without consuming a position.
	}
	return pattern
}

// LeadsWithWildcard reports whether the first token of a raw hex pattern
// is a full wildcard. Anchors should lead with fixed bytes.
func LeadsWithWildcard(raw string) bool {
	toks := strings.Fields(raw)
	return len(toks) > 0 && toks[0] == "??"
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexValue(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
