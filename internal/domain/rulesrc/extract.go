// Package rulesrc recovers rule structure from free-form YARA source text
// using lightweight lexical cues. It is deliberately not a grammar: the
// extractors tolerate loosely structured input and degrade to empty
// results instead of failing.
package rulesrc

import (
	"regexp"
	"strings"

	"github.com/yaraqc/yaraqc/internal/domain"
)

var ruleHeaderRe = regexp.MustCompile(`(?:(?:global|private)\s+)*\brule\s+([A-Za-z_][A-Za-z0-9_]*)\s*[:{]`)

// RuleNames scans raw source for rule declarations and returns the rule
// names in declaration order, duplicates preserved. Privately scoped rules
// are included.
func RuleNames(src string) []string {
	var names []string
	for _, m := range ruleHeaderRe.FindAllStringSubmatch(src, -1) {
		names = append(names, m[1])
	}
	return names
}

// RuleBody locates the named rule and returns the text between its opening
// brace and the matching closing brace (both excluded). The second return
// is false when the rule cannot be located or its braces never balance.
func RuleBody(src, name string) (string, bool) {
	start, open := ruleHeader(src, name)
	if start < 0 || open < 0 {
		return "", false
	}
	end := matchBrace(src, open)
	if end < 0 {
		return "", false
	}
	return src[open+1 : end], true
}

// ruleHeader returns the offset of the rule keyword and of the opening
// brace for the named rule, or -1/-1.
func ruleHeader(src, name string) (int, int) {
	re := regexp.MustCompile(`\brule\s+` + regexp.QuoteMeta(name) + `\b`)
	loc := re.FindStringIndex(src)
	if loc == nil {
		return -1, -1
	}
	open := strings.IndexByte(src[loc[1]:], '{')
	if open < 0 {
		return loc[0], -1
	}
	return loc[0], loc[1] + open
}

// matchBrace returns the offset of the brace matching the one at open.
// Quoted strings, regex literals and comments are skipped while counting,
// so literal braces inside them do not affect the balance.
func matchBrace(src string, open int) int {
	depth := 1
	prev := byte(0) // last non-space byte seen
	for i := open + 1; i < len(src); i++ {
		c := src[i]
		switch {
		case c == '"':
			i = skipQuoted(src, i, '"')
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			i = skipLine(src, i)
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			i = skipBlockComment(src, i)
		case c == '/' && prev == '=':
			// Regex literals only appear on the right of an assignment.
			i = skipQuoted(src, i, '/')
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return i
			}
		}
		if i < len(src) && c != ' ' && c != '\t' && c != '\n' && c != '\r' {
			prev = c
		}
	}
	return -1
}

// skipQuoted advances past a delimited span starting at from, honoring
// backslash escapes. Returns the index of the closing delimiter, or the
// end of input when unterminated.
func skipQuoted(src string, from int, delim byte) int {
	for i := from + 1; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++
		case delim:
			return i
		}
	}
	return len(src) - 1
}

func skipLine(src string, from int) int {
	if nl := strings.IndexByte(src[from:], '\n'); nl >= 0 {
		return from + nl
	}
	return len(src) - 1
}

func skipBlockComment(src string, from int) int {
	if end := strings.Index(src[from+2:], "*/"); end >= 0 {
		return from + 2 + end + 1
	}
	return len(src) - 1
}

// Extract parses every rule declared in src into its structural parts.
// Rules whose boundaries cannot be recovered are returned with an empty
// body so downstream checks still see the name.
func Extract(src string) []domain.Rule {
	var rules []domain.Rule
	for _, name := range RuleNames(src) {
		rule := domain.Rule{Name: name}
		start, open := ruleHeader(src, name)
		if start >= 0 {
			rule.Line = 1 + strings.Count(src[:start], "\n")
		}
		if open >= 0 {
			if end := matchBrace(src, open); end >= 0 {
				rule.Raw = src[open+1 : end]
				bodyLine := 1 + strings.Count(src[:open], "\n")
				sections := SplitSections(rule.Raw)
				rule.Meta = ParseMeta(sections.Meta)
				rule.Strings = ParseStrings(sections.Strings,
					bodyLine+strings.Count(rule.Raw[:sections.StringsOffset], "\n"))
				rule.Condition = strings.TrimSpace(sections.Condition)
			}
		}
		rules = append(rules, rule)
	}
	return rules
}
