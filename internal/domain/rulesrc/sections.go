package rulesrc

import "regexp"

// Sections holds the three structural regions of a rule body. A missing
// section is the empty string; offsets locate each region within the body
// for line-number reporting.
type Sections struct {
	Meta      string
	Strings   string
	Condition string

	MetaOffset      int
	StringsOffset   int
	ConditionOffset int
}

var sectionAnchorRe = regexp.MustCompile(`(?m)^\s*(meta|strings|condition)\s*:`)

// SplitSections splits a rule body into its meta, strings and condition
// regions using the section keywords as ordered lexical anchors. Each
// region spans from after its keyword's colon up to the next anchor or the
// end of the body. Only the first occurrence of each keyword counts.
func SplitSections(body string) Sections {
	var out Sections

	matches := sectionAnchorRe.FindAllStringSubmatchIndex(body, -1)
	seen := map[string]bool{}
	for i, m := range matches {
		name := body[m[2]:m[3]]
		if seen[name] {
			continue
		}
		seen[name] = true

		start := m[1] // after the colon
		end := len(body)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		switch name {
		case "meta":
			out.Meta, out.MetaOffset = body[start:end], start
		case "strings":
			out.Strings, out.StringsOffset = body[start:end], start
		case "condition":
			out.Condition, out.ConditionOffset = body[start:end], start
		}
	}
	return out
}
