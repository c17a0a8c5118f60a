package lint

import (
	"fmt"
	"strings"

	"github.com/yaraqc/yaraqc/internal/domain"
	"github.com/yaraqc/yaraqc/internal/domain/rulesrc"
)

const (
	minTextBytes     = 4
	minBase64Bytes   = 3
	minConcreteBytes = 4
	maxNocaseLen     = 20
)

// checkStrings applies the per-definition catalog checks: length floors,
// false-positive-prone content, hex pattern shape, regex compatibility and
// modifier performance.
func (e *Engine) checkStrings(rule domain.Rule) []domain.Issue {
	var issues []domain.Issue
	for _, def := range rule.Strings {
		issues = append(issues, e.checkDefinition(rule, def)...)
	}
	return issues
}

func (e *Engine) checkDefinition(rule domain.Rule, def domain.StringDefinition) []domain.Issue {
	var issues []domain.Issue

	switch def.Kind {
	case domain.KindText:
		if len(def.Value) < minTextBytes {
			issues = e.emit(issues, domain.Issue{
				Rule:    rule.Name,
				Code:    "str-short",
				Message: fmt.Sprintf("%s is %d bytes, patterns under %d bytes cannot anchor a scan", def.ID, len(def.Value), minTextBytes),
				Line:    def.Line,
			}, domain.SeverityError)
		}
		if def.HasModifier("base64") && len(def.Value) < minBase64Bytes {
			issues = e.emit(issues, domain.Issue{
				Rule:    rule.Name,
				Code:    "str-base64-short",
				Message: fmt.Sprintf("%s is too short for base64 matching (minimum %d characters)", def.ID, minBase64Bytes),
				Line:    def.Line,
			}, domain.SeverityError)
		}
		issues = append(issues, e.checkFalsePositives(rule, def)...)

	case domain.KindHex:
		decoded := rulesrc.DecodeHex(def.Value)
		if decoded.ConcreteBytes() < minConcreteBytes {
			issues = e.emit(issues, domain.Issue{
				Rule:    rule.Name,
				Code:    "hex-few-bytes",
				Message: fmt.Sprintf("%s resolves to %d concrete bytes, at least %d are needed", def.ID, decoded.ConcreteBytes(), minConcreteBytes),
				Line:    def.Line,
			}, domain.SeverityError)
		}
		if rulesrc.LeadsWithWildcard(def.Value) {
			issues = e.emit(issues, domain.Issue{
				Rule:       rule.Name,
				Code:       "hex-leading-wildcard",
				Message:    fmt.Sprintf("%s begins with a wildcard token", def.ID),
				Suggestion: "lead with fixed bytes so the engine can anchor",
				Line:       def.Line,
			}, domain.SeverityWarning)
		}

	case domain.KindRegex:
		issues = append(issues, e.checkRegex(rule, def)...)
	}

	issues = append(issues, e.checkModifiers(rule, def)...)
	return issues
}

// checkFalsePositives flags text values containing common system strings
// that risk matching benign files.
func (e *Engine) checkFalsePositives(rule domain.Rule, def domain.StringDefinition) []domain.Issue {
	var issues []domain.Issue
	lower := strings.ToLower(def.Value)
	for _, term := range e.vocab.FalsePositives {
		if strings.Contains(lower, strings.ToLower(term)) {
			issues = e.emit(issues, domain.Issue{
				Rule:       rule.Name,
				Code:       "str-common",
				Message:    fmt.Sprintf("%s contains %q, which is common in benign files", def.ID, term),
				Suggestion: "combine with a more specific string in the condition",
				Line:       def.Line,
			}, domain.SeverityWarning)
		}
	}
	return issues
}

// checkRegex flags constructs the target engine rejects or matches badly:
// unescaped braces that do not open a bounded quantifier, and unbounded
// dot repetitions.
func (e *Engine) checkRegex(rule domain.Rule, def domain.StringDefinition) []domain.Issue {
	var issues []domain.Issue
	v := def.Value

	for i := 0; i < len(v); i++ {
		switch v[i] {
		case '\\':
			i++
		case '{':
			if i+1 >= len(v) || v[i+1] < '0' || v[i+1] > '9' {
				issues = e.emit(issues, domain.Issue{
					Rule:       rule.Name,
					Code:       "re-unescaped-brace",
					Message:    fmt.Sprintf("%s has an unescaped { that does not start a repetition count", def.ID),
					Suggestion: "escape it as \\{",
					Line:       def.Line,
				}, domain.SeverityError)
			}
		case '.':
			if i+1 < len(v) && (v[i+1] == '*' || v[i+1] == '+') {
				if i+2 >= len(v) || v[i+2] != '?' {
					issues = e.emit(issues, domain.Issue{
						Rule:       rule.Name,
						Code:       "re-unbounded",
						Message:    fmt.Sprintf("%s uses an unbounded .%c repetition", def.ID, v[i+1]),
						Suggestion: "prefer a bounded repetition like .{0,64}",
						Line:       def.Line,
					}, domain.SeverityWarning)
				}
			}
		}
	}
	return issues
}

// checkModifiers flags modifier combinations with known scan cost.
func (e *Engine) checkModifiers(rule domain.Rule, def domain.StringDefinition) []domain.Issue {
	var issues []domain.Issue

	if def.HasModifier("nocase") && len(def.Value) > maxNocaseLen {
		issues = e.emit(issues, domain.Issue{
			Rule:    rule.Name,
			Code:    "mod-nocase-long",
			Message: fmt.Sprintf("%s uses nocase on a %d-character value, which is expensive to match", def.ID, len(def.Value)),
			Line:    def.Line,
		}, domain.SeverityInfo)
	}

	for _, m := range def.Modifiers {
		if m == "xor" {
			issues = e.emit(issues, domain.Issue{
				Rule:       rule.Name,
				Code:       "mod-xor-unbounded",
				Message:    fmt.Sprintf("%s uses xor without a key range", def.ID),
				Suggestion: "bound the search space, e.g. xor(0x01-0xff)",
				Line:       def.Line,
			}, domain.SeverityInfo)
		}
	}

	return issues
}
