package atoms

import (
	"fmt"

	"github.com/yaraqc/yaraqc/internal/domain"
	"github.com/yaraqc/yaraqc/internal/domain/rulesrc"
)

// Score thresholds for classifying the best atom of a definition.
const (
	scoreError   = 30
	scoreWarning = 60
)

const (
	minAtomBytes   = 4
	minBase64Bytes = 3
	maxNocaseLen   = 20
	maxDensity     = 0.5
)

// QualityEngine applies atom scoring and structural quality thresholds to
// every string definition of a rule. It is independent of the lint
// catalog and used by the atom-focused analysis mode.
type QualityEngine struct {
	scorer *Scorer
	cfg    domain.Config
}

func NewQualityEngine(scorer *Scorer, cfg domain.Config) *QualityEngine {
	return &QualityEngine{scorer: scorer, cfg: cfg}
}

// Check evaluates every string definition of the rule and returns the
// issues in definition order.
func (e *QualityEngine) Check(rule domain.Rule) []domain.Issue {
	var issues []domain.Issue
	for _, def := range rule.Strings {
		issues = append(issues, e.checkDefinition(rule.Name, def)...)
	}
	return issues
}

func (e *QualityEngine) checkDefinition(ruleName string, def domain.StringDefinition) []domain.Issue {
	var issues []domain.Issue
	emit := func(code, severity, message, suggestion string) {
		sev, enabled := e.cfg.Resolve(code, severity)
		if !enabled {
			return
		}
		issues = append(issues, domain.Issue{
			Rule:       ruleName,
			Severity:   sev,
			Code:       code,
			Message:    message,
			Suggestion: suggestion,
			Line:       def.Line,
		})
	}

	var data []byte
	var wildcards map[int]bool
	switch def.Kind {
	case domain.KindText:
		data = []byte(def.Value)
	case domain.KindHex:
		decoded := rulesrc.DecodeHex(def.Value)
		data, wildcards = decoded.Bytes, decoded.Wildcards

		// Too short to anchor: report and stop looking at this one.
		if decoded.ConcreteBytes() < minAtomBytes {
			emit("atom-short", domain.SeverityError,
				fmt.Sprintf("%s resolves to %d concrete bytes, the scan engine needs at least %d to anchor",
					def.ID, decoded.ConcreteBytes(), minAtomBytes), "")
			return issues
		}
		if decoded.WildcardDensity() > maxDensity {
			emit("atom-wildcard-density", domain.SeverityWarning,
				fmt.Sprintf("%s is more than half wildcards, which weakens anchor selection", def.ID), "")
		}
		if decoded.LeadingWildcards() >= 2 {
			emit("atom-leading-wildcards", domain.SeverityWarning,
				fmt.Sprintf("%s starts with %d wildcards; lead with fixed bytes instead",
					def.ID, decoded.LeadingWildcards()), "")
		}
	case domain.KindRegex:
		// Regex match length is not derivable lexically, so scoring and
		// length floors do not apply; modifier checks still do.
		issues = append(issues, e.checkModifiers(ruleName, def)...)
		return issues
	}

	if def.Kind == domain.KindText && len(data) < minAtomBytes {
		emit("atom-short", domain.SeverityError,
			fmt.Sprintf("%s is %d bytes, the scan engine needs at least %d to anchor",
				def.ID, len(data), minAtomBytes), "")
		return issues
	}
	if def.HasModifier("base64") && len(def.Value) < minBase64Bytes {
		emit("atom-base64-short", domain.SeverityError,
			fmt.Sprintf("%s is too short for base64 matching (minimum %d characters)",
				def.ID, minBase64Bytes), "")
	}

	issues = append(issues, e.checkModifiers(ruleName, def)...)

	atom, ok := e.scorer.Best(data, wildcards)
	switch {
	case !ok:
		emit("atom-weak", domain.SeverityError,
			fmt.Sprintf("%s has no wildcard-free 4-byte window to anchor on", def.ID), "")
	case atom.Score < scoreError:
		emit("atom-weak", domain.SeverityError,
			fmt.Sprintf("%s best atom scores %d/100, scans using it will be slow", def.ID, atom.Score),
			"add more distinctive bytes to the pattern")
	case atom.Score < scoreWarning:
		emit("atom-fair", domain.SeverityWarning,
			fmt.Sprintf("%s best atom scores %d/100", def.ID, atom.Score),
			"consider a more distinctive byte sequence")
	}

	return issues
}

func (e *QualityEngine) checkModifiers(ruleName string, def domain.StringDefinition) []domain.Issue {
	var issues []domain.Issue
	emit := func(message string) {
		sev, enabled := e.cfg.Resolve("atom-modifier-combo", domain.SeverityInfo)
		if !enabled {
			return
		}
		issues = append(issues, domain.Issue{
			Rule:     ruleName,
			Severity: sev,
			Code:     "atom-modifier-combo",
			Message:  message,
			Line:     def.Line,
		})
	}

	if def.HasModifier("nocase") && def.HasModifier("wide") && def.HasModifier("ascii") {
		emit(fmt.Sprintf("%s combines nocase, wide and ascii, multiplying the atom candidates", def.ID))
	} else if def.HasModifier("nocase") && len(def.Value) > maxNocaseLen {
		emit(fmt.Sprintf("%s uses nocase on a %d-character value, which is expensive to match",
			def.ID, len(def.Value)))
	}
	return issues
}
