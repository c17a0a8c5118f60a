// Package lint evaluates parsed rules against a fixed catalog of style,
// metadata and compatibility checks. Every check is a pure function of
// already-parsed input; the engine holds only immutable configuration.
package lint

import (
	"regexp"
	"sort"

	"github.com/yaraqc/yaraqc/internal/domain"
)

// Engine runs the full check catalog against one rule at a time. Word
// lists come from the injected vocabulary; user config can disable checks
// or override their severity.
type Engine struct {
	cfg      domain.Config
	vocab    domain.Vocabulary
	prefixes map[string]bool
	depre    []deprecatedFeature
}

type deprecatedFeature struct {
	name        string
	replacement string
	re          *regexp.Regexp
}

// NewEngine builds an engine from the project config. Vocabularies are
// resolved once here; the engine never mutates them afterwards.
func NewEngine(cfg domain.Config) *Engine {
	vocab := cfg.Vocabulary()

	prefixes := make(map[string]bool, len(vocab.CategoryPrefixes))
	for _, p := range vocab.CategoryPrefixes {
		prefixes[p] = true
	}

	var depre []deprecatedFeature
	for _, name := range sortedKeys(vocab.DeprecatedFeatures) {
		depre = append(depre, deprecatedFeature{
			name:        name,
			replacement: vocab.DeprecatedFeatures[name],
			re:          regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`),
		})
	}

	return &Engine{
		cfg:      cfg,
		vocab:    vocab,
		prefixes: prefixes,
		depre:    depre,
	}
}

// Check runs every catalog check against the rule and concatenates the
// issues in check-invocation order.
func (e *Engine) Check(rule domain.Rule) []domain.Issue {
	var issues []domain.Issue
	issues = append(issues, e.checkNaming(rule)...)
	issues = append(issues, e.checkMetadata(rule)...)
	issues = append(issues, e.checkStrings(rule)...)
	issues = append(issues, e.checkCondition(rule)...)
	return issues
}

// emit appends an issue unless its check is disabled, applying severity
// overrides from config.
func (e *Engine) emit(issues []domain.Issue, issue domain.Issue, defaultSeverity string) []domain.Issue {
	sev, enabled := e.cfg.Resolve(issue.Code, defaultSeverity)
	if !enabled {
		return issues
	}
	issue.Severity = sev
	return append(issues, issue)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
