package lint

import (
	"fmt"
	"regexp"

	"github.com/yaraqc/yaraqc/internal/domain"
)

var negativeIndexRe = regexp.MustCompile(`\[\s*-\d+\s*\]`)

// checkCondition flags deprecated engine features and constructs the
// target engine does not support at all.
func (e *Engine) checkCondition(rule domain.Rule) []domain.Issue {
	var issues []domain.Issue
	if rule.Condition == "" {
		return issues
	}

	for _, d := range e.depre {
		if d.re.MatchString(rule.Condition) {
			issues = e.emit(issues, domain.Issue{
				Rule:       rule.Name,
				Code:       "cond-deprecated",
				Message:    fmt.Sprintf("condition uses deprecated feature %q", d.name),
				Suggestion: "use " + d.replacement + " instead",
				Line:       rule.Line,
			}, domain.SeverityWarning)
		}
	}

	for _, match := range negativeIndexRe.FindAllString(rule.Condition, -1) {
		issues = e.emit(issues, domain.Issue{
			Rule:       rule.Name,
			Code:       "cond-negative-index",
			Message:    fmt.Sprintf("condition indexes an array with %s, negative indexes are not supported", match),
			Suggestion: "index from the element count instead, e.g. pe.number_of_sections - 1",
			Line:       rule.Line,
		}, domain.SeverityError)
	}

	return issues
}
