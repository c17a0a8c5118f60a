package lint

import (
	"fmt"
	"strings"

	"github.com/yaraqc/yaraqc/internal/domain"
)

const (
	minDescriptionLen = 60
	maxDescriptionLen = 400
)

var requiredMeta = []struct {
	key  string
	code string
}{
	{"description", "meta-description"},
	{"author", "meta-author"},
	{"date", "meta-date"},
}

// checkMetadata verifies the metadata section: required fields, quality of
// the description, and presence of a reference.
func (e *Engine) checkMetadata(rule domain.Rule) []domain.Issue {
	var issues []domain.Issue

	for _, req := range requiredMeta {
		if rule.Meta[req.key] == "" {
			issues = e.emit(issues, domain.Issue{
				Rule:    rule.Name,
				Code:    req.code,
				Message: fmt.Sprintf("required metadata field %q is missing", req.key),
				Line:    rule.Line,
			}, domain.SeverityError)
		}
	}

	if desc := rule.Meta["description"]; desc != "" {
		if !strings.HasPrefix(desc, "Detects") {
			issues = e.emit(issues, domain.Issue{
				Rule:       rule.Name,
				Code:       "desc-detects",
				Message:    "description should begin with the word \"Detects\"",
				Suggestion: "e.g. \"Detects " + desc + "\"",
				Line:       rule.Line,
			}, domain.SeverityWarning)
		}
		if len(desc) < minDescriptionLen {
			issues = e.emit(issues, domain.Issue{
				Rule:    rule.Name,
				Code:    "desc-short",
				Message: fmt.Sprintf("description is %d characters, expected at least %d", len(desc), minDescriptionLen),
				Line:    rule.Line,
			}, domain.SeverityWarning)
		} else if len(desc) > maxDescriptionLen {
			issues = e.emit(issues, domain.Issue{
				Rule:    rule.Name,
				Code:    "desc-long",
				Message: fmt.Sprintf("description is %d characters, consider staying under %d", len(desc), maxDescriptionLen),
				Line:    rule.Line,
			}, domain.SeverityInfo)
		}
	}

	if rule.Meta["reference"] == "" {
		issues = e.emit(issues, domain.Issue{
			Rule:       rule.Name,
			Code:       "meta-reference",
			Message:    "no reference field; rules should cite their source",
			Suggestion: "add reference = \"<url or report>\"",
			Line:       rule.Line,
		}, domain.SeverityWarning)
	}

	return issues
}
