package lint

import (
	"fmt"
	"strings"

	"github.com/fatih/camelcase"

	"github.com/yaraqc/yaraqc/internal/domain"
)

const minNameParts = 3

// checkNaming enforces the CATEGORY_Target_Detail naming scheme: at least
// three underscore-separated parts, the first from the category taxonomy.
func (e *Engine) checkNaming(rule domain.Rule) []domain.Issue {
	var issues []domain.Issue

	parts := strings.Split(rule.Name, "_")
	if len(parts) < minNameParts {
		issues = e.emit(issues, domain.Issue{
			Rule:       rule.Name,
			Code:       "name-parts",
			Message:    fmt.Sprintf("rule name has %d underscore-separated parts, expected at least %d", len(parts), minNameParts),
			Suggestion: underscoreSuggestion(rule.Name),
			Line:       rule.Line,
		}, domain.SeverityWarning)
	}

	if prefix := strings.ToUpper(parts[0]); !e.prefixes[prefix] {
		issues = e.emit(issues, domain.Issue{
			Rule:       rule.Name,
			Code:       "name-prefix",
			Message:    fmt.Sprintf("category prefix %q is not in the known taxonomy", parts[0]),
			Suggestion: "known prefixes: " + strings.Join(e.vocab.CategoryPrefixes, ", "),
			Line:       rule.Line,
		}, domain.SeverityInfo)
	}

	return issues
}

// underscoreSuggestion proposes an underscore form for CamelCase rule
// names, e.g. ApacheWebShell -> APACHE_Web_Shell. Names without enough
// CamelCase words get no suggestion.
func underscoreSuggestion(name string) string {
	if strings.Contains(name, "_") {
		return ""
	}
	words := camelcase.Split(name)
	if len(words) < minNameParts {
		return ""
	}
	words[0] = strings.ToUpper(words[0])
	return "consider " + strings.Join(words, "_")
}
