package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaraqc/yaraqc/internal/domain"
	"github.com/yaraqc/yaraqc/internal/domain/lint"
)

func newEngine() *lint.Engine {
	return lint.NewEngine(domain.DefaultConfig())
}

func namingIssues(t *testing.T, name string) []domain.Issue {
	t.Helper()
	rule := domain.Rule{Name: name}
	var out []domain.Issue
	for _, issue := range newEngine().Check(rule) {
		if issue.Code == "name-parts" || issue.Code == "name-prefix" {
			out = append(out, issue)
		}
	}
	return out
}

func TestNaming_WellFormedNamePasses(t *testing.T) {
	assert.Empty(t, namingIssues(t, "WEBSHELL_PHP_FOO_20240101"))
}

func TestNaming_TooFewParts(t *testing.T) {
	issues := namingIssues(t, "foo")
	require.NotEmpty(t, issues)
	assert.Equal(t, "name-parts", issues[0].Code)
	assert.Equal(t, domain.SeverityWarning, issues[0].Severity)
}

func TestNaming_UnrecognizedPrefix(t *testing.T) {
	issues := namingIssues(t, "ZZZ_Win_Foo_2024")
	require.Len(t, issues, 1)
	assert.Equal(t, "name-prefix", issues[0].Code)
	assert.Equal(t, domain.SeverityInfo, issues[0].Severity)
}

func TestNaming_LowercasePrefixStillRecognized(t *testing.T) {
	assert.Empty(t, namingIssues(t, "mal_stealer_win_1"))
}

func TestNaming_CamelCaseGetsSuggestion(t *testing.T) {
	issues := namingIssues(t, "ApacheWebshellDetector")
	require.NotEmpty(t, issues)
	assert.Contains(t, issues[0].Suggestion, "APACHE_Webshell_Detector")
}

func TestNaming_CustomVocabulary(t *testing.T) {
	cfg := domain.Config{CategoryPrefixes: []string{"ZZZ"}}
	e := lint.NewEngine(cfg)
	var prefixIssues []domain.Issue
	for _, issue := range e.Check(domain.Rule{Name: "ZZZ_Win_Foo_2024"}) {
		if issue.Code == "name-prefix" {
			prefixIssues = append(prefixIssues, issue)
		}
	}
	assert.Empty(t, prefixIssues)
}
