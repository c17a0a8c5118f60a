package lint_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaraqc/yaraqc/internal/domain"
)

func metaRule(meta map[string]string) domain.Rule {
	return domain.Rule{Name: "MAL_Meta_Test_1", Meta: meta}
}

func issueCodes(issues []domain.Issue) []string {
	var out []string
	for _, i := range issues {
		out = append(out, i.Code)
	}
	return out
}

func fullMeta(description string) map[string]string {
	return map[string]string{
		"description": description,
		"author":      "analyst",
		"date":        "2024-01-01",
		"reference":   "https://example.com/report",
	}
}

func goodDescription() string {
	return "Detects " + strings.Repeat("webshell artifact ", 4) // 80 chars
}

func TestMetadata_CompleteMetaPasses(t *testing.T) {
	issues := newEngine().Check(metaRule(fullMeta(goodDescription())))
	for _, code := range []string{"meta-description", "meta-author", "meta-date", "meta-reference", "desc-detects", "desc-short", "desc-long"} {
		assert.NotContains(t, issueCodes(issues), code)
	}
}

func TestMetadata_MissingRequiredFields(t *testing.T) {
	issues := newEngine().Check(metaRule(nil))
	codes := issueCodes(issues)
	assert.Contains(t, codes, "meta-description")
	assert.Contains(t, codes, "meta-author")
	assert.Contains(t, codes, "meta-date")
	assert.Contains(t, codes, "meta-reference")
}

func TestMetadata_DescriptionMustStartWithDetects(t *testing.T) {
	meta := fullMeta("Matches a credential stealer targeting browser password stores")
	issues := newEngine().Check(metaRule(meta))
	assert.Contains(t, issueCodes(issues), "desc-detects")
}

func TestMetadata_DescriptionLengthBoundary(t *testing.T) {
	// Exactly 59 characters: short warning fires.
	desc59 := "Detects" + strings.Repeat("x", 52)
	issues := newEngine().Check(metaRule(fullMeta(desc59)))
	assert.Contains(t, issueCodes(issues), "desc-short")

	// Exactly 60 characters: no warning.
	desc60 := "Detects" + strings.Repeat("x", 53)
	issues = newEngine().Check(metaRule(fullMeta(desc60)))
	assert.NotContains(t, issueCodes(issues), "desc-short")
}

func TestMetadata_OverlongDescriptionIsInfo(t *testing.T) {
	long := "Detects " + strings.Repeat("a very long explanation ", 20)
	issues := newEngine().Check(metaRule(fullMeta(long)))
	var found *domain.Issue
	for i := range issues {
		if issues[i].Code == "desc-long" {
			found = &issues[i]
		}
	}
	if assert.NotNil(t, found) {
		assert.Equal(t, domain.SeverityInfo, found.Severity)
	}
}
