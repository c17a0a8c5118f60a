package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaraqc/yaraqc/internal/domain"
)

// ── warm terminal palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 3).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	fileStyle     = lipgloss.NewStyle().Bold(true).Foreground(fg)
	ruleStyle     = lipgloss.NewStyle().Foreground(dim)
	hintStyle     = lipgloss.NewStyle().Foreground(dim).Italic(true)
	codeStyle     = lipgloss.NewStyle().Foreground(faint)
)

// RenderReport renders a full run as a styled TUI string.
func RenderReport(report *domain.RunReport) string {
	var b strings.Builder

	title := headerStyle.Render("yaraqc")
	summary := summaryLine(report)
	stamp := ""
	if report.CommitHash != "" {
		stamp = "\n" + dimStyle.Render("commit "+shortHash(report.CommitHash))
	}
	b.WriteString(boxStyle.Render(title + "\n" + summary + stamp))
	b.WriteString("\n")

	for _, res := range report.Results {
		renderResult(&b, res)
	}

	if report.Errors == 0 && report.Warnings == 0 && report.Infos == 0 {
		b.WriteString("\n  " + passStyle.Render("No issues found.") + "\n")
	}

	return b.String()
}

func renderResult(b *strings.Builder, res domain.AnalysisResult) {
	if res.ParseError == "" && len(res.Issues) == 0 {
		return
	}

	b.WriteString("\n  " + fileStyle.Render(res.FilePath) + "\n")

	if res.ParseError != "" {
		fmt.Fprintf(b, "    %s %s\n", errorTagStyle.Render("error"), dimStyle.Render(res.ParseError))
		return
	}

	for _, issue := range res.Issues {
		renderIssue(b, issue)
	}
}

func renderIssue(b *strings.Builder, issue domain.Issue) {
	tag := severityTag(issue.Severity)

	scope := issue.Rule
	if issue.Line > 0 {
		scope = fmt.Sprintf("%s:%d", scope, issue.Line)
	}

	fmt.Fprintf(b, "    %s %s  %s %s\n",
		tag,
		ruleStyle.Render(scope),
		issue.Message,
		codeStyle.Render("["+issue.Code+"]"),
	)
	if issue.Suggestion != "" {
		fmt.Fprintf(b, "         %s\n", hintStyle.Render(issue.Suggestion))
	}
}

func severityTag(severity string) string {
	switch severity {
	case domain.SeverityError:
		return errorTagStyle.Render("error")
	case domain.SeverityWarning:
		return warnTagStyle.Render("warn ")
	default:
		return infoTagStyle.Render("info ")
	}
}

func summaryLine(report *domain.RunReport) string {
	parts := []string{
		dimStyle.Render(fmt.Sprintf("%d files", len(report.Results))),
	}
	if report.Errors > 0 {
		parts = append(parts, errorTagStyle.Render(fmt.Sprintf("%d errors", report.Errors)))
	}
	if report.Warnings > 0 {
		parts = append(parts, warnTagStyle.Render(fmt.Sprintf("%d warnings", report.Warnings)))
	}
	if report.Infos > 0 {
		parts = append(parts, infoTagStyle.Render(fmt.Sprintf("%d info", report.Infos)))
	}
	return strings.Join(parts, "  ")
}

func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}
