package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/psharma/contractguard/internal/model"
	"github.com/psharma/contractguard/internal/score"
)

const reportRule = "============================================================"

// Renderer writes analysis reports in text, JSON, and Markdown formats
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a new renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as JSON to the given path
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderText builds the plain-text assessment report
func (r *Renderer) RenderText(report *model.Report) string {
	var b strings.Builder

	b.WriteString(reportRule + "\n")
	b.WriteString("CONTRACT RISK ASSESSMENT REPORT\n")
	b.WriteString(reportRule + "\n\n")
	b.WriteString(fmt.Sprintf("Generated: %s\n", report.AnalyzedAt.Format("2006-01-02 15:04:05")))
	if report.Document != "" {
		b.WriteString(fmt.Sprintf("Document: %s\n", report.Document))
	}
	b.WriteString(fmt.Sprintf("Language: %s\n", report.Language.DisplayName()))
	b.WriteString(fmt.Sprintf("\nRISK SCORE: %.1f/100 (Grade: %s)\n", report.Score.Score, report.Score.Grade))
	b.WriteString(fmt.Sprintf("Total Clauses Analyzed: %d\n", report.Score.TotalClauses))
	b.WriteString(fmt.Sprintf("Risky Clauses Found: %d\n", report.Score.RiskyClauses))
	b.WriteString(fmt.Sprintf("  - High Risk: %d\n", report.Score.HighRiskCount))
	b.WriteString(fmt.Sprintf("  - Medium Risk: %d\n", report.Score.MediumRiskCount))
	b.WriteString(fmt.Sprintf("  - Low Risk: %d\n", report.Score.LowRiskCount))

	b.WriteString("\n" + reportRule + "\n")
	b.WriteString("DETAILED FINDINGS\n")
	b.WriteString(reportRule + "\n\n")

	for _, f := range report.RiskyFindings() {
		b.WriteString(fmt.Sprintf("\nCLAUSE #%d\n", f.Clause.Index+1))
		b.WriteString("------------------------------------------------------------\n")
		b.WriteString(fmt.Sprintf("Text: %s\n\n", preview(f.Clause.Text, 200)))
		b.WriteString(fmt.Sprintf("Risks Identified: %s\n", joinRisks(f.Risks)))
		for _, risk := range f.Risks {
			b.WriteString(fmt.Sprintf("  - %s: %s Risk\n", risk, score.SeverityOf(risk)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + reportRule + "\n")
	b.WriteString("RECOMMENDATION\n")
	b.WriteString(reportRule + "\n")
	b.WriteString(report.Score.Assessment() + "\n")

	if r.includeFooter {
		b.WriteString("\nShare this report with your legal advisor for professional review.\n")
	}

	return b.String()
}

// RenderTextFile writes the plain-text report to the given path
func (r *Renderer) RenderTextFile(report *model.Report, path string) error {
	if err := os.WriteFile(path, []byte(r.RenderText(report)), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown builds a Markdown version of the report
func (r *Renderer) RenderMarkdown(report *model.Report) string {
	var b strings.Builder

	b.WriteString("# Contract Risk Assessment\n\n")
	if report.Document != "" {
		b.WriteString(fmt.Sprintf("**Document:** %s  \n", report.Document))
	}
	b.WriteString(fmt.Sprintf("**Language:** %s  \n", report.Language.DisplayName()))
	b.WriteString(fmt.Sprintf("**Generated:** %s\n\n", report.AnalyzedAt.Format("2006-01-02 15:04:05 UTC")))

	b.WriteString(fmt.Sprintf("## Score: %.1f/100 (Grade %s)\n\n", report.Score.Score, report.Score.Grade))
	b.WriteString("| Metric | Count |\n|---|---|\n")
	b.WriteString(fmt.Sprintf("| Total clauses | %d |\n", report.Score.TotalClauses))
	b.WriteString(fmt.Sprintf("| Risky clauses | %d |\n", report.Score.RiskyClauses))
	b.WriteString(fmt.Sprintf("| High risk | %d |\n", report.Score.HighRiskCount))
	b.WriteString(fmt.Sprintf("| Medium risk | %d |\n", report.Score.MediumRiskCount))
	b.WriteString(fmt.Sprintf("| Low risk | %d |\n\n", report.Score.LowRiskCount))

	b.WriteString(fmt.Sprintf("> %s\n\n", report.Score.Assessment()))

	risky := report.RiskyFindings()
	if len(risky) > 0 {
		b.WriteString("## Flagged Clauses\n\n")
		for _, f := range risky {
			severity := score.HighestSeverity(f.Risks)
			b.WriteString(fmt.Sprintf("### Clause %d: %s (%s Risk)\n\n", f.Clause.Index+1, joinRisks(f.Risks), severity))
			b.WriteString(fmt.Sprintf("```\n%s\n```\n\n", preview(f.Clause.Text, 400)))
		}
	}

	if r.includeFooter {
		b.WriteString("---\n\n*Generated by contractguard. Not legal advice.*\n")
	}

	return b.String()
}

// RenderMarkdownFile writes the Markdown report to the given path
func (r *Renderer) RenderMarkdownFile(report *model.Report, path string) error {
	if err := os.WriteFile(path, []byte(r.RenderMarkdown(report)), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderSummary prints a short result summary to stderr
func (r *Renderer) RenderSummary(report *model.Report) {
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Score:          %.1f/100 (Grade %s)\n", report.Score.Score, report.Score.Grade)
	fmt.Fprintf(os.Stderr, "  Clauses:        %d analyzed, %d risky\n", report.Score.TotalClauses, report.Score.RiskyClauses)
	fmt.Fprintf(os.Stderr, "  Severity:       %d high / %d medium / %d low\n",
		report.Score.HighRiskCount, report.Score.MediumRiskCount, report.Score.LowRiskCount)
	fmt.Fprintf(os.Stderr, "  Assessment:     %s\n", report.Score.Assessment())
	fmt.Fprintf(os.Stderr, "\n")
}

// preview truncates clause text for display, by runes
func preview(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}

// joinRisks renders a category list as a comma-separated string
func joinRisks(risks []model.RiskCategory) string {
	names := make([]string, 0, len(risks))
	for _, r := range risks {
		names = append(names, string(r))
	}
	return strings.Join(names, ", ")
}
