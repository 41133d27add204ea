package score

import (
	"context"
	"strings"
	"testing"

	"github.com/psharma/contractguard/internal/lang"
	"github.com/psharma/contractguard/internal/model"
	"github.com/psharma/contractguard/internal/risk"
)

func newTestScorer() *Scorer {
	return NewScorer(risk.NewMatcher(lang.NewDetector(), nil))
}

func TestScorer_EmptyDocumentIsPerfect(t *testing.T) {
	s := newTestScorer()

	report, findings := s.Score(context.Background(), nil)

	if report.Score != 100 {
		t.Errorf("expected score 100, got %v", report.Score)
	}
	if report.Grade != "A+" {
		t.Errorf("expected grade A+, got %q", report.Grade)
	}
	if report.TotalClauses != 0 || report.RiskyClauses != 0 ||
		report.HighRiskCount != 0 || report.MediumRiskCount != 0 || report.LowRiskCount != 0 {
		t.Errorf("expected all counts zero, got %+v", report)
	}
	if len(findings) != 0 {
		t.Errorf("expected no findings, got %d", len(findings))
	}
}

func TestScorer_CleanClausesScorePerfect(t *testing.T) {
	s := newTestScorer()

	clauses := []model.Clause{
		{Text: "The parties shall meet quarterly to review the progress of the project deliverables.", Index: 0},
		{Text: "Notices under this Agreement shall be delivered in writing to the addresses listed above.", Index: 1},
	}

	report, _ := s.Score(context.Background(), clauses)

	if report.Score != 100 || report.Grade != "A+" {
		t.Errorf("expected 100/A+, got %v/%q", report.Score, report.Grade)
	}
	if report.TotalClauses != 2 || report.RiskyClauses != 0 {
		t.Errorf("unexpected counts: %+v", report)
	}
}

func TestScoreFindings_TenHighRiskClausesGradeF(t *testing.T) {
	// 10 clauses, each matching exactly one High category:
	// density 1.0 -> 100 - 25 - 10*8 = -5, clamped to 0, grade F
	findings := make([]model.Finding, 10)
	for i := range findings {
		findings[i] = model.Finding{
			Clause: model.Clause{Text: "x", Index: i},
			Risks:  []model.RiskCategory{model.RiskLiabilityCap},
		}
	}

	report := ScoreFindings(findings)

	if report.Score != 0 {
		t.Errorf("expected clamped score 0, got %v", report.Score)
	}
	if report.Grade != "F" {
		t.Errorf("expected grade F, got %q", report.Grade)
	}
	if report.HighRiskCount != 10 || report.RiskyClauses != 10 {
		t.Errorf("unexpected counts: %+v", report)
	}
}

func TestScoreFindings_DensityCountsEveryHit(t *testing.T) {
	// One clause with 3 categories contributes 3 toward density
	findings := []model.Finding{
		{
			Clause: model.Clause{Text: "x"},
			Risks: []model.RiskCategory{
				model.RiskLiabilityCap,      // High
				model.RiskPaymentTerms,      // Medium
				model.RiskArbitrationClause, // Low
			},
		},
	}

	report := ScoreFindings(findings)

	// 100 - 3*25 - 8 - 4 - 2 = 11
	if report.Score != 11 {
		t.Errorf("expected score 11, got %v", report.Score)
	}
	if report.Grade != "F" {
		t.Errorf("expected grade F, got %q", report.Grade)
	}
	if report.HighRiskCount != 1 || report.MediumRiskCount != 1 || report.LowRiskCount != 1 {
		t.Errorf("unexpected severity counts: %+v", report)
	}
}

func TestScoreFindings_ScoreAlwaysInRange(t *testing.T) {
	cases := [][]model.Finding{
		nil,
		{{Clause: model.Clause{Text: "x"}}},
		{{Clause: model.Clause{Text: "x"}, Risks: []model.RiskCategory{model.RiskJurisdiction}}},
	}
	// Pile on enough hits to drive the raw score far below zero
	overload := model.Finding{Clause: model.Clause{Text: "x"}}
	for _, cat := range []model.RiskCategory{
		model.RiskLiabilityCap, model.RiskIndemnification, model.RiskIPTransfer,
		model.RiskDataRights, model.RiskNonCompete, model.RiskAutomaticRenewal,
	} {
		overload.Risks = append(overload.Risks, cat)
	}
	cases = append(cases, []model.Finding{overload})

	for i, findings := range cases {
		report := ScoreFindings(findings)
		if report.Score < 0 || report.Score > 100 {
			t.Errorf("case %d: score %v out of range", i, report.Score)
		}
		if Grade(report.Score) == "" {
			t.Errorf("case %d: empty grade", i)
		}
	}
}

func TestGrade_Thresholds(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, "A+"},
		{90, "A+"},
		{89.9, "A"},
		{85, "A"},
		{80, "A"},
		{79.9, "B"},
		{70, "B"},
		{60, "C"},
		{50, "D"},
		{49.9, "F"},
		{0, "F"},
	}

	for _, tt := range tests {
		if got := Grade(tt.score); got != tt.want {
			t.Errorf("Grade(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestSeverityOf(t *testing.T) {
	if got := SeverityOf(model.RiskLiabilityCap); got != model.SeverityHigh {
		t.Errorf("Liability Cap should be High, got %q", got)
	}
	if got := SeverityOf(model.RiskArbitrationClause); got != model.SeverityLow {
		t.Errorf("Arbitration Clause should be Low, got %q", got)
	}
	// Defensive default for a category outside the closed set
	if got := SeverityOf(model.RiskCategory("Unknown Thing")); got != model.SeverityMedium {
		t.Errorf("unknown category should default to Medium, got %q", got)
	}
}

func TestHighestSeverity(t *testing.T) {
	got := HighestSeverity([]model.RiskCategory{
		model.RiskJurisdiction,    // Low
		model.RiskPaymentTerms,    // Medium
		model.RiskIndemnification, // High
	})
	if got != model.SeverityHigh {
		t.Errorf("expected High, got %q", got)
	}

	if got := HighestSeverity(nil); got != model.SeverityLow {
		t.Errorf("expected Low floor for empty input, got %q", got)
	}
}

func TestScorer_EndToEndSample(t *testing.T) {
	s := newTestScorer()

	text := []string{
		"The Company's total liability under this Agreement shall be limited to the amount paid by Client in the preceding 12 months.",
		"Client agrees to indemnify, defend, and hold harmless the Company from any claims, damages, or expenses.",
		"The parties shall meet quarterly to review deliverables and discuss the project roadmap in good faith.",
	}
	clauses := make([]model.Clause, len(text))
	for i, tx := range text {
		clauses[i] = model.Clause{Text: tx, Index: i}
	}

	report, findings := s.Score(context.Background(), clauses)

	if report.TotalClauses != 3 {
		t.Errorf("expected 3 clauses, got %d", report.TotalClauses)
	}
	if report.RiskyClauses != 2 {
		t.Errorf("expected 2 risky clauses, got %d", report.RiskyClauses)
	}
	if report.HighRiskCount < 2 {
		t.Errorf("expected at least 2 high-severity hits, got %d", report.HighRiskCount)
	}
	if len(findings) != 3 {
		t.Fatalf("expected 3 findings, got %d", len(findings))
	}
	for i, f := range findings {
		if f.Clause.Index != i {
			t.Errorf("finding %d out of source order (index %d)", i, f.Clause.Index)
		}
	}
	if !strings.Contains(report.Assessment(), "risk") {
		t.Errorf("unexpected assessment text: %q", report.Assessment())
	}
}
