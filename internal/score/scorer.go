package score

import (
	"context"
	"math"

	"github.com/psharma/contractguard/internal/model"
	"github.com/psharma/contractguard/internal/risk"
)

// Penalty weights. Density uses the total hit count across clauses while the
// severity penalties count each matched category once per clause; the
// asymmetry is intentional and load-bearing for the grade boundaries.
const (
	densityPenalty = 25
	highPenalty    = 8
	mediumPenalty  = 4
	lowPenalty     = 2
)

// severities is the fixed category classification
var severities = map[model.RiskCategory]model.Severity{
	model.RiskLiabilityCap:          model.SeverityHigh,
	model.RiskIndemnification:       model.SeverityHigh,
	model.RiskIPTransfer:            model.SeverityHigh,
	model.RiskDataRights:            model.SeverityHigh,
	model.RiskNonCompete:            model.SeverityMedium,
	model.RiskAutomaticRenewal:      model.SeverityMedium,
	model.RiskTerminationFee:        model.SeverityMedium,
	model.RiskUnilateralChanges:     model.SeverityMedium,
	model.RiskPaymentTerms:          model.SeverityMedium,
	model.RiskArbitrationClause:     model.SeverityLow,
	model.RiskLimitedWarranty:       model.SeverityLow,
	model.RiskJurisdiction:          model.SeverityLow,
	model.RiskConfidentialityBurden: model.SeverityMedium,
	model.RiskForceMajeureAbuse:     model.SeverityLow,
	model.RiskAssignmentRights:      model.SeverityMedium,
}

// SeverityOf returns the fixed severity for a category. Unknown categories
// default to Medium; the category set is closed so this should not occur, but
// a lookup miss must never crash an analysis.
func SeverityOf(category model.RiskCategory) model.Severity {
	if sev, ok := severities[category]; ok {
		return sev
	}
	return model.SeverityMedium
}

// HighestSeverity returns the worst severity among the matched categories
func HighestSeverity(categories []model.RiskCategory) model.Severity {
	highest := model.SeverityLow
	for _, c := range categories {
		if sev := SeverityOf(c); sev.Rank() > highest.Rank() {
			highest = sev
		}
	}
	return highest
}

// Scorer aggregates per-clause matches into a document score
type Scorer struct {
	matcher *risk.Matcher
}

// NewScorer creates a new scorer
func NewScorer(matcher *risk.Matcher) *Scorer {
	return &Scorer{matcher: matcher}
}

// Score runs the matcher over every clause and computes the document score.
// Returns the aggregate report plus the per-clause findings in source order.
// An empty document is a perfect report: score 100, grade A+, all counts 0.
func (s *Scorer) Score(ctx context.Context, clauses []model.Clause) (model.ScoreReport, []model.Finding) {
	if len(clauses) == 0 {
		return model.ScoreReport{Score: 100, Grade: "A+"}, nil
	}

	findings := make([]model.Finding, 0, len(clauses))
	for _, clause := range clauses {
		findings = append(findings, model.Finding{
			Clause: clause,
			Risks:  s.matcher.DetectRisks(ctx, clause.Text),
		})
	}

	return ScoreFindings(findings), findings
}

// ScoreFindings computes the aggregate report from already-matched findings.
// Pure aggregation; monotonically non-increasing in every hit count.
func ScoreFindings(findings []model.Finding) model.ScoreReport {
	if len(findings) == 0 {
		return model.ScoreReport{Score: 100, Grade: "A+"}
	}

	report := model.ScoreReport{TotalClauses: len(findings)}
	totalRisks := 0

	for _, f := range findings {
		if !f.Risky() {
			continue
		}
		report.RiskyClauses++
		totalRisks += len(f.Risks)

		for _, r := range f.Risks {
			switch SeverityOf(r) {
			case model.SeverityHigh:
				report.HighRiskCount++
			case model.SeverityMedium:
				report.MediumRiskCount++
			default:
				report.LowRiskCount++
			}
		}
	}

	density := float64(totalRisks) / float64(len(findings))

	score := 100.0
	score -= density * densityPenalty
	score -= float64(report.HighRiskCount) * highPenalty
	score -= float64(report.MediumRiskCount) * mediumPenalty
	score -= float64(report.LowRiskCount) * lowPenalty

	score = math.Max(0, math.Min(100, score))

	report.Grade = Grade(score)
	report.Score = math.Round(score*10) / 10
	return report
}

// Grade maps a clamped score to its letter grade. Boundaries are inclusive of
// the lower bound: 90 is an A+, 89.9 is an A.
func Grade(score float64) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}
