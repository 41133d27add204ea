package model

import "time"

// Report represents a complete contract analysis
type Report struct {
	Document   string    `json:"document,omitempty"` // Source file name, if any
	AnalyzedAt time.Time `json:"analyzed_at"`        // When the analysis ran
	Language   Language  `json:"language"`           // Detected document language

	Findings []Finding   `json:"findings"` // Per-clause risk matches, source order
	Score    ScoreReport `json:"score"`    // Aggregate score and grade
}

// RiskyFindings returns only the findings with at least one matched category
func (r *Report) RiskyFindings() []Finding {
	var risky []Finding
	for _, f := range r.Findings {
		if f.Risky() {
			risky = append(risky, f)
		}
	}
	return risky
}

// ScoreReport is the aggregate risk assessment for a document.
// Immutable once computed; a fresh one is created per analysis run.
type ScoreReport struct {
	Score           float64 `json:"score"`             // 0-100, one decimal
	Grade           string  `json:"grade"`             // A+ through F
	TotalClauses    int     `json:"total_clauses"`     // Clauses analyzed
	RiskyClauses    int     `json:"risky_clauses"`     // Clauses with >= 1 match
	HighRiskCount   int     `json:"high_risk_count"`   // High-severity category hits
	MediumRiskCount int     `json:"medium_risk_count"` // Medium-severity category hits
	LowRiskCount    int     `json:"low_risk_count"`    // Low-severity category hits
}

// Assessment returns the overall recommendation line for the score
func (s ScoreReport) Assessment() string {
	switch {
	case s.Score >= 80:
		return "This contract appears relatively safe. Review flagged items as a precaution."
	case s.Score >= 60:
		return "This contract has moderate risks. Carefully review all flagged clauses."
	default:
		return "This contract has significant risks. Professional legal review is strongly recommended."
	}
}
