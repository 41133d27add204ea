package model

// RiskCategory is a named class of contractually risky pattern
type RiskCategory string

const (
	RiskLiabilityCap          RiskCategory = "Liability Cap"
	RiskIndemnification       RiskCategory = "Indemnification"
	RiskAutomaticRenewal      RiskCategory = "Automatic Renewal"
	RiskTerminationFee        RiskCategory = "Termination Fee"
	RiskIPTransfer            RiskCategory = "IP Transfer"
	RiskNonCompete            RiskCategory = "Non-Compete"
	RiskArbitrationClause     RiskCategory = "Arbitration Clause"
	RiskUnilateralChanges     RiskCategory = "Unilateral Changes"
	RiskLimitedWarranty       RiskCategory = "Limited Warranty"
	RiskDataRights            RiskCategory = "Data Rights"
	RiskJurisdiction          RiskCategory = "Jurisdiction"
	RiskConfidentialityBurden RiskCategory = "Confidentiality Burden"
	RiskPaymentTerms          RiskCategory = "Payment Terms"
	RiskForceMajeureAbuse     RiskCategory = "Force Majeure Abuse"
	RiskAssignmentRights      RiskCategory = "Assignment Rights"
)

// Severity is the fixed risk level of a category
type Severity string

const (
	SeverityHigh   Severity = "High"
	SeverityMedium Severity = "Medium"
	SeverityLow    Severity = "Low"
)

// Rank orders severities for comparison (higher is worse)
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}
