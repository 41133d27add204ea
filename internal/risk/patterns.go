package risk

import (
	"regexp"

	"github.com/psharma/contractguard/internal/model"
)

// Category pairs a risk category with its detection signatures.
// Signatures are deliberately redundant across English and Hindi phrasing
// rather than relying solely on translation: translation is an unreliable
// external dependency and matching must degrade gracefully without it.
type Category struct {
	Name     model.RiskCategory
	Patterns []*regexp.Regexp
}

// Categories is the fixed signature table. It is an ordered slice, not a map:
// iteration order determines which categories appear first when several match
// in one clause, and that order must be reproducible across runs.
var Categories = []Category{
	{
		Name: model.RiskLiabilityCap,
		Patterns: compile(
			`liability.*limited\s+to`,
			`maximum\s+liability`,
			`shall\s+not\s+exceed`,
			`liability.*capped`,
			`दायित्व.*सीमित`,
			`अधिकतम\s+दायित्व`,
		),
	},
	{
		Name: model.RiskIndemnification,
		Patterns: compile(
			`indemnify`,
			`hold\s+harmless`,
			`defend.*against`,
			`indemnification`,
			`क्षतिपूर्ति`,
			`हानि\s+रहित`,
			`मुआवजा`,
		),
	},
	{
		Name: model.RiskAutomaticRenewal,
		Patterns: compile(
			`automatically\s+renew`,
			`auto-?renew`,
			`shall\s+renew\s+unless`,
			`perpetual\s+renewal`,
			`स्वचालित.*नवीनीकरण`,
			`स्वतः.*नवीकरण`,
		),
	},
	{
		Name: model.RiskTerminationFee,
		Patterns: compile(
			`termination\s+fee`,
			`early\s+termination.*penalty`,
			`cancellation\s+charge`,
			`exit\s+fee`,
			`समाप्ति\s+शुल्क`,
			`जुर्माना`,
			`रद्दीकरण\s+शुल्क`,
		),
	},
	{
		Name: model.RiskIPTransfer,
		Patterns: compile(
			`intellectual\s+property.*transfer`,
			`ownership.*work\s+product`,
			`all\s+rights.*assigned`,
			`IP.*belongs\s+to`,
			`बौद्धिक\s+संपदा.*हस्तांतरण`,
			`स्वामित्व.*हस्तांतरित`,
		),
	},
	{
		Name: model.RiskNonCompete,
		Patterns: compile(
			`non-?compete`,
			`shall\s+not.*compet`,
			`restrictive\s+covenant`,
			`non-?solicitation`,
			`प्रतिस्पर्धा.*नहीं`,
			`प्रतिबंधात्मक`,
		),
	},
	{
		Name: model.RiskArbitrationClause,
		Patterns: compile(
			`mandatory\s+arbitration`,
			`binding\s+arbitration`,
			`arbitration.*exclusive\s+remedy`,
			`waive.*right.*jury`,
			`अनिवार्य\s+मध्यस्थता`,
			`बाध्यकारी\s+मध्यस्थता`,
		),
	},
	{
		Name: model.RiskUnilateralChanges,
		Patterns: compile(
			`modify.*at\s+any\s+time`,
			`change.*without\s+notice`,
			`reserve.*right.*modify`,
			`sole\s+discretion`,
			`बिना\s+सूचना.*बदल`,
			`किसी\s+भी\s+समय.*संशोधन`,
		),
	},
	{
		Name: model.RiskLimitedWarranty,
		Patterns: compile(
			`as\s+is`,
			`no\s+warranty`,
			`warranty\s+disclaim`,
			`without\s+warranty.*kind`,
			`कोई\s+वारंटी\s+नहीं`,
			`जैसा\s+है`,
		),
	},
	{
		Name: model.RiskDataRights,
		Patterns: compile(
			`data.*belong.*to`,
			`unlimited.*data\s+rights`,
			`perpetual.*data\s+license`,
			`use.*data.*any\s+purpose`,
			`डेटा.*अधिकार`,
			`असीमित.*उपयोग`,
		),
	},
	{
		Name: model.RiskJurisdiction,
		Patterns: compile(
			`exclusive\s+jurisdiction`,
			`courts?\s+of.*shall\s+have\s+jurisdiction`,
			`forum.*venue`,
			`अनन्य\s+क्षेत्राधिकार`,
		),
	},
	{
		Name: model.RiskConfidentialityBurden,
		Patterns: compile(
			`confidential.*perpetuity`,
			`confidential.*indefinitely`,
			`गोपनीय.*हमेशा`,
		),
	},
	{
		Name: model.RiskPaymentTerms,
		Patterns: compile(
			`non-?refundable`,
			`payment.*advance`,
			`no\s+refund`,
			`वापसी\s+नहीं`,
			`अग्रिम\s+भुगतान`,
		),
	},
	{
		Name: model.RiskForceMajeureAbuse,
		Patterns: compile(
			`force\s+majeure.*broadly`,
			`suspend.*force\s+majeure`,
			`अप्रत्याशित\s+घटना`,
		),
	},
	{
		Name: model.RiskAssignmentRights,
		Patterns: compile(
			`may\s+assign.*without\s+consent`,
			`freely\s+assign`,
			`सहमति\s+के\s+बिना.*हस्तांतरण`,
		),
	},
}

// compile builds case-insensitive signature regexps
func compile(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(`(?i)`+p))
	}
	return compiled
}
