package model

// Clause represents one contractual provision extracted from a document
type Clause struct {
	Text  string `json:"text"`  // The clause text itself
	Index int    `json:"index"` // Position in source order (0-based)
}

// Language classifies the script/language of a text span
type Language string

const (
	LangEnglish Language = "en"    // Predominantly English text
	LangHindi   Language = "hi"    // Predominantly Devanagari/Hindi text
	LangMixed   Language = "mixed" // Bilingual English + Hindi
	LangBoth    Language = "both"  // Output-only: explanations in both languages
)

// DisplayName returns a friendly name for a language code
func (l Language) DisplayName() string {
	switch l {
	case LangEnglish:
		return "English"
	case LangHindi:
		return "Hindi (हिंदी)"
	case LangMixed:
		return "Bilingual (English + Hindi)"
	default:
		return "Unknown"
	}
}

// Finding pairs a clause with the risk categories matched in it.
// Risks are deduplicated and kept in first-match order.
type Finding struct {
	Clause Clause         `json:"clause"`
	Risks  []RiskCategory `json:"risks,omitempty"`
}

// Risky reports whether the clause matched at least one category
func (f Finding) Risky() bool {
	return len(f.Risks) > 0
}
