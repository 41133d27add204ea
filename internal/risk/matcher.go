package risk

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/psharma/contractguard/internal/lang"
	"github.com/psharma/contractguard/internal/model"
)

// minMatchRunes is the trimmed length below which a clause carries no risk signal
const minMatchRunes = 20

// Translator is the external translation collaborator. It may fail; the
// matcher proceeds without the translated variant.
type Translator interface {
	Translate(ctx context.Context, text string, target model.Language) (string, error)
}

// Matcher scans clauses against the fixed signature table
type Matcher struct {
	detector   *lang.Detector
	translator Translator // nil disables translated variants
}

// NewMatcher creates a new matcher. translator may be nil.
func NewMatcher(detector *lang.Detector, translator Translator) *Matcher {
	return &Matcher{
		detector:   detector,
		translator: translator,
	}
}

// DetectRisks returns the risk categories matched in a clause, in first-match
// order with each category appearing at most once. Works for both English and
// Hindi text. Idempotent: the same clause always yields the same result when
// the translation collaborator is deterministic or absent.
func (m *Matcher) DetectRisks(ctx context.Context, clause string) []model.RiskCategory {
	if utf8.RuneCountInString(strings.TrimSpace(clause)) < minMatchRunes {
		return nil
	}

	variants := m.variants(ctx, clause)

	var risks []model.RiskCategory
	for _, cat := range Categories {
		if matchesAny(cat, variants) {
			risks = append(risks, cat.Name)
		}
	}
	return risks
}

// variants builds the list of text variants to scan: always the lower-cased
// original, plus a lower-cased English translation for Hindi/mixed clauses
// when the collaborator delivers one. Translation failure is not fatal.
func (m *Matcher) variants(ctx context.Context, clause string) []string {
	variants := []string{strings.ToLower(clause)}

	language := m.detector.Detect(clause)
	if m.translator == nil || (language != model.LangHindi && language != model.LangMixed) {
		return variants
	}

	translated, err := m.translator.Translate(ctx, clause, model.LangEnglish)
	if err != nil || translated == "" {
		return variants
	}
	return append(variants, strings.ToLower(translated))
}

// matchesAny tests a category's signatures against each variant in order,
// stopping at the first hit (short-circuit per category, not global).
func matchesAny(cat Category, variants []string) bool {
	for _, text := range variants {
		for _, pattern := range cat.Patterns {
			if pattern.MatchString(text) {
				return true
			}
		}
	}
	return false
}
