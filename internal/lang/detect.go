package lang

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/abadojack/whatlanggo"

	"github.com/psharma/contractguard/internal/model"
)

// Devanagari block thresholds for classifying a span as Hindi or bilingual
const (
	hindiRatioThreshold = 0.5
	mixedRatioThreshold = 0.1
	minDetectRunes      = 10  // Below this there is not enough signal
	statisticalSample   = 500 // Runes fed to the statistical fallback
)

// Detector classifies text spans as English, Hindi, or mixed.
// Detection fails open: anything it cannot classify is English, because the
// downstream matcher still runs English patterns on English-classified text.
type Detector struct{}

// NewDetector creates a new language detector
func NewDetector() *Detector {
	return &Detector{}
}

// Detect classifies text as English, Hindi, or mixed
func (d *Detector) Detect(text string) model.Language {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < minDetectRunes {
		return model.LangEnglish
	}

	hindiChars := 0
	wordChars := 0
	runes := []rune(text)
	for _, r := range runes {
		if isDevanagari(r) {
			hindiChars++
		}
		if isWordChar(r) {
			wordChars++
		}
	}

	if wordChars == 0 {
		return model.LangEnglish
	}

	ratio := float64(hindiChars) / float64(wordChars)
	switch {
	case ratio > hindiRatioThreshold:
		return model.LangHindi
	case ratio > mixedRatioThreshold:
		return model.LangMixed
	}

	// Low Devanagari ratio: fall back to statistical identification on a sample
	sample := runes
	if len(sample) > statisticalSample {
		sample = sample[:statisticalSample]
	}
	info := whatlanggo.Detect(string(sample))
	if info.Lang == whatlanggo.Hin {
		return model.LangHindi
	}
	return model.LangEnglish
}

// ContainsHindiScript reports whether the text has any Devanagari characters
func ContainsHindiScript(text string) bool {
	for _, r := range text {
		if isDevanagari(r) {
			return true
		}
	}
	return false
}

// isDevanagari reports whether r falls in the Devanagari Unicode block
func isDevanagari(r rune) bool {
	return r >= 0x0900 && r <= 0x097F
}

// isWordChar mirrors a Unicode-aware \w class. Go's regexp \w is ASCII-only,
// which would zero out the denominator for pure Hindi text.
func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
