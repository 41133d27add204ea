package explain

import (
	"strings"
	"testing"

	"github.com/psharma/contractguard/internal/model"
	"github.com/psharma/contractguard/internal/risk"
)

func TestEnglishTemplates_CoverEveryCategory(t *testing.T) {
	for _, cat := range risk.Categories {
		if _, ok := englishTemplates[cat.Name]; !ok {
			t.Errorf("category %q has no English template", cat.Name)
		}
	}
	if len(englishTemplates) != len(risk.Categories) {
		t.Errorf("template table size %d does not match category table size %d",
			len(englishTemplates), len(risk.Categories))
	}
}

func TestTemplateExplanation_EnglishSections(t *testing.T) {
	got := TemplateExplanation(model.RiskAutomaticRenewal, model.LangEnglish)

	for _, section := range []string{"**Meaning:**", "**Risk:**", "**Who Benefits:**", "**Recommendation:**"} {
		if !strings.Contains(got, section) {
			t.Errorf("missing section %q in %q", section, got)
		}
	}
	if !strings.Contains(got, "renews automatically") {
		t.Errorf("expected the Automatic Renewal record, got %q", got)
	}
}

func TestTemplateExplanation_HindiSubsetAndFallback(t *testing.T) {
	// Documented subset: full Hindi record
	got := TemplateExplanation(model.RiskIndemnification, model.LangHindi)
	if !strings.Contains(got, "कानूनी लागत") {
		t.Errorf("expected the Hindi Indemnification record, got %q", got)
	}

	// Everything else: generic Hindi fallback
	got = TemplateExplanation(model.RiskNonCompete, model.LangHindi)
	if !strings.Contains(got, "संभावित जोखिम") {
		t.Errorf("expected the generic Hindi fallback, got %q", got)
	}
	if !strings.Contains(got, "**सिफारिश:**") {
		t.Errorf("expected Hindi section headers, got %q", got)
	}
}

func TestTemplateExplanation_UnknownCategory(t *testing.T) {
	got := TemplateExplanation(model.RiskCategory("Mystery Clause"), model.LangEnglish)
	if !strings.Contains(got, "legal professional") {
		t.Errorf("expected the generic English fallback, got %q", got)
	}

	if got := TemplateExplanation("", model.LangEnglish); !strings.Contains(got, "legal professional") {
		t.Errorf("expected generic text for empty category, got %q", got)
	}
}

func TestNewProvider_Factory(t *testing.T) {
	if p, err := NewProvider(model.LLMConfig{}); err != nil || p != nil {
		t.Errorf("empty provider should disable generation, got %v, %v", p, err)
	}

	if _, err := NewProvider(model.LLMConfig{Provider: "groq"}); err == nil {
		t.Error("groq without an API key should fail")
	}
	if _, err := NewProvider(model.LLMConfig{Provider: "openai"}); err == nil {
		t.Error("openai without an API key should fail")
	}

	p, err := NewProvider(model.LLMConfig{Provider: "ollama"})
	if err != nil || p == nil {
		t.Errorf("ollama needs no API key, got %v, %v", p, err)
	}
	if p.Name() != "ollama" {
		t.Errorf("expected ollama provider, got %q", p.Name())
	}

	if _, err := NewProvider(model.LLMConfig{Provider: "smoke-signals"}); err == nil {
		t.Error("unknown provider should fail")
	}
}

func TestNewProvider_GroqDefaults(t *testing.T) {
	p, err := NewProvider(model.LLMConfig{Provider: "groq", APIKey: "gsk_test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != "groq" {
		t.Errorf("expected groq provider, got %q", p.Name())
	}
}
