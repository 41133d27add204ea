package risk

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/psharma/contractguard/internal/lang"
	"github.com/psharma/contractguard/internal/model"
)

// fakeTranslator returns a canned translation or error
type fakeTranslator struct {
	out   string
	err   error
	calls int
}

func (f *fakeTranslator) Translate(_ context.Context, _ string, _ model.Language) (string, error) {
	f.calls++
	return f.out, f.err
}

func newTestMatcher(tr Translator) *Matcher {
	return NewMatcher(lang.NewDetector(), tr)
}

func TestMatcher_LiabilityCap(t *testing.T) {
	m := newTestMatcher(nil)

	clause := "The Company's total liability under this Agreement shall be limited to the amount paid by Client in the preceding 12 months."
	risks := m.DetectRisks(context.Background(), clause)

	if len(risks) == 0 {
		t.Fatal("expected at least one risk")
	}
	if risks[0] != model.RiskLiabilityCap {
		t.Errorf("expected %q first, got %q", model.RiskLiabilityCap, risks[0])
	}
}

func TestMatcher_ShortClauseHasNoSignal(t *testing.T) {
	m := newTestMatcher(nil)

	for _, clause := range []string{"", "   ", "indemnify", "no refund here"} {
		if risks := m.DetectRisks(context.Background(), clause); len(risks) != 0 {
			t.Errorf("expected no risks for short clause %q, got %v", clause, risks)
		}
	}
}

func TestMatcher_DeduplicatesWithinCategory(t *testing.T) {
	m := newTestMatcher(nil)

	// Matches both "indemnify" and "hold harmless" signatures of Indemnification
	clause := "Client agrees to indemnify, defend, and hold harmless the Company from any and all claims."
	risks := m.DetectRisks(context.Background(), clause)

	count := 0
	for _, r := range risks {
		if r == model.RiskIndemnification {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected Indemnification exactly once, got %d in %v", count, risks)
	}
}

func TestMatcher_Idempotent(t *testing.T) {
	m := newTestMatcher(nil)

	clause := "All payments are non-refundable and the Company reserves the right to modify these terms at its sole discretion."
	first := m.DetectRisks(context.Background(), clause)
	second := m.DetectRisks(context.Background(), clause)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical results, got %v then %v", first, second)
	}
}

func TestMatcher_MultipleCategoriesInTableOrder(t *testing.T) {
	m := newTestMatcher(nil)

	clause := "All payments are non-refundable and the Company reserves the right to modify these terms at its sole discretion."
	risks := m.DetectRisks(context.Background(), clause)

	want := []model.RiskCategory{model.RiskUnilateralChanges, model.RiskPaymentTerms}
	if !reflect.DeepEqual(risks, want) {
		t.Errorf("expected %v, got %v", want, risks)
	}
}

func TestMatcher_HindiSignatureWithoutTranslation(t *testing.T) {
	m := newTestMatcher(nil)

	clause := "इस अनुबंध का स्वचालित नवीनीकरण प्रत्येक वर्ष होगा जब तक कि ग्राहक लिखित सूचना प्रदान नहीं करता।"
	risks := m.DetectRisks(context.Background(), clause)

	found := false
	for _, r := range risks {
		if r == model.RiskAutomaticRenewal {
			found = true
		}
	}
	if !found {
		t.Errorf("expected Automatic Renewal via Hindi signature, got %v", risks)
	}
}

func TestMatcher_TranslationFailureIsNotFatal(t *testing.T) {
	tr := &fakeTranslator{err: errors.New("service unavailable")}
	m := newTestMatcher(tr)

	clause := "इस समझौते के तहत कंपनी का अधिकतम दायित्व भुगतान की गई राशि तक सीमित रहेगा।"
	risks := m.DetectRisks(context.Background(), clause)

	if tr.calls == 0 {
		t.Error("expected the translator to be attempted for a Hindi clause")
	}
	// Hindi Liability Cap signature still matches the untranslated variant
	if len(risks) == 0 || risks[0] != model.RiskLiabilityCap {
		t.Errorf("expected Liability Cap from untranslated variant, got %v", risks)
	}
}

func TestMatcher_TranslatedVariantIsScanned(t *testing.T) {
	// A Hindi clause whose risk has no Devanagari signature: only the
	// translated English variant can catch it.
	tr := &fakeTranslator{out: "Disputes shall be resolved through binding arbitration under the applicable rules."}
	m := newTestMatcher(tr)

	clause := "इस समझौते के तहत सभी विवादों का समाधान लागू नियमों के अनुसार बाध्यकारी तरीके से किया जाएगा।"
	risks := m.DetectRisks(context.Background(), clause)

	found := false
	for _, r := range risks {
		if r == model.RiskArbitrationClause {
			found = true
		}
	}
	if !found {
		t.Errorf("expected Arbitration Clause via translated variant, got %v", risks)
	}
}

func TestMatcher_EnglishClauseSkipsTranslator(t *testing.T) {
	tr := &fakeTranslator{out: "unused"}
	m := newTestMatcher(tr)

	m.DetectRisks(context.Background(), "This agreement contains exclusive jurisdiction language for the courts of Delhi only.")

	if tr.calls != 0 {
		t.Errorf("translator should not be called for English clauses, got %d calls", tr.calls)
	}
}

func TestCategories_TableIsWellFormed(t *testing.T) {
	if len(Categories) != 15 {
		t.Fatalf("expected 15 categories, got %d", len(Categories))
	}

	seen := make(map[model.RiskCategory]bool)
	for _, cat := range Categories {
		if seen[cat.Name] {
			t.Errorf("duplicate category %q", cat.Name)
		}
		seen[cat.Name] = true
		if len(cat.Patterns) == 0 {
			t.Errorf("category %q has no signatures", cat.Name)
		}
	}
}
