package explain

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/psharma/contractguard/internal/model"
)

// Strategy is one way of producing an explanation. Strategies are tried in
// order; the first success wins.
type Strategy interface {
	Name() string
	Explain(ctx context.Context, req GenerateRequest) (string, error)
}

// Explainer produces clause explanations through an ordered fallback chain:
// generative provider first (when configured), static templates last. The
// template strategy cannot fail, so Explain always returns text.
type Explainer struct {
	strategies []Strategy
}

// NewExplainer builds the strategy chain from configuration. A provider
// construction error disables generation but never fails the explainer.
func NewExplainer(cfg model.LLMConfig) *Explainer {
	var strategies []Strategy

	provider, err := NewProvider(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: explanation provider disabled: %v\n", err)
	} else if provider != nil {
		strategies = append(strategies, &generativeStrategy{provider: provider})
	}

	strategies = append(strategies, &templateStrategy{})
	return &Explainer{strategies: strategies}
}

// NewTemplateExplainer builds an explainer that only uses static templates
func NewTemplateExplainer() *Explainer {
	return &Explainer{strategies: []Strategy{&templateStrategy{}}}
}

// Generative reports whether a generative strategy heads the chain
func (e *Explainer) Generative() bool {
	return len(e.strategies) > 1
}

// Explain returns an explanation for a clause. Every strategy failure is
// logged and the next strategy is tried; the caller always receives text.
func (e *Explainer) Explain(ctx context.Context, clause string, language model.Language, risks ...model.RiskCategory) string {
	req := GenerateRequest{
		Clause:   clause,
		Risks:    risks,
		Language: language,
	}

	for _, strategy := range e.strategies {
		text, err := strategy.Explain(ctx, req)
		if err == nil {
			return text
		}
		fmt.Fprintf(os.Stderr, "Warning: %s explanation failed: %v\n", strategy.Name(), err)
	}

	// Unreachable while the template strategy terminates the chain
	return TemplateExplanation("", language)
}

// generativeStrategy delegates to an external text-generation provider.
// Single attempt, no retry: resilience belongs at the collaborator boundary.
type generativeStrategy struct {
	provider Provider
}

func (s *generativeStrategy) Name() string {
	return s.provider.Name()
}

func (s *generativeStrategy) Explain(ctx context.Context, req GenerateRequest) (string, error) {
	return s.provider.Generate(ctx, req)
}

// templateStrategy serves the static lookup tables. It never fails.
type templateStrategy struct{}

func (s *templateStrategy) Name() string {
	return "template"
}

func (s *templateStrategy) Explain(_ context.Context, req GenerateRequest) (string, error) {
	if len(req.Risks) == 0 {
		return TemplateExplanation("", req.Language), nil
	}

	// Multi-risk clauses: join the first two categories' templates
	limit := len(req.Risks)
	if limit > 2 {
		limit = 2
	}

	sections := make([]string, 0, limit)
	for _, r := range req.Risks[:limit] {
		sections = append(sections, TemplateExplanation(r, req.Language))
	}
	return strings.Join(sections, "\n\n---\n\n"), nil
}
