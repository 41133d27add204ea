package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/psharma/contractguard/internal/explain"
	"github.com/psharma/contractguard/internal/lang"
	"github.com/psharma/contractguard/internal/model"
	"github.com/psharma/contractguard/internal/risk"
	"github.com/psharma/contractguard/internal/score"
	"github.com/psharma/contractguard/internal/split"
	"github.com/psharma/contractguard/internal/translate"
)

// Pipeline orchestrates the complete contract analysis
type Pipeline struct {
	splitter  *split.Splitter
	detector  *lang.Detector
	scorer    *score.Scorer
	explainer *explain.Explainer
	config    *model.Config
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	detector := lang.NewDetector()

	// Translation is optional; without it matching runs on untranslated text only
	var translator risk.Translator
	if cfg.Translate.Enabled {
		translator = translate.NewClient(cfg.Translate)
	}

	matcher := risk.NewMatcher(detector, translator)

	return &Pipeline{
		splitter:  split.NewSplitter(),
		detector:  detector,
		scorer:    score.NewScorer(matcher),
		explainer: explain.NewExplainer(cfg.LLM),
		config:    cfg,
	}
}

// Analyze runs the full split -> match -> score pipeline over contract text.
// Each invocation is independent and owns its own data; there is no state
// shared between runs.
func (p *Pipeline) Analyze(ctx context.Context, text, document string) *model.Report {
	clauses := p.splitter.Split(text)

	// Degenerate split: treat the whole document as a single clause
	if len(clauses) == 0 {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			clauses = []model.Clause{{Text: trimmed, Index: 0}}
		}
	}

	scoreReport, findings := p.scorer.Score(ctx, clauses)

	return &model.Report{
		Document:   document,
		AnalyzedAt: time.Now().UTC(),
		Language:   p.detector.Detect(text),
		Findings:   findings,
		Score:      scoreReport,
	}
}

// Explain produces an explanation for one clause, independent of scoring
func (p *Pipeline) Explain(ctx context.Context, clause string, language model.Language, risks ...model.RiskCategory) string {
	return p.explainer.Explain(ctx, clause, language, risks...)
}

// GenerativeExplanations reports whether a generative provider is configured
func (p *Pipeline) GenerativeExplanations() bool {
	return p.explainer.Generative()
}
