package explain

import (
	"context"
	"fmt"
	"strings"

	"github.com/psharma/contractguard/internal/model"
)

// Provider defines the interface for generative explanation backends
type Provider interface {
	// Name returns the provider name
	Name() string

	// Generate produces a free-form explanation for the request
	Generate(ctx context.Context, req GenerateRequest) (string, error)

	// IsAvailable checks if the provider is properly configured and reachable
	IsAvailable(ctx context.Context) bool
}

// GenerateRequest contains the input for a generative explanation
type GenerateRequest struct {
	// Clause is the contract clause text to explain
	Clause string

	// Risks are the categories matched in the clause (may be empty)
	Risks []model.RiskCategory

	// Language selects the explanation language: en, hi, or both
	Language model.Language
}

// systemPrompt frames the assistant for all providers
const systemPrompt = "You are a helpful legal assistant that explains contract clauses " +
	"in simple, practical language. You focus on real-world implications and actionable advice."

// languageInstruction returns the language-specific lead-in for the prompt
func languageInstruction(language model.Language) string {
	switch language {
	case model.LangHindi:
		return "Explain in Hindi (हिंदी में समझाएं). Use simple Hindi that common people can understand."
	case model.LangBoth:
		return "Provide explanation in both English and Hindi side by side."
	default:
		return "Explain in clear, simple English."
	}
}

// BuildPrompt constructs the user prompt for a generative explanation.
// Single-risk and risk-free clauses get the four-section breakdown; clauses
// with several matched categories get the combined-risk variant.
func BuildPrompt(req GenerateRequest) string {
	if len(req.Risks) > 1 {
		names := make([]string, 0, len(req.Risks))
		for _, r := range req.Risks {
			names = append(names, string(r))
		}

		return fmt.Sprintf(`%s

This contract clause has multiple risk factors: %s

Provide a comprehensive explanation covering:
1. **Overall Meaning** - What this clause does
2. **Combined Risks** - How these risks work together
3. **Who Benefits** - Which party is protected
4. **Recommendation** - Best course of action

Clause:
%s`, languageInstruction(req.Language), strings.Join(names, ", "), req.Clause)
	}

	return fmt.Sprintf(`%s

Analyze this contract clause and provide a practical explanation with these 4 sections:

1. **Meaning** - What this clause says in everyday language
2. **Risk** - What problems or costs this could cause for the person signing
3. **Who Benefits** - Which party gains advantage from this clause
4. **Recommendation** - Specific action to take (negotiate, remove, modify, or accept)

Contract Clause:
%s

Keep each section concise (2-3 sentences max). Be direct and practical.`, languageInstruction(req.Language), req.Clause)
}
