package explain

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/psharma/contractguard/internal/model"
)

// Groq speaks the OpenAI wire protocol; only the base URL and default model differ
const (
	groqBaseURL      = "https://api.groq.com/openai/v1"
	groqDefaultModel = "llama-3.3-70b-versatile"
)

// OpenAIProvider implements Provider for OpenAI-compatible chat APIs
// (OpenAI itself and Groq)
type OpenAIProvider struct {
	name   string
	client *openai.Client
	config model.LLMConfig
}

// NewOpenAIProvider creates a provider against the OpenAI API
func NewOpenAIProvider(config model.LLMConfig) (*OpenAIProvider, error) {
	return newChatProvider("openai", config)
}

// NewGroqProvider creates a provider against the Groq API
func NewGroqProvider(config model.LLMConfig) (*OpenAIProvider, error) {
	if config.BaseURL == "" {
		config.BaseURL = groqBaseURL
	}
	if config.Model == "" {
		config.Model = groqDefaultModel
	}
	return newChatProvider("groq", config)
}

func newChatProvider(name string, config model.LLMConfig) (*OpenAIProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("%s API key is required", name)
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIProvider{
		name:   name,
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return p.name
}

// IsAvailable checks if the provider is properly configured
func (p *OpenAIProvider) IsAvailable(ctx context.Context) bool {
	_, err := p.client.ListModels(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s API check failed: %v\n", p.name, err)
		return false
	}
	return true
}

// Generate produces an explanation via the Chat Completions API
func (p *OpenAIProvider) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	chatModel := p.config.Model
	if chatModel == "" {
		chatModel = openai.GPT4oMini
	}

	maxTokens := p.config.MaxTokens
	if maxTokens == 0 {
		maxTokens = 600
	}

	timeout := time.Duration(p.config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	chatReq := openai.ChatCompletionRequest{
		Model: chatModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: BuildPrompt(req),
			},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.3, // Lower temperature for focused, practical output
	}

	resp, err := p.client.CreateChatCompletion(ctxWithTimeout, chatReq)
	if err != nil {
		return "", fmt.Errorf("%s API error: %w", p.name, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from %s", p.name)
	}

	explanation := strings.TrimSpace(resp.Choices[0].Message.Content)
	if explanation == "" {
		return "", fmt.Errorf("empty response from %s", p.name)
	}

	return explanation, nil
}
