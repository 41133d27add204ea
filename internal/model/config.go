package model

import "time"

// Config holds the full runtime configuration
type Config struct {
	Translate   TranslateConfig   `yaml:"translate"`
	LLM         LLMConfig         `yaml:"llm"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
	Server      ServerConfig      `yaml:"server"`
}

// TranslateConfig configures the machine-translation collaborator
type TranslateConfig struct {
	Enabled           bool          `yaml:"enabled"`             // Disable to skip translated variants entirely
	Endpoint          string        `yaml:"endpoint"`            // Translation service base URL
	Timeout           time.Duration `yaml:"timeout"`             // Per-request timeout
	CacheTTL          time.Duration `yaml:"cache_ttl"`           // In-memory memoization TTL
	RequestsPerSecond float64       `yaml:"requests_per_second"` // Rate limit toward the service
	BurstSize         int           `yaml:"burst_size"`
}

// LLMConfig configures the generative explanation collaborator
type LLMConfig struct {
	Provider  string `yaml:"provider"`   // "groq", "openai", "ollama", "" (templates only)
	Model     string `yaml:"model"`      // Model name (provider-specific)
	APIKey    string `yaml:"-"`          // Never persisted; from env or .env
	BaseURL   string `yaml:"base_url"`   // Custom endpoint (e.g., Ollama)
	Timeout   int    `yaml:"timeout"`    // Seconds
	MaxTokens int    `yaml:"max_tokens"` // Response length limit
}

// ConcurrencyConfig configures batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"` // Parallel contract analyses in batch mode
}

// OutputConfig configures report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Addr string `yaml:"addr"` // Listen address for the serve command
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Translate: TranslateConfig{
			Enabled:           true,
			Endpoint:          "https://translate.googleapis.com",
			Timeout:           10 * time.Second,
			CacheTTL:          15 * time.Minute,
			RequestsPerSecond: 2,
			BurstSize:         5,
		},
		LLM: LLMConfig{
			Provider:  "", // Disabled by default; templates always work
			Model:     "",
			Timeout:   30,
			MaxTokens: 600,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}
