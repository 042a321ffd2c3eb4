package config

import "fmt"

// LLMProvider identifies the LLM provider type.
type LLMProvider string

const (
	LLMProviderOpenAI    LLMProvider = "openai"
	LLMProviderAnthropic LLMProvider = "anthropic"
)

// LLMConfig configures the language-model provider used to answer
// questions.
type LLMConfig struct {
	// Provider type (openai, anthropic).
	Provider LLMProvider `yaml:"provider,omitempty"`

	// Model name (e.g., "gpt-4o-mini", "claude-sonnet-4-20250514").
	Model string `yaml:"model,omitempty"`

	// APIKey for authentication. Supports ${VAR} expansion; falls back to
	// the provider's conventional environment variable.
	APIKey string `yaml:"api_key,omitempty"`

	// BaseURL overrides the default API endpoint.
	BaseURL string `yaml:"base_url,omitempty"`

	// Temperature for generation.
	Temperature *float64 `yaml:"temperature,omitempty"`

	// MaxTokens limits response length.
	MaxTokens int `yaml:"max_tokens,omitempty"`

	// Timeout is the per-request timeout in seconds.
	Timeout int `yaml:"timeout,omitempty"`

	// MaxRetries enables transport-level retries when > 0. Zero (the
	// default) means a failed call surfaces immediately to the caller.
	MaxRetries int `yaml:"max_retries,omitempty"`

	// RetryDelay is the base retry backoff in seconds.
	RetryDelay int `yaml:"retry_delay,omitempty"`
}

// SetDefaults applies default values.
func (c *LLMConfig) SetDefaults() {
	if c.Provider == "" {
		c.Provider = LLMProviderOpenAI
	}

	if c.Model == "" {
		switch c.Provider {
		case LLMProviderOpenAI:
			c.Model = "gpt-4o-mini"
		case LLMProviderAnthropic:
			c.Model = "claude-sonnet-4-20250514"
		}
	}

	if c.BaseURL == "" {
		switch c.Provider {
		case LLMProviderOpenAI:
			c.BaseURL = "https://api.openai.com/v1"
		case LLMProviderAnthropic:
			c.BaseURL = "https://api.anthropic.com"
		}
	}

	if c.APIKey == "" {
		c.APIKey = ProviderAPIKey(string(c.Provider))
	}

	if c.Temperature == nil {
		t := 0.7
		c.Temperature = &t
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = 4096
	}
	if c.Timeout == 0 {
		c.Timeout = 60
	}
	if c.RetryDelay == 0 {
		c.RetryDelay = 2
	}
}

// Validate checks the configuration.
func (c *LLMConfig) Validate() error {
	switch c.Provider {
	case LLMProviderOpenAI, LLMProviderAnthropic:
	default:
		return fmt.Errorf("unknown provider %q (valid: openai, anthropic)", c.Provider)
	}
	if c.Model == "" {
		return fmt.Errorf("model is required")
	}
	if c.APIKey == "" {
		return fmt.Errorf("api_key is required for %s (set it in config or the environment)", c.Provider)
	}
	if c.Temperature != nil && (*c.Temperature < 0 || *c.Temperature > 2) {
		return fmt.Errorf("temperature must be between 0 and 2")
	}
	if c.MaxTokens < 0 {
		return fmt.Errorf("max_tokens must be non-negative")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative")
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be non-negative")
	}
	return nil
}
