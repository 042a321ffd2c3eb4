package config

import "fmt"

// EmbedderProvider identifies the embedding provider type.
type EmbedderProvider string

const (
	EmbedderProviderOpenAI EmbedderProvider = "openai"
	EmbedderProviderOllama EmbedderProvider = "ollama"
)

// EmbedderConfig configures the embedding provider that turns query text
// into vectors. It must match the model used to build the index.
type EmbedderConfig struct {
	// Provider type (openai, ollama).
	Provider EmbedderProvider `yaml:"provider,omitempty"`

	// Model name (e.g., "text-embedding-3-small", "nomic-embed-text").
	Model string `yaml:"model,omitempty"`

	// APIKey for authentication (OpenAI only).
	APIKey string `yaml:"api_key,omitempty"`

	// Host overrides the default endpoint.
	Host string `yaml:"host,omitempty"`

	// Dimension is the embedding vector length.
	Dimension int `yaml:"dimension,omitempty"`

	// Timeout is the per-request timeout in seconds.
	Timeout int `yaml:"timeout,omitempty"`

	// MaxRetries enables transport-level retries when > 0.
	MaxRetries int `yaml:"max_retries,omitempty"`

	// BatchSize caps how many texts go into one embedding request.
	BatchSize int `yaml:"batch_size,omitempty"`
}

// SetDefaults applies default values.
func (c *EmbedderConfig) SetDefaults() {
	if c.Provider == "" {
		c.Provider = EmbedderProviderOpenAI
	}

	if c.Model == "" {
		switch c.Provider {
		case EmbedderProviderOpenAI:
			c.Model = "text-embedding-3-small"
		case EmbedderProviderOllama:
			c.Model = "nomic-embed-text"
		}
	}

	if c.Host == "" {
		switch c.Provider {
		case EmbedderProviderOpenAI:
			c.Host = "https://api.openai.com/v1"
		case EmbedderProviderOllama:
			c.Host = "http://localhost:11434"
		}
	}

	if c.Provider == EmbedderProviderOpenAI && c.APIKey == "" {
		c.APIKey = ProviderAPIKey("openai")
	}

	if c.Dimension == 0 {
		switch c.Model {
		case "text-embedding-3-small", "text-embedding-ada-002":
			c.Dimension = 1536
		case "text-embedding-3-large":
			c.Dimension = 3072
		case "nomic-embed-text":
			c.Dimension = 768
		default:
			c.Dimension = 1536
		}
	}

	if c.Timeout == 0 {
		c.Timeout = 30
	}
	if c.BatchSize == 0 {
		c.BatchSize = 100
	}
}

// Validate checks the configuration.
func (c *EmbedderConfig) Validate() error {
	switch c.Provider {
	case EmbedderProviderOpenAI:
		if c.APIKey == "" {
			return fmt.Errorf("api_key is required for openai (set it in config or the environment)")
		}
	case EmbedderProviderOllama:
	default:
		return fmt.Errorf("unknown provider %q (valid: openai, ollama)", c.Provider)
	}
	if c.Model == "" {
		return fmt.Errorf("model is required")
	}
	if c.Dimension <= 0 {
		return fmt.Errorf("dimension must be positive")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative")
	}
	return nil
}
