package config

import "fmt"

// SearchConfig holds retrieval defaults. These are the authoritative values
// for result count and namespace scope; the model can propose a query but
// never widens or narrows the search beyond this.
type SearchConfig struct {
	// TopK is the default number of results returned per search.
	TopK int `yaml:"top_k,omitempty"`

	// Namespaces is the default set of index partitions to search.
	// Empty means the index's unscoped/default space.
	Namespaces []string `yaml:"namespaces,omitempty"`

	// MaxConcurrency caps parallel per-namespace queries.
	MaxConcurrency int `yaml:"max_concurrency,omitempty"`

	// MaxContextTokens bounds the retrieved-context block injected into
	// the final model call. Documents past the budget are dropped from
	// the tail of the ranking.
	MaxContextTokens int `yaml:"max_context_tokens,omitempty"`

	// TokenEncoding names the tiktoken encoding used for the budget.
	TokenEncoding string `yaml:"token_encoding,omitempty"`
}

// SetDefaults applies default values.
func (c *SearchConfig) SetDefaults() {
	if c.TopK == 0 {
		c.TopK = 5
	}
	if c.MaxConcurrency == 0 {
		c.MaxConcurrency = 4
	}
	if c.MaxContextTokens == 0 {
		c.MaxContextTokens = 6000
	}
	if c.TokenEncoding == "" {
		c.TokenEncoding = "cl100k_base"
	}
}

// Validate checks the configuration.
func (c *SearchConfig) Validate() error {
	if c.TopK < 1 {
		return fmt.Errorf("top_k must be at least 1")
	}
	if c.MaxConcurrency < 1 {
		return fmt.Errorf("max_concurrency must be at least 1")
	}
	if c.MaxContextTokens < 1 {
		return fmt.Errorf("max_context_tokens must be at least 1")
	}
	for _, ns := range c.Namespaces {
		if ns == "" {
			return fmt.Errorf("namespaces must not contain empty entries")
		}
	}
	return nil
}
