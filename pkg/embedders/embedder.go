package embedders

import (
	"context"
	"fmt"

	"github.com/repoqa/repoqa/pkg/config"
)

// Provider converts text into vector embeddings.
type Provider interface {
	// Embed returns the embedding vector for a single text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch returns embeddings for multiple texts in input order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimension returns the embedding vector size.
	Dimension() int

	// ModelName returns the embedding model identifier.
	ModelName() string

	// Close releases resources held by the provider.
	Close() error
}

// NewProvider creates an embedding provider from configuration.
func NewProvider(cfg *config.EmbedderConfig) (Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("embedder configuration is required")
	}

	switch cfg.Provider {
	case config.EmbedderProviderOpenAI:
		return NewOpenAIEmbedder(cfg)
	case config.EmbedderProviderOllama:
		return NewOllamaEmbedder(cfg)
	default:
		return nil, fmt.Errorf("unknown embedder provider: %q", cfg.Provider)
	}
}
