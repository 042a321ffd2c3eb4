package llms

import (
	"fmt"

	"github.com/repoqa/repoqa/pkg/config"
	"github.com/repoqa/repoqa/pkg/registry"
)

// ProviderRegistry holds named LLM providers. Callers own their registry
// instance; there is no package-level global.
type ProviderRegistry struct {
	*registry.BaseRegistry[Provider]
}

// NewProviderRegistry creates an empty provider registry.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		BaseRegistry: registry.NewBaseRegistry[Provider](),
	}
}

// CreateFromConfig builds a provider from configuration and registers it
// under the given name.
func (r *ProviderRegistry) CreateFromConfig(name string, cfg *config.LLMConfig) (Provider, error) {
	if name == "" {
		return nil, fmt.Errorf("provider name cannot be empty")
	}

	provider, err := NewProvider(cfg)
	if err != nil {
		return nil, err
	}

	if err := r.Register(name, provider); err != nil {
		return nil, fmt.Errorf("failed to register provider: %w", err)
	}

	return provider, nil
}

// NewProvider creates an LLM provider from configuration.
func NewProvider(cfg *config.LLMConfig) (Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("llm configuration is required")
	}

	switch cfg.Provider {
	case config.LLMProviderOpenAI:
		return NewOpenAIProvider(cfg)
	case config.LLMProviderAnthropic:
		return NewAnthropicProvider(cfg)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s (supported: openai, anthropic)", cfg.Provider)
	}
}
