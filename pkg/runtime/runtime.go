// Package runtime assembles the retrieval pipeline from configuration:
// embedder, vector store, searcher, tool registry, token budgeter, LLM
// provider, and the agent tying them together.
package runtime

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/repoqa/repoqa/pkg/agent"
	"github.com/repoqa/repoqa/pkg/config"
	"github.com/repoqa/repoqa/pkg/embedders"
	"github.com/repoqa/repoqa/pkg/llms"
	"github.com/repoqa/repoqa/pkg/retrieval"
	"github.com/repoqa/repoqa/pkg/search"
	"github.com/repoqa/repoqa/pkg/tools"
	"github.com/repoqa/repoqa/pkg/vector"
)

// Runtime holds the wired pipeline. Construct with New, release with
// Close. All fields are ready for concurrent use once New returns.
type Runtime struct {
	config   *config.Config
	embedder embedders.Provider
	vectors  vector.Provider
	searcher *search.Searcher
	registry *tools.Registry
	llms     *llms.ProviderRegistry
	llm      llms.Provider
	agent    *agent.Agent
}

// New builds every component from the validated config. On any failure
// the components created so far are closed before returning.
func New(cfg *config.Config) (*Runtime, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	embedder, err := embedders.NewProvider(&cfg.Embedder)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	vectors, err := vector.NewProvider(&cfg.VectorStore)
	if err != nil {
		closeQuietly(embedder.Close)
		return nil, fmt.Errorf("failed to create vector store: %w", err)
	}

	llmRegistry := llms.NewProviderRegistry()
	llm, err := llmRegistry.CreateFromConfig(string(cfg.LLM.Provider), &cfg.LLM)
	if err != nil {
		closeQuietly(embedder.Close, vectors.Close)
		return nil, fmt.Errorf("failed to create llm provider: %w", err)
	}

	budgeter, err := retrieval.NewBudgeter(cfg.Search.TokenEncoding, cfg.Search.MaxContextTokens)
	if err != nil {
		closeQuietly(embedder.Close, vectors.Close, llm.Close)
		return nil, fmt.Errorf("failed to create token budgeter: %w", err)
	}

	searcher := search.NewSearcher(embedder, vectors, cfg.Search.MaxConcurrency)

	registry := tools.NewRegistry()
	registry.Register(tools.SearchToolDefinition())

	return &Runtime{
		config:   cfg,
		embedder: embedder,
		vectors:  vectors,
		searcher: searcher,
		registry: registry,
		llms:     llmRegistry,
		llm:      llm,
		agent:    agent.New(llm, searcher, registry, &cfg.Search, budgeter),
	}, nil
}

// Agent returns the query orchestrator.
func (r *Runtime) Agent() *agent.Agent {
	return r.agent
}

// Searcher returns the retrieval gateway, for direct searches that skip
// the model.
func (r *Runtime) Searcher() *search.Searcher {
	return r.searcher
}

// Registry returns the tool registry advertised to the model.
func (r *Runtime) Registry() *tools.Registry {
	return r.registry
}

// LLMs returns the provider registry holding the configured LLM provider
// under its configured name.
func (r *Runtime) LLMs() *llms.ProviderRegistry {
	return r.llms
}

// Embedder returns the embedding provider, for indexing flows.
func (r *Runtime) Embedder() embedders.Provider {
	return r.embedder
}

// Vectors returns the vector store, for indexing flows.
func (r *Runtime) Vectors() vector.Provider {
	return r.vectors
}

// Config returns the configuration the runtime was built from.
func (r *Runtime) Config() *config.Config {
	return r.config
}

// Close releases every component. All closers run; errors are joined.
func (r *Runtime) Close() error {
	var errs []error
	if r.llm != nil {
		if err := r.llm.Close(); err != nil {
			errs = append(errs, fmt.Errorf("llm provider: %w", err))
		}
	}
	if r.vectors != nil {
		if err := r.vectors.Close(); err != nil {
			errs = append(errs, fmt.Errorf("vector store: %w", err))
		}
	}
	if r.embedder != nil {
		if err := r.embedder.Close(); err != nil {
			errs = append(errs, fmt.Errorf("embedder: %w", err))
		}
	}
	return errors.Join(errs...)
}

func closeQuietly(closers ...func() error) {
	for _, close := range closers {
		if err := close(); err != nil {
			slog.Warn("Cleanup error during failed initialization", "error", err)
		}
	}
}
