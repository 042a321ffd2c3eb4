package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/repoqa/repoqa/pkg/observability"
	"github.com/repoqa/repoqa/pkg/vector"
)

// Config is the root configuration, supplied once at startup.
//
// Example:
//
//	llm:
//	  provider: openai
//	  model: gpt-4o-mini
//	  api_key: ${OPENAI_API_KEY}
//	embedder:
//	  provider: openai
//	  model: text-embedding-3-small
//	vector_store:
//	  type: pinecone
//	  pinecone:
//	    api_key: ${PINECONE_API_KEY}
//	    index_name: codebase
//	search:
//	  top_k: 5
//	  namespaces: [repo_backend, repo_frontend]
type Config struct {
	Logger      LoggerConfig               `yaml:"logger,omitempty"`
	Tracing     observability.TracerConfig `yaml:"tracing,omitempty"`
	LLM         LLMConfig                  `yaml:"llm"`
	Embedder    EmbedderConfig             `yaml:"embedder"`
	VectorStore vector.ProviderConfig      `yaml:"vector_store"`
	Search      SearchConfig               `yaml:"search,omitempty"`
}

// SetDefaults applies defaults to every section.
func (c *Config) SetDefaults() {
	c.Logger.SetDefaults()
	c.LLM.SetDefaults()
	c.Embedder.SetDefaults()
	c.VectorStore.SetDefaults()
	c.Search.SetDefaults()
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	if err := c.LLM.Validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}
	if err := c.Embedder.Validate(); err != nil {
		return fmt.Errorf("embedder: %w", err)
	}
	if err := c.VectorStore.Validate(); err != nil {
		return fmt.Errorf("vector_store: %w", err)
	}
	if err := c.Search.Validate(); err != nil {
		return fmt.Errorf("search: %w", err)
	}
	return nil
}

// Default returns a usable zero-config Config: OpenAI for chat and
// embeddings (keys from the environment), embedded chromem vector store.
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// LoadFile reads, expands, decodes, defaults, and validates a config file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Load(data)
}

// Load parses raw YAML config bytes.
func Load(data []byte) (*Config, error) {
	var rawMap map[string]any
	if err := yaml.Unmarshal(data, &rawMap); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	expanded, ok := ExpandEnvVarsInData(rawMap).(map[string]any)
	if !ok {
		expanded = rawMap
	}

	cfg := &Config{}
	if err := decodeConfig(expanded, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.SetDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func decodeConfig(input map[string]any, output *Config) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           output,
		TagName:          "yaml",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("failed to decode: %w", err)
	}

	return nil
}
