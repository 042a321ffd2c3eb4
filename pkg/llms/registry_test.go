package llms

import (
	"testing"

	"github.com/repoqa/repoqa/pkg/config"
)

func testLLMConfig() *config.LLMConfig {
	cfg := &config.LLMConfig{
		Provider: config.LLMProviderOpenAI,
		APIKey:   "test-key",
	}
	cfg.SetDefaults()
	return cfg
}

func TestProviderRegistry_CreateFromConfig(t *testing.T) {
	reg := NewProviderRegistry()

	provider, err := reg.CreateFromConfig("primary", testLLMConfig())
	if err != nil {
		t.Fatalf("CreateFromConfig() error = %v", err)
	}
	defer provider.Close()

	got, ok := reg.Get("primary")
	if !ok {
		t.Fatal("Get(primary) not found after CreateFromConfig")
	}
	if got != Provider(provider) {
		t.Error("Get(primary) returned a different provider")
	}
	if reg.Count() != 1 {
		t.Errorf("Count() = %d, want 1", reg.Count())
	}
}

func TestProviderRegistry_DuplicateName(t *testing.T) {
	reg := NewProviderRegistry()

	provider, err := reg.CreateFromConfig("primary", testLLMConfig())
	if err != nil {
		t.Fatalf("CreateFromConfig() error = %v", err)
	}
	defer provider.Close()

	if _, err := reg.CreateFromConfig("primary", testLLMConfig()); err == nil {
		t.Fatal("CreateFromConfig() with duplicate name error = nil, want error")
	}
}

func TestProviderRegistry_EmptyName(t *testing.T) {
	reg := NewProviderRegistry()
	if _, err := reg.CreateFromConfig("", testLLMConfig()); err == nil {
		t.Fatal("CreateFromConfig(\"\") error = nil, want error")
	}
}

func TestNewProvider_Unsupported(t *testing.T) {
	cfg := testLLMConfig()
	cfg.Provider = "nonexistent"
	if _, err := NewProvider(cfg); err == nil {
		t.Fatal("NewProvider() error = nil, want error for unknown provider")
	}
}
