package vector

import "testing"

func TestProviderConfig_PineconeKeyFromEnvironment(t *testing.T) {
	t.Setenv("PINECONE_API_KEY", "env-key")

	cfg := &ProviderConfig{
		Type:     ProviderPinecone,
		Pinecone: &PineconeConfig{IndexName: "code-index"},
	}
	cfg.SetDefaults()

	if cfg.Pinecone.APIKey != "env-key" {
		t.Errorf("APIKey = %q, want the PINECONE_API_KEY fallback", cfg.Pinecone.APIKey)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil with the env key present", err)
	}
}

func TestProviderConfig_PineconeExplicitKeyWins(t *testing.T) {
	t.Setenv("PINECONE_API_KEY", "env-key")

	cfg := &ProviderConfig{
		Type:     ProviderPinecone,
		Pinecone: &PineconeConfig{APIKey: "config-key", IndexName: "code-index"},
	}
	cfg.SetDefaults()

	if cfg.Pinecone.APIKey != "config-key" {
		t.Errorf("APIKey = %q, want the configured key over the env fallback", cfg.Pinecone.APIKey)
	}
}

func TestProviderConfig_PineconeMissingKey(t *testing.T) {
	t.Setenv("PINECONE_API_KEY", "")

	cfg := &ProviderConfig{Type: ProviderPinecone}
	cfg.SetDefaults()

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() error = nil, want an error without any api key")
	}
}
