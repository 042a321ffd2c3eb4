package vector

import (
	"context"
	"testing"
)

func TestChromemProvider_QueryOrdersByScore(t *testing.T) {
	provider, err := NewChromemProvider(ChromemConfig{})
	if err != nil {
		t.Fatalf("NewChromemProvider() error = %v", err)
	}
	defer func() { _ = provider.Close() }()

	ctx := context.Background()

	docs := []struct {
		id     string
		vector []float32
		text   string
	}{
		{"doc-1", []float32{1, 0, 0}, "exact match"},
		{"doc-2", []float32{0.8, 0.6, 0}, "close match"},
		{"doc-3", []float32{0, 1, 0}, "orthogonal"},
	}
	for _, d := range docs {
		meta := map[string]any{"text": d.text, "github_url": "https://example.com/" + d.id}
		if err := provider.Upsert(ctx, "code", d.id, d.vector, meta); err != nil {
			t.Fatalf("Upsert(%s) error = %v", d.id, err)
		}
	}

	results, err := provider.Query(ctx, "code", []float32{1, 0, 0}, 2)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("Query() returned %d results, want 2", len(results))
	}
	if results[0].ID != "doc-1" {
		t.Errorf("results[0].ID = %q, want %q", results[0].ID, "doc-1")
	}
	if results[0].Score < results[1].Score {
		t.Errorf("results not ordered by score: %f < %f", results[0].Score, results[1].Score)
	}
	if got := results[0].Metadata["text"]; got != "exact match" {
		t.Errorf("results[0].Metadata[text] = %v, want %q", got, "exact match")
	}
}

func TestChromemProvider_EmptyNamespaceUsesDefault(t *testing.T) {
	provider, err := NewChromemProvider(ChromemConfig{})
	if err != nil {
		t.Fatalf("NewChromemProvider() error = %v", err)
	}
	defer func() { _ = provider.Close() }()

	ctx := context.Background()

	if err := provider.Upsert(ctx, "", "doc-1", []float32{1, 0}, map[string]any{"text": "hello"}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	// "default" and "" resolve to the same collection
	results, err := provider.Query(ctx, "default", []float32{1, 0}, 5)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Query() returned %d results, want 1", len(results))
	}
	if results[0].ID != "doc-1" {
		t.Errorf("results[0].ID = %q, want %q", results[0].ID, "doc-1")
	}
}

func TestChromemProvider_QueryEmptyCollection(t *testing.T) {
	provider, err := NewChromemProvider(ChromemConfig{})
	if err != nil {
		t.Fatalf("NewChromemProvider() error = %v", err)
	}
	defer func() { _ = provider.Close() }()

	results, err := provider.Query(context.Background(), "empty", []float32{1, 0}, 5)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Query() returned %d results, want 0", len(results))
	}
}

func TestChromemProvider_Delete(t *testing.T) {
	provider, err := NewChromemProvider(ChromemConfig{})
	if err != nil {
		t.Fatalf("NewChromemProvider() error = %v", err)
	}
	defer func() { _ = provider.Close() }()

	ctx := context.Background()

	for _, id := range []string{"doc-1", "doc-2"} {
		if err := provider.Upsert(ctx, "code", id, []float32{1, 0}, map[string]any{"text": id}); err != nil {
			t.Fatalf("Upsert(%s) error = %v", id, err)
		}
	}

	if err := provider.Delete(ctx, "code", "doc-1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	results, err := provider.Query(ctx, "code", []float32{1, 0}, 5)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Query() returned %d results after delete, want 1", len(results))
	}
	if results[0].ID != "doc-2" {
		t.Errorf("results[0].ID = %q, want %q", results[0].ID, "doc-2")
	}
}

func TestChromemProvider_DeleteNamespace(t *testing.T) {
	provider, err := NewChromemProvider(ChromemConfig{})
	if err != nil {
		t.Fatalf("NewChromemProvider() error = %v", err)
	}
	defer func() { _ = provider.Close() }()

	ctx := context.Background()

	if err := provider.Upsert(ctx, "code", "doc-1", []float32{1, 0}, map[string]any{"text": "hello"}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	if err := provider.DeleteNamespace(ctx, "code"); err != nil {
		t.Fatalf("DeleteNamespace() error = %v", err)
	}

	results, err := provider.Query(ctx, "code", []float32{1, 0}, 5)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Query() returned %d results after namespace delete, want 0", len(results))
	}
}

func TestProviderConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  ProviderConfig
		wantErr bool
	}{
		{"chromem", ProviderConfig{Type: ProviderChromem}, false},
		{"empty type", ProviderConfig{}, true},
		{"unknown type", ProviderConfig{Type: "weaviate"}, true},
		{"pinecone missing config", ProviderConfig{Type: ProviderPinecone}, true},
		{"pinecone missing key", ProviderConfig{Type: ProviderPinecone, Pinecone: &PineconeConfig{IndexName: "idx"}}, true},
		{"pinecone valid", ProviderConfig{Type: ProviderPinecone, Pinecone: &PineconeConfig{APIKey: "pk", IndexName: "idx"}}, false},
		{"qdrant missing host", ProviderConfig{Type: ProviderQdrant, Qdrant: &QdrantConfig{}}, true},
		{"qdrant valid", ProviderConfig{Type: ProviderQdrant, Qdrant: &QdrantConfig{Host: "localhost"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestProviderConfig_SetDefaults(t *testing.T) {
	cfg := ProviderConfig{}
	cfg.SetDefaults()

	if cfg.Type != ProviderChromem {
		t.Errorf("default Type = %q, want %q", cfg.Type, ProviderChromem)
	}
	if cfg.Chromem == nil {
		t.Error("default Chromem config is nil")
	}
}

func TestNewProvider_Chromem(t *testing.T) {
	cfg := &ProviderConfig{}
	cfg.SetDefaults()

	provider, err := NewProvider(cfg)
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	defer func() { _ = provider.Close() }()

	if got := provider.Name(); got != "chromem" {
		t.Errorf("Name() = %q, want %q", got, "chromem")
	}
}
