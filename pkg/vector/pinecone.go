package vector

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/pinecone-io/go-pinecone/pinecone"
	"google.golang.org/protobuf/types/known/structpb"
)

// PineconeConfig configures the Pinecone vector provider.
type PineconeConfig struct {
	// APIKey is required for Pinecone authentication.
	APIKey string `yaml:"api_key"`

	// Host is the Pinecone control plane host (optional).
	Host string `yaml:"host,omitempty"`

	// IndexName is the index all namespaces live in.
	IndexName string `yaml:"index_name"`
}

// SetDefaults applies default values.
func (c *PineconeConfig) SetDefaults() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("PINECONE_API_KEY")
	}
	if c.IndexName == "" {
		c.IndexName = "repoqa-index"
	}
}

// PineconeProvider implements Provider using the Pinecone vector database.
// Namespaces map directly to Pinecone namespaces within a single index.
type PineconeProvider struct {
	client    *pinecone.Client
	indexName string

	mu        sync.Mutex
	indexHost string
}

// NewPineconeProvider creates a new Pinecone provider.
func NewPineconeProvider(cfg PineconeConfig) (*PineconeProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required for Pinecone")
	}
	cfg.SetDefaults()

	clientParams := pinecone.NewClientParams{
		ApiKey: cfg.APIKey,
	}
	if cfg.Host != "" {
		clientParams.Host = cfg.Host
	}

	client, err := pinecone.NewClient(clientParams)
	if err != nil {
		return nil, fmt.Errorf("failed to create Pinecone client: %w", err)
	}

	return &PineconeProvider{
		client:    client,
		indexName: cfg.IndexName,
	}, nil
}

// Name returns the provider name.
func (p *PineconeProvider) Name() string {
	return "pinecone"
}

// getIndexHost resolves and caches the data plane host for the index.
func (p *PineconeProvider) getIndexHost(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.indexHost != "" {
		return p.indexHost, nil
	}

	index, err := p.client.DescribeIndex(ctx, p.indexName)
	if err != nil {
		return "", fmt.Errorf("failed to describe index %s: %w", p.indexName, err)
	}

	p.indexHost = index.Host
	return p.indexHost, nil
}

// getIndexConnection gets an IndexConnection scoped to a namespace.
func (p *PineconeProvider) getIndexConnection(ctx context.Context, namespace string) (*pinecone.IndexConnection, error) {
	host, err := p.getIndexHost(ctx)
	if err != nil {
		return nil, err
	}

	indexConn, err := p.client.Index(pinecone.NewIndexConnParams{
		Host:      host,
		Namespace: namespace,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create index connection: %w", err)
	}

	return indexConn, nil
}

// Query finds the topK most similar vectors in a namespace.
func (p *PineconeProvider) Query(ctx context.Context, namespace string, vector []float32, topK int) ([]Result, error) {
	indexConn, err := p.getIndexConnection(ctx, namespace)
	if err != nil {
		return nil, err
	}
	defer func() { _ = indexConn.Close() }()

	queryRequest := &pinecone.QueryByVectorValuesRequest{
		Vector:          vector,
		TopK:            uint32(topK),
		IncludeMetadata: true,
	}

	queryResponse, err := indexConn.QueryByVectorValues(ctx, queryRequest)
	if err != nil {
		return nil, fmt.Errorf("failed to query Pinecone: %w", err)
	}

	return convertPineconeResults(queryResponse.Matches), nil
}

// Upsert adds or updates a vector in a namespace.
func (p *PineconeProvider) Upsert(ctx context.Context, namespace string, id string, vector []float32, metadata map[string]any) error {
	indexConn, err := p.getIndexConnection(ctx, namespace)
	if err != nil {
		return err
	}
	defer func() { _ = indexConn.Close() }()

	var pineconeMetadata *pinecone.Metadata
	if len(metadata) > 0 {
		pineconeMetadata, err = structpb.NewStruct(metadata)
		if err != nil {
			return fmt.Errorf("failed to convert metadata: %w", err)
		}
	}

	pineconeVector := &pinecone.Vector{
		Id:       id,
		Values:   vector,
		Metadata: pineconeMetadata,
	}

	_, err = indexConn.UpsertVectors(ctx, []*pinecone.Vector{pineconeVector})
	if err != nil {
		return fmt.Errorf("failed to upsert vector: %w", err)
	}

	return nil
}

// Delete removes a vector from a namespace by id.
func (p *PineconeProvider) Delete(ctx context.Context, namespace string, id string) error {
	indexConn, err := p.getIndexConnection(ctx, namespace)
	if err != nil {
		return err
	}
	defer func() { _ = indexConn.Close() }()

	if err := indexConn.DeleteVectorsById(ctx, []string{id}); err != nil {
		return fmt.Errorf("failed to delete vector: %w", err)
	}

	return nil
}

// DeleteNamespace removes every vector in a namespace. The index itself
// is left in place.
func (p *PineconeProvider) DeleteNamespace(ctx context.Context, namespace string) error {
	indexConn, err := p.getIndexConnection(ctx, namespace)
	if err != nil {
		return err
	}
	defer func() { _ = indexConn.Close() }()

	if err := indexConn.DeleteAllVectorsInNamespace(ctx); err != nil {
		return fmt.Errorf("failed to delete namespace %s: %w", namespace, err)
	}

	return nil
}

// Close closes the Pinecone client.
func (p *PineconeProvider) Close() error {
	// Pinecone client doesn't have an explicit close method
	return nil
}

// convertPineconeResults converts Pinecone matches to Results.
func convertPineconeResults(matches []*pinecone.ScoredVector) []Result {
	results := make([]Result, 0, len(matches))

	for _, scoredVector := range matches {
		if scoredVector.Vector == nil {
			continue
		}

		vector := scoredVector.Vector
		metadata := make(map[string]any)
		if vector.Metadata != nil {
			for k, v := range vector.Metadata.AsMap() {
				metadata[k] = v
			}
		}

		results = append(results, Result{
			ID:       vector.Id,
			Score:    float64(scoredVector.Score),
			Metadata: metadata,
		})
	}

	return results
}

// Ensure PineconeProvider implements Provider.
var _ Provider = (*PineconeProvider)(nil)
