package vector

import "context"

// Result is one nearest-neighbor hit from a vector index query. Metadata is
// retained in full; by convention chunk content lives under the "text" key
// and a source link under "github_url".
type Result struct {
	ID       string
	Score    float64
	Metadata map[string]any
}

// Provider is a vector index that partitions its vectors into namespaces.
// An empty namespace targets the provider's unscoped/default space.
//
// Query results come back ordered by descending similarity, as ranked by
// the backing index. Scores are provider-defined but assumed to share one
// scale across namespaces of the same index.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Query returns the topK nearest neighbors within one namespace.
	Query(ctx context.Context, namespace string, vector []float32, topK int) ([]Result, error)

	// Upsert adds or updates a vector in a namespace.
	Upsert(ctx context.Context, namespace string, id string, vector []float32, metadata map[string]any) error

	// Delete removes a vector from a namespace. Deleting an unknown id is
	// not an error.
	Delete(ctx context.Context, namespace string, id string) error

	// DeleteNamespace removes a namespace and everything in it.
	DeleteNamespace(ctx context.Context, namespace string) error

	// Close releases the provider's resources.
	Close() error
}
