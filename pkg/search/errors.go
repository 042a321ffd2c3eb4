package search

import "fmt"

// EmbeddingError reports a failure turning the query text into a vector.
// Raised before any index query is attempted, never retried here.
type EmbeddingError struct {
	Err error
}

func (e *EmbeddingError) Error() string {
	return fmt.Sprintf("failed to embed query: %v", e.Err)
}

func (e *EmbeddingError) Unwrap() error {
	return e.Err
}

// BackendError reports that the vector index could not serve the search at
// all: either the unscoped query failed, or every requested namespace
// failed. Partial namespace failures do not produce a BackendError.
type BackendError struct {
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("vector search backend failed: %v", e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
