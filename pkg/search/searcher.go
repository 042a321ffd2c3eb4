package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/repoqa/repoqa/pkg/observability"
	"github.com/repoqa/repoqa/pkg/vector"
)

// DefaultNamespace labels matches from an unscoped search, where no
// namespace restriction was applied.
const DefaultNamespace = "default"

// Match is one nearest-neighbor hit, tagged with the namespace it came
// from. Scores are assumed comparable across namespaces.
type Match struct {
	Score     float64
	Metadata  map[string]interface{}
	Namespace string
}

// Embedder turns query text into a vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Index answers nearest-neighbor queries, optionally scoped to a
// namespace. An empty namespace means the unscoped/default space.
type Index interface {
	Query(ctx context.Context, namespace string, vec []float32, topK int) ([]vector.Result, error)
}

// Searcher fans a query out across namespaces and merges the hits into a
// single globally ranked result list.
type Searcher struct {
	embedder       Embedder
	index          Index
	maxConcurrency int
	logger         *slog.Logger
}

// NewSearcher creates a searcher. maxConcurrency caps parallel namespace
// queries; values below 1 fall back to 1.
func NewSearcher(embedder Embedder, index Index, maxConcurrency int) *Searcher {
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}
	return &Searcher{
		embedder:       embedder,
		index:          index,
		maxConcurrency: maxConcurrency,
		logger:         slog.Default(),
	}
}

// namespaceResult keeps each namespace's outcome in request order so the
// merged ranking is deterministic regardless of completion order.
type namespaceResult struct {
	namespace string
	matches   []vector.Result
	err       error
}

// Search embeds the query and returns the top k matches across the given
// namespaces, sorted by score descending. With no namespaces it issues a
// single unscoped query. A namespace query failure is logged and skipped;
// only total failure aborts the search.
func (s *Searcher) Search(ctx context.Context, query string, k int, namespaces []string) ([]Match, error) {
	tracer := observability.GetTracer("repoqa.search")
	ctx, span := tracer.Start(ctx, observability.SpanSearch,
		trace.WithAttributes(
			attribute.String(observability.AttrSearchQuery, query),
			attribute.Int(observability.AttrSearchK, k),
			attribute.String(observability.AttrSearchNamespace, strings.Join(namespaces, ",")),
		),
	)
	defer span.End()

	if k <= 0 {
		return nil, nil
	}

	queryVector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		embErr := &EmbeddingError{Err: err}
		span.RecordError(embErr)
		span.SetStatus(codes.Error, embErr.Error())
		return nil, embErr
	}

	if len(namespaces) == 0 {
		matches, err := s.searchUnscoped(ctx, queryVector, k)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		span.SetAttributes(attribute.Int("search.results", len(matches)))
		span.SetStatus(codes.Ok, "success")
		return matches, nil
	}

	matches, err := s.searchNamespaces(ctx, queryVector, k, namespaces)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("search.results", len(matches)))
	span.SetStatus(codes.Ok, "success")
	return matches, nil
}

// searchUnscoped issues one query with no namespace restriction.
func (s *Searcher) searchUnscoped(ctx context.Context, queryVector []float32, k int) ([]Match, error) {
	results, err := s.index.Query(ctx, "", queryVector, k)
	if err != nil {
		return nil, &BackendError{Err: err}
	}

	matches := make([]Match, 0, len(results))
	for _, r := range results {
		matches = append(matches, Match{
			Score:     r.Score,
			Metadata:  r.Metadata,
			Namespace: DefaultNamespace,
		})
	}
	return rankMatches(matches, k), nil
}

// searchNamespaces queries each namespace for its own top k, tolerating
// per-namespace failures, then re-ranks the union globally.
func (s *Searcher) searchNamespaces(ctx context.Context, queryVector []float32, k int, namespaces []string) ([]Match, error) {
	results := make([]namespaceResult, len(namespaces))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrency)

	for i, namespace := range namespaces {
		g.Go(func() error {
			matches, err := s.index.Query(gctx, namespace, queryVector, k)
			results[i] = namespaceResult{namespace: namespace, matches: matches, err: err}
			return nil
		})
	}

	// Goroutines never return errors; failures live in the results slice
	_ = g.Wait()

	var candidates []Match
	var failures []error
	for _, nr := range results {
		if nr.err != nil {
			s.logger.Warn("Namespace query failed, skipping",
				"namespace", nr.namespace,
				"error", nr.err)
			failures = append(failures, fmt.Errorf("namespace %q: %w", nr.namespace, nr.err))
			continue
		}
		for _, r := range nr.matches {
			candidates = append(candidates, Match{
				Score:     r.Score,
				Metadata:  r.Metadata,
				Namespace: nr.namespace,
			})
		}
	}

	if len(failures) == len(namespaces) {
		return nil, &BackendError{Err: errors.Join(failures...)}
	}

	return rankMatches(candidates, k), nil
}

// rankMatches sorts candidates by score descending and truncates to k.
// The sort is stable, so equal scores keep discovery order.
func rankMatches(matches []Match, k int) []Match {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > k {
		matches = matches[:k]
	}
	return matches
}
