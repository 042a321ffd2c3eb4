package search

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/repoqa/repoqa/pkg/vector"
)

type fakeEmbedder struct {
	vec []float32
	err error
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.vec, nil
}

// fakeIndex serves canned results or errors per namespace.
type fakeIndex struct {
	results map[string][]vector.Result
	errs    map[string]error
	calls   []string
}

func (f *fakeIndex) Query(ctx context.Context, namespace string, vec []float32, topK int) ([]vector.Result, error) {
	f.calls = append(f.calls, namespace)
	if err, ok := f.errs[namespace]; ok {
		return nil, err
	}
	results := f.results[namespace]
	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

func result(score float64, text string) vector.Result {
	return vector.Result{
		ID:       text,
		Score:    score,
		Metadata: map[string]interface{}{"text": text},
	}
}

func TestSearcher_MergesAndRanksAcrossNamespaces(t *testing.T) {
	index := &fakeIndex{
		results: map[string][]vector.Result{
			"repo_a": {result(0.9, "a1"), result(0.5, "a2")},
			"repo_b": {result(0.7, "b1"), result(0.3, "b2")},
		},
	}
	// Serial execution keeps namespace call order deterministic
	searcher := NewSearcher(&fakeEmbedder{vec: []float32{1, 0}}, index, 1)

	matches, err := searcher.Search(context.Background(), "query", 3, []string{"repo_a", "repo_b"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if len(matches) != 3 {
		t.Fatalf("Search() returned %d matches, want 3", len(matches))
	}

	wantScores := []float64{0.9, 0.7, 0.5}
	wantNamespaces := []string{"repo_a", "repo_b", "repo_a"}
	for i, m := range matches {
		if m.Score != wantScores[i] {
			t.Errorf("matches[%d].Score = %f, want %f", i, m.Score, wantScores[i])
		}
		if m.Namespace != wantNamespaces[i] {
			t.Errorf("matches[%d].Namespace = %q, want %q", i, m.Namespace, wantNamespaces[i])
		}
	}
}

func TestSearcher_ResultNeverExceedsK(t *testing.T) {
	index := &fakeIndex{
		results: map[string][]vector.Result{
			"repo_a": {result(0.9, "a1"), result(0.8, "a2")},
			"repo_b": {result(0.7, "b1"), result(0.6, "b2")},
		},
	}
	searcher := NewSearcher(&fakeEmbedder{vec: []float32{1, 0}}, index, 1)

	matches, err := searcher.Search(context.Background(), "query", 2, []string{"repo_a", "repo_b"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("Search() returned %d matches, want 2", len(matches))
	}
	for i := 1; i < len(matches); i++ {
		if matches[i-1].Score < matches[i].Score {
			t.Errorf("matches not sorted descending at %d: %f < %f", i, matches[i-1].Score, matches[i].Score)
		}
	}
}

func TestSearcher_EqualScoresKeepDiscoveryOrder(t *testing.T) {
	index := &fakeIndex{
		results: map[string][]vector.Result{
			"repo_a": {result(0.5, "a1")},
			"repo_b": {result(0.5, "b1")},
		},
	}
	searcher := NewSearcher(&fakeEmbedder{vec: []float32{1, 0}}, index, 1)

	matches, err := searcher.Search(context.Background(), "query", 2, []string{"repo_a", "repo_b"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("Search() returned %d matches, want 2", len(matches))
	}
	if matches[0].Namespace != "repo_a" || matches[1].Namespace != "repo_b" {
		t.Errorf("tie-break order = [%s %s], want [repo_a repo_b]",
			matches[0].Namespace, matches[1].Namespace)
	}
}

func TestSearcher_PartialFailureIsSwallowed(t *testing.T) {
	index := &fakeIndex{
		results: map[string][]vector.Result{
			"repo_b": {result(0.7, "b1")},
		},
		errs: map[string]error{
			"repo_a": fmt.Errorf("connection refused"),
		},
	}
	searcher := NewSearcher(&fakeEmbedder{vec: []float32{1, 0}}, index, 1)

	matches, err := searcher.Search(context.Background(), "query", 5, []string{"repo_a", "repo_b"})
	if err != nil {
		t.Fatalf("Search() error = %v, want nil when one namespace survives", err)
	}
	if len(matches) != 1 || matches[0].Namespace != "repo_b" {
		t.Errorf("matches = %+v, want single repo_b match", matches)
	}
}

func TestSearcher_AllNamespacesFailing(t *testing.T) {
	index := &fakeIndex{
		errs: map[string]error{
			"repo_a": fmt.Errorf("connection refused"),
			"repo_b": fmt.Errorf("timeout"),
		},
	}
	searcher := NewSearcher(&fakeEmbedder{vec: []float32{1, 0}}, index, 1)

	_, err := searcher.Search(context.Background(), "query", 5, []string{"repo_a", "repo_b"})

	var backendErr *BackendError
	if !errors.As(err, &backendErr) {
		t.Fatalf("Search() error type = %T, want *BackendError", err)
	}
}

func TestSearcher_EmbeddingFailure(t *testing.T) {
	index := &fakeIndex{}
	searcher := NewSearcher(&fakeEmbedder{err: fmt.Errorf("quota exceeded")}, index, 2)

	_, err := searcher.Search(context.Background(), "query", 5, []string{"repo_a"})

	var embErr *EmbeddingError
	if !errors.As(err, &embErr) {
		t.Fatalf("Search() error type = %T, want *EmbeddingError", err)
	}
	if len(index.calls) != 0 {
		t.Errorf("index queried %d times after embedding failure, want 0", len(index.calls))
	}
}

func TestSearcher_EmptyNamespacesUnscopedQuery(t *testing.T) {
	index := &fakeIndex{
		results: map[string][]vector.Result{
			"": {result(0.8, "d1"), result(0.6, "d2")},
		},
	}
	searcher := NewSearcher(&fakeEmbedder{vec: []float32{1, 0}}, index, 1)

	matches, err := searcher.Search(context.Background(), "query", 5, nil)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if len(index.calls) != 1 || index.calls[0] != "" {
		t.Errorf("index calls = %v, want single unscoped query", index.calls)
	}
	for _, m := range matches {
		if m.Namespace != DefaultNamespace {
			t.Errorf("Namespace = %q, want sentinel %q", m.Namespace, DefaultNamespace)
		}
	}
}

func TestSearcher_UnscopedFailure(t *testing.T) {
	index := &fakeIndex{
		errs: map[string]error{"": fmt.Errorf("index unavailable")},
	}
	searcher := NewSearcher(&fakeEmbedder{vec: []float32{1, 0}}, index, 1)

	_, err := searcher.Search(context.Background(), "query", 5, nil)

	var backendErr *BackendError
	if !errors.As(err, &backendErr) {
		t.Fatalf("Search() error type = %T, want *BackendError", err)
	}
}
