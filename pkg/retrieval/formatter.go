package retrieval

import (
	"fmt"
	"strings"

	"github.com/repoqa/repoqa/pkg/search"
)

// Separator joins document contents in the concatenated context blob.
const Separator = "\n---\n"

// sourceURLKeys are metadata keys checked, in order, for a source link.
var sourceURLKeys = []string{"github_url", "file_github_url"}

// Document is the normalized, model-facing projection of a search match.
type Document struct {
	Content   string
	Metadata  map[string]interface{}
	Namespace string
	Score     float64
	SourceURL string
}

// Format converts ranked matches into documents plus a single joined
// content string, preserving match order. It is a total function: missing
// metadata fields degrade to empty values, never errors.
func Format(matches []search.Match) ([]Document, string) {
	documents := make([]Document, 0, len(matches))

	for _, match := range matches {
		doc := Document{
			Metadata:  match.Metadata,
			Namespace: match.Namespace,
			Score:     match.Score,
		}

		if text, ok := match.Metadata["text"].(string); ok {
			doc.Content = text
		}
		for _, key := range sourceURLKeys {
			if url, ok := match.Metadata[key].(string); ok && url != "" {
				doc.SourceURL = url
				break
			}
		}

		documents = append(documents, doc)
	}

	return documents, JoinContent(documents)
}

// JoinContent concatenates document contents with the separator,
// preserving document order.
func JoinContent(documents []Document) string {
	if len(documents) == 0 {
		return ""
	}

	contents := make([]string, len(documents))
	for i, doc := range documents {
		contents[i] = doc.Content
	}
	return strings.Join(contents, Separator)
}

// ContextBlock renders documents as a numbered context listing for
// injection into a model prompt. Each entry shows rank, relevance score,
// namespace, source location, and content.
func ContextBlock(documents []Document) string {
	if len(documents) == 0 {
		return ""
	}

	var b strings.Builder
	for i, doc := range documents {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "[%d] (score: %.4f, namespace: %s)\n", i+1, doc.Score, doc.Namespace)
		if doc.SourceURL != "" {
			fmt.Fprintf(&b, "Source: %s\n", doc.SourceURL)
		}
		b.WriteString(doc.Content)
	}
	return b.String()
}
