package retrieval

import (
	"fmt"
	"log/slog"

	"github.com/pkoukk/tiktoken-go"
)

// Budgeter trims a document list so the rendered context block stays
// inside a token budget. Trailing documents are dropped first since the
// list arrives ranked best-first.
type Budgeter struct {
	encoding  *tiktoken.Tiktoken
	maxTokens int
}

// NewBudgeter creates a budgeter using the named tiktoken encoding
// (e.g. "cl100k_base"). maxTokens <= 0 disables trimming.
func NewBudgeter(encodingName string, maxTokens int) (*Budgeter, error) {
	if maxTokens <= 0 {
		return &Budgeter{maxTokens: 0}, nil
	}

	encoding, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return nil, fmt.Errorf("unknown token encoding %q: %w", encodingName, err)
	}

	return &Budgeter{
		encoding:  encoding,
		maxTokens: maxTokens,
	}, nil
}

// CountTokens returns the token count of text under the configured
// encoding, or 0 when trimming is disabled.
func (b *Budgeter) CountTokens(text string) int {
	if b.encoding == nil {
		return 0
	}
	return len(b.encoding.Encode(text, nil, nil))
}

// Fit returns the longest ranked prefix of documents whose rendered
// context entries fit the budget. At least one document always survives
// so retrieval never silently produces an empty context.
func (b *Budgeter) Fit(documents []Document) []Document {
	if b.maxTokens <= 0 || len(documents) == 0 {
		return documents
	}

	total := 0
	kept := 0
	for _, doc := range documents {
		entry := ContextBlock([]Document{doc})
		total += b.CountTokens(entry)
		if kept > 0 && total > b.maxTokens {
			break
		}
		kept++
	}

	if dropped := len(documents) - kept; dropped > 0 {
		slog.Debug("Dropped documents to fit context token budget",
			"dropped", dropped,
			"kept", kept,
			"max_tokens", b.maxTokens)
	}

	return documents[:kept]
}
