package llms

import "context"

// ResponseContext carries the optional framing around a user query.
type ResponseContext struct {
	// SystemMessage sets model behavior for the call.
	SystemMessage string

	// SearchResults is pre-formatted retrieved context injected ahead of
	// the user query.
	SearchResults string
}

// searchResultsPreamble introduces injected context so the model treats it
// as grounding material rather than part of the question.
const searchResultsPreamble = "Here is some context that may help you answer the question:\n\n"

// BuildMessages assembles the message sequence for one completion call in
// a fixed order: system message first (when present), injected context
// second (when present), user query last.
func BuildMessages(query string, respCtx ResponseContext) []Message {
	messages := make([]Message, 0, 3)

	if respCtx.SystemMessage != "" {
		messages = append(messages, Message{
			Role:    RoleSystem,
			Content: respCtx.SystemMessage,
		})
	}

	if respCtx.SearchResults != "" {
		messages = append(messages, Message{
			Role:    RoleSystem,
			Content: searchResultsPreamble + respCtx.SearchResults,
		})
	}

	messages = append(messages, Message{
		Role:    RoleUser,
		Content: query,
	})

	return messages
}

// Respond sends a single query through a provider with optional system
// framing, injected context, and tool definitions.
func Respond(ctx context.Context, provider Provider, query string, respCtx ResponseContext, tools []ToolDefinition) (*Response, error) {
	return provider.Generate(ctx, BuildMessages(query, respCtx), tools)
}
