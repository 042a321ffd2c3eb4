package llms

import (
	"context"
	"fmt"
)

// Role identifies who authored a message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message is a single conversation turn sent to a provider.
type Message struct {
	Role    Role
	Content string

	// ToolCalls carries tool invocations requested by the assistant.
	ToolCalls []ToolCall

	// ToolCallID links a tool role message back to the call it answers.
	ToolCallID string
}

// ToolDefinition describes a tool the model may call.
type ToolDefinition struct {
	Name        string
	Description string
	Parameters  map[string]interface{}
}

// ToolCall is a tool invocation requested by the model.
type ToolCall struct {
	ID   string
	Name string
	Args map[string]interface{}
}

// Usage reports token consumption for one provider call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Response is the outcome of one provider call. A response carries text,
// tool calls, or both.
type Response struct {
	Text      string
	ToolCalls []ToolCall
	Usage     Usage
}

// Provider is a chat completion backend.
type Provider interface {
	// Generate performs a non-streaming completion request. Tools may be
	// nil, in which case the model can only answer with text.
	Generate(ctx context.Context, messages []Message, tools []ToolDefinition) (*Response, error)

	// GetModelName returns the configured model identifier.
	GetModelName() string

	// Close releases resources held by the provider.
	Close() error
}

// ProviderError wraps a failed provider call with enough context to tell
// transport failures apart from API rejections.
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s provider call failed with status %d: %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s provider call failed: %s", e.Provider, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
