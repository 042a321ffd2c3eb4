package llms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/repoqa/repoqa/pkg/config"
)

func newTestAnthropicProvider(t *testing.T, serverURL string) *AnthropicProvider {
	t.Helper()

	cfg := &config.LLMConfig{
		Provider: config.LLMProviderAnthropic,
		Model:    "claude-sonnet-4-20250514",
		APIKey:   "test-key",
		BaseURL:  serverURL,
	}
	cfg.SetDefaults()

	provider, err := NewAnthropicProvider(cfg)
	if err != nil {
		t.Fatalf("NewAnthropicProvider() error = %v", err)
	}
	return provider
}

func TestAnthropicProvider_GenerateText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-api-key"); got != "test-key" {
			t.Errorf("x-api-key = %q, want test-key", got)
		}
		if got := r.Header.Get("anthropic-version"); got != "2023-06-01" {
			t.Errorf("anthropic-version = %q, want 2023-06-01", got)
		}
		if r.URL.Path != "/v1/messages" {
			t.Errorf("path = %q, want /v1/messages", r.URL.Path)
		}

		var req AnthropicRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.System != "be helpful" {
			t.Errorf("system = %q, want %q", req.System, "be helpful")
		}
		if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
			t.Errorf("messages = %+v, want single user message", req.Messages)
		}

		_ = json.NewEncoder(w).Encode(AnthropicResponse{
			Content: []AnthropicContent{
				{Type: "text", Text: "hello there"},
			},
			StopReason: "end_turn",
			Usage:      AnthropicUsage{InputTokens: 12, OutputTokens: 4},
		})
	}))
	defer server.Close()

	provider := newTestAnthropicProvider(t, server.URL)

	messages := []Message{
		{Role: RoleSystem, Content: "be helpful"},
		{Role: RoleUser, Content: "hi"},
	}
	resp, err := provider.Generate(context.Background(), messages, nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if resp.Text != "hello there" {
		t.Errorf("Text = %q, want %q", resp.Text, "hello there")
	}
	if resp.Usage.TotalTokens != 16 {
		t.Errorf("TotalTokens = %d, want 16", resp.Usage.TotalTokens)
	}
}

func TestAnthropicProvider_GenerateToolCall(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req AnthropicRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(req.Tools) != 1 || req.Tools[0].Name != "search_knowledge_base" {
			t.Errorf("tools = %+v, want one search_knowledge_base tool", req.Tools)
		}

		input := map[string]interface{}{"query": "how does auth work"}
		_ = json.NewEncoder(w).Encode(AnthropicResponse{
			Content: []AnthropicContent{
				{Type: "text", Text: "Let me look that up."},
				{Type: "tool_use", ID: "toolu_1", Name: "search_knowledge_base", Input: &input},
			},
			StopReason: "tool_use",
		})
	}))
	defer server.Close()

	provider := newTestAnthropicProvider(t, server.URL)

	tools := []ToolDefinition{{
		Name:        "search_knowledge_base",
		Description: "Search the indexed codebase",
		Parameters:  map[string]interface{}{"type": "object"},
	}}

	resp, err := provider.Generate(context.Background(), []Message{{Role: RoleUser, Content: "how does auth work"}}, tools)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(resp.ToolCalls) != 1 {
		t.Fatalf("ToolCalls = %d, want 1", len(resp.ToolCalls))
	}
	tc := resp.ToolCalls[0]
	if tc.ID != "toolu_1" || tc.Name != "search_knowledge_base" {
		t.Errorf("ToolCall = %+v, want toolu_1/search_knowledge_base", tc)
	}
	if got := tc.Args["query"]; got != "how does auth work" {
		t.Errorf("ToolCall.Args[query] = %v, want %q", got, "how does auth work")
	}
}

func TestAnthropicProvider_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"invalid_request_error","message":"max_tokens required"}}`))
	}))
	defer server.Close()

	provider := newTestAnthropicProvider(t, server.URL)

	_, err := provider.Generate(context.Background(), []Message{{Role: RoleUser, Content: "q"}}, nil)
	if err == nil {
		t.Fatal("Generate() error = nil, want provider error")
	}

	provErr, ok := err.(*ProviderError)
	if !ok {
		t.Fatalf("error type = %T, want *ProviderError", err)
	}
	if provErr.Provider != "anthropic" {
		t.Errorf("Provider = %q, want anthropic", provErr.Provider)
	}
}
