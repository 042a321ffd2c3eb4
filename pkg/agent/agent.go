package agent

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/repoqa/repoqa/pkg/config"
	"github.com/repoqa/repoqa/pkg/llms"
	"github.com/repoqa/repoqa/pkg/observability"
	"github.com/repoqa/repoqa/pkg/retrieval"
	"github.com/repoqa/repoqa/pkg/search"
	"github.com/repoqa/repoqa/pkg/tools"
)

// decisionPrompt frames the first model call, where the model chooses
// between answering directly and searching the indexed codebase.
const decisionPrompt = "You are a coding assistant answering questions about a " +
	"codebase that has been indexed for search. If the question depends on the " +
	"repository's actual contents, call the search tool to retrieve relevant " +
	"code before answering. If you can answer without looking at the code, " +
	"answer directly."

// answerPrompt frames the second model call, after retrieval results have
// been injected as context.
const answerPrompt = "You are a coding assistant. Answer the question using the " +
	"provided context from the indexed codebase. Cite source locations when the " +
	"context includes them. If the context does not contain the answer, say so " +
	"rather than guessing."

// Gateway performs ranked retrieval across namespaces.
type Gateway interface {
	Search(ctx context.Context, query string, k int, namespaces []string) ([]search.Match, error)
}

// ChatResult is the outcome of one orchestrated query.
type ChatResult struct {
	// Answer is the model's final text.
	Answer string

	// Documents are the retrieved chunks grounding the answer, in ranked
	// order. Empty when the model answered without searching.
	Documents []retrieval.Document

	// Tokens is the total token usage across all model calls for this
	// query, when the provider reports it.
	Tokens int
}

// Agent drives the two-step tool-calling protocol: ask the model whether
// to search, execute the retrieval it requests, then ask again with the
// results injected. The agent holds no state across queries; the caller
// owns any transcript.
type Agent struct {
	llm      llms.Provider
	gateway  Gateway
	registry *tools.Registry
	budgeter *retrieval.Budgeter

	defaultK          int
	defaultNamespaces []string
	logger            *slog.Logger
}

// New creates an agent. The registry is owned by the caller and is only
// read here; it should be fully populated before concurrent use. The
// budgeter may be nil to disable context trimming.
func New(llm llms.Provider, gateway Gateway, registry *tools.Registry, cfg *config.SearchConfig, budgeter *retrieval.Budgeter) *Agent {
	return &Agent{
		llm:               llm,
		gateway:           gateway,
		registry:          registry,
		budgeter:          budgeter,
		defaultK:          cfg.TopK,
		defaultNamespaces: cfg.Namespaces,
		logger:            slog.Default(),
	}
}

// Chat answers a query, searching the index first if the model asks for
// it. k and namespaces override the configured defaults when set; they
// also override whatever search options the model proposes, so the
// caller's settings stay authoritative.
func (a *Agent) Chat(ctx context.Context, query string, k int, namespaces []string) (*ChatResult, error) {
	tracer := observability.GetTracer("repoqa.agent")
	ctx, span := tracer.Start(ctx, observability.SpanChat)
	defer span.End()

	k, namespaces = a.applyDefaults(k, namespaces)

	// First call: the model decides whether to search
	decision, err := llms.Respond(ctx, a.llm, query,
		llms.ResponseContext{SystemMessage: decisionPrompt},
		a.registry.All())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if len(decision.ToolCalls) == 0 {
		span.SetAttributes(attribute.Bool("chat.searched", false))
		span.SetStatus(codes.Ok, "direct answer")
		return &ChatResult{Answer: decision.Text, Tokens: decision.Usage.TotalTokens}, nil
	}

	// Only the first tool call is honored
	call := decision.ToolCalls[0]
	if extra := len(decision.ToolCalls) - 1; extra > 0 {
		a.logger.Debug("Discarding extra tool calls", "honored", call.Name, "discarded", extra)
	}

	documents, contextBlock, err := a.executeToolCall(ctx, call, k, namespaces)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	// Second call: answer with the retrieved context injected, no tools
	final, err := llms.Respond(ctx, a.llm, query,
		llms.ResponseContext{
			SystemMessage: answerPrompt,
			SearchResults: contextBlock,
		}, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Bool("chat.searched", true),
		attribute.Int("chat.documents", len(documents)),
	)
	span.SetStatus(codes.Ok, "grounded answer")

	return &ChatResult{
		Answer:    final.Text,
		Documents: documents,
		Tokens:    decision.Usage.TotalTokens + final.Usage.TotalTokens,
	}, nil
}

// executeToolCall validates and runs a single model-requested tool call,
// returning the retrieved documents and the rendered context block.
func (a *Agent) executeToolCall(ctx context.Context, call llms.ToolCall, k int, namespaces []string) ([]retrieval.Document, string, error) {
	tracer := observability.GetTracer("repoqa.agent")
	ctx, span := tracer.Start(ctx, observability.SpanToolDispatch,
		trace.WithAttributes(attribute.String(observability.AttrToolName, call.Name)),
	)
	defer span.End()

	if _, ok := a.registry.Get(call.Name); !ok {
		err := &UnknownToolError{Name: call.Name}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, "", err
	}

	args, err := tools.DecodeSearchArgs(call.Args)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, "", err
	}

	// The model proposes the query text; the caller controls breadth and
	// partitions, so model-proposed options are ignored.
	matches, err := a.gateway.Search(ctx, args.Query, k, namespaces)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, "", err
	}

	documents, _ := retrieval.Format(matches)
	if a.budgeter != nil {
		documents = a.budgeter.Fit(documents)
	}

	span.SetStatus(codes.Ok, "success")
	return documents, retrieval.ContextBlock(documents), nil
}

// Retrieve runs retrieval directly, without model involvement.
func (a *Agent) Retrieve(ctx context.Context, query string, k int, namespaces []string) ([]retrieval.Document, string, error) {
	k, namespaces = a.applyDefaults(k, namespaces)

	matches, err := a.gateway.Search(ctx, query, k, namespaces)
	if err != nil {
		return nil, "", err
	}

	documents, joined := retrieval.Format(matches)
	return documents, joined, nil
}

func (a *Agent) applyDefaults(k int, namespaces []string) (int, []string) {
	if k <= 0 {
		k = a.defaultK
	}
	if len(namespaces) == 0 {
		namespaces = a.defaultNamespaces
	}
	return k, namespaces
}
