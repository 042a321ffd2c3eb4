package observability

const (
	AttrLLMModel        = "llm.model"
	AttrLLMTokensInput  = "llm.tokens.input"
	AttrLLMTokensOutput = "llm.tokens.output"
	AttrToolName        = "tool.name"
	AttrSearchQuery     = "search.query"
	AttrSearchK         = "search.k"
	AttrSearchNamespace = "search.namespace"

	SpanLLMRequest   = "repoqa.llm_request"
	SpanSearch       = "repoqa.search"
	SpanChat         = "repoqa.chat"
	SpanToolDispatch = "repoqa.tool_dispatch"

	DefaultServiceName = "repoqa"
)
