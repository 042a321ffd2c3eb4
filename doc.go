// Package repoqa answers natural-language questions about an indexed
// codebase: retrieval over a vector store, fanned out across namespaces
// and globally re-ranked, grounding a two-step LLM tool-calling flow.
//
// # Quick Start
//
// Install the CLI:
//
//	go install github.com/repoqa/repoqa/cmd/repoqa@latest
//
// Point it at an existing index:
//
//	yaml
//	embedder:
//	  provider: openai
//	  model: text-embedding-3-small
//	vector_store:
//	  type: pinecone
//	  pinecone:
//	    api_key: ${PINECONE_API_KEY}
//	    index_name: codebase
//	search:
//	  namespaces: [repo_backend, repo_frontend]
//
// Ask a question:
//
//	repoqa ask "where are sessions invalidated" --config config.yaml
//
// # Using as a Go Library
//
// Wire the pipeline from config via pkg/runtime, or assemble the pieces
// directly:
//
//	import (
//	    "github.com/repoqa/repoqa/pkg/agent"
//	    "github.com/repoqa/repoqa/pkg/config"
//	    "github.com/repoqa/repoqa/pkg/runtime"
//	    "github.com/repoqa/repoqa/pkg/search"
//	)
//
// The searcher, tool registry, and agent accept interfaces, so any piece
// can be swapped for a custom implementation.
package repoqa
