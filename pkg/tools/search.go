package tools

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/mitchellh/mapstructure"

	"github.com/repoqa/repoqa/pkg/llms"
)

// SearchToolName identifies the built-in knowledge base search tool.
const SearchToolName = "search_knowledge_base"

const searchToolDescription = "Search the indexed codebase for code snippets and " +
	"documentation relevant to a question. Use this whenever the answer depends on " +
	"the repository's actual contents."

// SearchOptions narrows a knowledge base search.
type SearchOptions struct {
	// NumResults caps how many matches come back.
	NumResults int `json:"num_results,omitempty" mapstructure:"num_results" jsonschema_description:"Maximum number of results to return"`

	// Namespaces restricts the search to these logical partitions.
	Namespaces []string `json:"namespaces,omitempty" mapstructure:"namespaces" jsonschema_description:"Logical partitions of the index to search"`
}

// SearchArgs are the arguments the model supplies when invoking the
// search tool.
type SearchArgs struct {
	// Query is the natural-language search text.
	Query string `json:"query" mapstructure:"query" jsonschema_description:"Natural-language description of what to look for"`

	// Options are model-proposed search settings. The orchestrator
	// overrides these with caller-supplied values.
	Options SearchOptions `json:"options,omitempty" mapstructure:"options"`
}

// MalformedArgumentsError reports tool arguments that could not be decoded
// into the tool's expected shape.
type MalformedArgumentsError struct {
	Tool string
	Err  error
}

func (e *MalformedArgumentsError) Error() string {
	return fmt.Sprintf("malformed arguments for tool %q: %v", e.Tool, e.Err)
}

func (e *MalformedArgumentsError) Unwrap() error {
	return e.Err
}

// SearchToolDefinition builds the definition advertised to the model for
// the built-in search tool. The parameter schema is reflected from
// SearchArgs.
func SearchToolDefinition() llms.ToolDefinition {
	return llms.ToolDefinition{
		Name:        SearchToolName,
		Description: searchToolDescription,
		Parameters:  reflectSchema(&SearchArgs{}),
	}
}

// reflectSchema converts a struct into a plain JSON-Schema map suitable
// for provider tool definitions.
func reflectSchema(v interface{}) map[string]interface{} {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}

	schema := reflector.Reflect(v)

	data, err := json.Marshal(schema)
	if err != nil {
		return map[string]interface{}{"type": "object"}
	}

	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return map[string]interface{}{"type": "object"}
	}

	// Provider APIs reject schema metadata keys
	delete(out, "$schema")
	delete(out, "$id")

	return out
}

// DecodeSearchArgs converts raw model-supplied arguments into SearchArgs.
func DecodeSearchArgs(args map[string]interface{}) (*SearchArgs, error) {
	var decoded SearchArgs

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &decoded,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(args); err != nil {
		return nil, &MalformedArgumentsError{Tool: SearchToolName, Err: err}
	}

	if decoded.Query == "" {
		return nil, &MalformedArgumentsError{Tool: SearchToolName, Err: fmt.Errorf("query is required")}
	}

	return &decoded, nil
}
