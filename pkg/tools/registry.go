package tools

import (
	"sync"

	"github.com/repoqa/repoqa/pkg/llms"
)

// Registry maps tool names to their definitions. Registering a name that
// already exists replaces the definition in place, keeping its original
// position, so the order tools are advertised to the model stays stable.
//
// Callers own their registry instance; there is no package-level global.
type Registry struct {
	mu    sync.RWMutex
	names []string
	tools map[string]llms.ToolDefinition
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]llms.ToolDefinition),
	}
}

// Register adds a tool definition, overwriting any existing definition
// with the same name (last write wins).
func (r *Registry) Register(def llms.ToolDefinition) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[def.Name]; !exists {
		r.names = append(r.names, def.Name)
	}
	r.tools[def.Name] = def
}

// Get returns the definition registered under name.
func (r *Registry) Get(name string) (llms.ToolDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.tools[name]
	return def, ok
}

// All returns every registered definition in registration order.
func (r *Registry) All() []llms.ToolDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]llms.ToolDefinition, 0, len(r.names))
	for _, name := range r.names {
		defs = append(defs, r.tools[name])
	}
	return defs
}

// Count returns the number of registered tools.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names)
}

// Clear removes all registered tools. Exists for test isolation.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.names = nil
	r.tools = make(map[string]llms.ToolDefinition)
}
