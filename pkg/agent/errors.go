package agent

import "fmt"

// UnknownToolError reports a model tool call naming a tool that was never
// registered.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("model requested unknown tool %q", e.Name)
}
