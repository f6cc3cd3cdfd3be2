// Package toolbox provides the tool abstraction shared by the MCP server and
// client: a named handler with a JSON Schema, and a registry to hold a set of
// them.
package toolbox

import (
	"context"
	"encoding/json"
	"fmt"
)

// CallResult is the outcome of calling a tool through a ToolBox. Content
// carries either the handler's text result or, when IsError is set, the
// failure message.
type CallResult struct {
	Content string
	IsError bool
}

// ToolBox holds a collection of tools. It allows registering, retrieving,
// listing, and calling tools by name.
type ToolBox struct {
	tools map[string]Tool
}

// New creates a new ToolBox ready for use.
func New() *ToolBox {
	return &ToolBox{
		tools: make(map[string]Tool),
	}
}

// Register adds one or more tools to the ToolBox. If a tool with the same name
// already exists, it is replaced.
func (tb *ToolBox) Register(tools ...Tool) {
	for _, t := range tools {
		tb.tools[t.Name] = t
	}
}

// Get returns a tool by name and a boolean indicating whether it was found.
func (tb *ToolBox) Get(name string) (Tool, bool) {
	t, ok := tb.tools[name]
	return t, ok
}

// Merge registers all tools from another ToolBox into this one. If a tool
// with the same name already exists, it is replaced.
func (tb *ToolBox) Merge(other *ToolBox) {
	for _, t := range other.tools {
		tb.tools[t.Name] = t
	}
}

// Tools returns all registered tools as a slice.
func (tb *ToolBox) Tools() []Tool {
	result := make([]Tool, 0, len(tb.tools))
	for _, t := range tb.tools {
		result = append(result, t)
	}
	return result
}

// Filter returns a new ToolBox containing only the named tools. Names not
// present in the ToolBox are skipped. An empty or nil names slice returns the
// receiver unchanged.
func (tb *ToolBox) Filter(names []string) *ToolBox {
	if len(names) == 0 {
		return tb
	}

	filtered := New()
	for _, name := range names {
		if t, ok := tb.tools[name]; ok {
			filtered.Register(t)
		}
	}

	return filtered
}

// Call executes the named tool with the given arguments. An unknown tool or a
// handler error produces a CallResult with IsError set.
func (tb *ToolBox) Call(ctx context.Context, name string, args json.RawMessage) CallResult {
	t, ok := tb.tools[name]
	if !ok {
		return CallResult{
			Content: fmt.Sprintf("tool not found: %s", name),
			IsError: true,
		}
	}

	result, err := t.Handler(ctx, args)
	if err != nil {
		return CallResult{
			Content: err.Error(),
			IsError: true,
		}
	}

	return CallResult{Content: result}
}
