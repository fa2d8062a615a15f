package context7

import (
	"context"
	"encoding/json"
)

// ToolName is the name the lookup tool is registered under.
const ToolName = "context7"

// ToolDescription is the description advertised to host runtimes.
const ToolDescription = "Look up official library documentation via Context7 (MCP). Uses mcporter under the hood. " +
	"Callers should provide a library name or direct Context7 libraryId, and a query."

// Tool is the schema sent to a host runtime describing a tool's capabilities.
type Tool struct {
	Name        string
	Description string
	Parameters  json.RawMessage
}

// ToolExecutor runs tools. Execute returns error for infrastructure failures;
// every recoverable condition is reported as text inside the ToolResult.
type ToolExecutor interface {
	Execute(ctx context.Context, name string, args json.RawMessage) (*ToolResult, error)
}

// ToolResult represents the outcome of a tool execution.
type ToolResult struct {
	Content []ContentBlock
}

// Text returns the concatenated text of all TextBlocks in the result.
func (r *ToolResult) Text() string {
	if r == nil {
		return ""
	}
	var text string
	for _, b := range r.Content {
		if tb, ok := b.(TextBlock); ok {
			text += tb.Text
		}
	}
	return text
}

func textResult(text string) *ToolResult {
	return &ToolResult{Content: []ContentBlock{TextBlock{Text: text}}}
}
