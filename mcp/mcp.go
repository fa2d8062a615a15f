// Package mcp exposes the context7 tool on a Model Context Protocol server.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fwojciec/context7"
	"github.com/fwojciec/context7/jsonschema"
)

// ServerName is the implementation name the server reports to clients.
const ServerName = "context7"

// NewServer returns an MCP server with the context7 tool registered. The
// tool advertises the schema of context7.LookupArgs; arguments reach exec
// unvalidated so that exec reports bad input in the result text. Each call
// runs under a fresh request ID. Executor failures are reported as tool
// results with IsError set, not as protocol errors.
func NewServer(exec context7.ToolExecutor, version string) (*mcpsdk.Server, error) {
	tool, err := jsonschema.LookupTool()
	if err != nil {
		return nil, fmt.Errorf("tool schema: %w", err)
	}
	var schema map[string]any
	if err := json.Unmarshal(tool.Parameters, &schema); err != nil {
		return nil, fmt.Errorf("tool schema: %w", err)
	}

	server := mcpsdk.NewServer(&mcpsdk.Implementation{Name: ServerName, Version: version}, nil)
	server.AddTool(&mcpsdk.Tool{
		Name:        tool.Name,
		Description: tool.Description,
		InputSchema: schema,
	}, handler(exec, tool.Name))
	return server, nil
}

// Serve runs server over stdin/stdout until the client disconnects or ctx is
// cancelled.
func Serve(ctx context.Context, server *mcpsdk.Server) error {
	return server.Run(ctx, &mcpsdk.StdioTransport{})
}

func handler(exec context7.ToolExecutor, name string) mcpsdk.ToolHandler {
	return func(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
		ctx = context7.WithRequestID(ctx, uuid.NewString())
		var args json.RawMessage
		if req.Params != nil {
			args = req.Params.Arguments
		}
		result, err := exec.Execute(ctx, name, args)
		if err != nil {
			return &mcpsdk.CallToolResult{
				Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: err.Error()}},
				IsError: true,
			}, nil
		}
		return ToCallToolResult(result), nil
	}
}

// ToCallToolResult converts a tool result into MCP content. Text blocks map
// to text content; other blocks are forwarded as their raw JSON text.
func ToCallToolResult(r *context7.ToolResult) *mcpsdk.CallToolResult {
	out := &mcpsdk.CallToolResult{Content: []mcpsdk.Content{}}
	if r == nil {
		return out
	}
	for _, b := range r.Content {
		switch b := b.(type) {
		case context7.TextBlock:
			out.Content = append(out.Content, &mcpsdk.TextContent{Text: b.Text})
		case context7.OtherBlock:
			if len(b.Raw) > 0 && json.Valid(b.Raw) {
				out.Content = append(out.Content, &mcpsdk.TextContent{Text: string(b.Raw)})
			}
		}
	}
	return out
}
