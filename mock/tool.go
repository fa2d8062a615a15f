package mock

import (
	"context"
	"encoding/json"

	"github.com/fwojciec/context7"
)

// Interface compliance check.
var _ context7.ToolExecutor = (*ToolExecutor)(nil)

// ToolExecutor is a test double for context7.ToolExecutor.
// Set ExecuteFn before calling Execute.
type ToolExecutor struct {
	ExecuteFn func(ctx context.Context, name string, args json.RawMessage) (*context7.ToolResult, error)
}

// Execute delegates to ExecuteFn.
func (e *ToolExecutor) Execute(ctx context.Context, name string, args json.RawMessage) (*context7.ToolResult, error) {
	return e.ExecuteFn(ctx, name, args)
}
