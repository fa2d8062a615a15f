// Package mock provides test doubles for the context7 interfaces.
package mock

import (
	"context"

	"github.com/fwojciec/context7"
)

// Interface compliance check.
var _ context7.Bridge = (*Bridge)(nil)

// Bridge is a test double for context7.Bridge.
// Set CallFn before calling Call.
type Bridge struct {
	CallFn func(ctx context.Context, op context7.Operation, args any) (*context7.BridgeResponse, error)
}

// Call delegates to CallFn.
func (b *Bridge) Call(ctx context.Context, op context7.Operation, args any) (*context7.BridgeResponse, error) {
	return b.CallFn(ctx, op, args)
}

// TextResponse returns a response whose envelope holds a single text item.
func TextResponse(text string) *context7.BridgeResponse {
	return &context7.BridgeResponse{
		Content: []context7.ContentBlock{context7.TextBlock{Text: text}},
	}
}
