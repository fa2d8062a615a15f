// Package json implements the JSON wire formats of the bridge envelope and
// of tool results.
package json

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/fwojciec/context7"
)

// envelope is the top-level shape of a bridge response. Every field is
// optional; documents of any other shape are still accepted as raw JSON.
type envelope struct {
	Content json.RawMessage `json:"content"`
}

// toolResultDTO is the wire format of a ToolResult.
type toolResultDTO struct {
	Content []json.RawMessage `json:"content"`
}

// DecodeResponse decodes a bridge response document. The document must be
// valid JSON; its shape is not validated. Content is populated only when the
// document is an object with a "content" list.
func DecodeResponse(raw []byte) (*context7.BridgeResponse, error) {
	raw = bytes.TrimSpace(raw)
	if !json.Valid(raw) {
		return nil, fmt.Errorf("decode response: %w", context7.ErrInvalidResponse)
	}
	resp := &context7.BridgeResponse{Raw: append(json.RawMessage(nil), raw...)}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return resp, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(env.Content, &items); err != nil {
		return resp, nil
	}
	resp.Content = unmarshalContentBlocks(items)
	return resp, nil
}

// MarshalToolResult serializes r as {"content":[{"type":"text","text":...}]}.
func MarshalToolResult(r *context7.ToolResult) ([]byte, error) {
	dto := toolResultDTO{Content: make([]json.RawMessage, 0, len(r.Content))}
	for i, b := range r.Content {
		item, err := marshalContentBlock(b)
		if err != nil {
			return nil, fmt.Errorf("content block %d: %w", i, err)
		}
		dto.Content = append(dto.Content, item)
	}
	return json.Marshal(dto)
}

// UnmarshalToolResult deserializes a ToolResult written by MarshalToolResult.
func UnmarshalToolResult(data []byte) (*context7.ToolResult, error) {
	var dto toolResultDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("unmarshal tool result: %w", err)
	}
	return &context7.ToolResult{Content: unmarshalContentBlocks(dto.Content)}, nil
}
