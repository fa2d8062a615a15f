package json

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/context7"
)

// contentBlock is the JSON representation of a content item with a type
// discriminator. Text stays raw so a non-string payload can be told apart
// from a string one.
type contentBlock struct {
	Type string          `json:"type"`
	Text json.RawMessage `json:"text,omitempty"`
}

func marshalContentBlock(b context7.ContentBlock) (json.RawMessage, error) {
	switch v := b.(type) {
	case context7.TextBlock:
		text, err := json.Marshal(v.Text)
		if err != nil {
			return nil, err
		}
		return json.Marshal(contentBlock{Type: "text", Text: text})
	case context7.OtherBlock:
		if len(v.Raw) > 0 {
			return v.Raw, nil
		}
		return json.Marshal(contentBlock{Type: v.Type})
	default:
		return nil, fmt.Errorf("unknown content block type: %T", b)
	}
}

func unmarshalContentBlocks(items []json.RawMessage) []context7.ContentBlock {
	if items == nil {
		return nil
	}
	result := make([]context7.ContentBlock, len(items))
	for i, item := range items {
		result[i] = unmarshalContentBlock(item)
	}
	return result
}

// unmarshalContentBlock never fails: anything that is not an object with
// type "text" and a string text becomes an OtherBlock.
func unmarshalContentBlock(item json.RawMessage) context7.ContentBlock {
	other := context7.OtherBlock{Raw: item}
	var dto contentBlock
	if err := json.Unmarshal(item, &dto); err != nil {
		return other
	}
	other.Type = dto.Type
	if dto.Type != "text" {
		return other
	}
	var text *string
	if err := json.Unmarshal(dto.Text, &text); err != nil || text == nil {
		return other
	}
	return context7.TextBlock{Text: *text}
}
