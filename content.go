package context7

import "encoding/json"

// ContentBlock is a sealed interface representing one item of a content list,
// either in a bridge response envelope or in a ToolResult.
// The unexported marker method prevents external implementations.
type ContentBlock interface {
	contentBlock()
}

// TextBlock contains text content.
type TextBlock struct {
	Text string
}

func (TextBlock) contentBlock() {}

// OtherBlock is any envelope item that is not a usable text item: images,
// resources, text items without a string payload, or non-object entries.
// Raw holds the item exactly as received.
type OtherBlock struct {
	Type string
	Raw  json.RawMessage
}

func (OtherBlock) contentBlock() {}

// Interface compliance checks.
var (
	_ ContentBlock = TextBlock{}
	_ ContentBlock = OtherBlock{}
)
