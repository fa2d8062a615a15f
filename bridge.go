package context7

import (
	"bytes"
	"context"
	"encoding/json"
)

// Operation names a remote call on the documentation server.
type Operation string

const (
	// OpResolveLibraryID maps a free-text library name to candidate library IDs.
	OpResolveLibraryID Operation = "resolve-library-id"
	// OpQueryDocs fetches documentation for a library ID and query.
	OpQueryDocs Operation = "query-docs"
)

// Bridge forwards a named call to the documentation server and returns its
// decoded response. Implementations must be safe for concurrent use.
type Bridge interface {
	Call(ctx context.Context, op Operation, args any) (*BridgeResponse, error)
}

// ResolveArgs are the arguments of OpResolveLibraryID.
type ResolveArgs struct {
	Query string `json:"query"`
}

// QueryArgs are the arguments of OpQueryDocs.
type QueryArgs struct {
	LibraryID string `json:"libraryId"`
	Query     string `json:"query"`
}

// BridgeResponse is a decoded bridge envelope. Content is nil when the
// document has no content list. Raw is the document as received.
type BridgeResponse struct {
	Content []ContentBlock
	Raw     json.RawMessage
}

// Text returns the text of the first item of type "text". When there is no
// such item, or it carries no string payload, the whole document is returned
// pretty-printed. It never fails.
func (r *BridgeResponse) Text() string {
	if r == nil {
		return "null"
	}
loop:
	for _, b := range r.Content {
		switch b := b.(type) {
		case TextBlock:
			return b.Text
		case OtherBlock:
			if b.Type == "text" {
				break loop
			}
		}
	}
	raw := bytes.TrimSpace(r.Raw)
	if len(raw) == 0 {
		return "null"
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
