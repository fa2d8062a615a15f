package context7

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Fixed user-visible messages.
const (
	MsgNotConfigured = "Context7 tool is not configured: missing mcporterConfigPath in plugin config."
	MsgMissingQuery  = "Missing required field: query"
	MsgUnresolved    = "Context7: could not confidently resolve a libraryId. Here is the resolver output:\n\n"
)

// Compile-time interface check.
var _ ToolExecutor = (*Lookup)(nil)

// Lookup implements the context7 tool: it resolves a library reference to a
// library ID through the bridge, queries the docs for it, and assembles a
// bounded text answer. Lookup holds no mutable state and is safe for
// concurrent use.
type Lookup struct {
	bridge  Bridge
	cfg     Config
	onEvent func(Event)
}

// LookupOption configures a Lookup.
type LookupOption func(*Lookup)

// WithEventHandler sets a callback that receives each lifecycle event. If nil
// or not set, events are silently discarded. The handler is called
// synchronously from the goroutine running the lookup.
func WithEventHandler(h func(Event)) LookupOption {
	return func(l *Lookup) {
		l.onEvent = h
	}
}

// NewLookup creates a Lookup that calls bridge. Zero fields of cfg are
// replaced by defaults.
func NewLookup(bridge Bridge, cfg Config, opts ...LookupOption) *Lookup {
	l := &Lookup{bridge: bridge, cfg: cfg.WithDefaults()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LookupArgs are the arguments of the context7 tool. The descriptions feed
// the advertised input schema.
type LookupArgs struct {
	Library     string `json:"library,omitempty" jsonschema_description:"Library/package name (e.g. 'FastAPI') OR a Context7 libraryId like '/tiangolo/fastapi'."`
	Query       string `json:"query" jsonschema_description:"What you want to know / what to search for in the docs."`
	VersionHint string `json:"versionHint,omitempty" jsonschema_description:"Optional version hint (not always used). If libraryId includes version, this can be omitted."`
}

// Execute decodes tool arguments and runs the lookup. Unknown fields and
// malformed arguments are reported in the result text, not as errors.
func (l *Lookup) Execute(ctx context.Context, name string, args json.RawMessage) (*ToolResult, error) {
	if name != ToolName {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
	var a LookupArgs
	if len(bytes.TrimSpace(args)) > 0 {
		if err := decodeArgs(args, &a); err != nil {
			l.emit(EventRejected{RequestID: RequestIDFromContext(ctx), Reason: "invalid arguments"})
			return textResult(fmt.Sprintf("Invalid arguments: %s", err)), nil
		}
	}
	return l.Lookup(ctx, LookupRequest{
		Library:     a.Library,
		Query:       a.Query,
		VersionHint: a.VersionHint,
	})
}

// decodeArgs decodes exactly one JSON object into v, rejecting unknown
// fields and trailing data.
func decodeArgs(args json.RawMessage, v any) error {
	dec := json.NewDecoder(bytes.NewReader(args))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after arguments")
	}
	return nil
}

// Lookup runs the resolve-then-query workflow for req. Bridge failures are
// returned as errors; a missing configuration, an empty query, and resolver
// output without a library ID produce explanatory results instead.
func (l *Lookup) Lookup(ctx context.Context, req LookupRequest) (*ToolResult, error) {
	requestID := RequestIDFromContext(ctx)

	if !l.cfg.Configured() {
		l.emit(EventRejected{RequestID: requestID, Reason: "not configured"})
		return textResult(MsgNotConfigured), nil
	}
	req = req.Normalize()
	if req.Query == "" {
		l.emit(EventRejected{RequestID: requestID, Reason: "missing query"})
		return textResult(MsgMissingQuery), nil
	}

	direct := IsLibraryID(req.Library)
	libraryID := ""
	resolvedSummary := ""
	if direct {
		libraryID = req.Library
	} else {
		search := req.Library
		if search == "" {
			search = req.Query
		}
		l.emit(EventResolveStarted{RequestID: requestID, Search: search})
		resolved, err := l.bridge.Call(ctx, OpResolveLibraryID, ResolveArgs{Query: search})
		if err != nil {
			return nil, fmt.Errorf("resolve library id: %w", err)
		}
		resolvedSummary = resolved.Text()

		id, ok := ExtractLibraryID(resolvedSummary)
		if !ok {
			l.emit(EventUnresolved{RequestID: requestID, Chars: utf8.RuneCountInString(resolvedSummary)})
			return textResult(MsgUnresolved + Clip(resolvedSummary, l.cfg.MaxChars)), nil
		}
		libraryID = id
		l.emit(EventResolved{RequestID: requestID, LibraryID: libraryID})
	}

	l.emit(EventQueryStarted{
		RequestID:   requestID,
		LibraryID:   libraryID,
		Query:       req.Query,
		VersionHint: req.VersionHint,
	})
	docs, err := l.bridge.Call(ctx, OpQueryDocs, QueryArgs{LibraryID: libraryID, Query: req.Query})
	if err != nil {
		return nil, fmt.Errorf("query docs: %w", err)
	}
	docsText := docs.Text()
	chars := utf8.RuneCountInString(docsText)
	l.emit(EventQueryFinished{
		RequestID: requestID,
		LibraryID: libraryID,
		Chars:     chars,
		Clipped:   chars > l.cfg.MaxChars,
	})

	return textResult(assemble(libraryID, direct, resolvedSummary, docsText, l.cfg.MaxChars)), nil
}

// Header prefixes of a successful lookup.
const (
	HeaderDirect   = "Context7 docs for "
	HeaderResolved = "Context7 resolved libraryId: "
)

func assemble(libraryID string, direct bool, resolvedSummary, docsText string, maxChars int) string {
	var b strings.Builder
	if direct {
		b.WriteString(HeaderDirect)
	} else {
		b.WriteString(HeaderResolved)
	}
	b.WriteString(libraryID)
	b.WriteString("\n\n")
	if resolvedSummary != "" {
		b.WriteString("---\nResolver output (truncated)\n---\n")
		b.WriteString(Clip(resolvedSummary, ResolverClipChars))
		b.WriteString("\n\n")
	}
	b.WriteString(Clip(docsText, maxChars))
	return b.String()
}

func (l *Lookup) emit(e Event) {
	if l.onEvent != nil {
		l.onEvent(e)
	}
}
