package context7

import (
	"context"
	"strings"
)

// LookupRequest is the input of one lookup.
type LookupRequest struct {
	Library     string // bare library name or a library ID starting with "/"
	Query       string // required, non-empty after trimming
	VersionHint string // accepted but not forwarded
}

// Normalize returns a copy with Library and Query trimmed.
func (r LookupRequest) Normalize() LookupRequest {
	r.Library = strings.TrimSpace(r.Library)
	r.Query = strings.TrimSpace(r.Query)
	r.VersionHint = strings.TrimSpace(r.VersionHint)
	return r
}

type requestIDKey struct{}

// WithRequestID returns a context carrying id. Events emitted for a lookup
// running under that context carry the same id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the request id stored by WithRequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
