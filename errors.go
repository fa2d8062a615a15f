package context7

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a configuration or request failed validation.
	ErrValidation = errors.New("validation error")

	// ErrToolNotFound indicates the requested tool does not exist.
	ErrToolNotFound = errors.New("tool not found")

	// ErrBridgeTimeout indicates the bridge process exceeded its timeout.
	ErrBridgeTimeout = errors.New("bridge timed out")

	// ErrOutputTooLarge indicates the bridge wrote more than the output ceiling.
	ErrOutputTooLarge = errors.New("bridge output exceeds size limit")

	// ErrBridgeFailed indicates the bridge process exited with a non-zero status
	// or could not be started.
	ErrBridgeFailed = errors.New("bridge failed")

	// ErrInvalidResponse indicates the bridge output is not a JSON document.
	ErrInvalidResponse = errors.New("bridge returned invalid JSON")
)

// BridgeError describes a failed bridge call. Err wraps one of the bridge
// sentinel errors, so callers can match with errors.Is.
type BridgeError struct {
	Operation Operation
	ExitCode  int    // -1 when the process did not exit normally
	Stderr    string // sanitized, possibly empty
	Err       error
}

func (e *BridgeError) Error() string {
	var b strings.Builder
	b.WriteString("bridge")
	if e.Operation != "" {
		fmt.Fprintf(&b, " %s", e.Operation)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %s", e.Err)
	}
	if e.Stderr != "" {
		fmt.Fprintf(&b, ": %s", e.Stderr)
	}
	return b.String()
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As.
func (e *BridgeError) Unwrap() error {
	return e.Err
}
