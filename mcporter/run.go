package mcporter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	osexec "os/exec"
	"syscall"
	"time"

	"github.com/fwojciec/context7"
)

const (
	// maxStderrBytes bounds the stderr tail kept for error reports.
	maxStderrBytes = 64 * 1024
	// maxStderrLines bounds the stderr lines attached to a BridgeError.
	maxStderrLines = 20
	// waitDelay bounds how long Wait waits for output pipes after the
	// process group is killed.
	waitDelay = 2 * time.Second
)

// Run executes the bridge with args and returns its stdout as a JSON
// document. The process runs in its own process group, which is killed on
// timeout, on cancellation of ctx, and when stdout exceeds the output limit.
//
// Failures are reported as *context7.BridgeError wrapping ErrBridgeTimeout,
// ErrOutputTooLarge, ErrBridgeFailed or ErrInvalidResponse. Cancellation of
// ctx is reported as the context error.
func (c *Client) Run(ctx context.Context, args []string) (json.RawMessage, error) {
	runCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	stdout := NewOutputCollector(c.maxOutputBytes, cancel)
	stderr := NewTailCollector(maxStderrBytes)
	defer stdout.Close()
	defer stderr.Close()

	cmd := osexec.CommandContext(runCtx, c.command, args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
	cmd.WaitDelay = waitDelay
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	waitErr := cmd.Run()

	if stdout.Exceeded() {
		return nil, &context7.BridgeError{
			ExitCode: -1,
			Stderr:   stderrTail(stderr),
			Err:      fmt.Errorf("%w: read %d bytes, limit %d", context7.ErrOutputTooLarge, stdout.TotalBytes(), c.maxOutputBytes),
		}
	}
	if waitErr != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			return nil, &context7.BridgeError{
				ExitCode: -1,
				Stderr:   stderrTail(stderr),
				Err:      fmt.Errorf("%w after %s", context7.ErrBridgeTimeout, c.timeout),
			}
		}
		var exitErr *osexec.ExitError
		if errors.As(waitErr, &exitErr) {
			return nil, &context7.BridgeError{
				ExitCode: exitErr.ExitCode(),
				Stderr:   stderrTail(stderr),
				Err:      fmt.Errorf("%w: %s", context7.ErrBridgeFailed, exitErr),
			}
		}
		return nil, &context7.BridgeError{
			ExitCode: -1,
			Stderr:   stderrTail(stderr),
			Err:      fmt.Errorf("%w: %w", context7.ErrBridgeFailed, waitErr),
		}
	}

	raw := bytes.TrimSpace(stdout.Bytes())
	if !json.Valid(raw) {
		return nil, &context7.BridgeError{
			Stderr: stderrTail(stderr),
			Err:    context7.ErrInvalidResponse,
		}
	}
	return raw, nil
}

func stderrTail(c *OutputCollector) string {
	return TailLines(Sanitize(string(c.Bytes())), maxStderrLines)
}
