package mcporter

import (
	"bytes"
	"sync"
)

// OutputCollector is an io.Writer that captures process output in one of two
// modes:
//   - limit mode keeps everything up to a hard byte limit; the first write
//     past the limit marks the collector exceeded, calls onExceed once, and
//     drops all further output
//   - tail mode keeps a rolling buffer of the last maxBuf bytes
//
// Writes never fail so the process can be drained while it is being killed.
// It is safe for concurrent use. Write after Close is a no-op.
type OutputCollector struct {
	mu       sync.Mutex
	buf      []byte
	total    int64
	limit    int64
	maxBuf   int
	exceeded bool
	onExceed func()
	closed   bool
}

// NewOutputCollector creates a collector in limit mode. A limit <= 0 means
// no limit. onExceed may be nil.
func NewOutputCollector(limit int64, onExceed func()) *OutputCollector {
	return &OutputCollector{limit: limit, onExceed: onExceed}
}

// NewTailCollector creates a collector in tail mode.
func NewTailCollector(maxBuf int) *OutputCollector {
	return &OutputCollector{maxBuf: maxBuf}
}

// Write implements io.Writer.
func (c *OutputCollector) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(p)
	if c.closed || c.exceeded {
		return n, nil
	}
	c.total += int64(n)

	if c.limit > 0 && c.total > c.limit {
		c.exceeded = true
		c.buf = nil
		if c.onExceed != nil {
			c.onExceed()
		}
		return n, nil
	}

	c.buf = append(c.buf, p...)

	// Trim rolling buffer (copy to release old backing array).
	if c.maxBuf > 0 && len(c.buf) > c.maxBuf {
		trimmed := make([]byte, c.maxBuf)
		copy(trimmed, c.buf[len(c.buf)-c.maxBuf:])
		c.buf = trimmed
	}
	return n, nil
}

// Bytes returns a copy of the collected output.
func (c *OutputCollector) Bytes() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return bytes.Clone(c.buf)
}

// TotalBytes returns the number of bytes written, including dropped ones up
// to the write that crossed the limit.
func (c *OutputCollector) TotalBytes() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// Exceeded reports whether output crossed the limit.
func (c *OutputCollector) Exceeded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.exceeded
}

// Close marks the collector closed. Subsequent writes are no-ops.
func (c *OutputCollector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}
