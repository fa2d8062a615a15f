package context7_test

import (
	"testing"

	"github.com/fwojciec/context7"
	"github.com/stretchr/testify/assert"
)

func TestToolResult_Text(t *testing.T) {
	t.Parallel()

	t.Run("concatenates text blocks", func(t *testing.T) {
		t.Parallel()
		r := &context7.ToolResult{Content: []context7.ContentBlock{
			context7.TextBlock{Text: "a"},
			context7.OtherBlock{Type: "image"},
			context7.TextBlock{Text: "b"},
		}}
		assert.Equal(t, "ab", r.Text())
	})

	t.Run("nil result", func(t *testing.T) {
		t.Parallel()
		var r *context7.ToolResult
		assert.Empty(t, r.Text())
	})
}

func TestToolDescription(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "context7", context7.ToolName)
	assert.Contains(t, context7.ToolDescription, "mcporter")
}
