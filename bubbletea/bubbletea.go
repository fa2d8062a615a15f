// Package bubbletea provides a Bubble Tea TUI for interactive documentation
// lookups.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fwojciec/context7"
)

// LookupFunc runs one lookup. It blocks until the lookup completes or the
// context is cancelled.
type LookupFunc func(ctx context.Context, req context7.LookupRequest) (*context7.ToolResult, error)

// Run creates and runs the Bubble Tea TUI program. It blocks until the program
// exits. When ctx is cancelled, the program quits.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// LookupDoneMsg carries the outcome of a lookup started by the model.
type LookupDoneMsg struct {
	Request context7.LookupRequest
	Result  *context7.ToolResult
	Err     error
}
