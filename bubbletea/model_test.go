package bubbletea_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/context7"
	"github.com/fwojciec/context7/bubbletea"
)

func nopLookup(context.Context, context7.LookupRequest) (*context7.ToolResult, error) {
	return &context7.ToolResult{}, nil
}

func textResult(text string) *context7.ToolResult {
	return &context7.ToolResult{Content: []context7.ContentBlock{context7.TextBlock{Text: text}}}
}

func initModel(t *testing.T, lookup bubbletea.LookupFunc) bubbletea.Model {
	t.Helper()
	return initModelWithSize(t, lookup, 80, 24)
}

func initModelWithSize(t *testing.T, lookup bubbletea.LookupFunc, width, height int) bubbletea.Model {
	t.Helper()
	m := bubbletea.New(lookup, context7.DefaultTheme())
	return updateModel(t, m, tea.WindowSizeMsg{Width: width, Height: height})
}

func updateModel(t *testing.T, m bubbletea.Model, msg tea.Msg) bubbletea.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(bubbletea.Model)
	require.True(t, ok)
	return model
}

func typeText(t *testing.T, m bubbletea.Model, s string) bubbletea.Model {
	t.Helper()
	for _, r := range s {
		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestModel_ViewBeforeSize(t *testing.T) {
	t.Parallel()

	m := bubbletea.New(nopLookup, context7.DefaultTheme())
	assert.Equal(t, "Initializing...", m.View())
}

func TestModel_WindowSize(t *testing.T) {
	t.Parallel()

	m := initModelWithSize(t, nopLookup, 100, 30)
	assert.Equal(t, 100, m.Viewport.Width)
	assert.Equal(t, 25, m.Viewport.Height)

	m = updateModel(t, m, tea.WindowSizeMsg{Width: 60, Height: 10})
	assert.Equal(t, 60, m.Viewport.Width)
	assert.Equal(t, 5, m.Viewport.Height)
}

func TestModel_WindowSizeTooSmall(t *testing.T) {
	t.Parallel()

	m := initModelWithSize(t, nopLookup, 20, 3)
	assert.Equal(t, 1, m.Viewport.Height)
}

func TestModel_TypingGoesToFocusedField(t *testing.T) {
	t.Parallel()

	m := initModel(t, nopLookup)
	assert.Equal(t, bubbletea.FieldLibrary, m.Focused())

	m = typeText(t, m, "react")
	assert.Equal(t, "react", m.Library.Value())
	assert.Empty(t, m.Query.Value())

	m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, bubbletea.FieldQuery, m.Focused())

	m = typeText(t, m, "hooks")
	assert.Equal(t, "react", m.Library.Value())
	assert.Equal(t, "hooks", m.Query.Value())

	m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, bubbletea.FieldLibrary, m.Focused())
}

func TestModel_EnterWithEmptyQueryFocusesQuery(t *testing.T) {
	t.Parallel()

	m := initModel(t, nopLookup)
	m = typeText(t, m, "react")

	m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.Running())
	assert.Equal(t, bubbletea.FieldQuery, m.Focused())
}

func TestModel_EnterStartsLookup(t *testing.T) {
	t.Parallel()

	var got context7.LookupRequest
	lookup := func(_ context.Context, req context7.LookupRequest) (*context7.ToolResult, error) {
		got = req
		return textResult("Context7 docs for /facebook/react\n\nuse hooks"), nil
	}

	m := initModel(t, lookup)
	m = typeText(t, m, " /facebook/react ")
	m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "hooks")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(bubbletea.Model)
	require.NotNil(t, cmd)
	assert.True(t, m.Running())
	assert.Contains(t, ansi.Strip(bubbletea.StatusLine(m)), "Looking up /facebook/react")

	msg := cmd()
	done, ok := msg.(bubbletea.LookupDoneMsg)
	require.True(t, ok)
	assert.Equal(t, "/facebook/react", got.Library)
	assert.Equal(t, "hooks", got.Query)

	m = updateModel(t, m, done)
	assert.False(t, m.Running())
	require.NoError(t, m.Err())
	assert.Equal(t, "Context7 docs for /facebook/react\n\nuse hooks", m.Result())
	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Context7 docs for /facebook/react")
	assert.Contains(t, view, "use hooks")
}

func TestModel_KeysIgnoredWhileRunning(t *testing.T) {
	t.Parallel()

	m := initModel(t, nopLookup)
	m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "q")
	m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.Running())

	m = typeText(t, m, "xyz")
	assert.Equal(t, "q", m.Query.Value())

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(bubbletea.Model)
	assert.Nil(t, cmd)
	assert.True(t, m.Running())
}

func TestModel_LookupError(t *testing.T) {
	t.Parallel()

	m := initModel(t, nopLookup)
	m = updateModel(t, m, bubbletea.LookupDoneMsg{Err: errors.New("bridge exploded")})

	require.Error(t, m.Err())
	assert.Contains(t, ansi.Strip(bubbletea.StatusLine(m)), "Error: bridge exploded")

	m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.NoError(t, m.Err())
}

func TestModel_CancelledLookupIsNotAnError(t *testing.T) {
	t.Parallel()

	m := initModel(t, nopLookup)
	m = updateModel(t, m, bubbletea.LookupDoneMsg{Err: context.Canceled})

	assert.NoError(t, m.Err())
	assert.False(t, m.Running())
}

func TestModel_CtrlCCancelsWhenRunning(t *testing.T) {
	t.Parallel()

	cancelled := false
	m := initModel(t, nopLookup)
	m = bubbletea.SetRunningWithCancel(m, func() { cancelled = true })

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = updated.(bubbletea.Model)

	assert.True(t, cancelled)
	assert.Nil(t, cmd)
	assert.True(t, m.Running())
}

func TestModel_CtrlCQuitsWhenIdle(t *testing.T) {
	t.Parallel()

	m := initModel(t, nopLookup)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_StatusLineTruncated(t *testing.T) {
	t.Parallel()

	m := initModelWithSize(t, nopLookup, 20, 10)
	m = updateModel(t, m, bubbletea.LookupDoneMsg{Err: errors.New(strings.Repeat("x", 100))})

	line := ansi.Strip(bubbletea.StatusLine(m))
	assert.LessOrEqual(t, ansi.StringWidth(line), 20)
	assert.True(t, strings.HasSuffix(line, "…"))
}

func TestModel_Teatest(t *testing.T) {
	t.Parallel()

	lookup := func(_ context.Context, req context7.LookupRequest) (*context7.ToolResult, error) {
		return textResult("Context7 resolved libraryId: /vercel/next.js\n\nrouting docs for " + req.Query), nil
	}
	m := bubbletea.New(lookup, context7.DefaultTheme())
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))

	tm.Type("next")
	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	tm.Type("app router")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return strings.Contains(ansi.Strip(string(b)), "routing docs for app router")
	}, teatest.WithDuration(5*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	final, ok := tm.FinalModel(t, teatest.WithFinalTimeout(5*time.Second)).(bubbletea.Model)
	require.True(t, ok)
	assert.Equal(t, "next", final.Library.Value())
	assert.Equal(t, "app router", final.Query.Value())
	assert.Contains(t, final.Result(), "/vercel/next.js")
}
