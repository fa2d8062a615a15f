package bubbletea

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/fwojciec/context7"
	"github.com/fwojciec/context7/goldmark"
)

var _ tea.Model = Model{}

// Input fields, in focus order.
const (
	FieldLibrary = iota
	FieldQuery
)

const (
	labelWidth = 9 // "Library: "
	// Rows outside the viewport: status line, two inputs, and the newlines
	// between sections.
	chromeHeight = 1 + 2 + 2
)

// Model is the Bubble Tea model for the lookup TUI.
type Model struct {
	// Library and Query are the input fields. Exported for test access.
	Library textinput.Model
	Query   textinput.Model
	// Viewport shows the rendered lookup result. Exported for test access.
	Viewport viewport.Model

	lookup LookupFunc
	theme  context7.Theme
	styles Styles

	focus   int
	result  string // raw text of the last result
	last    context7.LookupRequest
	running bool
	cancel  context.CancelFunc
	err     error
	ready   bool
}

// New creates a TUI Model that runs lookups with lookup.
func New(lookup LookupFunc, theme context7.Theme) Model {
	lib := textinput.New()
	lib.Placeholder = "library name or /org/project"
	lib.Prompt = ""
	lib.Focus()

	query := textinput.New()
	query.Placeholder = "what to search for in the docs"
	query.Prompt = ""

	return Model{
		Library: lib,
		Query:   query,
		lookup:  lookup,
		theme:   theme,
		styles:  NewStyles(theme),
	}
}

// Running returns whether a lookup is in flight.
func (m Model) Running() bool { return m.running }

// Err returns the error of the last lookup, if any.
func (m Model) Err() error { return m.err }

// Result returns the raw text of the last lookup result.
func (m Model) Result() string { return m.result }

// Focused returns the focused input field.
func (m Model) Focused() int { return m.focus }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case LookupDoneMsg:
		m.running = false
		m.cancel = nil
		if msg.Err != nil {
			if !errors.Is(msg.Err, context.Canceled) {
				m.err = msg.Err
			}
			return m, m.focusField(m.focus)
		}
		m.last = msg.Request
		m.result = msg.Result.Text()
		m.Viewport.SetContent(m.renderResult())
		m.Viewport.GotoTop()
		return m, m.focusField(m.focus)
	}

	var vpCmd, inputCmd tea.Cmd
	m.Viewport, vpCmd = m.Viewport.Update(msg)
	if m.focus == FieldLibrary {
		m.Library, inputCmd = m.Library.Update(msg)
	} else {
		m.Query, inputCmd = m.Query.Update(msg)
	}
	return m, tea.Batch(vpCmd, inputCmd)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.inputLine("Library:", FieldLibrary, m.Library))
	b.WriteString("\n")
	b.WriteString(m.inputLine("Query:", FieldQuery, m.Query))
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	vpHeight := max(msg.Height-chromeHeight, 1)
	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}
	m.Viewport.SetContent(m.renderResult())

	inputWidth := max(msg.Width-labelWidth-1, 1)
	m.Library.Width = inputWidth
	m.Query.Width = inputWidth
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		if m.running {
			if m.cancel != nil {
				m.cancel()
			}
			return m, nil
		}
		return m, tea.Quit

	case tea.KeyEsc:
		m.err = nil
		return m, nil

	case tea.KeyTab, tea.KeyShiftTab:
		if m.running {
			return m, nil
		}
		return m, m.focusField(1 - m.focus)

	case tea.KeyEnter:
		if m.running {
			return m, nil
		}
		if strings.TrimSpace(m.Query.Value()) == "" {
			return m, m.focusField(FieldQuery)
		}
		return m.submit()

	case tea.KeyPgUp, tea.KeyPgDown, tea.KeyUp, tea.KeyDown:
		var cmd tea.Cmd
		m.Viewport, cmd = m.Viewport.Update(msg)
		return m, cmd
	}

	if m.running {
		return m, nil
	}
	var cmd tea.Cmd
	if m.focus == FieldLibrary {
		m.Library, cmd = m.Library.Update(msg)
	} else {
		m.Query, cmd = m.Query.Update(msg)
	}
	return m, cmd
}

func (m *Model) focusField(field int) tea.Cmd {
	m.focus = field
	if field == FieldLibrary {
		m.Query.Blur()
		return m.Library.Focus()
	}
	m.Library.Blur()
	return m.Query.Focus()
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	req := context7.LookupRequest{
		Library: m.Library.Value(),
		Query:   m.Query.Value(),
	}.Normalize()

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.running = true
	m.err = nil
	m.last = req
	m.Library.Blur()
	m.Query.Blur()

	return m, startLookup(ctx, m.lookup, req)
}

func (m Model) renderResult() string {
	if m.result == "" {
		return ""
	}
	return goldmark.RenderResult(m.result, m.Viewport.Width, m.theme)
}

func (m Model) inputLine(label string, field int, input textinput.Model) string {
	style := m.styles.Label
	if field == m.focus && !m.running {
		style = m.styles.Focus
	}
	return style.Render(fmt.Sprintf("%-*s", labelWidth, label)) + input.View()
}

func (m Model) statusLine() string {
	width := m.Viewport.Width
	fit := func(s string) string {
		if width <= 0 {
			return s
		}
		return runewidth.Truncate(s, width, "…")
	}
	switch {
	case m.err != nil:
		return m.styles.Error.Render(fit(fmt.Sprintf("Error: %v", m.err)))
	case m.running:
		target := m.last.Library
		if target == "" {
			target = m.last.Query
		}
		return m.styles.Muted.Render(fit(fmt.Sprintf("Looking up %s... (Ctrl+C to cancel)", target)))
	case m.result != "":
		return m.styles.Success.Render(fit("Done. Tab to switch field, Enter to look up, Ctrl+C to quit"))
	default:
		return m.styles.Muted.Render(fit("Tab to switch field, Enter to look up, Ctrl+C to quit"))
	}
}

// startLookup runs the lookup in a goroutine managed by Bubble Tea and
// reports its outcome as a LookupDoneMsg.
func startLookup(ctx context.Context, lookup LookupFunc, req context7.LookupRequest) tea.Cmd {
	return func() tea.Msg {
		result, err := lookup(ctx, req)
		return LookupDoneMsg{Request: req, Result: result, Err: err}
	}
}
