package bubbletea

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/fwojciec/context7"
)

// Styles maps a Theme to lipgloss styles for TUI rendering.
type Styles struct {
	Label   lipgloss.Style
	Focus   lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t context7.Theme) Styles {
	return Styles{
		Label:   lipgloss.NewStyle().Foreground(ansiColor(t.Muted)),
		Focus:   lipgloss.NewStyle().Foreground(ansiColor(t.Focus)).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(ansiColor(t.Error)),
		Success: lipgloss.NewStyle().Foreground(ansiColor(t.Success)),
		Muted:   lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
