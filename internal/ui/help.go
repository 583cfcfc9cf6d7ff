package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// HelpLine renders a one-line key hint bar for bindings, truncated to width
// cells by bubbles/help.
func HelpLine(bindings []key.Binding, width int) string {
	if len(bindings) == 0 || width <= 0 {
		return ""
	}
	h := help.New()
	h.Width = width
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = Styles.Hint
	h.Styles.ShortSeparator = Styles.Hint
	h.Styles.Ellipsis = Styles.Hint
	return h.ShortHelpView(bindings)
}
