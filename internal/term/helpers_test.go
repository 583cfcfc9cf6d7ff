package term

import tea "github.com/charmbracelet/bubbletea"

type teaModel = tea.Model

func update(m tea.Model, msg tea.Msg) tea.Model {
	next, _ := m.Update(msg)
	return next
}

func windowSize(w, h int) tea.Msg {
	return tea.WindowSizeMsg{Width: w, Height: h}
}

func runeKey(r rune) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}
