package panels

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"tiledash/internal/bus"
	"tiledash/internal/keys"
	"tiledash/internal/ui"
)

// SelectorID is the bus source name used by Selector.
const SelectorID = "selector"

// DefaultItems is the list shown by the dashboard's selector panel.
var DefaultItems = []string{"apple", "banana", "grapes", "orange"}

type selectorKeyMap struct {
	Prev key.Binding
	Next key.Binding
}

var selectorKeys = selectorKeyMap{
	Prev: key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev")),
	Next: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next")),
}

// Selector is a single-choice list moved with the left and right arrows.
// Moving past either end is a no-op and sends nothing.
type Selector struct {
	items []string
	index int
	tx    *bus.Sender
}

var (
	_ ui.Panel        = (*Selector)(nil)
	_ ui.InputHandler = (*Selector)(nil)
)

// NewSelector creates a selector over items with the first item selected.
// A nil or empty items uses DefaultItems.
func NewSelector(tx *bus.Sender, items []string) *Selector {
	if len(items) == 0 {
		items = DefaultItems
	}
	return &Selector{items: append([]string(nil), items...), tx: tx}
}

// Index returns the selected position, always in [0, len(items)-1].
func (s *Selector) Index() int {
	return s.index
}

// Selected returns the selected item.
func (s *Selector) Selected() string {
	return s.items[s.index]
}

// HandleInput implements ui.InputHandler.
func (s *Selector) HandleInput(k keys.Event) {
	next := s.index
	switch {
	case key.Matches(k, selectorKeys.Prev):
		next = max(s.index-1, 0)
	case key.Matches(k, selectorKeys.Next):
		next = min(s.index+1, len(s.items)-1)
	}
	if next == s.index {
		return
	}
	s.index = next
	s.tx.Send(bus.Notification(SelectorID, "["+SelectorID+"] selected: "+s.items[s.index]))
}

// Render implements ui.Panel.
func (s *Selector) Render(f *ui.Frame, r ui.Rect) {
	var b strings.Builder
	for i, item := range s.items {
		if i > 0 {
			b.WriteString("\n")
		}
		if i == s.index {
			b.WriteString(ui.Styles.Selected.Render("> " + item))
		} else {
			b.WriteString(ui.Styles.Normal.Render("  " + item))
		}
	}
	help := ui.HelpLine([]key.Binding{selectorKeys.Prev, selectorKeys.Next}, r.Width-2)
	f.Put(r, ui.Box("Fruit", b.String(), help, r.Width, r.Height))
}
