package panels

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"tiledash/internal/bus"
	"tiledash/internal/keys"
	"tiledash/internal/ui"
)

// CounterID is the bus source name used by Counter.
const CounterID = "counter"

type counterKeyMap struct {
	Up   key.Binding
	Down key.Binding
}

var counterKeys = counterKeyMap{
	Up:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "increment")),
	Down: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "decrement")),
}

// Counter is an unbounded signed counter driven by the up and down arrows.
type Counter struct {
	count int
	tx    *bus.Sender
}

var (
	_ ui.Panel        = (*Counter)(nil)
	_ ui.InputHandler = (*Counter)(nil)
)

// NewCounter creates a counter at zero that reports changes on tx.
func NewCounter(tx *bus.Sender) *Counter {
	return &Counter{tx: tx}
}

// Count returns the current value.
func (c *Counter) Count() int {
	return c.count
}

// HandleInput implements ui.InputHandler.
func (c *Counter) HandleInput(k keys.Event) {
	switch {
	case key.Matches(k, counterKeys.Up):
		c.count++
		c.tx.Send(bus.Notification(CounterID, fmt.Sprintf("[%s] Count incremented => %d", CounterID, c.count)))
	case key.Matches(k, counterKeys.Down):
		c.count--
		c.tx.Send(bus.Notification(CounterID, fmt.Sprintf("[%s] Count decremented => %d", CounterID, c.count)))
	}
}

// Render implements ui.Panel.
func (c *Counter) Render(f *ui.Frame, r ui.Rect) {
	body := ui.Styles.Normal.Render("Press Up/Down arrows.") + "\n" +
		ui.Styles.Count.Render(fmt.Sprintf("Count: %d", c.count))
	help := ui.HelpLine([]key.Binding{counterKeys.Up, counterKeys.Down}, r.Width-2)
	f.Put(r, ui.Box("Counter", body, help, r.Width, r.Height))
}
