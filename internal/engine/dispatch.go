package engine

import (
	"tiledash/internal/bus"
	"tiledash/internal/keys"
	"tiledash/internal/ui"
)

// Decision tells the loop whether to keep running after a dispatch.
type Decision int

const (
	Continue Decision = iota
	Stop
)

func (d Decision) String() string {
	if d == Stop {
		return "stop"
	}
	return "continue"
}

// Dispatcher classifies keys and routes the rest to input-capable panels.
type Dispatcher struct {
	handlers []ui.InputHandler
	tx       *bus.Sender
}

// NewDispatcher returns a dispatcher that echoes routed keys on tx. A nil
// tx disables the echo.
func NewDispatcher(tx *bus.Sender) *Dispatcher {
	return &Dispatcher{tx: tx}
}

// Add appends h to the dispatch order.
func (d *Dispatcher) Add(h ui.InputHandler) {
	d.handlers = append(d.handlers, h)
}

// Dispatch returns Stop for the quit key. Any other key is echoed on the
// bus and then offered to every handler in order; keys nobody reacts to
// are simply dropped.
func (d *Dispatcher) Dispatch(k keys.Event) Decision {
	if keys.IsQuit(k) {
		return Stop
	}
	d.tx.Send(bus.KeyObserved(k))
	for _, h := range d.handlers {
		h.HandleInput(k)
	}
	return Continue
}
