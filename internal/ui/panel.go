package ui

import "tiledash/internal/keys"

// Panel is a unit of dashboard content rendered into one region per tick.
//
// Render may mutate the panel: display-only panels advance animations or
// take samples on every call, so Render is not idempotent for them.
type Panel interface {
	Render(f *Frame, r Rect)
}

// InputHandler is implemented by interactive panels. Every non-quit key is
// offered to every handler in registration order; each decides on its own
// whether to react. Panels without it ignore input.
type InputHandler interface {
	HandleInput(k keys.Event)
}
