package engine

import "tiledash/internal/ui"

// Renderer lays out the frame and draws every panel into its cell.
type Renderer struct {
	layout ui.Layout
	panels []ui.Panel
}

// NewRenderer returns a renderer that assigns layout cells to panels by
// registration order.
func NewRenderer(layout ui.Layout) *Renderer {
	return &Renderer{layout: layout}
}

// Add appends p to the render order.
func (r *Renderer) Add(p ui.Panel) {
	r.panels = append(r.panels, p)
}

// Render calls each panel's Render exactly once with its assigned region.
// Panels without a cell are skipped.
func (r *Renderer) Render(f *ui.Frame) {
	cells := r.layout(f.Area())
	for i, p := range r.panels {
		if i >= len(cells) {
			return
		}
		p.Render(f, cells[i])
	}
}
