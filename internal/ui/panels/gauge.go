package panels

import (
	"github.com/charmbracelet/bubbles/progress"

	"tiledash/internal/ui"
)

// gaugeStep is the progress added per render, in percent.
const gaugeStep = 2

// Gauge is a self-advancing progress bar. Each Render adds two percent and
// wraps back to zero on reaching 100.
type Gauge struct {
	percent int
	bar     progress.Model
}

var _ ui.Panel = (*Gauge)(nil)

// NewGauge creates an empty gauge.
func NewGauge() *Gauge {
	return &Gauge{
		bar: progress.New(progress.WithSolidFill(ui.ColorGauge)),
	}
}

// Ratio returns the current fill in [0, 1).
func (g *Gauge) Ratio() float64 {
	return float64(g.percent) / 100
}

// Render implements ui.Panel. It advances the gauge before drawing.
func (g *Gauge) Render(f *ui.Frame, r ui.Rect) {
	g.percent += gaugeStep
	if g.percent >= 100 {
		g.percent = 0
	}

	inner := r.Inner()
	g.bar.Width = max(inner.Width, 1)
	body := ""
	if inner.Height > 0 {
		// Center the bar vertically.
		for range (inner.Height - 1) / 2 {
			body += "\n"
		}
		body += g.bar.ViewAs(g.Ratio())
	}
	f.Put(r, ui.Box("Progress", body, "", r.Width, r.Height))
}
