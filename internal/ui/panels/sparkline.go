package panels

import (
	"math/rand/v2"
	"strings"

	"tiledash/internal/ui"
)

// SparklineWindow is the number of samples kept by Sparkline.
const SparklineWindow = 30

// SampleMax is the exclusive upper bound of values returned by a Sampler.
const SampleMax = 100

// Sampler supplies one value in [0, SampleMax) per call.
type Sampler interface {
	Sample() int
}

// SamplerFunc adapts a function to Sampler.
type SamplerFunc func() int

// Sample implements Sampler.
func (fn SamplerFunc) Sample() int { return fn() }

// RandomSampler draws uniformly from math/rand/v2.
var RandomSampler Sampler = SamplerFunc(func() int { return rand.IntN(SampleMax) })

// Block glyphs from 1/8 to 8/8 of a cell.
var sparkBlocks = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline is a scrolling bar chart of random samples. Each Render drops
// the oldest sample and appends a fresh one before drawing.
type Sparkline struct {
	data    []int
	sampler Sampler
}

var _ ui.Panel = (*Sparkline)(nil)

// NewSparkline creates a chart of SparklineWindow zero samples. A nil
// sampler uses RandomSampler.
func NewSparkline(sampler Sampler) *Sparkline {
	if sampler == nil {
		sampler = RandomSampler
	}
	return &Sparkline{data: make([]int, SparklineWindow), sampler: sampler}
}

// Data returns a copy of the current window, oldest first.
func (s *Sparkline) Data() []int {
	return append([]int(nil), s.data...)
}

// Render implements ui.Panel. It takes a new sample before drawing.
func (s *Sparkline) Render(f *ui.Frame, r ui.Rect) {
	v := min(max(s.sampler.Sample(), 0), SampleMax-1)
	s.data = append(s.data[1:], v)

	inner := r.Inner()
	body := ui.Styles.Spark.Render(renderBars(s.data, inner.Width, inner.Height))
	f.Put(r, ui.Box("Samples", body, "", r.Width, r.Height))
}

// renderBars draws the most recent width values as columns height rows
// tall, scaled so the largest value fills the column.
func renderBars(data []int, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(data) > width {
		data = data[len(data)-width:]
	}
	peak := 1
	for _, v := range data {
		peak = max(peak, v)
	}

	// Column heights in eighths of a cell.
	eighths := make([]int, len(data))
	for i, v := range data {
		eighths[i] = v * height * 8 / peak
	}

	rows := make([]string, height)
	for row := range height {
		// Rows are built top-down; level is the eighth count below this row.
		level := (height - 1 - row) * 8
		var b strings.Builder
		for _, e := range eighths {
			switch fill := e - level; {
			case fill >= 8:
				b.WriteRune(sparkBlocks[7])
			case fill > 0:
				b.WriteRune(sparkBlocks[fill-1])
			default:
				b.WriteRune(' ')
			}
		}
		rows[row] = b.String()
	}
	return strings.Join(rows, "\n")
}
