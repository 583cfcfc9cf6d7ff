package ui

import (
	"cmp"
	"slices"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Frame is the drawing surface handed to panels for one tick: a fixed grid
// of terminal lines that panels write into by region.
//
// Each row is kept as ordered, non-overlapping spans. A Put cuts only the
// spans it overlaps, so repeated writes to a row never copy escape
// sequences out of content they replaced.
type Frame struct {
	width, height int
	rows          [][]span
}

// span is a run of content starting at column x and exactly w cells wide.
type span struct {
	x, w int
	s    string
}

func (sp span) end() int { return sp.x + sp.w }

// NewFrame returns a blank frame of the given size in cells.
func NewFrame(width, height int) *Frame {
	width, height = max(width, 0), max(height, 0)
	return &Frame{width: width, height: height, rows: make([][]span, height)}
}

// Size returns the frame dimensions in cells.
func (f *Frame) Size() (width, height int) {
	return f.width, f.height
}

// Area returns the rect covering the whole frame.
func (f *Frame) Area() Rect {
	return Rect{Width: f.width, Height: f.height}
}

// Put writes content into r. Each content line is cut or padded to exactly
// r.Width cells; missing lines are blank and extra lines are dropped. The
// part of r outside the frame is clipped.
func (f *Frame) Put(r Rect, content string) {
	clip := r.Intersect(f.Area())
	if clip.Empty() {
		return
	}
	src := strings.Split(content, "\n")
	for row := clip.Y; row < clip.Y+clip.Height; row++ {
		seg := ""
		if i := row - r.Y; i < len(src) {
			seg = src[i]
		}
		// Drop the columns of r that fall left of the frame.
		if skip := clip.X - r.X; skip > 0 {
			seg = ansi.TruncateLeft(seg, skip, "")
		}
		f.rows[row] = splice(f.rows[row], span{x: clip.X, w: clip.Width, s: fitWidth(seg, clip.Width)})
	}
}

// splice replaces the columns covered by sp, trimming partly covered
// neighbours. spans stays sorted by column.
func splice(spans []span, sp span) []span {
	out := make([]span, 0, len(spans)+2)
	for _, old := range spans {
		if old.end() <= sp.x || old.x >= sp.end() {
			out = append(out, old)
			continue
		}
		if old.x < sp.x {
			w := sp.x - old.x
			out = append(out, span{x: old.x, w: w, s: fitWidth(old.s, w)})
		}
		if old.end() > sp.end() {
			cut := sp.end() - old.x
			out = append(out, span{x: sp.end(), w: old.end() - sp.end(), s: fitWidth(ansi.TruncateLeft(old.s, cut, ""), old.end()-sp.end())})
		}
	}
	out = append(out, sp)
	slices.SortFunc(out, func(a, b span) int { return cmp.Compare(a.x, b.x) })
	return out
}

// Line returns row y as written, including styling. Every span is followed
// by a style reset so styles never bleed into the next region.
func (f *Frame) Line(y int) string {
	if y < 0 || y >= f.height {
		return ""
	}
	var b strings.Builder
	col := 0
	for _, sp := range f.rows[y] {
		if sp.x > col {
			b.WriteString(strings.Repeat(" ", sp.x-col))
		}
		b.WriteString(sp.s)
		b.WriteString(ansi.ResetStyle)
		col = sp.end()
	}
	if col < f.width {
		b.WriteString(strings.Repeat(" ", f.width-col))
	}
	return b.String()
}

// String joins the frame lines for display.
func (f *Frame) String() string {
	lines := make([]string, f.height)
	for y := range lines {
		lines[y] = f.Line(y)
	}
	return strings.Join(lines, "\n")
}

// fitWidth cuts or right-pads s to exactly w cells.
func fitWidth(s string, w int) string {
	s = ansi.Truncate(s, w, "")
	if pad := w - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
