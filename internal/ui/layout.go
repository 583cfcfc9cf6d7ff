package ui

// Rect is a region of the screen in terminal cells. Layout produces fresh
// rects every frame; nothing holds on to them across ticks.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Inner returns r shrunk by one cell on every side, the content area of a
// bordered box.
func (r Rect) Inner() Rect {
	in := Rect{X: r.X + 1, Y: r.Y + 1, Width: r.Width - 2, Height: r.Height - 2}
	if in.Empty() {
		return Rect{X: in.X, Y: in.Y}
	}
	return in
}

// Intersect returns the overlap of r and o.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.Width, o.X+o.Width), min(r.Y+r.Height, o.Y+o.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Layout partitions an area into panel regions, in registration order.
type Layout func(area Rect) []Rect

// GridLayout returns a Layout that splits the area into rows × cols cells.
func GridLayout(rows, cols int) Layout {
	return func(area Rect) []Rect {
		return Grid(area, rows, cols)
	}
}

// Grid splits area into rows × cols cells, row-major. Leftover cells from
// uneven division go to the trailing rows and columns, so the result tiles
// area exactly.
func Grid(area Rect, rows, cols int) []Rect {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	heights := split(area.Height, rows)
	widths := split(area.Width, cols)

	out := make([]Rect, 0, rows*cols)
	y := area.Y
	for _, h := range heights {
		x := area.X
		for _, w := range widths {
			out = append(out, Rect{X: x, Y: y, Width: w, Height: h})
			x += w
		}
		y += h
	}
	return out
}

// Quad splits area into two equal rows, each split into two equal columns:
// top-left, top-right, bottom-left, bottom-right.
func Quad(area Rect) [4]Rect {
	var q [4]Rect
	copy(q[:], Grid(area, 2, 2))
	return q
}

func split(total, parts int) []int {
	if total < 0 {
		total = 0
	}
	sizes := make([]int, parts)
	base, extra := total/parts, total%parts
	for i := range sizes {
		sizes[i] = base
		if i >= parts-extra {
			sizes[i]++
		}
	}
	return sizes
}
