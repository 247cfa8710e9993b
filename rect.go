package sxui

// Rect is a rectangular region in buffer coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a rectangle from position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Empty returns true if the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if the point lies within the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersect returns the overlapping region of two rectangles.
// Returns a zero-size rectangle if they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x := r.X
	if o.X > x {
		x = o.X
	}
	y := r.Y
	if o.Y > y {
		y = o.Y
	}
	right := r.Right()
	if o.Right() < right {
		right = o.Right()
	}
	bottom := r.Bottom()
	if o.Bottom() < bottom {
		bottom = o.Bottom()
	}
	if right < x {
		right = x
	}
	if bottom < y {
		bottom = y
	}
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Inner returns the rectangle shrunk by one cell on each bordered edge.
// Edges without a border keep their position. The result never has
// negative dimensions.
func (r Rect) Inner(edges Borders) Rect {
	if edges.Has(BorderLeft) {
		r.X++
		r.Width--
	}
	if edges.Has(BorderRight) {
		r.Width--
	}
	if edges.Has(BorderTop) {
		r.Y++
		r.Height--
	}
	if edges.Has(BorderBottom) {
		r.Height--
	}
	if r.Width < 0 {
		r.Width = 0
	}
	if r.Height < 0 {
		r.Height = 0
	}
	return r
}
