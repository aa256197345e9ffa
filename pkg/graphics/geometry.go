package graphics

// Offset is a 2D translation from an origin.
type Offset struct {
	X, Y float64
}

// Add returns the component-wise sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Scale returns the offset multiplied by f.
func (o Offset) Scale(f float64) Offset {
	return Offset{X: o.X * f, Y: o.Y * f}
}

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, Width, Height float64
}

// RectFrom builds a Rect from an origin offset and a size.
func RectFrom(origin Offset, size Size) Rect {
	return Rect{X: origin.X, Y: origin.Y, Width: size.Width, Height: size.Height}
}

// Contains reports whether the point (px, py) lies inside the rectangle.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px < r.X+r.Width && py >= r.Y && py < r.Y+r.Height
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() Offset {
	return Offset{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Translate returns the rectangle shifted by the given offset.
func (r Rect) Translate(o Offset) Rect {
	return Rect{X: r.X + o.X, Y: r.Y + o.Y, Width: r.Width, Height: r.Height}
}

// Inflate grows the rectangle around its center, keeping the midpoint fixed.
// Negative amounts shrink it.
func (r Rect) Inflate(dx, dy float64) Rect {
	return Rect{X: r.X - dx, Y: r.Y - dy, Width: r.Width + 2*dx, Height: r.Height + 2*dy}
}
