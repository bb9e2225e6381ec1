// Package core holds the types shared by the simulation and the terminal
// platform: input frames, events, world boxes and the screen buffer.
// It imports nothing outside the standard library, so the simulation
// never depends on Bubble Tea.
package core

// Rect is an integer cell rectangle used by the screen buffer.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned extent in world units.
// Edges are inclusive on both sides: a Box with Left == Right is a vertical
// segment, not an empty box.
type Box struct {
	Left, Top     float64
	Right, Bottom float64
}

// BoxAt returns the box spanning [x, x+w] x [y, y+h].
func BoxAt(x, y, w, h float64) Box {
	return Box{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// BoxAround returns the box spanning [cx-r, cx+r] x [cy-r, cy+r].
func BoxAround(cx, cy, r float64) Box {
	return Box{Left: cx - r, Top: cy - r, Right: cx + r, Bottom: cy + r}
}

// Width returns the horizontal size of the box.
func (b Box) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical size of the box.
func (b Box) Height() float64 {
	return b.Bottom - b.Top
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
