// Package core holds the terminal-independent building blocks shared by the
// engine and the platform: the screen buffer, colors, input frames and the
// runtime config. It imports nothing outside the standard library.
package core

// Rect is an axis-aligned screen rectangle. X and Y are the top-left corner;
// Right and Bottom are exclusive.
type Rect struct {
	X, Y int
	W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return r.X <= x && x < r.Right() && r.Y <= y && y < r.Bottom()
}

// Center returns the middle cell, rounding toward the top-left.
func (r Rect) Center() (x, y int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Centered returns a w x h rectangle sharing r's center. It may overflow r.
func (r Rect) Centered(w, h int) Rect {
	x, y := r.Center()
	return NewRect(x-w/2, y-h/2, w, h)
}
