package graphics

import "math"

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// IsEmpty reports whether either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Radius represents the corner radii of a rounded rectangle.
type Radius struct {
	X float64
	Y float64
}

// CircularRadius creates a circular radius with equal X/Y values.
func CircularRadius(value float64) Radius {
	return Radius{X: value, Y: value}
}

// RRect is a rectangle with uniform rounded corners.
type RRect struct {
	Rect   Rect
	Radius Radius
}

// RRectFromRectAndRadius creates a rounded rectangle.
func RRectFromRectAndRadius(rect Rect, radius Radius) RRect {
	return RRect{Rect: rect, Radius: radius}
}

// Clamped returns the rrect with radii limited to half of each side.
func (r RRect) Clamped() RRect {
	r.Radius.X = math.Max(0, math.Min(r.Radius.X, r.Rect.Width()/2))
	r.Radius.Y = math.Max(0, math.Min(r.Radius.Y, r.Rect.Height()/2))
	return r
}
