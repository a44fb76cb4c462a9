package badge

import (
	"fmt"
	"strings"
)

// Shape selects the background a badge is painted with.
type Shape int

const (
	// ShapeCircle paints a disc of radius width/2 centered in the bounds.
	ShapeCircle Shape = iota + 1
	// ShapeRect fills the bounds.
	ShapeRect
	// ShapeOval paints the ellipse inscribed in the bounds.
	ShapeOval
	// ShapeRoundRect fills the bounds with 5dip rounded corners.
	ShapeRoundRect
	// ShapeSquare fills a min(width, height) square anchored at the origin.
	ShapeSquare
)

func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeRect:
		return "rect"
	case ShapeOval:
		return "oval"
	case ShapeRoundRect:
		return "round_rect"
	case ShapeSquare:
		return "square"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// ParseShape parses the names produced by String. "roundrect" and
// "round-rect" are accepted as well.
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "circle":
		return ShapeCircle, nil
	case "rect":
		return ShapeRect, nil
	case "oval":
		return ShapeOval, nil
	case "round_rect", "roundrect", "round-rect":
		return ShapeRoundRect, nil
	case "square":
		return ShapeSquare, nil
	default:
		return 0, fmt.Errorf("badge: unknown shape %q", s)
	}
}
