package layout

import (
	"fmt"
	"strings"

	"github.com/go-drift/badger/pkg/graphics"
)

// Gravity places a child inside the space its container offers. It packs a
// vertical and a horizontal component into one bitmask; at most one flag of
// each axis is meaningful.
type Gravity uint8

const (
	// GravityTop pins the child to the top edge.
	GravityTop Gravity = 1 << iota
	// GravityCenterVertical centers the child vertically.
	GravityCenterVertical
	// GravityBottom pins the child to the bottom edge.
	GravityBottom
	// GravityStart pins the child to the leading (left) edge.
	GravityStart
	// GravityCenterHorizontal centers the child horizontally.
	GravityCenterHorizontal
	// GravityEnd pins the child to the trailing (right) edge.
	GravityEnd
)

const (
	// GravityNone leaves both axes unset; placement treats it as Top|Start.
	GravityNone Gravity = 0
	// GravityCenter centers on both axes.
	GravityCenter = GravityCenterVertical | GravityCenterHorizontal

	verticalMask   = GravityTop | GravityCenterVertical | GravityBottom
	horizontalMask = GravityStart | GravityCenterHorizontal | GravityEnd
)

// VerticalGravity is the resolved vertical component of a Gravity.
type VerticalGravity int

const (
	// VerticalTop places the child's top edge at the container top plus
	// the top margin.
	VerticalTop VerticalGravity = iota
	// VerticalCenter centers the child, shifted by half the difference of
	// the top and bottom margins.
	VerticalCenter
	// VerticalBottom places the child's bottom edge at the container bottom
	// minus the bottom margin.
	VerticalBottom
)

// HorizontalGravity is the resolved horizontal component of a Gravity.
type HorizontalGravity int

const (
	// HorizontalStart places the child's left edge at the container left
	// plus the left margin.
	HorizontalStart HorizontalGravity = iota
	// HorizontalCenter centers the child, shifted by half the difference of
	// the left and right margins.
	HorizontalCenter
	// HorizontalEnd places the child's right edge at the container right
	// minus the right margin.
	HorizontalEnd
)

// Vertical resolves the vertical component. Unset resolves to top; when
// several flags are set, the first of Top, Center, Bottom wins.
func (g Gravity) Vertical() VerticalGravity {
	switch {
	case g&GravityTop != 0:
		return VerticalTop
	case g&GravityCenterVertical != 0:
		return VerticalCenter
	case g&GravityBottom != 0:
		return VerticalBottom
	default:
		return VerticalTop
	}
}

// Horizontal resolves the horizontal component the same way as Vertical.
func (g Gravity) Horizontal() HorizontalGravity {
	switch {
	case g&GravityStart != 0:
		return HorizontalStart
	case g&GravityCenterHorizontal != 0:
		return HorizontalCenter
	case g&GravityEnd != 0:
		return HorizontalEnd
	default:
		return HorizontalStart
	}
}

var gravityNames = []struct {
	flag Gravity
	name string
}{
	{GravityTop, "top"},
	{GravityCenterVertical, "center_vertical"},
	{GravityBottom, "bottom"},
	{GravityStart, "start"},
	{GravityCenterHorizontal, "center_horizontal"},
	{GravityEnd, "end"},
}

// String returns the flags joined by '|', e.g. "top|end".
func (g Gravity) String() string {
	if g == GravityNone {
		return "none"
	}
	if g&^(verticalMask|horizontalMask) != 0 {
		return fmt.Sprintf("Gravity(%d)", uint8(g))
	}
	var parts []string
	for _, n := range gravityNames {
		if g&n.flag != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseGravity parses a '|' separated flag list. Besides the names produced
// by String it accepts "center", "left" (start) and "right" (end).
func ParseGravity(s string) (Gravity, error) {
	var g Gravity
	for _, part := range strings.Split(s, "|") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "top":
			g |= GravityTop
		case "bottom":
			g |= GravityBottom
		case "center_vertical":
			g |= GravityCenterVertical
		case "start", "left":
			g |= GravityStart
		case "end", "right":
			g |= GravityEnd
		case "center_horizontal":
			g |= GravityCenterHorizontal
		case "center":
			g |= GravityCenter
		case "none", "":
		default:
			return 0, fmt.Errorf("layout: unknown gravity %q in %q", part, s)
		}
	}
	return g, nil
}

// WithinRect returns the top-left offset of a child of the given size placed
// in container according to g and the child's margins.
func (g Gravity) WithinRect(container graphics.Rect, child graphics.Size, margins EdgeInsets) graphics.Offset {
	var x, y float64
	switch g.Horizontal() {
	case HorizontalStart:
		x = container.Left + float64(margins.Left)
	case HorizontalCenter:
		x = container.Left + (container.Width()-child.Width)/2 + float64(margins.Left-margins.Right)/2
	case HorizontalEnd:
		x = container.Right - child.Width - float64(margins.Right)
	}
	switch g.Vertical() {
	case VerticalTop:
		y = container.Top + float64(margins.Top)
	case VerticalCenter:
		y = container.Top + (container.Height()-child.Height)/2 + float64(margins.Top-margins.Bottom)/2
	case VerticalBottom:
		y = container.Bottom - child.Height - float64(margins.Bottom)
	}
	return graphics.Offset{X: x, Y: y}
}
