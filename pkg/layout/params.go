package layout

import "fmt"

const (
	// MatchParent sizes a child to fill its container.
	MatchParent = -1
	// WrapContent sizes a child to its intrinsic content.
	WrapContent = -2
)

// EdgeInsets holds per-side distances in pixels.
type EdgeInsets struct {
	Left, Top, Right, Bottom int
}

// EdgeInsetsAll returns insets with the same value on every side.
func EdgeInsetsAll(v int) EdgeInsets {
	return EdgeInsets{Left: v, Top: v, Right: v, Bottom: v}
}

// Max returns the per-side maximum of e and other.
func (e EdgeInsets) Max(other EdgeInsets) EdgeInsets {
	return EdgeInsets{
		Left:   max(e.Left, other.Left),
		Top:    max(e.Top, other.Top),
		Right:  max(e.Right, other.Right),
		Bottom: max(e.Bottom, other.Bottom),
	}
}

// Horizontal returns Left + Right.
func (e EdgeInsets) Horizontal() int {
	return e.Left + e.Right
}

// Vertical returns Top + Bottom.
func (e EdgeInsets) Vertical() int {
	return e.Top + e.Bottom
}

// Params are the layout parameters a node hands to its container.
type Params struct {
	// Width and Height are pixel sizes, MatchParent or WrapContent.
	Width  int
	Height int
	// Margins offset the node from the edges its gravity pins it to.
	Margins EdgeInsets
	// Gravity is honored by overlay containers only.
	Gravity Gravity
}

// WrapParams returns wrap-content params with the given gravity.
func WrapParams(g Gravity) Params {
	return Params{Width: WrapContent, Height: WrapContent, Gravity: g}
}

// FillParams returns match-parent params.
func FillParams() Params {
	return Params{Width: MatchParent, Height: MatchParent}
}

// DimensionString formats a Params dimension.
func DimensionString(v int) string {
	switch v {
	case MatchParent:
		return "match_parent"
	case WrapContent:
		return "wrap_content"
	default:
		return fmt.Sprintf("%dpx", v)
	}
}

func (p Params) String() string {
	return fmt.Sprintf("%sx%s gravity=%s margins=%d,%d,%d,%d",
		DimensionString(p.Width), DimensionString(p.Height), p.Gravity,
		p.Margins.Left, p.Margins.Top, p.Margins.Right, p.Margins.Bottom)
}
