package graphics

import "fmt"

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// Paint describes how to draw a shape on the canvas.
type Paint struct {
	Color       Color
	Style       PaintStyle
	StrokeWidth float64
	AntiAlias   bool
}

// FillPaint returns an anti-aliased fill of the given color.
func FillPaint(c Color) Paint {
	return Paint{Color: c, Style: PaintStyleFill, StrokeWidth: 1, AntiAlias: true}
}

// TextAlign controls where text is placed relative to its draw position.
type TextAlign int

const (
	// TextAlignLeft starts the text at the draw position.
	TextAlignLeft TextAlign = iota
	// TextAlignCenter centers the text horizontally on the draw position.
	TextAlignCenter
	// TextAlignRight ends the text at the draw position.
	TextAlignRight
)

// String returns a human-readable representation of the alignment.
func (a TextAlign) String() string {
	switch a {
	case TextAlignLeft:
		return "left"
	case TextAlignCenter:
		return "center"
	case TextAlignRight:
		return "right"
	default:
		return fmt.Sprintf("TextAlign(%d)", int(a))
	}
}

// TextPaint describes how to draw a run of text. Size is in pixels and the
// draw position's Y coordinate is the baseline.
type TextPaint struct {
	Color Color
	Size  float64
	Align TextAlign
}
