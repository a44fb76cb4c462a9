package badge

import (
	"github.com/go-drift/badger/pkg/graphics"
	"github.com/go-drift/badger/pkg/layout"
)

// DefaultID is the node ID given to badges built without one.
const DefaultID = "badge"

// Builder accumulates a badge configuration. Setters return the builder for
// chaining and validate nothing. Each Build returns a new, independent
// Badge, so a builder may be reused as a template.
type Builder struct {
	density layout.Density
	id      string
	style   Style
	params  layout.Params
	metrics graphics.MetricsSource
}

// NewBuilder starts from DefaultStyle and DefaultParams. Sizes given in dip
// or sp are converted with density.
func NewBuilder(density layout.Density) *Builder {
	return &Builder{
		density: density,
		id:      DefaultID,
		style:   DefaultStyle(),
		params:  DefaultParams(),
	}
}

// ID sets the ID of the badge's view node.
func (b *Builder) ID(id string) *Builder {
	b.id = id
	return b
}

// Shape sets the background shape.
func (b *Builder) Shape(s Shape) *Builder {
	b.style.Shape = s
	return b
}

// Size sets width and height in dip.
func (b *Builder) Size(width, height int) *Builder {
	return b.Width(width).Height(height)
}

// Width sets the width in dip.
func (b *Builder) Width(dip int) *Builder {
	b.params.Width = b.density.DipToPx(dip)
	return b
}

// Height sets the height in dip.
func (b *Builder) Height(dip int) *Builder {
	b.params.Height = b.density.DipToPx(dip)
	return b
}

// Margin merges m, in pixels, into the accumulated margins by taking the
// larger value per side. Margins start at zero, so a negative margin never
// takes effect.
func (b *Builder) Margin(m layout.EdgeInsets) *Builder {
	b.params.Margins = b.params.Margins.Max(m)
	return b
}

// TextSize sets the text size in sp.
func (b *Builder) TextSize(sp int) *Builder {
	b.style.TextSize = float64(b.density.SpToPx(float64(sp)))
	return b
}

// TextColor sets the text color.
func (b *Builder) TextColor(c graphics.Color) *Builder {
	b.style.TextColor = c
	return b
}

// BackgroundColor sets the shape color.
func (b *Builder) BackgroundColor(c graphics.Color) *Builder {
	b.style.BackgroundColor = c
	return b
}

// Gravity sets where the badge sits inside its container.
func (b *Builder) Gravity(g layout.Gravity) *Builder {
	b.params.Gravity = g
	return b
}

// Metrics sets the font metrics source used to center text. The shared Go
// Regular font manager is used when unset.
func (b *Builder) Metrics(m graphics.MetricsSource) *Builder {
	b.metrics = m
	return b
}

// GrowTextFromMetrics toggles Style.GrowTextFromMetrics.
func (b *Builder) GrowTextFromMetrics(on bool) *Builder {
	b.style.GrowTextFromMetrics = on
	return b
}

// Params returns the accumulated layout params.
func (b *Builder) Params() layout.Params { return b.params }

// Style returns the accumulated style.
func (b *Builder) Style() Style { return b.style }

// Build creates the badge, applies the accumulated params to its node and
// requests a first paint.
func (b *Builder) Build() *Badge {
	badge := newBadge(b.id, b.style, b.params, b.density, b.metrics)
	badge.MarkNeedsPaint()
	return badge
}
