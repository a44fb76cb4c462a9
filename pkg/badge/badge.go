package badge

import (
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/go-drift/badger/pkg/graphics"
	"github.com/go-drift/badger/pkg/layout"
	"github.com/go-drift/badger/pkg/view"
)

// cornerRadiusDip is the RoundRect corner radius in dip.
const cornerRadiusDip = 5

var log = logrus.WithField("component", "badge")

// Style is the visual configuration of a badge.
type Style struct {
	Shape           Shape
	TextColor       graphics.Color
	TextSize        float64 // pixels
	BackgroundColor graphics.Color

	// GrowTextFromMetrics makes every paint replace TextSize with the text
	// height measured at the previous size, so text grows by the font's
	// ascent+descent ratio each frame. Off by default.
	GrowTextFromMetrics bool
}

// DefaultStyle is a red circle with 12px white text.
func DefaultStyle() Style {
	return Style{
		Shape:           ShapeCircle,
		TextColor:       graphics.ColorWhite,
		TextSize:        12,
		BackgroundColor: graphics.ColorRed,
	}
}

// DefaultParams are wrap-content params pinned to the top-end corner.
func DefaultParams() layout.Params {
	return layout.WrapParams(layout.GravityTop | layout.GravityEnd)
}

// Badge is a positionable overlay that shows a short text over a host node.
//
// A Badge is bound exactly while its node sits in a container of the host
// tree. It keeps no reference to the host; if the tree drops the badge's
// node the badge simply reads as unbound again.
type Badge struct {
	style        Style
	text         string
	node         *view.Node
	bound        bool
	cornerRadius float64
	metrics      graphics.MetricsSource
	needsPaint   bool
	listeners    []func()
}

func newBadge(id string, style Style, params layout.Params, density layout.Density, metrics graphics.MetricsSource) *Badge {
	node := view.NewLeaf(id)
	node.SetParams(params)
	return &Badge{
		style:        style,
		node:         node,
		cornerRadius: float64(density.DipToPx(cornerRadiusDip)),
		metrics:      metrics,
	}
}

// Node returns the view node the badge occupies in the host tree.
func (b *Badge) Node() *view.Node { return b.node }

// Params returns the badge's layout params.
func (b *Badge) Params() layout.Params { return b.node.Params() }

// Style returns the badge's current style.
func (b *Badge) Style() Style { return b.style }

// Text returns the displayed text.
func (b *Badge) Text() string { return b.text }

// SetCount displays count in decimal.
func (b *Badge) SetCount(count int) {
	b.SetText(strconv.Itoa(count))
}

// SetText replaces the displayed text and requests a repaint.
func (b *Badge) SetText(text string) {
	b.text = text
	b.MarkNeedsPaint()
}

// IsBound reports whether the badge's node sits in a container. A node
// placed or removed directly through the view API counts the same as one
// moved by Bind or Unbind.
func (b *Badge) IsBound() bool {
	b.reconcile()
	return b.bound
}

// reconcile syncs the bound flag with the node's parent after the tree was
// edited behind the badge's back.
func (b *Badge) reconcile() {
	attached := b.node.Parent() != nil
	if attached == b.bound {
		return
	}
	if attached {
		log.WithField("node", b.node.ID()).Debug("badge node attached externally")
	} else {
		log.WithField("node", b.node.ID()).Debug("badge node detached externally")
	}
	b.bound = attached
}

// OnInvalidate registers fn to be called whenever the badge needs a repaint.
func (b *Badge) OnInvalidate(fn func()) {
	if fn != nil {
		b.listeners = append(b.listeners, fn)
	}
}

// MarkNeedsPaint flags the badge dirty and notifies listeners.
func (b *Badge) MarkNeedsPaint() {
	b.needsPaint = true
	for _, fn := range b.listeners {
		fn()
	}
}

// NeedsPaint reports whether a repaint was requested since the last paint.
func (b *Badge) NeedsPaint() bool { return b.needsPaint }
