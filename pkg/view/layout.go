package view

import (
	"github.com/go-drift/badger/pkg/graphics"
	"github.com/go-drift/badger/pkg/layout"
)

// Layout assigns frames to root and its descendants. The root occupies
// bounds regardless of its own params.
func Layout(root *Node, bounds graphics.Rect) {
	if root == nil {
		return
	}
	root.frame = bounds
	layoutChildren(root)
}

func layoutChildren(n *Node) {
	switch n.kind {
	case KindFrame:
		layoutOverlay(n)
	case KindColumn:
		layoutFlow(n, true)
	case KindRow:
		layoutFlow(n, false)
	}
	for _, c := range n.children {
		layoutChildren(c)
	}
}

func layoutOverlay(n *Node) {
	for _, c := range n.children {
		m := c.params.Margins
		size := graphics.Size{
			Width:  resolve(c.params.Width, n.frame.Width()-float64(m.Horizontal()), c.intrinsic.Width),
			Height: resolve(c.params.Height, n.frame.Height()-float64(m.Vertical()), c.intrinsic.Height),
		}
		origin := c.params.Gravity.WithinRect(n.frame, size, m)
		c.frame = graphics.RectFromLTWH(origin.X, origin.Y, size.Width, size.Height)
	}
}

func layoutFlow(n *Node, vertical bool) {
	cursor := n.frame.Left
	if vertical {
		cursor = n.frame.Top
	}
	for _, c := range n.children {
		m := c.params.Margins
		if vertical {
			top := cursor + float64(m.Top)
			w := resolve(c.params.Width, n.frame.Width()-float64(m.Horizontal()), c.intrinsic.Width)
			h := resolve(c.params.Height, n.frame.Bottom-top-float64(m.Bottom), c.intrinsic.Height)
			c.frame = graphics.RectFromLTWH(n.frame.Left+float64(m.Left), top, w, h)
			cursor = top + h + float64(m.Bottom)
		} else {
			left := cursor + float64(m.Left)
			w := resolve(c.params.Width, n.frame.Right-left-float64(m.Right), c.intrinsic.Width)
			h := resolve(c.params.Height, n.frame.Height()-float64(m.Vertical()), c.intrinsic.Height)
			c.frame = graphics.RectFromLTWH(left, n.frame.Top+float64(m.Top), w, h)
			cursor = left + w + float64(m.Right)
		}
	}
}

// resolve turns a params dimension into pixels given the space available.
// Wrap-content without intrinsic content takes everything offered.
func resolve(dim int, available, intrinsic float64) float64 {
	available = max(available, 0)
	switch {
	case dim >= 0:
		return float64(dim)
	case dim == layout.WrapContent && intrinsic > 0:
		return min(intrinsic, available)
	default:
		return available
	}
}
