// Package badge draws small count bubbles over elements of a host tree.
//
// A [Builder] accumulates the look and placement of a badge and produces a
// [Badge]. Binding a badge to a host node puts the badge's own node next to
// the host inside an overlay container:
//
//	b := badge.NewBuilder(layout.DefaultDensity).
//	    Shape(badge.ShapeCircle).
//	    Size(28, 28).
//	    Gravity(layout.GravityTop | layout.GravityEnd).
//	    Margin(layout.EdgeInsets{Top: 8, Right: 8}).
//	    Build()
//	b.SetCount(12)
//	if err := b.Bind(avatar); err != nil {
//	    // avatar is not attached to any container
//	}
//
// When the host's parent is already an overlay container the badge simply
// joins it. Otherwise the host is swapped, at its original index, for a new
// overlay wrapper that inherits the host's params and ID and holds the host
// followed by the badge. Unbind removes the badge only; a wrapper, once
// inserted, stays in the tree.
package badge
