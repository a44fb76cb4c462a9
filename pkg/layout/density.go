package layout

import "math"

// Density converts device-independent units to device pixels.
type Density struct {
	// Density is pixels per dip.
	Density float64
	// ScaledDensity is pixels per sp; it includes the user's font scale.
	ScaledDensity float64
}

// DefaultDensity is a 1:1 mapping (a 160dpi screen at 100% font scale).
var DefaultDensity = Density{Density: 1, ScaledDensity: 1}

// normalized substitutes 1 for unset or invalid factors.
func (d Density) normalized() Density {
	if d.Density <= 0 || math.IsNaN(d.Density) {
		d.Density = 1
	}
	if d.ScaledDensity <= 0 || math.IsNaN(d.ScaledDensity) {
		d.ScaledDensity = d.Density
	}
	return d
}

// DipToPx converts density-independent pixels to pixels, rounding half up.
func (d Density) DipToPx(dip int) int {
	return int(math.Floor(float64(dip)*d.normalized().Density + 0.5))
}

// SpToPx converts scale-independent pixels to pixels, rounding half up.
func (d Density) SpToPx(sp float64) int {
	return int(math.Floor(sp*d.normalized().ScaledDensity + 0.5))
}
