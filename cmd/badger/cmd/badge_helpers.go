package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/badger/pkg/badge"
	"github.com/go-drift/badger/pkg/graphics"
)

// defaultSizeDip is used for wrap-content badges rendered on their own.
const defaultSizeDip = 24

// badgeFlags are shared by the commands that draw a single badge.
type badgeFlags struct {
	style  string
	text   string
	count  int
	width  int
	height int
}

func (f *badgeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.style, "style", "s", "", "style name from badger.yaml (default badge when empty)")
	cmd.Flags().StringVarP(&f.text, "text", "t", "", "text to show instead of --count")
	cmd.Flags().IntVarP(&f.count, "count", "n", 1, "count to show")
	cmd.Flags().IntVar(&f.width, "width", 0, "width in px for wrap-content badges")
	cmd.Flags().IntVar(&f.height, "height", 0, "height in px for wrap-content badges")
}

// build creates the badge selected by the flags using metrics for text.
func (f *badgeFlags) build(metrics graphics.MetricsSource) (*badge.Badge, error) {
	style, err := resolved.Style(f.style)
	if err != nil {
		return nil, err
	}
	builder, err := style.Builder(resolved.Density)
	if err != nil {
		return nil, fmt.Errorf("style %q: %w", f.style, err)
	}
	if f.style != "" {
		builder.ID(f.style)
	}
	if metrics != nil {
		builder.Metrics(metrics)
	}
	b := builder.Build()
	if f.text != "" {
		b.SetText(f.text)
	} else {
		b.SetCount(f.count)
	}
	return b, nil
}

// size returns the paint size for b. Fixed params win; wrap-content and
// match-parent dimensions fall back to the flags, then to defaultSizeDip.
func (f *badgeFlags) size(b *badge.Badge) graphics.Size {
	fallback := resolved.Density.DipToPx(defaultSizeDip)
	pick := func(param, flag int) float64 {
		switch {
		case param > 0:
			return float64(param)
		case flag > 0:
			return float64(flag)
		default:
			return float64(fallback)
		}
	}
	p := b.Params()
	return graphics.Size{Width: pick(p.Width, f.width), Height: pick(p.Height, f.height)}
}
