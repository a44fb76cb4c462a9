package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/go-drift/badger/pkg/badge"
	"github.com/go-drift/badger/pkg/graphics"
	"github.com/go-drift/badger/pkg/layout"
	badgertest "github.com/go-drift/badger/pkg/testing"
	"github.com/go-drift/badger/pkg/view"
)

var (
	demoStyle    string
	demoWidth    int
	demoHeight   int
	demoToggles  int
	demoBindText bool
	demoFormat   string
)

func init() {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Bind and unbind badges on a sample screen",
		Long: `Build a sample screen (a text, an image and a toggle button in a
column), bind a count badge to the image and toggle it the way the button
would. The laid-out tree is printed after every step.

The image badge is a 28dip circle pinned to the top-end corner with 8px
margins unless --style names a style from badger.yaml.`,
		Args: cobra.NoArgs,
		RunE: runDemo,
	}
	cmd.Flags().StringVarP(&demoStyle, "style", "s", "", "style for the image badge")
	cmd.Flags().IntVar(&demoWidth, "width", 360, "screen width in px")
	cmd.Flags().IntVar(&demoHeight, "height", 640, "screen height in px")
	cmd.Flags().IntVar(&demoToggles, "toggles", 2, "number of toggle presses")
	cmd.Flags().BoolVar(&demoBindText, "bind-text", false, "also bind a round-rect badge to the text")
	cmd.Flags().StringVar(&demoFormat, "format", "text", "output format: text or yaml (one snapshot document per step)")
	RegisterCommand(cmd)
}

type demoScreen struct {
	root, text, image, button *view.Node
	bounds                    graphics.Rect
}

func newDemoScreen(d layout.Density, width, height int) *demoScreen {
	s := &demoScreen{
		root:   view.NewColumn("main"),
		text:   view.NewLeaf("tvText"),
		image:  view.NewLeaf("ivImage"),
		button: view.NewLeaf("btnBind"),
		bounds: graphics.RectFromLTWH(0, 0, float64(width), float64(height)),
	}
	s.text.SetParams(layout.Params{Width: layout.MatchParent, Height: d.DipToPx(40)})
	s.image.SetParams(layout.Params{
		Width:   d.DipToPx(160),
		Height:  d.DipToPx(160),
		Margins: layout.EdgeInsetsAll(d.DipToPx(16)),
	})
	s.button.SetParams(layout.Params{Width: layout.MatchParent, Height: d.DipToPx(48)})
	for _, n := range []*view.Node{s.text, s.image, s.button} {
		s.root.AddChild(n)
	}
	return s
}

func (s *demoScreen) print(w io.Writer, step string) error {
	view.Layout(s.root, s.bounds)
	if demoFormat == "yaml" {
		data, err := badgertest.CaptureSnapshot(s.root, nil).Marshal()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "---\n# %s\n%s", step, data)
		return err
	}
	_, err := fmt.Fprintf(w, "# %s\n%s\n", step, view.Dump(s.root))
	return err
}

func demoImageBadge() (*badge.Badge, error) {
	if demoStyle != "" {
		style, err := resolved.Style(demoStyle)
		if err != nil {
			return nil, err
		}
		b, err := style.Builder(resolved.Density)
		if err != nil {
			return nil, err
		}
		return b.ID(demoStyle).Build(), nil
	}
	return badge.NewBuilder(resolved.Density).
		ID("imgBadge").
		Shape(badge.ShapeCircle).
		Gravity(layout.GravityTop | layout.GravityEnd).
		Margin(layout.EdgeInsets{Top: 8, Right: 8}).
		Size(28, 28).
		Build(), nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	if demoFormat != "text" && demoFormat != "yaml" {
		return fmt.Errorf("unknown --format %q (want text or yaml)", demoFormat)
	}
	out := cmd.OutOrStdout()
	screen := newDemoScreen(resolved.Density, demoWidth, demoHeight)
	if err := screen.print(out, "initial"); err != nil {
		return err
	}

	imgBadge, err := demoImageBadge()
	if err != nil {
		return err
	}
	imgBadge.SetCount(12)
	if err := imgBadge.Bind(screen.image); err != nil {
		return err
	}
	if err := screen.print(out, "bind imgBadge to ivImage"); err != nil {
		return err
	}

	if demoBindText {
		textBadge := badge.NewBuilder(resolved.Density).
			ID("textBadge").
			Shape(badge.ShapeRoundRect).
			Gravity(layout.GravityTop | layout.GravityStart).
			Size(12, 12).
			Margin(layout.EdgeInsets{Top: -12, Left: -12}).
			Build()
		textBadge.SetCount(12)
		if err := textBadge.Bind(screen.text); err != nil {
			return err
		}
		if err := screen.print(out, "bind textBadge to tvText"); err != nil {
			return err
		}
	}

	for i := 1; i <= demoToggles; i++ {
		if imgBadge.IsBound() {
			imgBadge.Unbind()
			if err := screen.print(out, fmt.Sprintf("toggle %d: unbind", i)); err != nil {
				return err
			}
			continue
		}
		if err := imgBadge.Bind(screen.image); err != nil {
			return err
		}
		if err := screen.print(out, fmt.Sprintf("toggle %d: bind", i)); err != nil {
			return err
		}
	}
	return nil
}
