package graphics

import (
	"image"
	"image/png"
	"io"
	"math"

	"github.com/go-drift/badger/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// kappa places cubic control points for a quarter ellipse.
const kappa = 0.5522847498

// RasterCanvas is a Canvas that paints into an in-memory RGBA image.
//
// Shapes are rasterized with coverage anti-aliasing. Stroke paints are
// filled; badges only ever fill.
type RasterCanvas struct {
	img   *image.RGBA
	fonts *FontManager
	z     *vector.Rasterizer
}

// NewRasterCanvas creates a transparent canvas of the given pixel size.
// Text is skipped when fonts is nil.
func NewRasterCanvas(width, height int, fonts *FontManager) *RasterCanvas {
	width = max(width, 0)
	height = max(height, 0)
	return &RasterCanvas{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		fonts: fonts,
		z:     vector.NewRasterizer(width, height),
	}
}

// Image returns the backing image.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.img
}

// EncodePNG writes the canvas contents as PNG.
func (c *RasterCanvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// Size implements Canvas.
func (c *RasterCanvas) Size() Size {
	b := c.img.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

func (c *RasterCanvas) fill(paint Paint, path func(z *vector.Rasterizer)) {
	b := c.img.Bounds()
	if b.Empty() {
		return
	}
	c.z.Reset(b.Dx(), b.Dy())
	path(c.z)
	c.z.Draw(c.img, b, image.NewUniform(paint.Color.NRGBA()), image.Point{})
}

// DrawRect implements Canvas.
func (c *RasterCanvas) DrawRect(rect Rect, paint Paint) {
	if rect.IsEmpty() {
		return
	}
	c.fill(paint, func(z *vector.Rasterizer) {
		l, t, r, b := f32(rect.Left), f32(rect.Top), f32(rect.Right), f32(rect.Bottom)
		z.MoveTo(l, t)
		z.LineTo(r, t)
		z.LineTo(r, b)
		z.LineTo(l, b)
		z.ClosePath()
	})
}

// DrawRRect implements Canvas.
func (c *RasterCanvas) DrawRRect(rrect RRect, paint Paint) {
	rr := rrect.Clamped()
	if rr.Rect.IsEmpty() {
		return
	}
	if rr.Radius.X == 0 || rr.Radius.Y == 0 {
		c.DrawRect(rr.Rect, paint)
		return
	}
	c.fill(paint, func(z *vector.Rasterizer) {
		l, t, r, b := rr.Rect.Left, rr.Rect.Top, rr.Rect.Right, rr.Rect.Bottom
		rx, ry := rr.Radius.X, rr.Radius.Y
		kx, ky := rx*kappa, ry*kappa
		z.MoveTo(f32(l+rx), f32(t))
		z.LineTo(f32(r-rx), f32(t))
		z.CubeTo(f32(r-rx+kx), f32(t), f32(r), f32(t+ry-ky), f32(r), f32(t+ry))
		z.LineTo(f32(r), f32(b-ry))
		z.CubeTo(f32(r), f32(b-ry+ky), f32(r-rx+kx), f32(b), f32(r-rx), f32(b))
		z.LineTo(f32(l+rx), f32(b))
		z.CubeTo(f32(l+rx-kx), f32(b), f32(l), f32(b-ry+ky), f32(l), f32(b-ry))
		z.LineTo(f32(l), f32(t+ry))
		z.CubeTo(f32(l), f32(t+ry-ky), f32(l+rx-kx), f32(t), f32(l+rx), f32(t))
		z.ClosePath()
	})
}

// DrawCircle implements Canvas.
func (c *RasterCanvas) DrawCircle(center Offset, radius float64, paint Paint) {
	if radius <= 0 {
		return
	}
	c.fill(paint, func(z *vector.Rasterizer) {
		ellipse(z, center.X, center.Y, radius, radius)
	})
}

// DrawOval implements Canvas.
func (c *RasterCanvas) DrawOval(rect Rect, paint Paint) {
	if rect.IsEmpty() {
		return
	}
	center := rect.Center()
	c.fill(paint, func(z *vector.Rasterizer) {
		ellipse(z, center.X, center.Y, rect.Width()/2, rect.Height()/2)
	})
}

// DrawText implements Canvas.
func (c *RasterCanvas) DrawText(text string, position Offset, paint TextPaint) {
	if text == "" || c.fonts == nil || c.img.Bounds().Empty() {
		return
	}
	face, err := c.fonts.Face(paint.Size)
	if err != nil {
		errors.ReportErr("graphics.RasterCanvas.DrawText", errors.KindRender, "", err)
		return
	}
	x := position.X
	switch paint.Align {
	case TextAlignCenter:
		x -= float64(font.MeasureString(face, text)) / 128
	case TextAlignRight:
		x -= float64(font.MeasureString(face, text)) / 64
	}
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(paint.Color.NRGBA()),
		Face: face,
		Dot:  fixed.Point26_6{X: toFixed(x), Y: toFixed(position.Y)},
	}
	d.DrawString(text)
}

func ellipse(z *vector.Rasterizer, cx, cy, rx, ry float64) {
	kx, ky := rx*kappa, ry*kappa
	z.MoveTo(f32(cx+rx), f32(cy))
	z.CubeTo(f32(cx+rx), f32(cy+ky), f32(cx+kx), f32(cy+ry), f32(cx), f32(cy+ry))
	z.CubeTo(f32(cx-kx), f32(cy+ry), f32(cx-rx), f32(cy+ky), f32(cx-rx), f32(cy))
	z.CubeTo(f32(cx-rx), f32(cy-ky), f32(cx-kx), f32(cy-ry), f32(cx), f32(cy-ry))
	z.CubeTo(f32(cx+kx), f32(cy-ry), f32(cx+rx), f32(cy-ky), f32(cx+rx), f32(cy))
	z.ClosePath()
}

func f32(v float64) float32 {
	return float32(v)
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
