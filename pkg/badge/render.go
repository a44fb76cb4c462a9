package badge

import (
	"fmt"
	"math"

	"github.com/go-drift/badger/pkg/errors"
	"github.com/go-drift/badger/pkg/graphics"
)

// frame is everything a shape painter needs for one paint pass.
type frame struct {
	width, height float64
	text          string
	background    graphics.Paint
	textPaint     graphics.TextPaint
	metrics       graphics.FontMetrics
	cornerRadius  float64
}

// baseline returns the baseline that vertically centers text on centerY.
func (f frame) baseline(centerY float64) float64 {
	return centerY + (f.metrics.TextHeight()/2 - f.metrics.Descent)
}

func (f frame) drawText(c graphics.Canvas, centerX, centerY float64) {
	if f.text == "" {
		return
	}
	c.DrawText(f.text, graphics.Offset{X: centerX, Y: f.baseline(centerY)}, f.textPaint)
}

type painter func(c graphics.Canvas, f frame)

var painters = map[Shape]painter{
	ShapeCircle:    paintCircle,
	ShapeRect:      paintRect,
	ShapeOval:      paintOval,
	ShapeRoundRect: paintRoundRect,
	ShapeSquare:    paintSquare,
}

func paintCircle(c graphics.Canvas, f frame) {
	c.DrawCircle(graphics.Offset{X: f.width / 2, Y: f.height / 2}, f.width/2, f.background)
	f.drawText(c, f.width/2, f.height/2)
}

func paintRect(c graphics.Canvas, f frame) {
	c.DrawRect(graphics.RectFromLTWH(0, 0, f.width, f.height), f.background)
	f.drawText(c, f.width/2, f.height/2)
}

func paintOval(c graphics.Canvas, f frame) {
	c.DrawOval(graphics.RectFromLTWH(0, 0, f.width, f.height), f.background)
	f.drawText(c, f.width/2, f.height/2)
}

func paintRoundRect(c graphics.Canvas, f frame) {
	rrect := graphics.RRectFromRectAndRadius(
		graphics.RectFromLTWH(0, 0, f.width, f.height),
		graphics.CircularRadius(f.cornerRadius),
	)
	c.DrawRRect(rrect, f.background)
	f.drawText(c, f.width/2, f.height/2)
}

// paintSquare anchors the square at the origin even when the bounds are
// taller or wider than it.
func paintSquare(c graphics.Canvas, f frame) {
	side := math.Min(f.width, f.height)
	c.DrawRect(graphics.RectFromLTWH(0, 0, side, side), f.background)
	f.drawText(c, side/2, side/2)
}

// Paint draws the badge at its laid-out size. A nil canvas or an empty size
// skips the frame.
func (b *Badge) Paint(canvas graphics.Canvas) {
	fr := b.node.Frame()
	b.PaintSize(canvas, graphics.Size{Width: fr.Width(), Height: fr.Height()})
}

// PaintSize draws the badge into canvas as if it measured size.
func (b *Badge) PaintSize(canvas graphics.Canvas, size graphics.Size) {
	defer errors.Recover("badge.Paint")
	if canvas == nil || size.IsEmpty() {
		return
	}
	paint, ok := painters[b.style.Shape]
	if !ok {
		errors.ReportErr("badge.Paint", errors.KindRender, b.node.ID(), fmt.Errorf("no painter for %s", b.style.Shape))
		return
	}
	paint(canvas, b.prepareFrame(size))
	b.needsPaint = false
}

// Record paints the badge into a display list of the given size.
func (b *Badge) Record(size graphics.Size) *graphics.DisplayList {
	var rec graphics.PictureRecorder
	b.PaintSize(rec.BeginRecording(size), size)
	return rec.EndRecording()
}

func (b *Badge) prepareFrame(size graphics.Size) frame {
	f := frame{
		width:        size.Width,
		height:       size.Height,
		text:         b.text,
		background:   graphics.FillPaint(b.style.BackgroundColor),
		cornerRadius: b.cornerRadius,
		textPaint: graphics.TextPaint{
			Color: b.style.TextColor,
			Size:  b.style.TextSize,
			Align: graphics.TextAlignCenter,
		},
	}
	src := b.metricsSource()
	if src == nil {
		return f
	}
	m, err := src.Metrics(b.style.TextSize)
	if err != nil {
		errors.ReportErr("badge.Paint", errors.KindRender, b.node.ID(), err)
		f.text = ""
		return f
	}
	f.metrics = m
	if b.style.GrowTextFromMetrics {
		b.style.TextSize = m.TextHeight()
		f.textPaint.Size = b.style.TextSize
	}
	return f
}

func (b *Badge) metricsSource() graphics.MetricsSource {
	if b.metrics != nil {
		return b.metrics
	}
	if fm := graphics.DefaultFontManager(); fm != nil {
		return fm
	}
	return nil
}
