package graphics

import (
	"bytes"
	"image/png"
	"math"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"#FF0000", ColorRed, true},
		{"FFFFFF", ColorWhite, true},
		{"#80FF0000", Color(0x80FF0000), true},
		{" #000000 ", ColorBlack, true},
		{"#FFF", 0, false},
		{"#GGGGGG", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if tt.ok && err != nil {
			t.Errorf("ParseHex(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if !tt.ok {
			if err == nil {
				t.Errorf("ParseHex(%q) expected error", tt.in)
			}
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %s, want %s", tt.in, got.Hex(), tt.want.Hex())
		}
	}
}

func TestColorNRGBA(t *testing.T) {
	c := RGBA8(10, 20, 30, 40).NRGBA()
	if c.R != 10 || c.G != 20 || c.B != 30 || c.A != 40 {
		t.Fatalf("NRGBA() = %+v", c)
	}
}

func TestRRectClamped(t *testing.T) {
	rr := RRectFromRectAndRadius(RectFromLTWH(0, 0, 10, 4), CircularRadius(5)).Clamped()
	if rr.Radius.X != 5 || rr.Radius.Y != 2 {
		t.Fatalf("Clamped radius = %+v, want {5 2}", rr.Radius)
	}
}

func TestPictureRecorderReplays(t *testing.T) {
	var rec PictureRecorder
	canvas := rec.BeginRecording(Size{Width: 20, Height: 10})
	canvas.DrawRect(RectFromLTWH(0, 0, 20, 10), FillPaint(ColorRed))
	canvas.DrawText("3", Offset{X: 10, Y: 8}, TextPaint{Color: ColorWhite, Size: 12, Align: TextAlignCenter})
	dl := rec.EndRecording()

	if dl.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", dl.Len())
	}
	if dl.Size() != (Size{Width: 20, Height: 10}) {
		t.Fatalf("Size() = %+v", dl.Size())
	}

	// Recording after EndRecording must not leak into the list.
	canvas.DrawCircle(Offset{}, 1, FillPaint(ColorBlue))
	if dl.Len() != 2 {
		t.Fatalf("display list mutated after EndRecording: %d ops", dl.Len())
	}

	counter := &countingCanvas{}
	dl.Paint(counter)
	if counter.rects != 1 || counter.texts != 1 {
		t.Fatalf("replay counts rects=%d texts=%d", counter.rects, counter.texts)
	}
}

func TestDisplayListNilSafe(t *testing.T) {
	var dl *DisplayList
	dl.Paint(&countingCanvas{})
	if dl.Len() != 0 {
		t.Fatal("nil display list should be empty")
	}
}

func TestScaledMetrics(t *testing.T) {
	m, err := ScaledMetrics{AscentRatio: 0.75, DescentRatio: 0.25}.Metrics(20)
	if err != nil {
		t.Fatal(err)
	}
	if m.Ascent != 15 || m.Descent != 5 || m.TextHeight() != 20 {
		t.Fatalf("metrics = %+v", m)
	}
	zero, _ := ScaledMetrics{AscentRatio: 1}.Metrics(0)
	if zero != (FontMetrics{}) {
		t.Fatalf("zero size metrics = %+v", zero)
	}
}

func TestFontManagerMetrics(t *testing.T) {
	fm, err := DefaultFontManagerErr()
	if err != nil {
		t.Fatalf("DefaultFontManagerErr: %v", err)
	}
	small, err := fm.Metrics(12)
	if err != nil {
		t.Fatal(err)
	}
	large, err := fm.Metrics(24)
	if err != nil {
		t.Fatal(err)
	}
	if small.Ascent <= 0 || small.Descent <= 0 {
		t.Fatalf("expected positive ascent/descent, got %+v", small)
	}
	if math.Abs(large.TextHeight()-2*small.TextHeight()) > 1 {
		t.Errorf("text height should scale with size: 12px=%.2f 24px=%.2f", small.TextHeight(), large.TextHeight())
	}

	w, err := fm.MeasureText("88", 12)
	if err != nil || w <= 0 {
		t.Fatalf("MeasureText = %.2f, %v", w, err)
	}
	if _, err := fm.Face(0); err == nil {
		t.Error("expected error for zero face size")
	}
}

func TestNewFontManagerRejectsGarbage(t *testing.T) {
	if _, err := NewFontManager([]byte("not a font")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestRasterCanvasFillsShapes(t *testing.T) {
	c := NewRasterCanvas(20, 20, nil)
	c.DrawCircle(Offset{X: 10, Y: 10}, 10, FillPaint(ColorRed))

	center := c.Image().RGBAAt(10, 10)
	if center.R != 255 || center.A != 255 {
		t.Fatalf("center pixel = %+v, want opaque red", center)
	}
	corner := c.Image().RGBAAt(0, 0)
	if corner.A != 0 {
		t.Fatalf("corner pixel = %+v, want transparent", corner)
	}

	c.DrawRect(RectFromLTWH(0, 0, 5, 5), FillPaint(ColorBlue))
	if px := c.Image().RGBAAt(1, 1); px.B != 255 || px.A != 255 {
		t.Fatalf("rect pixel = %+v, want opaque blue", px)
	}
}

func TestRasterCanvasRRectAndOval(t *testing.T) {
	c := NewRasterCanvas(40, 20, nil)
	c.DrawRRect(RRectFromRectAndRadius(RectFromLTWH(0, 0, 40, 20), CircularRadius(8)), FillPaint(ColorGreen))
	if px := c.Image().RGBAAt(20, 10); px.G != 255 {
		t.Fatalf("rrect center = %+v", px)
	}
	if px := c.Image().RGBAAt(0, 0); px.A != 0 {
		t.Fatalf("rounded corner should stay transparent, got %+v", px)
	}

	o := NewRasterCanvas(40, 20, nil)
	o.DrawOval(RectFromLTWH(0, 0, 40, 20), FillPaint(ColorRed))
	if px := o.Image().RGBAAt(20, 10); px.R != 255 {
		t.Fatalf("oval center = %+v", px)
	}
}

func TestRasterCanvasText(t *testing.T) {
	fm := DefaultFontManager()
	c := NewRasterCanvas(40, 20, fm)
	c.DrawText("88", Offset{X: 20, Y: 15}, TextPaint{Color: ColorBlack, Size: 14, Align: TextAlignCenter})

	painted := false
	b := c.Image().Bounds()
	for y := b.Min.Y; y < b.Max.Y && !painted; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if c.Image().RGBAAt(x, y).A > 0 {
				painted = true
				break
			}
		}
	}
	if !painted {
		t.Fatal("expected text pixels")
	}
}

func TestRasterCanvasZeroSize(t *testing.T) {
	c := NewRasterCanvas(0, 0, DefaultFontManager())
	c.DrawCircle(Offset{}, 4, FillPaint(ColorRed))
	c.DrawRect(RectFromLTWH(0, 0, 4, 4), FillPaint(ColorRed))
	c.DrawText("1", Offset{}, TextPaint{Size: 12})
	if !c.Size().IsEmpty() {
		t.Fatalf("Size() = %+v, want empty", c.Size())
	}
}

func TestRasterCanvasEncodePNG(t *testing.T) {
	c := NewRasterCanvas(8, 8, nil)
	c.DrawRect(RectFromLTWH(0, 0, 8, 8), FillPaint(ColorRed))
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 8 {
		t.Fatalf("decoded width = %d", img.Bounds().Dx())
	}
}

type countingCanvas struct {
	rects, rrects, circles, ovals, texts int
}

func (c *countingCanvas) DrawRect(Rect, Paint)             { c.rects++ }
func (c *countingCanvas) DrawRRect(RRect, Paint)           { c.rrects++ }
func (c *countingCanvas) DrawCircle(Offset, float64, Paint) { c.circles++ }
func (c *countingCanvas) DrawOval(Rect, Paint)             { c.ovals++ }
func (c *countingCanvas) DrawText(string, Offset, TextPaint) {
	c.texts++
}
func (c *countingCanvas) Size() Size { return Size{} }
