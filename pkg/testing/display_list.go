package testing

import (
	"fmt"
	"math"

	"github.com/go-drift/badger/pkg/graphics"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op" yaml:"op"`
	Params map[string]any `json:"params,omitempty" yaml:"params,omitempty"`
}

// FloatParam returns a numeric parameter, or NaN when missing.
func (o DisplayOp) FloatParam(key string) float64 {
	if v, ok := o.Params[key].(float64); ok {
		return v
	}
	return math.NaN()
}

// StringParam returns a string parameter, or "" when missing.
func (o DisplayOp) StringParam(key string) string {
	s, _ := o.Params[key].(string)
	return s
}

// serializingCanvas implements graphics.Canvas and records ops as DisplayOp.
type serializingCanvas struct {
	ops  []DisplayOp
	size graphics.Size
}

func (c *serializingCanvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "drawRect",
		Params: sortedMap("rect", serializeRect(rect), "color", serializeColor(paint.Color)),
	})
}

func (c *serializingCanvas) DrawRRect(rrect graphics.RRect, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawRRect",
		Params: sortedMap(
			"rect", serializeRect(rrect.Rect),
			"radius", round2(rrect.Radius.X),
			"color", serializeColor(paint.Color),
		),
	})
}

func (c *serializingCanvas) DrawCircle(center graphics.Offset, radius float64, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawCircle",
		Params: sortedMap(
			"cx", round2(center.X),
			"cy", round2(center.Y),
			"radius", round2(radius),
			"color", serializeColor(paint.Color),
		),
	})
}

func (c *serializingCanvas) DrawOval(rect graphics.Rect, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "drawOval",
		Params: sortedMap("rect", serializeRect(rect), "color", serializeColor(paint.Color)),
	})
}

func (c *serializingCanvas) DrawText(text string, position graphics.Offset, paint graphics.TextPaint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawText",
		Params: sortedMap(
			"text", text,
			"x", round2(position.X),
			"y", round2(position.Y),
			"size", round2(paint.Size),
			"align", paint.Align.String(),
			"color", serializeColor(paint.Color),
		),
	})
}

func (c *serializingCanvas) Size() graphics.Size {
	return c.size
}

// RecordOps calls paint with a serializing canvas of the given size and
// returns what was drawn.
func RecordOps(size graphics.Size, paint func(graphics.Canvas, graphics.Size)) []DisplayOp {
	canvas := &serializingCanvas{size: size}
	paint(canvas, size)
	return canvas.ops
}

// SerializeDisplayList replays a DisplayList through the serializing canvas.
func SerializeDisplayList(dl *graphics.DisplayList) []DisplayOp {
	canvas := &serializingCanvas{size: dl.Size()}
	dl.Paint(canvas)
	return canvas.ops
}

// OpsNamed returns the ops whose Op equals name, in order.
func OpsNamed(ops []DisplayOp, name string) []DisplayOp {
	var out []DisplayOp
	for _, op := range ops {
		if op.Op == name {
			out = append(out, op)
		}
	}
	return out
}

// --- Serialization helpers ---

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// sortedMap creates a map from alternating key-value pairs. The YAML and
// JSON encoders emit map keys in sorted order.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}

// RectParam returns a rect parameter, or the zero Rect when missing.
func (o DisplayOp) RectParam(key string) graphics.Rect {
	m, ok := o.Params[key].(map[string]any)
	if !ok {
		return graphics.Rect{}
	}
	get := func(k string) float64 {
		v, _ := m[k].(float64)
		return v
	}
	return graphics.Rect{Left: get("left"), Top: get("top"), Right: get("right"), Bottom: get("bottom")}
}
