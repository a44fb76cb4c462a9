package graphics

// Canvas is the drawing surface a badge paints onto.
type Canvas interface {
	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawRRect draws a rounded rectangle with the provided paint.
	DrawRRect(rrect RRect, paint Paint)

	// DrawCircle draws a circle with the provided paint.
	DrawCircle(center Offset, radius float64, paint Paint)

	// DrawOval draws the ellipse inscribed in rect.
	DrawOval(rect Rect, paint Paint)

	// DrawText draws text with its baseline at position.Y. The X coordinate
	// is interpreted according to paint.Align.
	DrawText(text string, position Offset, paint TextPaint)

	// Size returns the size of the canvas in pixels.
	Size() Size
}
