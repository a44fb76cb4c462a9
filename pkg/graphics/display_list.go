package graphics

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any Canvas implementation.
type DisplayList struct {
	ops  []displayOp
	size Size
}

// Paint replays the recorded operations onto the provided canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	if d == nil || canvas == nil {
		return
	}
	for _, op := range d.ops {
		op.execute(canvas)
	}
}

// Size returns the size recorded when the display list was created.
func (d *DisplayList) Size() Size {
	return d.size
}

// Len returns the number of recorded operations.
func (d *DisplayList) Len() int {
	if d == nil {
		return 0
	}
	return len(d.ops)
}

// PictureRecorder records drawing commands into a display list.
type PictureRecorder struct {
	ops       []displayOp
	recording bool
	size      Size
}

// BeginRecording starts a new recording session.
func (r *PictureRecorder) BeginRecording(size Size) Canvas {
	r.ops = r.ops[:0]
	r.recording = true
	r.size = size
	return &recordingCanvas{recorder: r, size: size}
}

// EndRecording finishes the recording and returns a display list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	if !r.recording {
		return &DisplayList{size: r.size}
	}
	r.recording = false
	ops := make([]displayOp, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{
		ops:  ops,
		size: r.size,
	}
}

func (r *PictureRecorder) append(op displayOp) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
}

type displayOp interface {
	execute(canvas Canvas)
}

type recordingCanvas struct {
	recorder *PictureRecorder
	size     Size
}

func (c *recordingCanvas) DrawRect(rect Rect, paint Paint) {
	c.recorder.append(opRect{rect: rect, paint: paint})
}

func (c *recordingCanvas) DrawRRect(rrect RRect, paint Paint) {
	c.recorder.append(opRRect{rrect: rrect, paint: paint})
}

func (c *recordingCanvas) DrawCircle(center Offset, radius float64, paint Paint) {
	c.recorder.append(opCircle{center: center, radius: radius, paint: paint})
}

func (c *recordingCanvas) DrawOval(rect Rect, paint Paint) {
	c.recorder.append(opOval{rect: rect, paint: paint})
}

func (c *recordingCanvas) DrawText(text string, position Offset, paint TextPaint) {
	c.recorder.append(opText{text: text, position: position, paint: paint})
}

func (c *recordingCanvas) Size() Size {
	return c.size
}

type opRect struct {
	rect  Rect
	paint Paint
}

func (op opRect) execute(canvas Canvas) {
	canvas.DrawRect(op.rect, op.paint)
}

type opRRect struct {
	rrect RRect
	paint Paint
}

func (op opRRect) execute(canvas Canvas) {
	canvas.DrawRRect(op.rrect, op.paint)
}

type opCircle struct {
	center Offset
	radius float64
	paint  Paint
}

func (op opCircle) execute(canvas Canvas) {
	canvas.DrawCircle(op.center, op.radius, op.paint)
}

type opOval struct {
	rect  Rect
	paint Paint
}

func (op opOval) execute(canvas Canvas) {
	canvas.DrawOval(op.rect, op.paint)
}

type opText struct {
	text     string
	position Offset
	paint    TextPaint
}

func (op opText) execute(canvas Canvas) {
	canvas.DrawText(op.text, op.position, op.paint)
}
