package core

// OpKind identifies a recorded drawing operation.
type OpKind int

const (
	OpClear OpKind = iota
	OpFillRect
	OpDrawText
	OpDrawImage
)

// Op is one recorded Surface call.
type Op struct {
	Kind   OpKind
	Rect   Rect
	Color  Color
	X, Y   int
	Text   string
	Font   Font
	Sprite *Sprite
}

// DrawList is a Surface that records operations for later replay.
// Backends that only get a target at draw time (Ebiten) render ticks into a
// DrawList and replay it; tests use it to inspect what a frame drew.
type DrawList struct {
	ops []Op
}

// NewDrawList creates an empty draw list.
func NewDrawList() *DrawList {
	return &DrawList{}
}

// Reset drops all recorded operations, keeping capacity.
func (d *DrawList) Reset() {
	d.ops = d.ops[:0]
}

// Ops returns the recorded operations.
func (d *DrawList) Ops() []Op {
	return d.ops
}

// Clear implements Surface.
func (d *DrawList) Clear() {
	d.ops = append(d.ops, Op{Kind: OpClear})
}

// FillRect implements Surface.
func (d *DrawList) FillRect(r Rect, c Color) {
	d.ops = append(d.ops, Op{Kind: OpFillRect, Rect: r, Color: c})
}

// DrawText implements Surface.
func (d *DrawList) DrawText(x, y int, text string, f Font) {
	d.ops = append(d.ops, Op{Kind: OpDrawText, X: x, Y: y, Text: text, Font: f})
}

// DrawImage implements Surface.
func (d *DrawList) DrawImage(s *Sprite, dst Rect) {
	d.ops = append(d.ops, Op{Kind: OpDrawImage, Rect: dst, Sprite: s})
}

// Replay issues every recorded operation against dst in order.
func (d *DrawList) Replay(dst Surface) {
	for _, op := range d.ops {
		switch op.Kind {
		case OpClear:
			dst.Clear()
		case OpFillRect:
			dst.FillRect(op.Rect, op.Color)
		case OpDrawText:
			dst.DrawText(op.X, op.Y, op.Text, op.Font)
		case OpDrawImage:
			dst.DrawImage(op.Sprite, op.Rect)
		}
	}
}

// Texts returns the text of every DrawText operation in order.
func (d *DrawList) Texts() []string {
	var out []string
	for _, op := range d.ops {
		if op.Kind == OpDrawText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Images returns the sprite names of every DrawImage operation in order.
func (d *DrawList) Images() []string {
	var out []string
	for _, op := range d.ops {
		if op.Kind == OpDrawImage && op.Sprite != nil {
			out = append(out, op.Sprite.Name)
		}
	}
	return out
}
