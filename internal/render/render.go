package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"

	"github.com/rook-computer/knobkit/internal/geom"
)

// ErrInvalidSize is returned when a frame cannot hold a control: the canvas
// must be larger than the edge offset and the offset must not be negative.
var ErrInvalidSize = errors.New("render: invalid canvas size")

// SurfaceError reports a drawing operation the context refused. It is fatal
// for the frame; nothing partially drawn should be used.
type SurfaceError struct {
	Op  string
	Err error
}

func (e *SurfaceError) Error() string {
	return fmt.Sprintf("render: %s: %v", e.Op, e.Err)
}

func (e *SurfaceError) Unwrap() error { return e.Err }

// Painter draws one control frame for a normalized state in [0, 1] onto a
// square canvas of canvasSize pixels, inset by edgeOffset.
type Painter interface {
	Paint(dc *gg.Context, canvasSize, edgeOffset int, state float64) error
}

// RenderFrame validates the frame size, clamps state and lets p draw.
// The context is drawn on as-is; callers reset it between frames.
func RenderFrame(dc *gg.Context, p Painter, canvasSize, edgeOffset int, state float64) error {
	if edgeOffset < 0 || canvasSize <= edgeOffset {
		return fmt.Errorf("%w: canvas %d with edge offset %d", ErrInvalidSize, canvasSize, edgeOffset)
	}
	return p.Paint(dc, canvasSize, edgeOffset, geom.Clamp01(state))
}

// Kind names accepted by PainterFor.
const (
	KindKnob   = "knob"
	KindSwitch = "switch"
)

// PainterFor returns the default painter for a control kind.
func PainterFor(kind string) (Painter, error) {
	switch kind {
	case KindKnob:
		return Knob{Palette: DefaultKnobPalette}, nil
	case KindSwitch:
		return Switch{Palette: DefaultSwitchPalette}, nil
	default:
		return nil, fmt.Errorf("render: unknown control kind %q (want %s or %s)", kind, KindKnob, KindSwitch)
	}
}

// pen wraps a context and keeps the first failed fill or stroke. Once it has
// failed, further paint operations only discard the current path.
type pen struct {
	dc  *gg.Context
	err error
}

func (p *pen) fill(op string) {
	p.do(op, p.dc.Fill)
}

func (p *pen) fillPreserve(op string) {
	p.do(op, p.dc.FillPreserve)
}

func (p *pen) stroke(op string) {
	p.do(op, p.dc.Stroke)
}

func (p *pen) do(op string, f func() error) {
	if p.err != nil {
		p.dc.ClearPath()
		return
	}
	if err := f(); err != nil {
		p.err = &SurfaceError{Op: op, Err: err}
		p.dc.ClearPath()
	}
}

func (p *pen) polygon(points []geom.Point) {
	if len(points) == 0 {
		return
	}
	p.dc.MoveTo(points[0].X, points[0].Y)
	for _, pt := range points[1:] {
		p.dc.LineTo(pt.X, pt.Y)
	}
	p.dc.ClosePath()
}

func (p *pen) outline(o geom.Outline) {
	p.dc.MoveTo(o.Start.X, o.Start.Y)
	for _, s := range o.Segments {
		p.dc.CubicTo(s.C1.X, s.C1.Y, s.C2.X, s.C2.Y, s.End.X, s.End.Y)
	}
	p.dc.ClosePath()
}
