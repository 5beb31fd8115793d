package render

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/rook-computer/knobkit/internal/geom"
)

const (
	gearTeeth      = 9
	gearLag        = 0.08 // aligns a tooth with the pointer
	arrowHalfAngle = 0.35
	arrowLength    = 10.0
	ringDash       = 4.0
	ringGap        = 6.0
	ringWidth      = 4.0
	borderWidth    = 4.0
)

// Knob paints a rotary knob: body, two gears, an arrow pointer, the dashed
// value ring and a shading overlay, back to front.
type Knob struct {
	Palette KnobPalette
}

// knobGeometry is the layout shared by all layers of one knob frame.
type knobGeometry struct {
	center      geom.Point
	diameter    float64 // canvas minus edge offset
	bodyRadius  float64
	pointerRad  float64 // pointer tip and ring radius
	shadeCenter geom.Point
}

func newKnobGeometry(canvasSize, edgeOffset int) knobGeometry {
	d := float64(canvasSize - edgeOffset)
	c := float64(canvasSize) / 2
	pointerOff := d / 10
	return knobGeometry{
		center:      geom.Pt(c, c),
		diameter:    d,
		bodyRadius:  d / 2.1,
		pointerRad:  (d - pointerOff) / 2,
		shadeCenter: geom.Pt(d/2+float64(edgeOffset), d/2+float64(edgeOffset)),
	}
}

// along returns the point at distance r from the centre for the pointer
// angle a. Zero points straight down and the sweep runs clockwise.
func (g knobGeometry) along(r, a float64) geom.Point {
	sin, cos := math.Sincos(a)
	return geom.Pt(g.center.X-r*sin, g.center.Y+r*cos)
}

func (k Knob) Paint(dc *gg.Context, canvasSize, edgeOffset int, state float64) error {
	g := newKnobGeometry(canvasSize, edgeOffset)
	angle := geom.Angle(state)
	p := &pen{dc: dc}

	k.body(p, g)
	if err := k.gears(p, g, angle); err != nil {
		return err
	}
	if err := k.pointer(p, g, angle); err != nil {
		return err
	}
	if err := k.ring(p, g, state, angle); err != nil {
		return err
	}
	k.shading(p, g)
	return p.err
}

func (k Knob) body(p *pen, g knobGeometry) {
	p.dc.DrawCircle(g.center.X, g.center.Y, g.bodyRadius)
	p.dc.SetFillBrush(gg.Solid(k.Palette.Body))
	p.fillPreserve("knob body")
	p.dc.SetStrokeBrush(gg.Solid(k.Palette.BodyBorder))
	p.dc.SetLineWidth(borderWidth)
	p.stroke("knob border")
}

func (k Knob) gears(p *pen, g knobGeometry, angle float64) error {
	rot := angle - gearLag

	large, err := geom.GearProfile(g.pointerRad-10, gearTeeth, 10)
	if err != nil {
		return err
	}
	p.polygon(place(large, g.center, rot))
	p.dc.SetFillBrush(gg.NewRadialGradientBrush(g.center.X, g.center.Y, 1, g.diameter/2).
		AddColorStop(0, k.Palette.GearCenter).
		AddColorStop(1, k.Palette.GearEdge))
	p.fillPreserve("large gear")
	p.dc.SetStrokeBrush(gg.Solid(k.Palette.GearOutline))
	p.dc.SetLineWidth(1)
	p.stroke("large gear outline")

	small, err := geom.GearProfile(g.pointerRad-15, gearTeeth, 6)
	if err != nil {
		return err
	}
	p.polygon(place(small, g.center, rot))
	p.dc.SetFillBrush(gg.Solid(k.Palette.GearSmall))
	p.fill("small gear")
	return nil
}

// place rotates points about the origin and moves them to center.
func place(points []geom.Point, center geom.Point, angle float64) []geom.Point {
	out := make([]geom.Point, len(points))
	for i, pt := range points {
		out[i] = pt.Rotate(angle).Add(center)
	}
	return out
}

// pointer draws the arrow head as two cubic curves from the tip through the
// barbs, meeting at the notch.
func (k Knob) pointer(p *pen, g knobGeometry, angle float64) error {
	tip := g.along(g.pointerRad, angle)
	base := g.along(g.pointerRad/1.7, angle)
	left, right, notch, err := geom.ArrowheadVertices(g.center, base, arrowHalfAngle, arrowLength)
	if err != nil {
		return err
	}

	p.dc.SetLineCap(gg.LineCapRound)
	p.dc.SetLineJoin(gg.LineJoinBevel)
	p.dc.MoveTo(tip.X, tip.Y)
	p.dc.CubicTo(tip.X, tip.Y, left.X, left.Y, notch.X, notch.Y)
	p.dc.CubicTo(notch.X, notch.Y, right.X, right.Y, tip.X, tip.Y)
	p.dc.SetFillBrush(gg.Solid(k.Palette.Pointer))
	p.fillPreserve("pointer")
	p.dc.SetStrokeBrush(gg.Solid(k.Palette.PointerLine))
	p.dc.SetLineWidth(1)
	p.stroke("pointer outline")
	return nil
}

// ring draws the dashed track over the full sweep and, past the dead zone,
// the value arc on top of it.
func (k Knob) ring(p *pen, g knobGeometry, state, angle float64) error {
	start, full, err := geom.ArcRingBounds(1, geom.DeadZone)
	if err != nil {
		return err
	}
	_, end, err := geom.ArcRingBounds(state, geom.DeadZone)
	if err != nil {
		return err
	}

	p.dc.SetStroke(gg.DefaultStroke().
		WithWidth(ringWidth).
		WithCap(gg.LineCapRound).
		WithDashPattern(ringDash, ringGap))
	p.dc.ClearPath()
	p.dc.DrawArc(g.center.X, g.center.Y, g.pointerRad, start, full)
	p.dc.SetStrokeBrush(gg.Solid(k.Palette.RingTrack))
	p.stroke("ring track")

	if angle > geom.DeadZone {
		p.dc.DrawArc(g.center.X, g.center.Y, g.pointerRad, start, end)
		p.dc.SetStrokeBrush(gg.Solid(k.Palette.RingValue))
		p.stroke("ring value")
	}
	p.dc.SetStroke(gg.DefaultStroke())
	return nil
}

func (k Knob) shading(p *pen, g knobGeometry) {
	focus := g.diameter / 6
	p.dc.DrawCircle(g.center.X, g.center.Y, g.bodyRadius)
	p.dc.SetFillBrush(gg.NewRadialGradientBrush(g.shadeCenter.X, g.shadeCenter.Y, 1, g.bodyRadius).
		SetFocus(g.shadeCenter.X-focus, g.shadeCenter.Y-focus).
		AddColorStop(0, k.Palette.ShadeCenter).
		AddColorStop(0.3, k.Palette.ShadeMid).
		AddColorStop(1, k.Palette.ShadeEdge))
	p.fill("shading")
}
