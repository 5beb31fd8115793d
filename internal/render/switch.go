package render

import (
	"github.com/gogpu/gg"

	"github.com/rook-computer/knobkit/internal/geom"
)

// Switch paints a two-position toggle: housing, inset track with a raised
// top, the sliding thumb and an LED whose tint follows the state.
type Switch struct {
	Palette SwitchPalette
}

// rect is an axis aligned box given by its corners.
type rect struct {
	X0, Y0, X1, Y1 float64
}

func (r rect) outline() geom.Outline { return geom.RoundedRect(r.X0, r.Y0, r.X1, r.Y1) }

type switchGeometry struct {
	housing rect
	frame   rect
	top     rect
	thumb   rect
	led     rect // a horizontal segment, Y0 == Y1
}

func newSwitchGeometry(canvasSize, edgeOffset int, state float64) switchGeometry {
	w := float64(canvasSize-edgeOffset) - 10
	h := float64(canvasSize - edgeOffset)
	track := h - 20
	thumb := track / 2
	thumbY := 10 + state*(track-thumb)
	ledX := 5 + w/2 - w/10

	return switchGeometry{
		housing: rect{X0: 5, Y0: 0, X1: 5 + w, Y1: h},
		frame:   rect{X0: 13, Y0: 8, X1: 13 + w - 16, Y1: 8 + h - 16},
		top:     rect{X0: 13, Y0: 10, X1: 13 + w - 16, Y1: 10 + track},
		thumb:   rect{X0: 15, Y0: thumbY, X1: 15 + w - 20, Y1: thumbY + thumb},
		led:     rect{X0: ledX, Y0: 4, X1: ledX + w/5, Y1: 4},
	}
}

// ledStops returns the LED gradient stops at 0, .5 and 1. The red channel
// moves linearly with state; there is no on/off threshold.
func (s Switch) ledStops(state float64) [3]gg.RGBA {
	pal := s.Palette
	edge := gg.RGB(pal.LEDBaseRed+pal.LEDEdgeGain*state, pal.LEDEdgeGreen, pal.LEDEdgeBlue)
	peak := gg.RGB(pal.LEDBaseRed+pal.LEDPeakGain*state, pal.LEDPeakGreen, pal.LEDPeakBlue)
	return [3]gg.RGBA{edge, peak, edge}
}

func (s Switch) Paint(dc *gg.Context, canvasSize, edgeOffset int, state float64) error {
	g := newSwitchGeometry(canvasSize, edgeOffset, state)
	p := &pen{dc: dc}
	pal := s.Palette
	midX := g.housing.X0 + (g.housing.X1-g.housing.X0)/2
	vertical := func(offsets []float64, stops []gg.RGBA) gg.Brush {
		b := gg.NewLinearGradientBrush(midX, g.housing.Y0, midX, g.housing.Y1)
		for i, off := range offsets {
			b.AddColorStop(off, stops[i])
		}
		return b
	}

	p.outline(g.housing.outline())
	p.dc.SetFillBrush(vertical([]float64{0, 0.25, 0.5, 0.75, 1}, pal.Housing[:]))
	p.fillPreserve("switch housing")
	p.dc.SetStrokeBrush(gg.Solid(pal.HousingLine))
	p.dc.SetLineWidth(2)
	p.stroke("switch housing border")

	top := vertical([]float64{0, 0.45, 0.5, 0.55, 1}, pal.Top[:])
	for _, r := range []rect{g.frame, g.top} {
		p.outline(r.outline())
		p.dc.SetFillBrush(top)
		p.fillPreserve("switch track")
		p.dc.SetStrokeBrush(gg.Solid(pal.TopLine))
		p.dc.SetLineWidth(2)
		p.stroke("switch track border")
	}

	p.outline(g.thumb.outline())
	p.dc.SetFillBrush(vertical([]float64{0, 0.5, 1}, pal.Thumb[:]))
	p.fill("switch thumb")

	stops := s.ledStops(state)
	led := gg.NewLinearGradientBrush(g.led.X0, g.led.Y0, g.led.X1, g.led.Y1).
		AddColorStop(0, stops[0]).
		AddColorStop(0.5, stops[1]).
		AddColorStop(1, stops[2])
	p.dc.MoveTo(g.led.X0, g.led.Y0)
	p.dc.LineTo(g.led.X1, g.led.Y1)
	p.dc.SetLineWidth(5)
	p.dc.SetLineCap(gg.LineCapRound)
	p.dc.SetStrokeBrush(led)
	p.stroke("switch led")
	return p.err
}
