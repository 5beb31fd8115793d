package render

import "github.com/gogpu/gg"

// KnobPalette holds every colour a knob frame uses.
type KnobPalette struct {
	Body        gg.RGBA
	BodyBorder  gg.RGBA
	GearCenter  gg.RGBA // large gear gradient, inner stop
	GearEdge    gg.RGBA // large gear gradient, outer stop
	GearOutline gg.RGBA
	GearSmall   gg.RGBA
	Pointer     gg.RGBA
	PointerLine gg.RGBA
	RingTrack   gg.RGBA
	RingValue   gg.RGBA
	ShadeCenter gg.RGBA
	ShadeMid    gg.RGBA
	ShadeEdge   gg.RGBA
}

// SwitchPalette holds the colours of a switch frame. The LED tint is derived
// from the state and has no entry here.
type SwitchPalette struct {
	Housing      [5]gg.RGBA // stops at 0, .25, .5, .75, 1
	HousingLine  gg.RGBA
	Top          [5]gg.RGBA // stops at 0, .45, .5, .55, 1
	TopLine      gg.RGBA
	Thumb        [3]gg.RGBA // stops at 0, .5, 1
	LEDBaseRed   float64
	LEDEdgeGain  float64
	LEDPeakGain  float64
	LEDEdgeGreen float64
	LEDEdgeBlue  float64
	LEDPeakGreen float64
	LEDPeakBlue  float64
}

// Default palettes: dark body with green accents, grey switch housing.
var (
	DefaultKnobPalette = KnobPalette{
		Body:        gg.RGB(0, 0, 0),
		BodyBorder:  gg.RGB(0.1, 0.2, 0.1),
		GearCenter:  gg.RGB(0.05, 0.15, 0.05),
		GearEdge:    gg.RGB(0.1, 0.2, 0.1),
		GearOutline: gg.RGB(0.2, 0.2, 0.2),
		GearSmall:   gg.RGB(0, 0, 0),
		Pointer:     gg.RGB(1, 1, 1),
		PointerLine: gg.RGB(0, 0, 0),
		RingTrack:   gg.RGB(0.2, 0.2, 0.2),
		RingValue:   gg.RGB(0.2, 0.5, 0.2),
		ShadeCenter: gg.RGBA2(0.4, 0.4, 0.4, 0.6),
		ShadeMid:    gg.RGBA2(0.3, 0.3, 0.3, 0.6),
		ShadeEdge:   gg.RGBA2(0, 0, 0, 0.6),
	}

	DefaultSwitchPalette = SwitchPalette{
		Housing: [5]gg.RGBA{
			gg.RGB(0, 0, 0),
			gg.RGB(0.15, 0.15, 0.15),
			gg.RGB(0.2, 0.2, 0.2),
			gg.RGB(0.15, 0.15, 0.15),
			gg.RGB(0, 0, 0),
		},
		HousingLine: gg.RGB(0.1, 0.1, 0.1),
		Top: [5]gg.RGBA{
			gg.RGB(0.4, 0.4, 0.4),
			gg.RGB(0.1, 0.1, 0.1),
			gg.RGB(0.1, 0.1, 0.1),
			gg.RGB(0.1, 0.1, 0.1),
			gg.RGB(0.4, 0.4, 0.4),
		},
		TopLine: gg.RGBA2(0.1, 0.1, 0.1, 0.8),
		Thumb: [3]gg.RGBA{
			gg.RGB(0, 0, 0),
			gg.RGB(0.1, 0.1, 0.1),
			gg.RGB(0, 0, 0),
		},
		LEDBaseRed:   0.2,
		LEDEdgeGain:  0.5,
		LEDPeakGain:  0.7,
		LEDEdgeGreen: 0.1,
		LEDEdgeBlue:  0.05,
		LEDPeakGreen: 0.05,
		LEDPeakBlue:  0.1,
	}
)
