// Package control models the value behind an interactive knob or switch and
// the rules that change it.
package control

import (
	"errors"
	"fmt"
	"math"

	"github.com/rook-computer/knobkit/internal/geom"
)

// ErrInvalidAdjustment is returned when a range or step cannot hold a value.
var ErrInvalidAdjustment = errors.New("control: invalid adjustment")

// DragSensitivity scales pointer travel in pixels to value steps.
const DragSensitivity = 0.5

// Kind selects the interaction model of a control.
type Kind int

const (
	Continuous Kind = iota // knob: stepped and dragged over a range
	Bistable               // switch: toggled between min and max
)

func (k Kind) String() string {
	switch k {
	case Continuous:
		return "continuous"
	case Bistable:
		return "bistable"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Adjustment is a bounded value. Min <= Value <= Max holds after every
// mutation; out of range input is clamped, never wrapped.
type Adjustment struct {
	Value float64
	Min   float64
	Max   float64
	Step  float64
}

// NewAdjustment validates the range and step and clamps the initial value.
func NewAdjustment(value, lo, hi, step float64) (Adjustment, error) {
	if !(lo < hi) || !(step > 0) || math.IsInf(step, 0) {
		return Adjustment{}, fmt.Errorf("%w: range [%v, %v] step %v", ErrInvalidAdjustment, lo, hi, step)
	}
	a := Adjustment{Min: lo, Max: hi, Step: step}
	a.set(value)
	return a, nil
}

func (a *Adjustment) set(v float64) {
	switch {
	case math.IsNaN(v):
		return
	case v < a.Min:
		a.Value = a.Min
	case v > a.Max:
		a.Value = a.Max
	default:
		a.Value = v
	}
}

// Normalized maps Value into [0, 1].
func (a Adjustment) Normalized() float64 {
	return geom.Clamp01((a.Value - a.Min) / (a.Max - a.Min))
}

func (a Adjustment) denormalize(n float64) float64 {
	return a.Min + geom.Clamp01(n)*(a.Max-a.Min)
}

// Alignment is where the control sits inside its frame. It does not change
// after construction.
type Alignment struct {
	X, Y          int
	Width, Height int
}

// Controller couples a value with its geometry and interaction kind.
type Controller struct {
	Adjustment Adjustment
	Alignment  Alignment
	Kind       Kind
}

// FromAtlas derives a controller from atlas dimensions. Atlases with two
// frames or fewer are switches; everything else is a knob with 100 steps.
func FromAtlas(frameWidth, frameHeight, frameCount int) (*Controller, error) {
	if frameWidth <= 0 || frameHeight <= 0 || frameCount < 1 {
		return nil, fmt.Errorf("%w: frame %dx%d count %d", ErrInvalidAdjustment, frameWidth, frameHeight, frameCount)
	}
	kind, value, step := Continuous, 0.5, 0.01
	if frameCount <= 2 {
		kind, value, step = Bistable, 0, 1
	}
	adj, err := NewAdjustment(value, 0, 1, step)
	if err != nil {
		return nil, err
	}
	return &Controller{
		Adjustment: adj,
		Alignment:  Alignment{Width: frameWidth, Height: frameHeight},
		Kind:       kind,
	}, nil
}

// ApplyStep moves a continuous control one step in the sign of direction.
// Switches ignore steps.
func (c *Controller) ApplyStep(direction int) {
	if c.Kind != Continuous || direction == 0 {
		return
	}
	d := 1.0
	if direction < 0 {
		d = -1
	}
	c.Adjustment.set(c.Adjustment.Value + d*c.Adjustment.Step)
}

// ApplyMotionDelta sets a continuous control from the value it had when the
// drag started and the vertical pointer travel since then. Positive
// pixelDelta means the pointer moved up.
func (c *Controller) ApplyMotionDelta(startValue, pixelDelta float64) {
	if c.Kind != Continuous || math.IsNaN(pixelDelta) {
		return
	}
	a := &c.Adjustment
	start := geom.Clamp01((startValue - a.Min) / (a.Max - a.Min))
	n := start + pixelDelta*DragSensitivity*a.Step/(a.Max-a.Min)
	a.set(a.denormalize(n))
}

// Toggle flips a switch between Min and Max. Any value other than Min counts
// as on. Continuous controls ignore toggles.
func (c *Controller) Toggle() {
	if c.Kind != Bistable {
		return
	}
	if c.Adjustment.Value != c.Adjustment.Min {
		c.Adjustment.set(c.Adjustment.Min)
		return
	}
	c.Adjustment.set(c.Adjustment.Max)
}

// Normalized returns the value mapped to [0, 1].
func (c *Controller) Normalized() float64 {
	return c.Adjustment.Normalized()
}

// FrameIndex selects the atlas frame for the current value.
func (c *Controller) FrameIndex(frameCount int) int {
	if frameCount <= 1 {
		return 0
	}
	i := int(math.Floor(c.Normalized() * float64(frameCount)))
	if i > frameCount-1 {
		return frameCount - 1
	}
	if i < 0 {
		return 0
	}
	return i
}
