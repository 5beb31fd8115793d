// Package geom holds the stateless geometry used to draw controls: the
// value-to-angle mapping, indicator ring bounds, gear outlines, arrow heads
// and rounded rectangle outlines.
package geom

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGeometry reports degenerate input to a primitive.
var ErrInvalidGeometry = errors.New("geom: invalid geometry")

const (
	// DeadZone is the angular range at the zero position that the sweep skips.
	DeadZone = 20 * math.Pi / 180
	// RingOffset rotates the ring so that zero points down.
	RingOffset = 90 * math.Pi / 180
)

// Point is a position in canvas coordinates.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Rotate returns p rotated by angle radians about the origin.
func (p Point) Rotate(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
}

// Polar returns the point at radius r and angle a around the origin.
func Polar(r, a float64) Point {
	sin, cos := math.Sincos(a)
	return Point{X: r * cos, Y: r * sin}
}

// Clamp01 clamps v to [0, 1]. NaN maps to 0.
func Clamp01(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v >= 0:
		return v
	default:
		return 0
	}
}

// Angle maps a normalized control value to its rotation. It is the only
// value-to-rotation mapping: the pointer, the gears and the indicator ring
// all derive from it.
func Angle(state float64) float64 {
	return sweep(state, DeadZone)
}

// sweep interpolates between deadZone and a full turn. The two-term form is
// exact at both ends.
func sweep(state, deadZone float64) float64 {
	s := Clamp01(state)
	return (1-s)*deadZone + s*2*math.Pi
}

// ArcRingBounds returns the start and end angle of the indicator ring for
// value. The value is clamped to [0, 1], never wrapped.
func ArcRingBounds(value, deadZone float64) (start, end float64, err error) {
	if math.IsNaN(value) || math.IsNaN(deadZone) {
		return 0, 0, fmt.Errorf("%w: ring value %v, dead zone %v", ErrInvalidGeometry, value, deadZone)
	}
	return RingOffset + deadZone, RingOffset + sweep(value, deadZone), nil
}

// GearProfile returns the closed outline of a gear centred on the origin.
// The outline alternates between radius-depth/2 and radius+depth/2 and has
// four vertices per tooth.
func GearProfile(radius float64, teeth int, depth float64) ([]Point, error) {
	if teeth < 3 {
		return nil, fmt.Errorf("%w: gear needs at least 3 teeth, got %d", ErrInvalidGeometry, teeth)
	}
	inner := radius - depth/2
	outer := radius + depth/2
	da := 2 * math.Pi / float64(teeth) / 4

	points := make([]Point, 0, 4*teeth)
	points = append(points, Polar(inner, 3*da))
	for i := 1; i <= teeth; i++ {
		angle := float64(i) * 2 * math.Pi / float64(teeth)
		points = append(points,
			Polar(inner, angle),
			Polar(outer, angle+da),
			Polar(outer, angle+2*da),
		)
		if i < teeth {
			points = append(points, Polar(inner, angle+3*da))
		}
	}
	return points, nil
}

// ArrowheadVertices computes the two barb tips and the notch of an arrow
// whose shaft runs from start to end. The barbs are splayed by halfAngle and
// reach length back from end; the notch sits a tenth of length back.
func ArrowheadVertices(start, end Point, halfAngle, length float64) (left, right, notch Point, err error) {
	if start == end {
		return Point{}, Point{}, Point{}, fmt.Errorf("%w: arrow shaft has zero length at (%v, %v)", ErrInvalidGeometry, end.X, end.Y)
	}
	back := math.Atan2(end.Y-start.Y, end.X-start.X) + math.Pi
	left = end.Add(Polar(length, back-halfAngle))
	right = end.Add(Polar(length, back+halfAngle))
	notch = end.Add(Polar(length*0.1, back))
	return left, right, notch, nil
}

// Cubic is one cubic Bézier segment continuing from the previous end point.
type Cubic struct {
	C1, C2, End Point
}

// Outline is a closed path made of cubic segments.
type Outline struct {
	Start    Point
	Segments []Cubic
}

// RoundedRect returns a rectangle outline whose four corners are cubic
// curves. Both control points of a segment sit on the corner and every
// segment ends on an edge midpoint, so neighbouring curves meet tangentially.
func RoundedRect(x0, y0, x1, y1 float64) Outline {
	mx, my := (x0+x1)/2, (y0+y1)/2
	return Outline{
		Start: Pt(x0, my),
		Segments: []Cubic{
			{C1: Pt(x0, y0), C2: Pt(x0, y0), End: Pt(mx, y0)},
			{C1: Pt(x1, y0), C2: Pt(x1, y0), End: Pt(x1, my)},
			{C1: Pt(x1, y1), C2: Pt(x1, y1), End: Pt(mx, y1)},
			{C1: Pt(x0, y1), C2: Pt(x0, y1), End: Pt(x0, my)},
		},
	}
}
