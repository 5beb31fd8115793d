package display

import "math"

// Rescale maps an atlas frame onto a window. It is rebuilt on every resize.
// Uniform is the smaller of the two axis scales so the control keeps its
// square shape.
type Rescale struct {
	ScaleX, ScaleY     float64
	InverseX, InverseY float64
	Uniform            float64

	Width, Height int // window size in pixels
	FrameSize     int // atlas frame height in pixels
}

// NewRescale computes the scales for a frame of frameSize pixels shown in a
// width x height window.
func NewRescale(frameSize, width, height int) Rescale {
	rs := Rescale{Width: width, Height: height, FrameSize: frameSize}
	if frameSize <= 0 || width <= 0 || height <= 0 {
		return rs
	}
	rs.ScaleX = float64(width) / float64(frameSize)
	rs.ScaleY = float64(height) / float64(frameSize)
	rs.InverseX = 1 / rs.ScaleX
	rs.InverseY = 1 / rs.ScaleY
	rs.Uniform = math.Min(rs.ScaleX, rs.ScaleY)
	return rs
}

// Side is the on-screen edge length of the scaled frame. It never exceeds
// the shorter window axis.
func (r Rescale) Side() int {
	side := int(math.Floor(r.Uniform * float64(r.FrameSize)))
	if limit := min(r.Width, r.Height); side > limit {
		side = limit
	}
	if side < 0 {
		return 0
	}
	return side
}
