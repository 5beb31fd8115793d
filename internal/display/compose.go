// Package display turns atlas frames into pixels on a window or a Linux
// framebuffer. Every frame is composed offscreen first and only then handed
// to the output in one piece.
package display

import (
	"fmt"
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/rook-computer/knobkit/internal/atlas"
	"github.com/rook-computer/knobkit/internal/render/layout"
)

const captionPadding = 4

// Logger is the component-tagged logger used by presenters.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// SurfaceError reports an output resource that could not be used. It is
// fatal to the viewer.
type SurfaceError struct {
	Op  string
	Err error
}

func (e *SurfaceError) Error() string {
	return fmt.Sprintf("display: %s: %v", e.Op, e.Err)
}

func (e *SurfaceError) Unwrap() error { return e.Err }

// View is everything needed to draw one frame.
type View struct {
	Frame   int
	Rescale Rescale
	Caption string // empty for no caption
}

// Compose fills dst with the background and draws atlas frame v.Frame scaled
// by the uniform factor into a square centred in dst. When caption is set,
// v.Caption is drawn along the bottom edge.
func Compose(dst *image.RGBA, a *atlas.Atlas, v View, caption *Caption) error {
	bounds := dst.Bounds()
	draw.Draw(dst, bounds, &image.Uniform{C: Background}, image.Point{}, draw.Src)

	square := layout.CenterSquare(bounds, v.Rescale.Side())
	if !square.Empty() {
		src := a.Frame(v.Frame)
		if square.Size() == src.Size() {
			xdraw.Copy(dst, square.Min, a.Image, src, xdraw.Over, nil)
		} else {
			xdraw.BiLinear.Scale(dst, square, a.Image, src, xdraw.Over, nil)
		}
	}

	if caption == nil || v.Caption == "" {
		return nil
	}
	lh := caption.LineHeight() + 2*captionPadding
	_, band := layout.SplitHorizontal(bounds, bounds.Dy()-lh)
	if err := caption.Draw(dst, layout.Inset(band, captionPadding), v.Caption); err != nil {
		return &SurfaceError{Op: "draw caption", Err: err}
	}
	return nil
}
