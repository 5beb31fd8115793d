// Package atlas builds, stores and loads sprite atlases: every frame of a
// control tiled left to right in one image.
package atlas

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/rook-computer/knobkit/internal/render"
)

var (
	ErrInvalidParameters = errors.New("atlas: invalid parameters")
	ErrFileNotFound      = errors.New("atlas: file not found")
	ErrMalformedAtlas    = errors.New("atlas: malformed atlas")
)

// MaxWidth bounds the atlas image width in pixels.
const MaxWidth = 1 << 20

// Logger is the component-tagged logger used while generating.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Atlas holds FrameCount square frames side by side. It is not modified
// after Generate or Load returns it.
type Atlas struct {
	FrameWidth  int
	FrameHeight int
	FrameCount  int
	Image       *image.RGBA
}

// Frame returns the bounds of frame i inside Image. i is clamped to the
// valid frame range.
func (a *Atlas) Frame(i int) image.Rectangle {
	if i < 0 {
		i = 0
	}
	if i > a.FrameCount-1 {
		i = a.FrameCount - 1
	}
	origin := a.Image.Bounds().Min
	return image.Rect(i*a.FrameWidth, 0, (i+1)*a.FrameWidth, a.FrameHeight).Add(origin)
}

// SampleValue is the state rendered into frame i. The last frame stays
// short of 1.
func SampleValue(i, frameCount int) float64 {
	return float64(i) / float64(frameCount)
}

// Generate renders frameCount frames of frameSize pixels with p and tiles
// them into a new atlas. Every frame is drawn on its own offscreen context,
// so no frame depends on the ones before it.
func Generate(p render.Painter, frameSize, frameCount, edgeOffset int, logger Logger) (*Atlas, error) {
	switch {
	case frameCount < 1:
		return nil, fmt.Errorf("%w: frame count %d, need at least 1", ErrInvalidParameters, frameCount)
	case edgeOffset < 0:
		return nil, fmt.Errorf("%w: negative edge offset %d", ErrInvalidParameters, edgeOffset)
	case frameSize <= edgeOffset:
		return nil, fmt.Errorf("%w: frame size %d must exceed edge offset %d", ErrInvalidParameters, frameSize, edgeOffset)
	case frameCount > MaxWidth/frameSize:
		return nil, fmt.Errorf("%w: %d frames of %dpx exceed %dpx", ErrInvalidParameters, frameCount, frameSize, MaxWidth)
	}

	img := image.NewRGBA(image.Rect(0, 0, frameSize*frameCount, frameSize))
	for i := 0; i < frameCount; i++ {
		if err := renderInto(img, p, i, frameSize, edgeOffset, SampleValue(i, frameCount)); err != nil {
			if logger != nil {
				logger.Errorf("atlas", "frame %d/%d failed: %v", i+1, frameCount, err)
			}
			return nil, fmt.Errorf("atlas: frame %d: %w", i, err)
		}
		if logger != nil {
			logger.Infof("atlas", "generated frame %d/%d", i+1, frameCount)
		}
	}

	return &Atlas{FrameWidth: frameSize, FrameHeight: frameSize, FrameCount: frameCount, Image: img}, nil
}

// renderInto draws frame i on a fresh context and copies it to x = i*frameSize.
// The context is closed before returning.
func renderInto(dst *image.RGBA, p render.Painter, i, frameSize, edgeOffset int, state float64) error {
	dc := gg.NewContext(frameSize, frameSize)
	defer dc.Close()

	if err := render.RenderFrame(dc, p, frameSize, edgeOffset, state); err != nil {
		return err
	}
	frame := dc.Image()
	xdraw.Copy(dst, image.Pt(i*frameSize, 0), frame, frame.Bounds(), xdraw.Src, nil)
	return nil
}

// FileName is the conventional atlas name for a control kind, frame size
// and frame count.
func FileName(kind string, frameSize, frameCount int) string {
	return fmt.Sprintf("%s_%dx%d.png", kind, frameSize, frameCount)
}
