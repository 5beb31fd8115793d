package display

import (
	"image"
	"image/color"
	"image/draw"

	fb "github.com/gonutz/framebuffer"

	"github.com/rook-computer/knobkit/internal/atlas"
)

// FramebufferPresenter renders to a Linux framebuffer device through an
// offscreen canvas of the same size.
type FramebufferPresenter struct {
	dev     draw.Image
	closeFn func()
	canvas  *image.RGBA
	atlas   *atlas.Atlas
	caption *Caption
	Logger  Logger
}

// OpenFramebuffer opens the framebuffer device at path, e.g. /dev/fb0.
func OpenFramebuffer(path string, a *atlas.Atlas, caption *Caption, logger Logger) (*FramebufferPresenter, error) {
	dev, err := fb.Open(path)
	if err != nil {
		return nil, &SurfaceError{Op: "open " + path, Err: err}
	}
	if logger != nil {
		b := dev.Bounds()
		logger.Infof("fb", "framebuffer open, bounds=%dx%d", b.Dx(), b.Dy())
	}
	p := NewFramebufferPresenter(dev, a, caption)
	p.closeFn = func() { dev.Close() }
	p.Logger = logger
	return p, nil
}

// NewFramebufferPresenter presents onto any draw.Image standing in for the
// device.
func NewFramebufferPresenter(dev draw.Image, a *atlas.Atlas, caption *Caption) *FramebufferPresenter {
	return &FramebufferPresenter{dev: dev, atlas: a, caption: caption}
}

// Bounds is the device size; the viewer uses it as the window size.
func (p *FramebufferPresenter) Bounds() image.Rectangle { return p.dev.Bounds() }

// Present composes v on the canvas and copies the canvas to the device.
func (p *FramebufferPresenter) Present(v View) error {
	size := p.dev.Bounds().Size()
	if p.canvas == nil || p.canvas.Bounds().Size() != size {
		p.canvas = image.NewRGBA(image.Rectangle{Max: size})
	}
	if err := Compose(p.canvas, p.atlas, v, p.caption); err != nil {
		return err
	}
	blitToFB(p.dev, p.canvas)
	return nil
}

// Release closes the device.
func (p *FramebufferPresenter) Release() {
	if p.closeFn != nil {
		p.closeFn()
		p.closeFn = nil
	}
}

// blitToFB copies canvas to dev pixel by pixel with alpha forced opaque.
func blitToFB(dev draw.Image, canvas *image.RGBA) {
	bounds := dev.Bounds()
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			pixel := canvas.RGBAAt(x, y)
			dev.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
}
