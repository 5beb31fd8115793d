package display

import (
	"fmt"
	"image"

	"golang.org/x/exp/shiny/screen"

	"github.com/rook-computer/knobkit/internal/atlas"
)

// BufferAllocator creates offscreen buffers. screen.Screen satisfies it.
type BufferAllocator interface {
	NewBuffer(size image.Point) (screen.Buffer, error)
}

// Publisher receives finished buffers. screen.Window satisfies it.
type Publisher interface {
	Upload(dp image.Point, src screen.Buffer, sr image.Rectangle)
	Publish() screen.PublishResult
}

// WindowPresenter draws into an offscreen buffer sized to the window and then
// uploads and publishes it whole, so no partially drawn frame is shown.
type WindowPresenter struct {
	alloc   BufferAllocator
	win     Publisher
	atlas   *atlas.Atlas
	caption *Caption
	buf     screen.Buffer
	Logger  Logger
}

func NewWindowPresenter(alloc BufferAllocator, win Publisher, a *atlas.Atlas, caption *Caption) *WindowPresenter {
	return &WindowPresenter{alloc: alloc, win: win, atlas: a, caption: caption}
}

// Present composes v and shows it. A zero-sized window draws nothing.
func (p *WindowPresenter) Present(v View) error {
	size := image.Pt(v.Rescale.Width, v.Rescale.Height)
	if size.X <= 0 || size.Y <= 0 {
		return nil
	}
	if p.buf == nil || p.buf.Size() != size {
		if p.buf != nil {
			p.buf.Release()
			p.buf = nil
		}
		buf, err := p.alloc.NewBuffer(size)
		if err != nil {
			return &SurfaceError{Op: fmt.Sprintf("allocate %dx%d buffer", size.X, size.Y), Err: err}
		}
		p.buf = buf
		if p.Logger != nil {
			p.Logger.Infof("window", "buffer %dx%d allocated", size.X, size.Y)
		}
	}

	if err := Compose(p.buf.RGBA(), p.atlas, v, p.caption); err != nil {
		return err
	}
	p.win.Upload(image.Point{}, p.buf, p.buf.Bounds())
	p.win.Publish()
	return nil
}

// Release frees the offscreen buffer.
func (p *WindowPresenter) Release() {
	if p.buf != nil {
		p.buf.Release()
		p.buf = nil
	}
}
