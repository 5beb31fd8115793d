package display

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/exp/shiny/screen"

	"github.com/rook-computer/knobkit/internal/atlas"
)

var (
	red  = color.RGBA{R: 0xFF, A: 0xFF}
	blue = color.RGBA{B: 0xFF, A: 0xFF}
)

// twoFrameAtlas has a red frame 0 and a blue frame 1, each size pixels.
func twoFrameAtlas(size int) *atlas.Atlas {
	img := image.NewRGBA(image.Rect(0, 0, 2*size, size))
	draw.Draw(img, image.Rect(0, 0, size, size), &image.Uniform{C: red}, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(size, 0, 2*size, size), &image.Uniform{C: blue}, image.Point{}, draw.Src)
	return &atlas.Atlas{FrameWidth: size, FrameHeight: size, FrameCount: 2, Image: img}
}

func TestNewRescale(t *testing.T) {
	tests := []struct {
		name        string
		frame, w, h int
		want        Rescale
		wantSide    int
	}{
		{
			name:     "tall window locks to width",
			frame:    150,
			w:        300,
			h:        450,
			want:     Rescale{ScaleX: 2, ScaleY: 3, InverseX: 0.5, InverseY: 1.0 / 3, Uniform: 2, Width: 300, Height: 450, FrameSize: 150},
			wantSide: 300,
		},
		{
			name:     "same size",
			frame:    150,
			w:        150,
			h:        150,
			want:     Rescale{ScaleX: 1, ScaleY: 1, InverseX: 1, InverseY: 1, Uniform: 1, Width: 150, Height: 150, FrameSize: 150},
			wantSide: 150,
		},
		{
			name:     "shrunk",
			frame:    100,
			w:        100,
			h:        50,
			want:     Rescale{ScaleX: 1, ScaleY: 0.5, InverseX: 1, InverseY: 2, Uniform: 0.5, Width: 100, Height: 50, FrameSize: 100},
			wantSide: 50,
		},
		{
			name:     "minimized",
			frame:    100,
			want:     Rescale{FrameSize: 100},
			wantSide: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewRescale(tt.frame, tt.w, tt.h)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Errorf("NewRescale() mismatch (-want +got):\n%s", diff)
			}
			if side := got.Side(); side != tt.wantSide {
				t.Errorf("Side() = %d, want %d", side, tt.wantSide)
			}
		})
	}
}

func TestSideFitsWindow(t *testing.T) {
	for frame := 1; frame <= 64; frame += 7 {
		for w := 1; w <= 200; w += 13 {
			for h := 1; h <= 200; h += 11 {
				rs := NewRescale(frame, w, h)
				if side := rs.Side(); side > w || side > h {
					t.Fatalf("frame %d in %dx%d: side %d does not fit", frame, w, h, side)
				}
			}
		}
	}
}

func TestComposeLetterboxesSelectedFrame(t *testing.T) {
	a := twoFrameAtlas(10)
	dst := image.NewRGBA(image.Rect(0, 0, 20, 40))
	if err := Compose(dst, a, View{Frame: 1, Rescale: NewRescale(10, 20, 40)}, nil); err != nil {
		t.Fatal(err)
	}
	if got := dst.RGBAAt(10, 20); got != blue {
		t.Errorf("centre = %v, want frame 1 blue", got)
	}
	if got := dst.RGBAAt(10, 2); got != Background {
		t.Errorf("letterbox band = %v, want background", got)
	}
	if got := dst.RGBAAt(10, 37); got != Background {
		t.Errorf("lower letterbox band = %v, want background", got)
	}
}

func TestComposeUnscaledCopy(t *testing.T) {
	a := twoFrameAtlas(10)
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	if err := Compose(dst, a, View{Frame: 0, Rescale: NewRescale(10, 10, 10)}, nil); err != nil {
		t.Fatal(err)
	}
	for _, p := range []image.Point{{0, 0}, {9, 9}, {5, 5}} {
		if got := dst.RGBAAt(p.X, p.Y); got != red {
			t.Errorf("pixel %v = %v, want red", p, got)
		}
	}
}

func TestCaptionDrawsText(t *testing.T) {
	c := NewCaption(CaptionSize, nil)
	dst := image.NewRGBA(image.Rect(0, 0, 120, 40))
	if err := c.Draw(dst, dst.Bounds(), "0.50"); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	var inked int
	for i := 3; i < len(dst.Pix); i += 4 {
		if dst.Pix[i] != 0 {
			inked++
		}
	}
	if inked == 0 {
		t.Error("caption left the image blank")
	}
}

type fakeBuffer struct {
	rgba     *image.RGBA
	released bool
}

func (b *fakeBuffer) Release()                { b.released = true }
func (b *fakeBuffer) Size() image.Point       { return b.rgba.Bounds().Size() }
func (b *fakeBuffer) Bounds() image.Rectangle { return b.rgba.Bounds() }
func (b *fakeBuffer) RGBA() *image.RGBA       { return b.rgba }

type fakeScreen struct {
	buffers []*fakeBuffer
	err     error
}

func (s *fakeScreen) NewBuffer(size image.Point) (screen.Buffer, error) {
	if s.err != nil {
		return nil, s.err
	}
	b := &fakeBuffer{rgba: image.NewRGBA(image.Rectangle{Max: size})}
	s.buffers = append(s.buffers, b)
	return b, nil
}

type fakeWindow struct {
	uploads   int
	publishes int
	last      *image.RGBA
}

func (w *fakeWindow) Upload(dp image.Point, src screen.Buffer, sr image.Rectangle) {
	w.uploads++
	w.last = src.RGBA()
}

func (w *fakeWindow) Publish() screen.PublishResult {
	w.publishes++
	return screen.PublishResult{}
}

func TestWindowPresenter(t *testing.T) {
	s := &fakeScreen{}
	w := &fakeWindow{}
	p := NewWindowPresenter(s, w, twoFrameAtlas(10), nil)

	if err := p.Present(View{Frame: 0, Rescale: NewRescale(10, 30, 30)}); err != nil {
		t.Fatal(err)
	}
	if err := p.Present(View{Frame: 1, Rescale: NewRescale(10, 30, 30)}); err != nil {
		t.Fatal(err)
	}
	if len(s.buffers) != 1 {
		t.Errorf("allocated %d buffers for one window size, want 1", len(s.buffers))
	}
	if w.uploads != 2 || w.publishes != 2 {
		t.Errorf("uploads/publishes = %d/%d, want 2/2", w.uploads, w.publishes)
	}
	if got := w.last.RGBAAt(15, 15); got != blue {
		t.Errorf("published centre = %v, want blue", got)
	}

	if err := p.Present(View{Frame: 1, Rescale: NewRescale(10, 40, 20)}); err != nil {
		t.Fatal(err)
	}
	if len(s.buffers) != 2 || !s.buffers[0].released {
		t.Errorf("resize did not replace the buffer: %d buffers, first released = %v", len(s.buffers), s.buffers[0].released)
	}

	p.Release()
	if !s.buffers[1].released {
		t.Error("Release() kept the buffer")
	}
}

func TestWindowPresenterSkipsEmptyWindow(t *testing.T) {
	s := &fakeScreen{}
	w := &fakeWindow{}
	p := NewWindowPresenter(s, w, twoFrameAtlas(10), nil)
	if err := p.Present(View{Rescale: NewRescale(10, 0, 0)}); err != nil {
		t.Fatal(err)
	}
	if len(s.buffers) != 0 || w.publishes != 0 {
		t.Errorf("empty window allocated %d buffers and published %d times", len(s.buffers), w.publishes)
	}
}

func TestWindowPresenterAllocationFailure(t *testing.T) {
	s := &fakeScreen{err: errors.New("out of shm")}
	p := NewWindowPresenter(s, &fakeWindow{}, twoFrameAtlas(10), nil)
	err := p.Present(View{Rescale: NewRescale(10, 30, 30)})
	var se *SurfaceError
	if !errors.As(err, &se) {
		t.Errorf("Present() error = %v, want *SurfaceError", err)
	}
}

func TestFramebufferPresenter(t *testing.T) {
	dev := image.NewRGBA(image.Rect(0, 0, 16, 8))
	p := NewFramebufferPresenter(dev, twoFrameAtlas(4), nil)
	rs := NewRescale(4, p.Bounds().Dx(), p.Bounds().Dy())
	if err := p.Present(View{Frame: 0, Rescale: rs}); err != nil {
		t.Fatal(err)
	}
	if got := dev.RGBAAt(8, 4); got != red {
		t.Errorf("device centre = %v, want red", got)
	}
	if got := dev.RGBAAt(0, 4); got != Background {
		t.Errorf("device edge = %v, want background", got)
	}
	p.Release()
}
