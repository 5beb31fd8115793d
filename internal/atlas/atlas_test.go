package atlas

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg"
	"github.com/google/go-cmp/cmp"

	"github.com/rook-computer/knobkit/internal/render"
)

// shrinkingBar fills a bar whose width falls as state rises, so pixels left
// over from an earlier frame would show up in the next one.
type shrinkingBar struct{}

func (shrinkingBar) Paint(dc *gg.Context, canvasSize, edgeOffset int, state float64) error {
	w := (1 - state) * float64(canvasSize)
	dc.DrawRectangle(0, 0, w, float64(canvasSize))
	dc.SetRGB(1, 0, 0)
	return dc.Fill()
}

// fixedState ignores the sampled state and always draws the same frame.
type fixedState struct {
	render.Painter
	state float64
}

func (f fixedState) Paint(dc *gg.Context, canvasSize, edgeOffset int, _ float64) error {
	return f.Painter.Paint(dc, canvasSize, edgeOffset, f.state)
}

type failingPainter struct{ err error }

func (f failingPainter) Paint(*gg.Context, int, int, float64) error { return f.err }

type recordingLogger struct{ infos int }

func (l *recordingLogger) Infof(string, string, ...interface{})  { l.infos++ }
func (l *recordingLogger) Errorf(string, string, ...interface{}) {}

func standalone(t *testing.T, p render.Painter, size, offset int, state float64) *image.RGBA {
	t.Helper()
	dc := gg.NewContext(size, size)
	defer dc.Close()
	if err := render.RenderFrame(dc, p, size, offset, state); err != nil {
		t.Fatal(err)
	}
	return dc.Image().(*image.RGBA)
}

func frameDiff(a *Atlas, i int, want *image.RGBA) (x, y int, same bool) {
	r := a.Frame(i)
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			if a.Image.RGBAAt(r.Min.X+x, r.Min.Y+y) != want.RGBAAt(x, y) {
				return x, y, false
			}
		}
	}
	return 0, 0, true
}

func TestGenerateRejectsInvalidParameters(t *testing.T) {
	tests := []struct {
		name                 string
		size, frames, offset int
	}{
		{name: "no frames", size: 10, frames: 0, offset: 0},
		{name: "negative offset", size: 10, frames: 3, offset: -1},
		{name: "offset fills frame", size: 10, frames: 3, offset: 10},
		{name: "zero size", size: 0, frames: 3, offset: 0},
		{name: "too wide", size: 1024, frames: MaxWidth, offset: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(shrinkingBar{}, tt.size, tt.frames, tt.offset, nil)
			if !errors.Is(err, ErrInvalidParameters) {
				t.Errorf("Generate() error = %v, want ErrInvalidParameters", err)
			}
		})
	}
}

func TestGenerateDimensions(t *testing.T) {
	for _, frames := range []int{1, 2, 7} {
		a, err := Generate(shrinkingBar{}, 12, frames, 0, nil)
		if err != nil {
			t.Fatalf("Generate(frames=%d) error = %v", frames, err)
		}
		want := image.Rect(0, 0, 12*frames, 12)
		if got := a.Image.Bounds(); got != want {
			t.Errorf("frames=%d bounds = %v, want %v", frames, got, want)
		}
		if a.FrameCount != frames || a.FrameWidth != 12 || a.FrameHeight != 12 {
			t.Errorf("frames=%d atlas = %d frames of %dx%d", frames, a.FrameCount, a.FrameWidth, a.FrameHeight)
		}
	}
}

func TestGenerateIsolatesFrames(t *testing.T) {
	painters := map[string]render.Painter{
		"bar":    shrinkingBar{},
		"knob":   render.Knob{Palette: render.DefaultKnobPalette},
		"switch": render.Switch{Palette: render.DefaultSwitchPalette},
	}
	for name, p := range painters {
		t.Run(name, func(t *testing.T) {
			const size, frames = 40, 4
			a, err := Generate(p, size, frames, 0, nil)
			if err != nil {
				t.Fatal(err)
			}
			for i := 0; i < frames; i++ {
				want := standalone(t, p, size, 0, SampleValue(i, frames))
				if x, y, ok := frameDiff(a, i, want); !ok {
					t.Errorf("frame %d differs from a standalone render at (%d, %d)", i, x, y)
				}
			}
		})
	}
}

func TestGenerateRepeatedStateIsIdentical(t *testing.T) {
	painters := map[string]render.Painter{
		"knob":   render.Knob{Palette: render.DefaultKnobPalette},
		"switch": render.Switch{Palette: render.DefaultSwitchPalette},
	}
	for name, p := range painters {
		t.Run(name, func(t *testing.T) {
			const size, frames = 48, 3
			a, err := Generate(fixedState{Painter: p, state: 0.25}, size, frames, 0, nil)
			if err != nil {
				t.Fatal(err)
			}
			first := standalone(t, p, size, 0, 0.25)
			for i := 0; i < frames; i++ {
				if x, y, ok := frameDiff(a, i, first); !ok {
					t.Errorf("frame %d of identical states differs at (%d, %d)", i, x, y)
				}
			}
		})
	}
}

func TestGenerateLogsEachFrame(t *testing.T) {
	l := &recordingLogger{}
	if _, err := Generate(shrinkingBar{}, 8, 5, 0, l); err != nil {
		t.Fatal(err)
	}
	if l.infos != 5 {
		t.Errorf("logged %d frames, want 5", l.infos)
	}
}

func TestGenerateSurfacesPainterErrors(t *testing.T) {
	boom := &render.SurfaceError{Op: "fill", Err: errors.New("boom")}
	_, err := Generate(failingPainter{err: boom}, 8, 2, 0, nil)
	var se *render.SurfaceError
	if !errors.As(err, &se) || se.Op != "fill" {
		t.Errorf("Generate() error = %v, want the painter's SurfaceError", err)
	}
}

func TestSampleValueNeverReachesOne(t *testing.T) {
	for _, frames := range []int{1, 2, 101} {
		if got, want := SampleValue(frames-1, frames), float64(frames-1)/float64(frames); got != want || got >= 1 {
			t.Errorf("SampleValue(%d, %d) = %v, want %v", frames-1, frames, got, want)
		}
	}
}

func TestFrameBounds(t *testing.T) {
	a := &Atlas{FrameWidth: 10, FrameHeight: 10, FrameCount: 3, Image: image.NewRGBA(image.Rect(0, 0, 30, 10))}
	got := []image.Rectangle{a.Frame(-1), a.Frame(1), a.Frame(9)}
	want := []image.Rectangle{image.Rect(0, 0, 10, 10), image.Rect(10, 0, 20, 10), image.Rect(20, 0, 30, 10)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Frame() mismatch (-want +got):\n%s", diff)
	}
}

func TestFileName(t *testing.T) {
	if got := FileName("knob", 150, 101); got != "knob_150x101.png" {
		t.Errorf("FileName() = %q", got)
	}
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.png")
	writePNG(t, good, 60, 20)
	uneven := filepath.Join(dir, "uneven.png")
	writePNG(t, uneven, 30, 20)
	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	a, err := Load(good)
	if err != nil {
		t.Fatalf("Load(good) error = %v", err)
	}
	if a.FrameCount != 3 || a.FrameWidth != 20 || a.FrameHeight != 20 {
		t.Errorf("Load(good) = %d frames of %dx%d, want 3 of 20x20", a.FrameCount, a.FrameWidth, a.FrameHeight)
	}

	tests := []struct {
		name string
		path string
		want error
	}{
		{name: "missing", path: filepath.Join(dir, "missing.png"), want: ErrFileNotFound},
		{name: "uneven", path: uneven, want: ErrMalformedAtlas},
		{name: "garbage", path: garbage, want: ErrMalformedAtlas},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.path); !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFromImageRejectsEmpty(t *testing.T) {
	if _, err := FromImage(image.NewRGBA(image.Rect(0, 0, 0, 0))); !errors.Is(err, ErrMalformedAtlas) {
		t.Errorf("FromImage(empty) error = %v, want ErrMalformedAtlas", err)
	}
}

func TestSaveAndLink(t *testing.T) {
	dir := t.TempDir()
	a, err := Generate(shrinkingBar{}, 16, 3, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	name := FileName("knob", 16, 3)
	if err := Save(a, filepath.Join(dir, name)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	link := filepath.Join(dir, "knob.png")
	writePNG(t, link, 5, 5) // stale file the link must replace
	if err := Link(name, link); err != nil {
		t.Fatalf("Link() error = %v", err)
	}

	loaded, err := Load(link)
	if err != nil {
		t.Fatalf("Load(link) error = %v", err)
	}
	if loaded.FrameCount != 3 || loaded.FrameHeight != 16 {
		t.Errorf("linked atlas = %d frames of height %d, want 3 of 16", loaded.FrameCount, loaded.FrameHeight)
	}
}
