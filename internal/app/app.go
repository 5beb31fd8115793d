// Package app wires the viewer together: it builds the controller, presenter
// and event source for the configured backend and runs the event loop until
// the viewer closes.
package app

import (
	"context"
	"fmt"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/size"

	"github.com/rook-computer/knobkit/internal/atlas"
	"github.com/rook-computer/knobkit/internal/config"
	"github.com/rook-computer/knobkit/internal/control"
	"github.com/rook-computer/knobkit/internal/display"
	"github.com/rook-computer/knobkit/internal/input"
	"github.com/rook-computer/knobkit/internal/system"
	"github.com/rook-computer/knobkit/internal/viewport"
)

type App struct {
	Atlas  *atlas.Atlas
	Config config.Viewer
	Logger Logger
}

func New(a *atlas.Atlas, cfg config.Viewer) *App {
	return &App{Atlas: a, Config: cfg, Logger: NoopLogger{}}
}

// EventSource yields the next event, blocking until one is available.
// screen.Window and input.Queue satisfy it.
type EventSource interface {
	NextEvent() interface{}
}

// Run drives the configured backend until the viewer is closed or ctx is
// done. Only the framebuffer backend observes ctx; a window is closed by
// its window manager or Escape.
func (app *App) Run(ctx context.Context) error {
	ctrl, err := control.FromAtlas(app.Atlas.FrameWidth, app.Atlas.FrameHeight, app.Atlas.FrameCount)
	if err != nil {
		return err
	}
	app.Logger.Infof("app", "%s control, %d frames of %dx%d", ctrl.Kind, app.Atlas.FrameCount, app.Atlas.FrameWidth, app.Atlas.FrameHeight)

	var caption *display.Caption
	if app.Config.ShowValue {
		caption = display.NewCaption(display.CaptionSize, app.Logger)
	}

	switch app.Config.Backend {
	case config.BackendFramebuffer:
		return app.runFramebuffer(ctx, ctrl, caption)
	case config.BackendWindow:
		return app.runWindow(ctrl, caption)
	default:
		return fmt.Errorf("%w: backend %q", config.ErrInvalidConfig, app.Config.Backend)
	}
}

func (app *App) runWindow(ctrl *control.Controller, caption *display.Caption) error {
	var runErr error
	driver.Main(func(s screen.Screen) {
		fs := app.Atlas.FrameHeight
		w, err := s.NewWindow(&screen.NewWindowOptions{Width: fs, Height: fs, Title: app.Config.Title})
		if err != nil {
			runErr = &display.SurfaceError{Op: "open window", Err: err}
			return
		}
		defer w.Release()

		p := display.NewWindowPresenter(s, w, app.Atlas, caption)
		p.Logger = app.Logger
		defer p.Release()
		runErr = app.loop(w, app.newViewport(ctrl, p, w))
	})
	return runErr
}

func (app *App) runFramebuffer(ctx context.Context, ctrl *control.Controller, caption *display.Caption) error {
	p, err := display.OpenFramebuffer(app.Config.FBDev, app.Atlas, caption, app.Logger)
	if err != nil {
		return err
	}
	defer p.Release()

	console := &system.Console{Logger: app.Logger}
	console.Enter()
	defer console.Restore()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	q := input.NewQueue()
	go func() {
		<-ctx.Done()
		q.Close()
	}()
	input.StartKeyboard(ctx, app.Logger, q)

	// The device never resizes; one size event starts the first repaint.
	b := p.Bounds()
	q.Send(size.Event{WidthPx: b.Dx(), HeightPx: b.Dy()})
	return app.loop(q, app.newViewport(ctrl, p, q))
}

func (app *App) newViewport(ctrl *control.Controller, p viewport.Presenter, s viewport.Sender) *viewport.Viewport {
	vp := viewport.New(ctrl, app.Atlas.FrameCount, p, s)
	vp.ShowValue = app.Config.ShowValue
	vp.Logger = app.Logger
	return vp
}

// loop hands every event to vp until it asks to stop.
func (app *App) loop(src EventSource, vp *viewport.Viewport) error {
	for {
		keep, err := vp.Handle(src.NextEvent())
		if err != nil {
			app.Logger.Errorf("app", "fatal: %v", err)
			return err
		}
		if !keep {
			app.Logger.Infof("app", "viewer closed")
			return nil
		}
	}
}
