// Package viewport turns window events into control changes and repaints.
//
// A Viewport is driven by a single event loop. Input handlers only mutate the
// controller and ask for a redraw; the redraw itself happens when the loop
// delivers the private marker event back to Handle, so a burst of input
// produces one repaint of the latest state.
package viewport

import (
	"fmt"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/rook-computer/knobkit/internal/control"
	"github.com/rook-computer/knobkit/internal/display"
)

// State is the pointer interaction state.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Presenter shows a composed view. The display presenters satisfy it.
type Presenter interface {
	Present(v display.View) error
	Release()
}

// Sender queues an event for the loop. screen.Window and input.Queue satisfy
// it.
type Sender interface {
	Send(event interface{})
}

// Logger is the component-tagged logger.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// redraw is the marker event that asks the loop to repaint.
type redraw struct{}

type anchor struct {
	x, y  float32
	value float64
}

type Viewport struct {
	ctrl       *control.Controller
	frameCount int
	presenter  Presenter
	sender     Sender

	rescale display.Rescale
	state   State
	anchor  anchor
	pending bool

	// ShowValue adds the current value as a caption below the control.
	ShowValue bool
	Logger    Logger
}

// New returns an idle viewport for an atlas of frameCount frames. Until the
// first size event the window is assumed to be one frame square.
func New(ctrl *control.Controller, frameCount int, presenter Presenter, sender Sender) *Viewport {
	fs := ctrl.Alignment.Height
	return &Viewport{
		ctrl:       ctrl,
		frameCount: frameCount,
		presenter:  presenter,
		sender:     sender,
		rescale:    display.NewRescale(fs, fs, fs),
	}
}

func (v *Viewport) State() State              { return v.state }
func (v *Viewport) Rescale() display.Rescale { return v.rescale }

// Handle processes one event. It reports false once the viewer should stop;
// a non-nil error is fatal.
func (v *Viewport) Handle(e interface{}) (bool, error) {
	switch e := e.(type) {
	case mouse.Event:
		v.handleMouse(e)

	case key.Event:
		if e.Direction == key.DirRelease {
			break
		}
		switch e.Code {
		case key.CodeUpArrow, key.CodeRightArrow:
			v.step(1)
		case key.CodeDownArrow, key.CodeLeftArrow:
			v.step(-1)
		case key.CodeEscape:
			v.close("escape")
			return false, nil
		}

	case size.Event:
		v.rescale = display.NewRescale(v.ctrl.Alignment.Height, e.WidthPx, e.HeightPx)
		if v.Logger != nil {
			v.Logger.Infof("viewport", "resized to %dx%d, scale %.3f", e.WidthPx, e.HeightPx, v.rescale.Uniform)
		}
		v.requestRedraw()

	case paint.Event:
		v.requestRedraw()

	case redraw:
		v.pending = false
		if err := v.presenter.Present(v.view()); err != nil {
			return false, err
		}

	case lifecycle.Event:
		if e.To == lifecycle.StageDead {
			v.close("window closed")
			return false, nil
		}

	case error:
		if v.Logger != nil {
			v.Logger.Errorf("viewport", "event error: %v", e)
		}
	}
	return true, nil
}

func (v *Viewport) handleMouse(e mouse.Event) {
	switch {
	case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress:
		v.anchor = anchor{x: e.X, y: e.Y, value: v.ctrl.Adjustment.Value}
		v.state = Dragging
		v.ctrl.Toggle()
		v.requestRedraw()

	case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirRelease:
		v.state = Idle

	case e.Button == mouse.ButtonWheelUp && e.Direction != mouse.DirRelease:
		v.step(1)

	case e.Button == mouse.ButtonWheelDown && e.Direction != mouse.DirRelease:
		v.step(-1)

	case e.Direction == mouse.DirNone && v.state == Dragging:
		v.ctrl.ApplyMotionDelta(v.anchor.value, float64(v.anchor.y-e.Y))
		v.requestRedraw()
	}
}

func (v *Viewport) step(direction int) {
	v.ctrl.ApplyStep(direction)
	v.requestRedraw()
}

func (v *Viewport) requestRedraw() {
	if v.pending {
		return
	}
	v.pending = true
	v.sender.Send(redraw{})
}

func (v *Viewport) view() display.View {
	view := display.View{
		Frame:   v.ctrl.FrameIndex(v.frameCount),
		Rescale: v.rescale,
	}
	if v.ShowValue {
		view.Caption = fmt.Sprintf("%.2f", v.ctrl.Adjustment.Value)
	}
	return view
}

func (v *Viewport) close(reason string) {
	if v.Logger != nil {
		v.Logger.Infof("viewport", "closing: %s", reason)
	}
	v.presenter.Release()
}
