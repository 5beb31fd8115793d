package system

// Logger is the component-tagged logger.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Console prepares the active virtual terminal for direct framebuffer
// output and puts it back afterwards. Failures are logged and otherwise
// ignored: a console that stays in text mode only means a stray cursor.
type Console struct {
	Logger Logger

	graphics bool
	hidden   bool
}

// Enter switches to graphics mode and hides the cursor.
func (c *Console) Enter() {
	c.graphics = c.step(SetGraphicsMode, "KD_GRAPHICS set", "KD_GRAPHICS failed")
	c.hidden = c.step(HideCursor, "cursor hidden", "hide cursor failed")
}

// Restore undoes whatever Enter managed to change.
func (c *Console) Restore() {
	if c.hidden {
		c.step(ShowCursor, "cursor shown", "show cursor failed")
		c.hidden = false
	}
	if c.graphics {
		c.step(RestoreTextMode, "KD_TEXT set", "KD_TEXT failed")
		c.graphics = false
	}
}

func (c *Console) step(f func() error, ok, failed string) bool {
	err := f()
	if c.Logger != nil {
		if err != nil {
			c.Logger.Errorf("tty", "%s: %v", failed, err)
		} else {
			c.Logger.Infof("tty", "%s", ok)
		}
	}
	return err == nil
}
