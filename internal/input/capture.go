// Package input samples keyboard and mouse state once per frame and owns the
// cursor capture toggle.
package input

// Window is the subset of window cursor control the capture controller
// needs. graphics.RaylibWindow implements it over raylib; tests use a fake.
type Window interface {
	// EnableCursor shows the cursor and releases it from the window.
	EnableCursor()
	// DisableCursor hides the cursor and locks it to the window, so motion
	// deltas keep arriving while the pointer stays put.
	DisableCursor()
	// IsCursorHidden reports whether the cursor is currently captured.
	IsCursorHidden() bool
}

// CaptureController flips the cursor between two states on a toggle edge:
// Released (visible, unconstrained, over the UI) and Captured (hidden, locked
// to the window, feeding look rotation). There are no intermediate states.
type CaptureController struct {
	win Window
}

// NewCaptureController returns a controller for the given window.
func NewCaptureController(win Window) *CaptureController {
	return &CaptureController{win: win}
}

// Captured reports whether the cursor is currently captured.
func (c *CaptureController) Captured() bool {
	return c.win.IsCursorHidden()
}

// Update processes one frame's toggle edge. toggled should be true only on
// the frame the toggle key went down; two toggles return the window to its
// original state.
func (c *CaptureController) Update(toggled bool) {
	if !toggled {
		return
	}
	if c.win.IsCursorHidden() {
		c.win.EnableCursor()
	} else {
		c.win.DisableCursor()
	}
}
