package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeWindow struct {
	hidden   bool
	enables  int
	disables int
}

func (f *fakeWindow) EnableCursor()        { f.hidden = false; f.enables++ }
func (f *fakeWindow) DisableCursor()       { f.hidden = true; f.disables++ }
func (f *fakeWindow) IsCursorHidden() bool { return f.hidden }

func TestCaptureToggle(t *testing.T) {
	win := &fakeWindow{}
	c := NewCaptureController(win)

	assert.False(t, c.Captured())

	c.Update(true)
	assert.True(t, c.Captured())
	assert.Equal(t, 1, win.disables)

	c.Update(true)
	assert.False(t, c.Captured())
	assert.Equal(t, 1, win.enables)
}

func TestCaptureNoEdgeNoChange(t *testing.T) {
	win := &fakeWindow{}
	c := NewCaptureController(win)

	c.Update(true)
	for i := 0; i < 50; i++ {
		c.Update(false)
	}

	assert.True(t, c.Captured())
	assert.Equal(t, 1, win.disables)
	assert.Equal(t, 0, win.enables)
}
