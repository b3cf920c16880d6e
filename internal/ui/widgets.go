package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	widgetFontSize  = 20
	checkboxSize    = 18
	sliderHeight    = 16
	sliderKnobWidth = 10
)

var (
	// Reused every frame to avoid per-frame color allocations.
	widgetTrackColor  = rl.NewColor(60, 60, 60, 255)
	widgetFillColor   = rl.NewColor(90, 120, 180, 255)
	widgetKnobColor   = rl.NewColor(200, 200, 200, 255)
	widgetBorderColor = rl.NewColor(110, 110, 110, 255)
	widgetCheckColor  = rl.NewColor(90, 120, 180, 255)
)

// Widgets draws immediate-mode controls (checkbox, sliders) and tracks which
// one is being dragged. One instance is shared by all panels; ids must be
// unique across a frame. When Enabled is false, widgets draw but ignore the
// mouse (used while the cursor is captured for mouse-look).
type Widgets struct {
	Enabled bool
	active  string // id of the slider being dragged, "" when none
}

// NewWidgets returns a widget state with input enabled.
func NewWidgets() *Widgets {
	return &Widgets{Enabled: true}
}

// Begin resets per-frame state. Call once per frame before drawing widgets.
// Releasing the mouse button ends any drag.
func (w *Widgets) Begin() {
	if !rl.IsMouseButtonDown(rl.MouseLeftButton) {
		w.active = ""
	}
}

// Checkbox draws a labeled checkbox at (x, y) and returns the new value.
// Clicking the box or the label toggles it.
func (w *Widgets) Checkbox(x, y int32, label string, value bool) bool {
	box := rl.NewRectangle(float32(x), float32(y), checkboxSize, checkboxSize)
	rl.DrawRectangleLinesEx(box, 1, widgetBorderColor)
	if value {
		rl.DrawRectangle(x+4, y+4, checkboxSize-8, checkboxSize-8, widgetCheckColor)
	}
	rl.DrawText(label, x+checkboxSize+8, y, widgetFontSize, rl.White)

	if w.Enabled && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		hit := rl.NewRectangle(float32(x), float32(y), checkboxSize+12+float32(rl.MeasureText(label, widgetFontSize)), checkboxSize)
		if rl.CheckCollisionPointRec(rl.GetMousePosition(), hit) {
			return !value
		}
	}
	return value
}

// SliderFloat draws a labeled horizontal slider at (x, y) with the given
// track width and returns the new value, clamped to [min, max]. The current
// value is printed after the label. id must be unique across the frame.
func (w *Widgets) SliderFloat(id string, x, y, width int32, label string, value, min, max float32) float32 {
	return w.slider(id, x, y, width, fmt.Sprintf("%s: %.2f", label, value), value, min, max)
}

// SliderInt is SliderFloat for integer values.
func (w *Widgets) SliderInt(id string, x, y, width int32, label string, value, min, max int) int {
	out := w.slider(id, x, y, width, fmt.Sprintf("%s: %d", label, value), float32(value), float32(min), float32(max))
	n := int(out + 0.5)
	if n < min {
		n = min
	}
	if n > max {
		n = max
	}
	return n
}

// slider draws the shared track/fill/knob and handles dragging.
func (w *Widgets) slider(id string, x, y, width int32, text string, value, min, max float32) float32 {
	rl.DrawText(text, x, y, widgetFontSize, rl.White)
	trackY := y + widgetFontSize + 4
	track := rl.NewRectangle(float32(x), float32(trackY), float32(width), sliderHeight)
	rl.DrawRectangleRec(track, widgetTrackColor)

	if max <= min {
		return min
	}
	t := (value - min) / (max - min)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	fillW := t * float32(width)
	rl.DrawRectangle(x, trackY, int32(fillW), sliderHeight, widgetFillColor)
	knobX := float32(x) + fillW - sliderKnobWidth/2
	rl.DrawRectangle(int32(knobX), trackY-2, sliderKnobWidth, sliderHeight+4, widgetKnobColor)
	rl.DrawRectangleLinesEx(track, 1, widgetBorderColor)

	if !w.Enabled {
		return value
	}
	mouse := rl.GetMousePosition()
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && rl.CheckCollisionPointRec(mouse, track) {
		w.active = id
	}
	if w.active != id {
		return value
	}
	nt := (mouse.X - float32(x)) / float32(width)
	if nt < 0 {
		nt = 0
	}
	if nt > 1 {
		nt = 1
	}
	return min + nt*(max-min)
}
