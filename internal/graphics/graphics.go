// Package graphics owns the window and the main loop. Everything else in the
// repository is called from the update/draw closures passed to Run, so no
// other package decides frame pacing.
package graphics

import (
	"os"
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const defaultTitle = "ball sandbox"

// Options controls window creation. Zero value = fullscreen on the primary
// monitor with the default title.
type Options struct {
	Title    string
	Windowed bool
	Width    int32 // used only when Windowed; 0 = 1280
	Height   int32 // used only when Windowed; 0 = 720
}

// OptionsFromEnv reads window options from the environment:
// SANDBOX_TITLE, SANDBOX_WINDOWED (1/true), SANDBOX_WIDTH, SANDBOX_HEIGHT.
// Unset or invalid values keep the defaults.
func OptionsFromEnv() Options {
	var o Options
	o.Title = os.Getenv("SANDBOX_TITLE")
	if v := os.Getenv("SANDBOX_WINDOWED"); v == "1" || v == "true" {
		o.Windowed = true
	}
	if n, err := strconv.Atoi(os.Getenv("SANDBOX_WIDTH")); err == nil && n > 0 {
		o.Width = int32(n)
	}
	if n, err := strconv.Atoi(os.Getenv("SANDBOX_HEIGHT")); err == nil && n > 0 {
		o.Height = int32(n)
	}
	return o
}

// Run starts the window and main loop. Each frame it calls update (input and
// simulation), then clears the screen and calls draw (scene and UI overlays).
// ESC is used by the terminal, not to quit; close via the window button.
func Run(opts Options, update, draw func()) {
	title := opts.Title
	if title == "" {
		title = defaultTitle
	}
	if opts.Windowed {
		w, h := opts.Width, opts.Height
		if w == 0 {
			w = 1280
		}
		if h == 0 {
			h = 720
		}
		rl.InitWindow(w, h, title)
	} else {
		rl.SetConfigFlags(rl.FlagFullscreenMode)
		rl.InitWindow(int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0)), title)
	}
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}

// PresentMode switches frame pacing between vsync-on (target FPS = monitor
// refresh rate) and vsync-off (uncapped). It is a level check: ApplyVsync is
// called every frame with the current setting and only touches raylib when
// the value actually changed.
type PresentMode struct {
	applied bool
	vsync   bool
}

// ApplyVsync applies the vsync setting if it differs from the last applied
// value.
func (p *PresentMode) ApplyVsync(on bool) {
	if p.applied && p.vsync == on {
		return
	}
	if on {
		fps := rl.GetMonitorRefreshRate(rl.GetCurrentMonitor())
		if fps <= 0 {
			fps = 60
		}
		rl.SetTargetFPS(int32(fps))
	} else {
		rl.SetTargetFPS(0)
	}
	p.applied = true
	p.vsync = on
}

// RaylibWindow adapts raylib's cursor functions to input.Window.
type RaylibWindow struct{}

// EnableCursor shows and releases the cursor.
func (RaylibWindow) EnableCursor() { rl.EnableCursor() }

// DisableCursor hides the cursor and locks it to the window.
func (RaylibWindow) DisableCursor() { rl.DisableCursor() }

// IsCursorHidden reports whether the cursor is captured.
func (RaylibWindow) IsCursorHidden() bool { return rl.IsCursorHidden() }
