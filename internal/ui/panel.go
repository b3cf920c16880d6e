package ui

import (
	"game-sandbox/internal/settings"
)

// defaultPanelCSS styles the settings panels. A project can override it by
// placing assets/ui.css next to the binary (see NewSettingsPanel).
const defaultPanelCSS = `
.settings-panel, .ground-panel, .inspector {
	background: #202020e6;
	border: #505050;
}
.settings-panel { left: 12px; top: 12px; width: 260px; height: 210px; }
.ground-panel { left: 12px; top: 236px; width: 260px; height: 240px; }
.inspector { left: 100%; top: 12px; width: 300px; height: 150px; }

.settings-title, .ground-title {
	color: #ffffff;
	left: 20px;
	padding: 0px;
}
.settings-title { top: 18px; }
.ground-title { top: 242px; }

.inspector-position, .inspector-velocity, .inspector-speed, .inspector-bounds {
	color: #c8c8c8;
	width: 284px;
	left: 100%;
}
.inspector-title { color: #ffffff; width: 284px; left: 100%; top: 18px; }
.inspector-position { top: 44px; }
.inspector-velocity { top: 70px; }
.inspector-speed { top: 96px; }
.inspector-bounds { top: 122px; }
`

// panelCSSPath is an optional stylesheet override, relative to the process
// working directory.
const panelCSSPath = "assets/ui.css"

// Layout constants for the widget column inside the panels. Widget rows are
// positioned relative to the panel tops defined in the CSS.
const (
	panelLeft    = 24
	panelWidth   = 236
	settingsTop  = 48
	groundTop    = 272
	rowHeight    = 46
	sliderTrackW = panelWidth - 24
)

// SettingsPanel is the immediate-mode settings surface: a vsync checkbox,
// ball-counter and sensitivity sliders, and the three ground-size sliders.
// Every write goes through the store's clamping setters, so the panel is the
// range boundary and downstream readers never re-check.
type SettingsPanel struct {
	engine    *Engine
	widgets   *Widgets
	store     *settings.Store
	inspector *Inspector
	visible   bool

	// Inspector visibility last applied to the node list; nodes are rebuilt
	// only when it flips, since text edits alone don't invalidate styles.
	inspectorShown bool
}

// NewSettingsPanel returns a panel bound to the store. Styling comes from
// assets/ui.css when present, otherwise the built-in stylesheet.
func NewSettingsPanel(store *settings.Store) *SettingsPanel {
	engine := New()
	if err := engine.LoadCSS(panelCSSPath); err != nil {
		sheet, _ := ParseCSS(defaultPanelCSS)
		engine.SetStylesheet(sheet)
	}
	p := &SettingsPanel{
		engine:    engine,
		widgets:   NewWidgets(),
		store:     store,
		inspector: NewInspector(),
		visible:   true,
	}
	p.rebuildNodes(false)
	return p
}

// rebuildNodes replaces the engine's node list: the two settings panels plus,
// when shown, the ball inspector.
func (p *SettingsPanel) rebuildNodes(showInspector bool) {
	nodes := []*Node{
		NewPanel("settings-panel"),
		NewLabel("settings-title", "Settings"),
		NewPanel("ground-panel"),
		NewLabel("ground-title", "Ground Size"),
	}
	nodes = p.inspector.AppendNodes(nodes, showInspector, BallInfo{})
	p.engine.SetNodes(nodes)
	p.inspectorShown = showInspector
}

// SetVisible shows or hides the panel.
func (p *SettingsPanel) SetVisible(visible bool) {
	p.visible = visible
}

// Draw renders the panels and their widgets and applies any edits to the
// store. interactive should be false while the cursor is captured: the panel
// still draws but ignores the mouse. showInspector adds the ball inspector
// with the given info. Call in the 2D overlay pass.
func (p *SettingsPanel) Draw(interactive, showInspector bool, info BallInfo) {
	if !p.visible {
		return
	}
	if showInspector != p.inspectorShown {
		p.rebuildNodes(showInspector)
	}
	if showInspector {
		// Refresh label text on the stable inspector nodes.
		p.inspector.AppendNodes(nil, true, info)
	}
	p.engine.Draw()
	p.widgets.Enabled = interactive
	p.widgets.Begin()

	snap := p.store.Snapshot()

	y := int32(settingsTop)
	if v := p.widgets.Checkbox(panelLeft, y, "Vsync", snap.Vsync); v != snap.Vsync {
		p.store.SetVsync(v)
	}
	y += rowHeight
	if n := p.widgets.SliderInt("ball-counter", panelLeft, y, sliderTrackW, "Ball Counter", snap.BallCounter,
		settings.MinBallCounter, settings.MaxBallCounter); n != snap.BallCounter {
		p.store.SetBallCounter(n)
	}
	y += rowHeight
	if v := p.widgets.SliderFloat("sensitivity", panelLeft, y, sliderTrackW, "Mouse Sensitivity", snap.Sensitivity,
		settings.MinSensitivity, settings.MaxSensitivity); v != snap.Sensitivity {
		p.store.SetSensitivity(v)
	}

	y = groundTop
	if v := p.widgets.SliderFloat("ground-x", panelLeft, y, sliderTrackW, "X-Axis", snap.GroundSize[0],
		settings.MinGroundXZ, settings.MaxGroundXZ); v != snap.GroundSize[0] {
		p.store.SetGroundX(v)
	}
	y += rowHeight
	if v := p.widgets.SliderFloat("ground-y", panelLeft, y, sliderTrackW, "Y-Axis", snap.GroundSize[1],
		settings.MinGroundY, settings.MaxGroundY); v != snap.GroundSize[1] {
		p.store.SetGroundY(v)
	}
	y += rowHeight
	if v := p.widgets.SliderFloat("ground-z", panelLeft, y, sliderTrackW, "Z-Axis", snap.GroundSize[2],
		settings.MinGroundXZ, settings.MaxGroundXZ); v != snap.GroundSize[2] {
		p.store.SetGroundZ(v)
	}
}
