package ui

import (
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const defaultFontSize = 20

// Engine draws a flat list of styled nodes in order (first node at the
// bottom). Styles are resolved once per stylesheet or node-list change and
// cached, so the per-frame draw does no matching or allocation; node Text may
// change freely between frames.
type Engine struct {
	sheet  *Stylesheet
	nodes  []*Node
	styles []ComputedStyle
	stale  bool
}

// New returns an engine with no stylesheet and no nodes.
func New() *Engine {
	return &Engine{}
}

// LoadCSS reads and parses the stylesheet at path, replacing the current one.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sheet, err := ParseCSS(string(data))
	if err != nil {
		return err
	}
	e.SetStylesheet(sheet)
	return nil
}

// SetStylesheet replaces the stylesheet (e.g. with the built-in default when
// no CSS file exists).
func (e *Engine) SetStylesheet(sheet *Stylesheet) {
	e.sheet = sheet
	e.stale = true
}

// SetNodes replaces the node list. Draw order is list order.
func (e *Engine) SetNodes(nodes []*Node) {
	e.nodes = nodes
	e.stale = true
}

// restyle resolves every node's style from the stylesheet and stores the
// pixel bounds on the node. Percentage positions stay in the cached style;
// they depend on the screen size and are applied at draw time.
func (e *Engine) restyle() {
	e.styles = make([]ComputedStyle, len(e.nodes))
	for i, n := range e.nodes {
		style := ResolveProps(e.matchProps(n))
		if style.Width > 0 {
			n.Bounds.Width = float32(style.Width)
		}
		if style.Height > 0 {
			n.Bounds.Height = float32(style.Height)
		}
		n.Bounds.X = float32(style.Left)
		n.Bounds.Y = float32(style.Top)
		e.styles[i] = style
	}
	e.stale = false
}

// matchProps merges the properties of every rule matching the node, in sheet
// order, so later rules win.
func (e *Engine) matchProps(n *Node) map[string]string {
	merged := make(map[string]string)
	if e.sheet == nil {
		return merged
	}
	for _, rule := range e.sheet.Rules {
		sel := rule.Selector
		if len(sel) < 2 {
			continue
		}
		name := sel[1:]
		if (sel[0] == '.' && n.Class == name) || (sel[0] == '#' && n.ID == name) {
			for k, v := range rule.Props {
				merged[k] = v
			}
		}
	}
	return merged
}

// Draw renders every node: background, border, then label text. Call in the
// 2D overlay pass.
func (e *Engine) Draw() {
	if e.stale {
		e.restyle()
	}
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())

	for i, n := range e.nodes {
		style := e.styles[i]
		w := int32(n.Bounds.Width)
		h := int32(n.Bounds.Height)
		x := int32(n.Bounds.X)
		y := int32(n.Bounds.Y)
		// Percentage positions anchor to the screen: 0% flush left/top,
		// 100% flush right/bottom.
		if style.LeftPct >= 0 {
			x = (screenW - w) * style.LeftPct / 100
		}
		if style.TopPct >= 0 {
			y = (screenH - h) * style.TopPct / 100
		}

		if style.Background.A > 0 {
			rl.DrawRectangle(x, y, w, h, style.Background)
		}
		if style.HasBorder && w > 0 && h > 0 {
			rl.DrawRectangleLines(x, y, w, h, style.Border)
		}
		if n.Type == NodeLabel && n.Text != "" {
			rl.DrawText(n.Text, x+style.Padding, y+style.Padding, defaultFontSize, style.Color)
		}
	}
}
