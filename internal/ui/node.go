package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node types understood by the engine. Panels are colored rectangles; labels
// additionally draw their Text.
const (
	NodePanel = "panel"
	NodeLabel = "label"
)

// Node is a single UI element. Class and ID select CSS rules (.class, #id);
// Bounds is filled in from the resolved style before drawing.
type Node struct {
	Type   string
	Class  string
	ID     string
	Bounds rl.Rectangle
	Text   string // drawn for label nodes
}

// NewPanel returns a panel node styled by the given class.
func NewPanel(class string) *Node {
	return &Node{Type: NodePanel, Class: class}
}

// NewLabel returns a label node styled by the given class, showing text.
// Text may be updated in place between frames; only class/id changes require
// rebuilding the engine's node list.
func NewLabel(class, text string) *Node {
	return &Node{Type: NodeLabel, Class: class, Text: text}
}
