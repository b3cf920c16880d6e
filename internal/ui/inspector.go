package ui

import "fmt"

// Inspector is a right-side panel that shows the contained ball's state:
// position, velocity, speed, and distance from the containment boundary
// center. It owns its nodes and updates their text when AppendNodes is called
// with visible true.
type Inspector struct {
	panel    *Node
	title    *Node
	position *Node
	velocity *Node
	speed    *Node
	bounds   *Node
}

// NewInspector creates an Inspector with nodes styled by the engine's CSS
// (.inspector, .inspector-title, etc.).
func NewInspector() *Inspector {
	return &Inspector{
		panel:    NewPanel("inspector"),
		title:    NewLabel("inspector-title", "Ball"),
		position: NewLabel("inspector-position", ""),
		velocity: NewLabel("inspector-velocity", ""),
		speed:    NewLabel("inspector-speed", ""),
		bounds:   NewLabel("inspector-bounds", ""),
	}
}

// BallInfo holds the data shown in the inspector. Pass it from the loop; ui
// does not depend on physics or containment.
type BallInfo struct {
	Position    [3]float32
	Velocity    [3]float32
	Speed       float32
	Distance    float32 // from boundary center
	MaxDistance float32 // permitted distance before correction
}

// AppendNodes appends inspector nodes to dst when visible is true, after
// updating labels from info. When visible is false, dst is returned
// unchanged. Call every frame so visibility and content stay in sync.
func (in *Inspector) AppendNodes(dst []*Node, visible bool, info BallInfo) []*Node {
	if !visible {
		return dst
	}
	in.position.Text = fmt.Sprintf("Position: %.2f, %.2f, %.2f", info.Position[0], info.Position[1], info.Position[2])
	in.velocity.Text = fmt.Sprintf("Velocity: %.2f, %.2f, %.2f", info.Velocity[0], info.Velocity[1], info.Velocity[2])
	in.speed.Text = fmt.Sprintf("Speed: %.2f", info.Speed)
	in.bounds.Text = fmt.Sprintf("Bounds: %.2f / %.2f", info.Distance, info.MaxDistance)
	return append(dst, in.panel, in.title, in.position, in.velocity, in.speed, in.bounds)
}
