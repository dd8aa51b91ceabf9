package actor

import "github.com/go-gl/mathgl/mgl64"

// Node is an orientable scene object a rotation controller can drive. The
// controller is the single writer of the orientation; other code may read it
// freely between updates.
type Node struct {
	Name      string
	Transform Transform
}

// NewNode creates a node with an identity transform
func NewNode(name string) *Node {
	return &Node{
		Name:      name,
		Transform: NewTransform(),
	}
}

// Orientation returns the node's current rotation
func (n *Node) Orientation() mgl64.Quat {
	return n.Transform.Rotation
}

// SetOrientation replaces the node's rotation
func (n *Node) SetOrientation(rotation mgl64.Quat) {
	n.Transform.SetRotation(rotation)
}
