package arcball

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RotationEuler reads the target's orientation back as XYZ-ordered Euler
// angles in degrees. Purely a convenience projection; controller state is
// untouched. The y = ±90° boundary is gimbal-degenerate and does not
// round-trip exactly.
func (c *Controller) RotationEuler() (x, y, z float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m := c.target.Orientation().Mat4()
	ry := math.Asin(mgl64.Clamp(m.At(0, 2), -1, 1))
	rx := math.Atan2(-m.At(1, 2), m.At(2, 2))
	rz := math.Atan2(-m.At(0, 1), m.At(0, 0))

	return mgl64.RadToDeg(rx), mgl64.RadToDeg(ry), mgl64.RadToDeg(rz)
}

// SetRotationEuler resets the orientation absolutely from XYZ-ordered Euler
// angles in degrees, making it both the current orientation and the drag
// baseline. This is a reset, not a composition.
func (c *Controller) SetRotationEuler(x, y, z float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = mgl64.QuatRotate(mgl64.DegToRad(x), axisX).
		Mul(mgl64.QuatRotate(mgl64.DegToRad(y), axisY)).
		Mul(mgl64.QuatRotate(mgl64.DegToRad(z), axisZ))
	c.base = c.current
	c.applyLocked()
}
