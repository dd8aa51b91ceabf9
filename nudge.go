package arcball

import "github.com/go-gl/mathgl/mgl64"

// Default nudge magnitudes, in degrees.
const (
	DEFAULT_YAW_STEP   = 10.0
	DEFAULT_PITCH_STEP = 5.0
	DEFAULT_ROLL_STEP  = 5.0
)

// Fixed world axes the nudges rotate about.
var (
	axisX = mgl64.Vec3{1, 0, 0}
	axisY = mgl64.Vec3{0, 1, 0}
	axisZ = mgl64.Vec3{0, 0, 1}
)

// RotateClockwise yaws the target clockwise about the world Y axis, as seen
// from above.
func (c *Controller) RotateClockwise(degrees float64) {
	c.nudge(axisY, -degrees)
}

// RotateCounterclockwise yaws the target counterclockwise about the world Y
// axis.
func (c *Controller) RotateCounterclockwise(degrees float64) {
	c.nudge(axisY, degrees)
}

// PitchUp tilts the target about the world X axis, top tipping away.
func (c *Controller) PitchUp(degrees float64) {
	c.nudge(axisX, -degrees)
}

// PitchDown tilts the target about the world X axis, top tipping forward.
func (c *Controller) PitchDown(degrees float64) {
	c.nudge(axisX, degrees)
}

// Roll rotates the target about the world Z axis.
func (c *Controller) Roll(degrees float64) {
	c.nudge(axisZ, degrees)
}

// nudge composes a fixed-axis rotation onto the current orientation and makes
// the result the new drag baseline. Nudges are orthogonal to drag and
// momentum state: one applied mid-momentum is folded into the next tick's
// base rather than cancelling the animation.
func (c *Controller) nudge(axis mgl64.Vec3, degrees float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = mgl64.QuatRotate(mgl64.DegToRad(degrees), axis).Mul(c.current)
	c.base = c.current
	c.applyLocked()
}
