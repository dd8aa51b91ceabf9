package arcball

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// orientationAnim slerps the orientation from a fixed starting quaternion to
// a fixed target, with the interpolation parameter driven by a tween.
type orientationAnim struct {
	from  mgl64.Quat
	to    mgl64.Quat
	tween *gween.Tween
}

// AnimateTo rotates the target smoothly to an absolute orientation over the
// given duration in seconds, driven by the tick loop. Any drag, momentum, or
// previous animation is cancelled. A zero or negative duration snaps
// immediately.
func (c *Controller) AnimateTo(orientation mgl64.Quat, duration float32, easing ease.TweenFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelAutonomousLocked()
	c.dragging = false

	to := orientation.Normalize()
	if duration <= 0 {
		c.current = to
		c.base = to
		c.applyLocked()
		return
	}

	c.anim = &orientationAnim{
		from:  c.current,
		to:    to,
		tween: gween.New(0, 1, duration, easing),
	}
	c.startTickerLocked()
}

// ResetOrientation animates the target back to the identity orientation.
func (c *Controller) ResetOrientation(duration float32) {
	c.AnimateTo(mgl64.QuatIdent(), duration, ease.InOutQuad)
}

func (c *Controller) stepAnimationLocked() bool {
	value, finished := c.anim.tween.Update(float32(c.tickInterval.Seconds()))

	c.current = mgl64.QuatSlerp(c.anim.from, c.anim.to, float64(value))
	c.base = c.current
	c.applyLocked()

	if finished {
		c.anim = nil
		return false
	}
	return true
}
