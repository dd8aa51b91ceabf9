package arcball

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// momentumState is the post-release decay animation: a fixed axis and an
// angle pair where remaining shrinks by a constant amount per tick, derived
// once from the starting angle.
type momentumState struct {
	axis       mgl64.Vec3
	startAngle float64
	remaining  float64
}

// startTickerLocked launches the periodic tick goroutine, unless the host
// drives ticks manually. At most one ticker runs per controller: callers
// cancel any previous one first.
func (c *Controller) startTickerLocked() {
	if c.manualTick {
		return
	}

	stop := make(chan struct{})
	c.stopTick = stop
	go c.runTicker(stop)
}

func (c *Controller) runTicker(stop chan struct{}) {
	ticker := time.NewTicker(c.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if !c.Tick() {
				return
			}
		}
	}
}

// Tick advances an active momentum or orientation animation by one step and
// reports whether one is still running. Called automatically by the internal
// timer; hosts built with WithManualTick call it from their own loop, once
// per tick interval.
func (c *Controller) Tick() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.tickLocked()
}

func (c *Controller) tickLocked() bool {
	active := false
	switch {
	case c.momentum != nil:
		active = c.stepMomentumLocked()
	case c.anim != nil:
		active = c.stepAnimationLocked()
	}

	if !active {
		// The ticker goroutine exits on the false return.
		c.stopTick = nil
	}
	return active
}

// stepMomentumLocked applies one decay tick. Each tick rotates by the full
// remaining angle and then re-bases the snapshot, so the per-tick motion is
// genuinely incremental in the model's evolving frame and shrinks linearly
// until the remaining angle crosses below zero.
func (c *Controller) stepMomentumLocked() bool {
	m := c.momentum
	if m.remaining < 0 {
		c.momentum = nil
		c.Events.emit(MomentumEndEvent{Orientation: c.current})
		return false
	}

	m.remaining -= ROTATION_DECELERATION_RATE * m.startAngle

	c.current = mgl64.QuatRotate(m.remaining, m.axis).Mul(c.base)
	c.base = c.current
	c.applyLocked()

	return true
}
