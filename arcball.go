package arcball

import (
	"math"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// ROTATION_RATE is the momentum tick interval in seconds; release
	// velocities are treated as units-per-tick at this reference rate.
	ROTATION_RATE = 1.0 / 30.0
	// ROTATION_DECELERATION_RATE is the fraction of the starting momentum
	// angle removed on every tick, so an animation always lasts 1/rate ticks.
	ROTATION_DECELERATION_RATE = 1.0 / 60.0

	// VELOCITY_THRESHOLD is the minimum release speed that starts momentum.
	VELOCITY_THRESHOLD = 0.1
	// MOMENTUM_ANGLE_THRESHOLD is the minimum projected momentum angle (rad)
	// worth animating.
	MOMENTUM_ANGLE_THRESHOLD = 0.001
	// AXIS_EPSILON is the cross-product length below which two ball vectors
	// are considered parallel and the sample is dropped.
	AXIS_EPSILON = 1e-4
)

// Orientable is the external target the controller writes into. The
// orientation must be a unit quaternion; the controller reads it once at
// construction and is the single writer afterwards.
type Orientable interface {
	Orientation() mgl64.Quat
	SetOrientation(rotation mgl64.Quat)
}

// Controller implements arcball (virtual trackball) rotation of an Orientable
// target: pointer drags map to great-circle rotations on a virtual sphere,
// and released drags continue as a decaying momentum animation.
//
// All methods are safe for concurrent use; the internal momentum timer runs
// on its own goroutine.
type Controller struct {
	Events Events

	mu       sync.Mutex
	target   Orientable
	onRender func()

	viewport Viewport
	ball     Ball

	// current is the orientation applied to the target right now; base is
	// the drag-start snapshot used as the left-composition operand for the
	// next incremental rotation.
	current mgl64.Quat
	base    mgl64.Quat

	dragging bool
	startVec mgl64.Vec3
	lastAxis mgl64.Vec3

	momentum *momentumState
	anim     *orientationAnim

	tickInterval time.Duration
	manualTick   bool
	stopTick     chan struct{}
}

type Option func(*Controller)

// WithRenderTrigger sets a callback invoked after every accepted update that
// changed the visible orientation. It is called synchronously and must not
// call back into the controller.
func WithRenderTrigger(fn func()) Option {
	return func(c *Controller) {
		c.onRender = fn
	}
}

// WithViewport sets the initial viewport bounds, as Reshape would.
func WithViewport(width, height float64) Option {
	return func(c *Controller) {
		c.viewport = Viewport{Width: width, Height: height}
	}
}

// WithBall overrides the default unit ball geometry.
func WithBall(ball Ball) Option {
	return func(c *Controller) {
		c.ball = ball
	}
}

// WithTickInterval overrides the momentum/animation tick interval.
func WithTickInterval(interval time.Duration) Option {
	return func(c *Controller) {
		c.tickInterval = interval
	}
}

// WithManualTick disables the internal timer; the host drives momentum and
// animations by calling Tick, typically from its own update loop.
func WithManualTick() Option {
	return func(c *Controller) {
		c.manualTick = true
	}
}

// New creates a controller for the given target. The target's orientation is
// read once here and becomes both the current orientation and the drag-start
// snapshot.
func New(target Orientable, options ...Option) *Controller {
	c := &Controller{
		Events:       NewEvents(),
		target:       target,
		viewport:     Viewport{Width: 1, Height: 1},
		ball:         NewBall(),
		tickInterval: time.Second / 30,
	}
	c.current = target.Orientation().Normalize()
	c.base = c.current

	for _, option := range options {
		option(c)
	}

	return c
}

// Reshape replaces the viewport bounds. Safe to call mid-drag: only the
// mapping of future samples changes.
func (c *Controller) Reshape(width, height float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.viewport = Viewport{Width: width, Height: height}
}

// BeginDrag starts an interactive drag at the given screen point, cancelling
// any in-flight momentum or animation.
func (c *Controller) BeginDrag(p mgl64.Vec2) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelAutonomousLocked()
	c.dragging = true
	c.startVec = c.ball.ProjectXY(c.viewport, p)
	c.Events.emit(DragBeginEvent{Start: c.startVec})
}

// UpdateDrag rotates the target to follow the pointer. The rotation is always
// recomputed from the drag's start vector and start orientation, so samples
// never accumulate error. Degenerate samples (parallel or anti-parallel to
// the start vector) are dropped.
func (c *Controller) UpdateDrag(p mgl64.Vec2) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.dragging {
		return
	}

	end := c.ball.ProjectXY(c.viewport, p)
	angle := math.Acos(mgl64.Clamp(c.startVec.Dot(end), -1, 1))

	cross := c.startVec.Cross(end)
	if cross.Len() < AXIS_EPSILON {
		return
	}
	c.lastAxis = cross.Normalize()

	// The incremental rotation composes to the left, expressing it in the
	// pre-drag frame rather than the object's local frame.
	c.current = mgl64.QuatRotate(angle, c.lastAxis).Mul(c.base)
	c.applyLocked()
}

// EndDrag commits the drag and, if the release velocity warrants it, starts
// the momentum animation. Velocity and location are in viewport pixel space;
// the velocity is interpreted as units per tick at the reference rate.
func (c *Controller) EndDrag(velocity, location mgl64.Vec2) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.dragging {
		return
	}
	c.dragging = false
	c.base = c.current
	c.Events.emit(DragEndEvent{Orientation: c.current})

	if velocity.Len() < VELOCITY_THRESHOLD {
		return
	}
	// The momentum axis is reused from the last accepted drag sample; with
	// no accepted sample there is nothing to spin around.
	if c.lastAxis.Len() < AXIS_EPSILON {
		return
	}

	projected := location.Add(velocity.Mul(ROTATION_RATE))
	from := c.ball.ProjectXY(c.viewport, location)
	to := c.ball.ProjectXY(c.viewport, projected)
	angle := math.Acos(mgl64.Clamp(from.Dot(to), -1, 1))
	if angle < MOMENTUM_ANGLE_THRESHOLD {
		return
	}

	c.momentum = &momentumState{
		axis:       c.lastAxis,
		startAngle: angle,
		remaining:  angle,
	}
	c.Events.emit(MomentumStartEvent{Axis: c.lastAxis, Angle: angle})
	c.startTickerLocked()
}

// StopDrag cancels any drag, momentum, or animation outright. Idempotent.
func (c *Controller) StopDrag() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelAutonomousLocked()
	c.dragging = false
	c.startVec = mgl64.Vec3{}
}

// Dragging reports whether the controller is currently mutating the target,
// interactively (an active drag) or autonomously (momentum or an animation).
func (c *Controller) Dragging() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.dragging || c.momentum != nil || c.anim != nil
}

// applyLocked writes the current orientation to the target and notifies.
func (c *Controller) applyLocked() {
	c.target.SetOrientation(c.current)
	c.Events.emit(OrientationChangedEvent{Orientation: c.current})
	if c.onRender != nil {
		c.onRender()
	}
}

// cancelAutonomousLocked stops the tick timer and discards momentum and
// animation state. Cancellation is immediate, no partial-tick interpolation.
func (c *Controller) cancelAutonomousLocked() {
	if c.stopTick != nil {
		close(c.stopTick)
		c.stopTick = nil
	}
	if c.momentum != nil {
		c.momentum = nil
		c.Events.emit(MomentumEndEvent{Orientation: c.current})
	}
	c.anim = nil
}
