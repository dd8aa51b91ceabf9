package arcball

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Viewport holds the pixel dimensions of the view the controller maps input
// coordinates from. Width and Height must be positive; callers own validation.
type Viewport struct {
	Width  float64
	Height float64
}

// Normalize maps a screen-space point (origin top-left, y down) into [-1, 1]
// device space (origin center, y up). Both axes are scaled by the larger
// viewport dimension so the virtual sphere stays round on non-square views.
func (vp Viewport) Normalize(p mgl64.Vec2) mgl64.Vec2 {
	scale := math.Max(vp.Width, vp.Height) / 2.0

	return mgl64.Vec2{
		(p.X() - vp.Width/2.0) / scale,
		(vp.Height/2.0 - p.Y()) / scale,
	}
}

// Ball is the virtual sphere the controller projects pointer positions onto,
// expressed in normalized device space.
type Ball struct {
	Center mgl64.Vec2
	Radius float64
}

// NewBall creates the default unit ball centered on the viewport.
func NewBall() Ball {
	return Ball{Radius: 1.0}
}

// ProjectXY maps a screen point onto the front hemisphere over the viewing
// (XY) plane. Points inside the silhouette get a positive Z from the sphere
// equation; points outside are pulled back to the equator. The result is
// always unit length.
func (b Ball) ProjectXY(vp Viewport, p mgl64.Vec2) mgl64.Vec3 {
	x, y, depth, onSphere := b.project(vp, p)

	if !onSphere {
		return mgl64.Vec3{x, y, 0}
	}
	return mgl64.Vec3{x, y, depth}
}

// ProjectXZ is the alternate mapping over the XZ reference plane: the in-plane
// coordinates become X and Z, and the out-of-plane depth becomes a negative Y.
// Used by callers rotating about a horizontal reference plane instead of the
// viewing plane; drag and momentum only use ProjectXY.
func (b Ball) ProjectXZ(vp Viewport, p mgl64.Vec2) mgl64.Vec3 {
	x, y, depth, onSphere := b.project(vp, p)

	if !onSphere {
		return mgl64.Vec3{x, 0, y}
	}
	return mgl64.Vec3{x, -depth, y}
}

// project resolves the ball-local coordinates for a screen point. It returns
// the in-plane pair, the depth of the sphere surface above it, and whether the
// point fell inside the silhouette. Off-silhouette points are rescaled onto
// the equator so the pair alone is already unit length.
func (b Ball) project(vp Viewport, p mgl64.Vec2) (x, y, depth float64, onSphere bool) {
	n := vp.Normalize(p)
	x = (n.X() - b.Center.X()) / b.Radius
	y = (n.Y() - b.Center.Y()) / b.Radius

	m := x*x + y*y
	if m > 1.0 {
		s := 1.0 / math.Sqrt(m)
		return x * s, y * s, 0, false
	}

	return x, y, math.Sqrt(1.0 - m), true
}
