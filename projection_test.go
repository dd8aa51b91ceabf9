package arcball

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// =============================================================================
// Viewport Normalization Tests
// =============================================================================

func TestViewportNormalize(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}

	tests := []struct {
		name  string
		point mgl64.Vec2
		want  mgl64.Vec2
	}{
		{
			name:  "center maps to origin",
			point: mgl64.Vec2{400, 300},
			want:  mgl64.Vec2{0, 0},
		},
		{
			name:  "right edge maps to +1 on the larger-dimension scale",
			point: mgl64.Vec2{800, 300},
			want:  mgl64.Vec2{1, 0},
		},
		{
			name:  "top edge flips to positive y",
			point: mgl64.Vec2{400, 0},
			want:  mgl64.Vec2{0, 0.75},
		},
		{
			name:  "bottom edge flips to negative y",
			point: mgl64.Vec2{400, 600},
			want:  mgl64.Vec2{0, -0.75},
		},
		{
			name:  "top-left corner",
			point: mgl64.Vec2{0, 0},
			want:  mgl64.Vec2{-1, 0.75},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := vp.Normalize(tt.point)
			if !almostEqual(got.X(), tt.want.X(), 1e-12) || !almostEqual(got.Y(), tt.want.Y(), 1e-12) {
				t.Errorf("Normalize(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestViewportNormalize_PortraitUsesHeightScale(t *testing.T) {
	vp := Viewport{Width: 600, Height: 800}

	got := vp.Normalize(mgl64.Vec2{300, 0})
	if !almostEqual(got.X(), 0, 1e-12) || !almostEqual(got.Y(), 1, 1e-12) {
		t.Errorf("Normalize(center-top) = %v, want {0 1}", got)
	}
}

// =============================================================================
// Ball Projection Tests
// =============================================================================

func TestBallProjectXY_UnitLength(t *testing.T) {
	ball := NewBall()
	vp := Viewport{Width: 800, Height: 600}

	// Sweep the whole viewport including corners, whose normalized radius
	// exceeds 1 and exercises the silhouette rescale.
	for x := 0.0; x <= 800; x += 50 {
		for y := 0.0; y <= 600; y += 50 {
			v := ball.ProjectXY(vp, mgl64.Vec2{x, y})
			if !almostEqual(v.Len(), 1.0, 1e-6) {
				t.Errorf("ProjectXY(%v, %v).Len() = %v, want 1", x, y, v.Len())
			}

			alt := ball.ProjectXZ(vp, mgl64.Vec2{x, y})
			if !almostEqual(alt.Len(), 1.0, 1e-6) {
				t.Errorf("ProjectXZ(%v, %v).Len() = %v, want 1", x, y, alt.Len())
			}
		}
	}
}

func TestBallProjectXY_CenterIsSpherePole(t *testing.T) {
	ball := NewBall()
	vp := Viewport{Width: 800, Height: 600}

	v := ball.ProjectXY(vp, mgl64.Vec2{400, 300})
	if !vec3AlmostEqual(v, mgl64.Vec3{0, 0, 1}, 1e-12) {
		t.Errorf("ProjectXY(center) = %v, want {0 0 1}", v)
	}
}

func TestBallProjectXY_OutsideSilhouetteOnEquator(t *testing.T) {
	ball := NewBall()
	vp := Viewport{Width: 800, Height: 600}

	// Top-left corner: normalized (-1, 0.75), radius > 1.
	v := ball.ProjectXY(vp, mgl64.Vec2{0, 0})

	if !almostEqual(v.Z(), 0, 1e-12) {
		t.Errorf("off-silhouette point has z = %v, want 0", v.Z())
	}
	if !almostEqual(v.X()*v.X()+v.Y()*v.Y(), 1.0, 1e-12) {
		t.Errorf("off-silhouette point not rescaled to the equator: %v", v)
	}
	if v.X() >= 0 || v.Y() <= 0 {
		t.Errorf("off-silhouette point lost its direction: %v", v)
	}
}

func TestBallProjectXZ_SwapsReferencePlane(t *testing.T) {
	ball := NewBall()
	vp := Viewport{Width: 800, Height: 600}

	tests := []struct {
		name  string
		point mgl64.Vec2
	}{
		{"center", mgl64.Vec2{400, 300}},
		{"inside silhouette", mgl64.Vec2{550, 250}},
		{"outside silhouette", mgl64.Vec2{0, 600}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xy := ball.ProjectXY(vp, tt.point)
			xz := ball.ProjectXZ(vp, tt.point)

			want := mgl64.Vec3{xy.X(), -xy.Z(), xy.Y()}
			if !vec3AlmostEqual(xz, want, 1e-12) {
				t.Errorf("ProjectXZ(%v) = %v, want %v (XY variant was %v)", tt.point, xz, want, xy)
			}
		})
	}
}

func TestBall_CenterAndRadius(t *testing.T) {
	ball := Ball{Center: mgl64.Vec2{0.5, 0}, Radius: 0.5}
	vp := Viewport{Width: 800, Height: 800}

	// Normalized (0.5, 0) sits exactly on the shifted ball's center.
	v := ball.ProjectXY(vp, mgl64.Vec2{600, 400})
	if !vec3AlmostEqual(v, mgl64.Vec3{0, 0, 1}, 1e-12) {
		t.Errorf("ProjectXY(ball center) = %v, want {0 0 1}", v)
	}

	// Normalized (1, 0) is one radius to the right: the equator.
	v = ball.ProjectXY(vp, mgl64.Vec2{800, 400})
	if !vec3AlmostEqual(v, mgl64.Vec3{1, 0, 0}, 1e-12) {
		t.Errorf("ProjectXY(ball edge) = %v, want {1 0 0}", v)
	}
}
