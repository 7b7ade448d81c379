// Package camera provides the perspective camera and its orbit controls.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/headset-viewer/pkg/math"
)

// Camera is a perspective camera looking at a point.
type Camera struct {
	Position math.Vec3
	LookAt   math.Vec3
	Up       math.Vec3

	FovY   float32 // Vertical field of view, radians
	Aspect float32
	Near   float32
	Far    float32
}

// NewCamera creates a camera with the given vertical field of view in degrees.
func NewCamera(fovDegrees, aspect, near, far float32) *Camera {
	return &Camera{
		Up:     math.Vec3{Y: 1},
		FovY:   mgl32.DegToRad(fovDegrees),
		Aspect: aspect,
		Near:   near,
		Far:    far,
	}
}

// SetViewport updates the aspect ratio from a viewport size.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// ViewMatrix returns the view matrix for this camera.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position.Mgl(), c.LookAt.Mgl(), c.Up.Mgl())
}

// ProjectionMatrix returns the perspective projection matrix.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(c.FovY, c.Aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}

// spherical is an offset from the orbit target in spherical coordinates.
// Theta is measured in the XZ plane from +Z toward +X, phi from +Y.
type spherical struct {
	radius, theta, phi float64
}

func toSpherical(offset math.Vec3) spherical {
	r := float64(offset.Length())
	if r == 0 {
		return spherical{}
	}
	cosPhi := gomath.Max(-1, gomath.Min(1, float64(offset.Y)/r))
	return spherical{
		radius: r,
		theta:  gomath.Atan2(float64(offset.X), float64(offset.Z)),
		phi:    gomath.Acos(cosPhi),
	}
}

func (s spherical) offset() math.Vec3 {
	sinPhi := gomath.Sin(s.phi)
	return math.Vec3{
		X: float32(s.radius * sinPhi * gomath.Sin(s.theta)),
		Y: float32(s.radius * gomath.Cos(s.phi)),
		Z: float32(s.radius * sinPhi * gomath.Cos(s.theta)),
	}
}
