package core

import "github.com/go-gl/mathgl/mgl64"

// Camera describes a perspective view of the scene. Zero values are not
// useful; construct with NewCamera.
type Camera struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3

	// Fov is the vertical field of view in radians.
	Fov    float64
	Aspect float64
	Near   float64
	Far    float64
}

// NewCamera returns a camera at position looking at target with a y-up
// orientation and sensible projection defaults (60° vertical fov, 16:9,
// 0.1–1000 m clip range).
func NewCamera(position, target mgl64.Vec3) Camera {
	return Camera{
		Position: position,
		Target:   target,
		Up:       mgl64.Vec3{0, 1, 0},
		Fov:      60.0 * DegToRad,
		Aspect:   16.0 / 9.0,
		Near:     0.1,
		Far:      1000.0,
	}
}

// ViewMatrix returns the world-to-camera transform.
func (c Camera) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, c.Up)
}

// ProjectionMatrix returns the perspective projection.
func (c Camera) ProjectionMatrix() mgl64.Mat4 {
	return mgl64.Perspective(c.Fov, c.Aspect, c.Near, c.Far)
}

// ViewProjection returns projection · view.
func (c Camera) ViewProjection() mgl64.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}
