// Package actor holds the rigid-body entity and its collision shapes.
package actor

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/project-lambda/lambda/core"
)

// MaxAngularSpeed caps each angular-velocity component (rad/s) after an
// integration step. A stability guard, not a physical limit.
const MaxAngularSpeed = 100.0

// Status is the result of a rigid-body mutator. Any value other than
// StatusOK means the input was rejected and the body was left unchanged.
type Status int

const (
	StatusOK Status = iota
	StatusInvalidMass
	StatusInvalidPosition
	StatusInvalidVelocity
	StatusInvalidInertia
	StatusInvalidOrientation
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusInvalidMass:
		return "invalid mass"
	case StatusInvalidPosition:
		return "invalid position"
	case StatusInvalidVelocity:
		return "invalid velocity"
	case StatusInvalidInertia:
		return "invalid inertia"
	case StatusInvalidOrientation:
		return "invalid orientation"
	default:
		return "unknown status"
	}
}

// RigidBody is the simulated entity: mass, inertia, pose and motion state
// plus force/torque accumulators. All stored scalars are finite; every
// mutator validates its input and rejects without mutating on failure.
//
// Bodies are created and owned by the caller; registering one with a
// world does not transfer ownership.
type RigidBody struct {
	mass    float64
	invMass float64

	// local-space inertia tensor and its inverse
	inertia    mgl64.Mat3
	invInertia mgl64.Mat3

	// world orientation; columns stay orthonormal up to drift tolerance
	orientation mgl64.Mat3

	position        mgl64.Vec3
	velocity        mgl64.Vec3
	angularVelocity mgl64.Vec3

	force  mgl64.Vec3
	torque mgl64.Vec3
}

// NewRigidBody returns a static body at the origin with identity inertia
// and orientation. Call SetMass to make it dynamic.
func NewRigidBody() *RigidBody {
	return &RigidBody{
		inertia:     mgl64.Ident3(),
		invInertia:  mgl64.Ident3(),
		orientation: mgl64.Ident3(),
	}
}

// Mass returns the body's mass in kilograms. Zero for a static body.
func (rb *RigidBody) Mass() float64 {
	return rb.mass
}

// SetMass sets the mass and derives the inverse mass. The mass must be
// positive and finite.
func (rb *RigidBody) SetMass(mass float64) Status {
	if !core.Finite(mass) || mass <= 0 {
		return StatusInvalidMass
	}

	rb.mass = mass
	rb.invMass = 1.0 / mass
	return StatusOK
}

// InverseMass returns 1/mass, or 0 for a static body.
func (rb *RigidBody) InverseMass() float64 {
	return rb.invMass
}

// IsStatic reports whether the body has zero inverse mass. Static bodies
// are skipped by global forces and integration but still participate in
// collision queries.
func (rb *RigidBody) IsStatic() bool {
	return rb.invMass == 0
}

// Position returns the world position (m).
func (rb *RigidBody) Position() mgl64.Vec3 {
	return rb.position
}

// SetPosition sets the world position. All components must be finite.
func (rb *RigidBody) SetPosition(position mgl64.Vec3) Status {
	if !core.FiniteVec3(position) {
		return StatusInvalidPosition
	}

	rb.position = position
	return StatusOK
}

// Velocity returns the linear velocity (m/s).
func (rb *RigidBody) Velocity() mgl64.Vec3 {
	return rb.velocity
}

// SetVelocity sets the linear velocity. All components must be finite.
func (rb *RigidBody) SetVelocity(velocity mgl64.Vec3) Status {
	if !core.FiniteVec3(velocity) {
		return StatusInvalidVelocity
	}

	rb.velocity = velocity
	return StatusOK
}

// AngularVelocity returns the angular velocity (rad/s).
func (rb *RigidBody) AngularVelocity() mgl64.Vec3 {
	return rb.angularVelocity
}

// SetAngularVelocity sets the angular velocity. All components must be
// finite.
func (rb *RigidBody) SetAngularVelocity(angularVelocity mgl64.Vec3) Status {
	if !core.FiniteVec3(angularVelocity) {
		return StatusInvalidVelocity
	}

	rb.angularVelocity = angularVelocity
	return StatusOK
}

// InertiaTensor returns the local-space inertia tensor.
func (rb *RigidBody) InertiaTensor() mgl64.Mat3 {
	return rb.inertia
}

// SetInertiaTensor sets the local-space inertia tensor and derives its
// inverse. A singular tensor stores the zero matrix as the inverse. All
// nine entries must be finite.
func (rb *RigidBody) SetInertiaTensor(inertia mgl64.Mat3) Status {
	if !core.FiniteMat3(inertia) {
		return StatusInvalidInertia
	}

	rb.inertia = inertia
	// Inv returns the zero matrix when the determinant is zero.
	rb.invInertia = inertia.Inv()
	return StatusOK
}

// InverseInertiaTensor returns the inverse of the local-space inertia
// tensor, or the zero matrix if the tensor was singular.
func (rb *RigidBody) InverseInertiaTensor() mgl64.Mat3 {
	return rb.invInertia
}

// OrientationMatrix returns the world orientation.
func (rb *RigidBody) OrientationMatrix() mgl64.Mat3 {
	return rb.orientation
}

// SetOrientationMatrix sets the world orientation. All nine entries must
// be finite. Orthonormality is not checked here; callers setting an
// arbitrary matrix should orthonormalize afterwards.
func (rb *RigidBody) SetOrientationMatrix(orientation mgl64.Mat3) Status {
	if !core.FiniteMat3(orientation) {
		return StatusInvalidOrientation
	}

	rb.orientation = orientation
	return StatusOK
}

// AccumulatedForce returns the force accumulator (N).
func (rb *RigidBody) AccumulatedForce() mgl64.Vec3 {
	return rb.force
}

// AccumulatedTorque returns the torque accumulator (N·m).
func (rb *RigidBody) AccumulatedTorque() mgl64.Vec3 {
	return rb.torque
}

// ApplyForce adds force into the accumulator for the next integration
// step. Non-finite input is silently ignored: force application sits on
// the hot path and must not fail.
func (rb *RigidBody) ApplyForce(force mgl64.Vec3) {
	if !core.FiniteVec3(force) {
		return
	}

	rb.force = rb.force.Add(force)
}

// ApplyTorque adds torque into the accumulator for the next integration
// step. Non-finite input is silently ignored.
func (rb *RigidBody) ApplyTorque(torque mgl64.Vec3) {
	if !core.FiniteVec3(torque) {
		return
	}

	rb.torque = rb.torque.Add(torque)
}

// ApplyImpulse changes the linear velocity by impulse/mass immediately.
// Non-finite input is silently ignored. No effect on a static body.
func (rb *RigidBody) ApplyImpulse(impulse mgl64.Vec3) {
	if !core.FiniteVec3(impulse) {
		return
	}

	rb.velocity = rb.velocity.Add(impulse.Mul(rb.invMass))
}

// ApplyImpulseAtPoint applies impulse at a point offset relPos from the
// center of mass: the linear change of ApplyImpulse plus the angular
// change I⁻¹·(r × J). Non-finite input is silently ignored.
func (rb *RigidBody) ApplyImpulseAtPoint(impulse, relPos mgl64.Vec3) {
	if !core.FiniteVec3(impulse) || !core.FiniteVec3(relPos) {
		return
	}

	rb.ApplyImpulse(impulse)

	angularImpulse := relPos.Cross(impulse)
	rb.angularVelocity = rb.angularVelocity.Add(rb.invInertia.Mul3x1(angularImpulse))
}

// ClearAccumulators zeroes the force and torque accumulators.
func (rb *RigidBody) ClearAccumulators() {
	rb.force = mgl64.Vec3{}
	rb.torque = mgl64.Vec3{}
}

// Integrate advances the body by dt seconds with semi-implicit Euler:
// velocity is updated from the accumulated forces first, then position is
// advanced with the updated velocity. Angular velocity is clamped
// componentwise to ±MaxAngularSpeed, the orientation is advanced through
// the exponential map and projected back onto an orthonormal basis, and
// the accumulators are cleared. Static bodies do not move.
//
// The angular acceleration uses the local-space inverse inertia directly
// (α = I_local⁻¹·τ). That is exact only for tensors that are rotation
// invariant, such as uniform spheres; the world-space conjugation
// R·I⁻¹·Rᵀ is a known refinement left out here.
func (rb *RigidBody) Integrate(dt float64) {
	if rb.invMass == 0 {
		return
	}

	// linear
	rb.velocity = rb.velocity.Add(rb.force.Mul(rb.invMass * dt))
	rb.position = rb.position.Add(rb.velocity.Mul(dt))

	// angular
	angularAccel := rb.invInertia.Mul3x1(rb.torque)
	rb.angularVelocity = clampVec3(rb.angularVelocity.Add(angularAccel.Mul(dt)), MaxAngularSpeed)

	// orientation: R <- R·exp(Ω(ω)·dt), reprojected onto SO(3)
	delta := core.ExpSkew(core.Skew(rb.angularVelocity).Mul(dt))
	rb.orientation = core.Orthonormalize(rb.orientation.Mul3(delta))

	rb.ClearAccumulators()
}

func clampVec3(v mgl64.Vec3, limit float64) mgl64.Vec3 {
	return mgl64.Vec3{
		clamp(v.X(), limit),
		clamp(v.Y(), limit),
		clamp(v.Z(), limit),
	}
}

func clamp(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}
