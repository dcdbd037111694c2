// Package lambda is the rigid-body physics core of the Lambda engine: a
// fixed-step simulator that integrates linear and angular motion for a
// registered set of bodies under global forces.
package lambda

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/project-lambda/lambda/actor"
	"github.com/project-lambda/lambda/core"
)

// MaxTimestep is the cap applied to any Simulate delta (seconds). It
// bounds worst-case instability after pauses or stalls; a stability
// guard, not a physical limit.
const MaxTimestep = 0.05

// PhysicsWorld owns the body registry and runs the per-tick pipeline:
// global forces, integration, collision detection and resolution, then
// the simulation-time advance. Bodies are referenced, never owned; the
// registry keeps insertion order.
//
// The world is single-threaded: the caller serializes Bang, AddRigidBody,
// RemoveRigidBody and Simulate. Bodies may be inspected by other
// goroutines only between Simulate calls.
type PhysicsWorld struct {
	// Gravity is the global acceleration applied to every dynamic body
	// each tick (m/s²).
	Gravity mgl64.Vec3

	bodies []*actor.RigidBody

	// simulation seconds since Bang, Kahan-compensated to limit drift
	// over long runs
	simTime      float64
	simTimeCarry float64
}

// NewPhysicsWorld creates a world with standard Earth gravity pointing
// down the y axis and an empty registry.
func NewPhysicsWorld() *PhysicsWorld {
	w := &PhysicsWorld{
		Gravity: mgl64.Vec3{0, -core.G, 0},
	}
	w.Bang()
	return w
}

// Bang resets the world: simulation time returns to zero and the body
// registry is cleared. Bodies themselves are untouched.
func (w *PhysicsWorld) Bang() {
	w.simTime = 0
	w.simTimeCarry = 0
	w.bodies = w.bodies[:0]
}

// AddRigidBody registers body with the world. It returns false for a nil
// body or one that is already registered, true otherwise. Registration
// does not transfer ownership.
func (w *PhysicsWorld) AddRigidBody(body *actor.RigidBody) bool {
	if body == nil {
		return false
	}

	for _, b := range w.bodies {
		if b == body {
			return false
		}
	}

	w.bodies = append(w.bodies, body)
	return true
}

// RemoveRigidBody unregisters body. It returns false for a nil or unknown
// body, true otherwise. The body's state is left intact.
func (w *PhysicsWorld) RemoveRigidBody(body *actor.RigidBody) bool {
	if body == nil {
		return false
	}

	for i, b := range w.bodies {
		if b == body {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return true
		}
	}
	return false
}

// BodyCount returns the number of registered bodies.
func (w *PhysicsWorld) BodyCount() int {
	return len(w.bodies)
}

// GetSimulationTime returns the seconds simulated since the last Bang,
// summed across all Simulate calls.
func (w *PhysicsWorld) GetSimulationTime() float64 {
	return w.simTime
}

// FetchResults is reserved for future asynchronous simulation; with the
// synchronous pipeline it is a no-op. waitForResults = false will signal
// "don't block" once async work exists.
func (w *PhysicsWorld) FetchResults(waitForResults bool) {
	_ = waitForResults
}

// Simulate advances the world by dt seconds. dt must be positive; a
// non-positive dt is a programmer error and panics. Deltas above
// MaxTimestep are capped. Every body observes the same dt within a call
// and is integrated at most once, in insertion order.
func (w *PhysicsWorld) Simulate(dt float64) {
	if !(dt > 0) {
		panic("lambda: physics timestep must be positive")
	}

	if dt > MaxTimestep {
		dt = MaxTimestep
	}

	w.applyGlobalForces()
	w.integrateBodies(dt)
	w.detectCollisions()
	w.resolveCollisions()
	w.advanceSimulationTime(dt)
}

// applyGlobalForces adds mass·g into each dynamic body's force
// accumulator. Static bodies are skipped.
func (w *PhysicsWorld) applyGlobalForces() {
	for _, body := range w.bodies {
		if body.IsStatic() {
			continue
		}

		body.ApplyForce(w.Gravity.Mul(body.Mass()))
	}
}

func (w *PhysicsWorld) integrateBodies(dt float64) {
	for _, body := range w.bodies {
		body.Integrate(dt)
	}
}

// detectCollisions is a placeholder; the pipeline position is fixed so
// narrow-phase queries over actor.Collider can slot in without reordering.
func (w *PhysicsWorld) detectCollisions() {}

// resolveCollisions is a placeholder paired with detectCollisions.
func (w *PhysicsWorld) resolveCollisions() {}

// advanceSimulationTime adds dt with Kahan compensation so long runs do
// not drift from accumulated rounding.
func (w *PhysicsWorld) advanceSimulationTime(dt float64) {
	y := dt - w.simTimeCarry
	t := w.simTime + y
	w.simTimeCarry = (t - w.simTime) - y
	w.simTime = t
}
