package actor

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

func vec3AlmostEqual(a, b mgl64.Vec3, epsilon float64) bool {
	return almostEqual(a.X(), b.X(), epsilon) &&
		almostEqual(a.Y(), b.Y(), epsilon) &&
		almostEqual(a.Z(), b.Z(), epsilon)
}

var nanVec = mgl64.Vec3{math.NaN(), 0, 0}

// =============================================================================
// Constructor Tests
// =============================================================================

func TestNewRigidBody_Defaults(t *testing.T) {
	rb := NewRigidBody()

	if !rb.IsStatic() {
		t.Error("new body should be static until SetMass")
	}
	if rb.InverseMass() != 0 {
		t.Errorf("InverseMass() = %v, want 0", rb.InverseMass())
	}
	if rb.InertiaTensor() != mgl64.Ident3() {
		t.Errorf("InertiaTensor() = %v, want identity", rb.InertiaTensor())
	}
	if rb.OrientationMatrix() != mgl64.Ident3() {
		t.Errorf("OrientationMatrix() = %v, want identity", rb.OrientationMatrix())
	}
	if rb.Position() != (mgl64.Vec3{}) || rb.Velocity() != (mgl64.Vec3{}) {
		t.Error("new body should start at rest at the origin")
	}
}

// =============================================================================
// Mutator Validation Tests
// =============================================================================

func TestRigidBody_SetMass(t *testing.T) {
	tests := []struct {
		name string
		mass float64
		want Status
	}{
		{name: "positive", mass: 2.5, want: StatusOK},
		{name: "zero rejected", mass: 0, want: StatusInvalidMass},
		{name: "negative rejected", mass: -1, want: StatusInvalidMass},
		{name: "NaN rejected", mass: math.NaN(), want: StatusInvalidMass},
		{name: "Inf rejected", mass: math.Inf(1), want: StatusInvalidMass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rb := NewRigidBody()
			if got := rb.SetMass(tt.mass); got != tt.want {
				t.Fatalf("SetMass(%v) = %v, want %v", tt.mass, got, tt.want)
			}

			if tt.want != StatusOK {
				if rb.Mass() != 0 || rb.InverseMass() != 0 {
					t.Error("rejected SetMass mutated the body")
				}
				return
			}
			if rb.Mass() != tt.mass {
				t.Errorf("Mass() = %v, want %v", rb.Mass(), tt.mass)
			}
			if !almostEqual(rb.InverseMass(), 1.0/tt.mass, 1e-15) {
				t.Errorf("InverseMass() = %v, want %v", rb.InverseMass(), 1.0/tt.mass)
			}
			if rb.IsStatic() {
				t.Error("body with positive mass reported static")
			}
		})
	}
}

func TestRigidBody_VectorSetters(t *testing.T) {
	tests := []struct {
		name    string
		set     func(rb *RigidBody, v mgl64.Vec3) Status
		get     func(rb *RigidBody) mgl64.Vec3
		badWant Status
	}{
		{
			name:    "position",
			set:     (*RigidBody).SetPosition,
			get:     (*RigidBody).Position,
			badWant: StatusInvalidPosition,
		},
		{
			name:    "velocity",
			set:     (*RigidBody).SetVelocity,
			get:     (*RigidBody).Velocity,
			badWant: StatusInvalidVelocity,
		},
		{
			name:    "angular velocity",
			set:     (*RigidBody).SetAngularVelocity,
			get:     (*RigidBody).AngularVelocity,
			badWant: StatusInvalidVelocity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rb := NewRigidBody()
			v := mgl64.Vec3{1, -2, 3}

			if got := tt.set(rb, v); got != StatusOK {
				t.Fatalf("set(%v) = %v, want ok", v, got)
			}
			if tt.get(rb) != v {
				t.Errorf("get = %v, want %v", tt.get(rb), v)
			}

			if got := tt.set(rb, nanVec); got != tt.badWant {
				t.Fatalf("set(NaN) = %v, want %v", got, tt.badWant)
			}
			if tt.get(rb) != v {
				t.Error("rejected setter mutated the body")
			}
		})
	}
}

func TestRigidBody_SetInertiaTensor(t *testing.T) {
	rb := NewRigidBody()

	diag := mgl64.Diag3(mgl64.Vec3{2, 4, 8})
	if got := rb.SetInertiaTensor(diag); got != StatusOK {
		t.Fatalf("SetInertiaTensor = %v, want ok", got)
	}

	wantInv := mgl64.Diag3(mgl64.Vec3{0.5, 0.25, 0.125})
	inv := rb.InverseInertiaTensor()
	for i := 0; i < 9; i++ {
		if !almostEqual(inv[i], wantInv[i], 1e-15) {
			t.Fatalf("InverseInertiaTensor() = %v, want %v", inv, wantInv)
		}
	}

	// Singular tensor: inverse becomes the zero matrix.
	singular := mgl64.Diag3(mgl64.Vec3{1, 0, 1})
	if got := rb.SetInertiaTensor(singular); got != StatusOK {
		t.Fatalf("SetInertiaTensor(singular) = %v, want ok", got)
	}
	if rb.InverseInertiaTensor() != (mgl64.Mat3{}) {
		t.Errorf("inverse of singular tensor = %v, want zero matrix", rb.InverseInertiaTensor())
	}

	// Non-finite entries are rejected without mutation.
	bad := mgl64.Ident3()
	bad[0] = math.NaN()
	if got := rb.SetInertiaTensor(bad); got != StatusInvalidInertia {
		t.Fatalf("SetInertiaTensor(NaN) = %v, want invalid inertia", got)
	}
	if rb.InertiaTensor() != singular {
		t.Error("rejected SetInertiaTensor mutated the body")
	}
}

func TestRigidBody_SetOrientationMatrix(t *testing.T) {
	rb := NewRigidBody()

	// Orthonormality is not checked at set time.
	skewed := mgl64.Mat3FromRows(
		mgl64.Vec3{1, 0.5, 0},
		mgl64.Vec3{0, 1, 0},
		mgl64.Vec3{0, 0, 1},
	)
	if got := rb.SetOrientationMatrix(skewed); got != StatusOK {
		t.Fatalf("SetOrientationMatrix = %v, want ok", got)
	}
	if rb.OrientationMatrix() != skewed {
		t.Error("orientation not stored")
	}

	bad := skewed
	bad[3] = math.Inf(-1)
	if got := rb.SetOrientationMatrix(bad); got != StatusInvalidOrientation {
		t.Fatalf("SetOrientationMatrix(Inf) = %v, want invalid orientation", got)
	}
	if rb.OrientationMatrix() != skewed {
		t.Error("rejected SetOrientationMatrix mutated the body")
	}
}

// =============================================================================
// Accumulator and Impulse Tests
// =============================================================================

func TestRigidBody_ApplyForceAndTorque(t *testing.T) {
	rb := NewRigidBody()
	rb.SetMass(1)

	rb.ApplyForce(mgl64.Vec3{1, 0, 0})
	rb.ApplyForce(mgl64.Vec3{0, 2, 0})
	rb.ApplyTorque(mgl64.Vec3{0, 0, 3})

	if rb.AccumulatedForce() != (mgl64.Vec3{1, 2, 0}) {
		t.Errorf("AccumulatedForce() = %v, want (1,2,0)", rb.AccumulatedForce())
	}
	if rb.AccumulatedTorque() != (mgl64.Vec3{0, 0, 3}) {
		t.Errorf("AccumulatedTorque() = %v, want (0,0,3)", rb.AccumulatedTorque())
	}

	// Non-finite inputs are ignored without mutation.
	rb.ApplyForce(nanVec)
	rb.ApplyTorque(nanVec)
	if rb.AccumulatedForce() != (mgl64.Vec3{1, 2, 0}) || rb.AccumulatedTorque() != (mgl64.Vec3{0, 0, 3}) {
		t.Error("non-finite force/torque mutated an accumulator")
	}

	rb.ClearAccumulators()
	if rb.AccumulatedForce() != (mgl64.Vec3{}) || rb.AccumulatedTorque() != (mgl64.Vec3{}) {
		t.Error("ClearAccumulators left residue")
	}
}

func TestRigidBody_ApplyImpulse(t *testing.T) {
	rb := NewRigidBody()
	rb.SetMass(2)

	rb.ApplyImpulse(mgl64.Vec3{4, 0, 0})
	if !vec3AlmostEqual(rb.Velocity(), mgl64.Vec3{2, 0, 0}, 1e-15) {
		t.Errorf("Velocity() = %v, want (2,0,0)", rb.Velocity())
	}

	rb.ApplyImpulse(nanVec)
	if !vec3AlmostEqual(rb.Velocity(), mgl64.Vec3{2, 0, 0}, 1e-15) {
		t.Error("non-finite impulse mutated velocity")
	}

	// Static bodies do not react to impulses.
	static := NewRigidBody()
	static.ApplyImpulse(mgl64.Vec3{5, 5, 5})
	if static.Velocity() != (mgl64.Vec3{}) {
		t.Error("impulse moved a static body")
	}
}

func TestRigidBody_ApplyImpulseAtPoint(t *testing.T) {
	rb := NewRigidBody()
	rb.SetMass(1)
	rb.SetInertiaTensor(mgl64.Ident3())

	impulse := mgl64.Vec3{0, 0, 1}
	relPos := mgl64.Vec3{1, 0, 0}
	rb.ApplyImpulseAtPoint(impulse, relPos)

	if !vec3AlmostEqual(rb.Velocity(), impulse, 1e-15) {
		t.Errorf("Velocity() = %v, want %v", rb.Velocity(), impulse)
	}
	// ω += I⁻¹(r × J) = (1,0,0)×(0,0,1) = (0,-1,0)
	if !vec3AlmostEqual(rb.AngularVelocity(), mgl64.Vec3{0, -1, 0}, 1e-15) {
		t.Errorf("AngularVelocity() = %v, want (0,-1,0)", rb.AngularVelocity())
	}
}

// =============================================================================
// Integration Tests
// =============================================================================

func TestRigidBody_Integrate_SemiImplicitOrder(t *testing.T) {
	rb := NewRigidBody()
	rb.SetMass(1)

	// One step under a constant 1 N force along x: velocity updates
	// first, then position advances with the updated velocity.
	dt := 0.5
	rb.ApplyForce(mgl64.Vec3{1, 0, 0})
	rb.Integrate(dt)

	if !vec3AlmostEqual(rb.Velocity(), mgl64.Vec3{0.5, 0, 0}, 1e-15) {
		t.Errorf("Velocity() = %v, want (0.5,0,0)", rb.Velocity())
	}
	if !vec3AlmostEqual(rb.Position(), mgl64.Vec3{0.25, 0, 0}, 1e-15) {
		t.Errorf("Position() = %v, want (0.25,0,0): position must use the updated velocity", rb.Position())
	}
	if rb.AccumulatedForce() != (mgl64.Vec3{}) {
		t.Error("Integrate did not clear the force accumulator")
	}
}

func TestRigidBody_Integrate_StaticBodyUnmoved(t *testing.T) {
	rb := NewRigidBody()
	rb.SetPosition(mgl64.Vec3{1, 2, 3})

	rb.Integrate(0.01)

	if rb.Position() != (mgl64.Vec3{1, 2, 3}) {
		t.Error("static body moved during integration")
	}
	if rb.OrientationMatrix() != mgl64.Ident3() {
		t.Error("static body rotated during integration")
	}
}

func TestRigidBody_Integrate_AngularClamp(t *testing.T) {
	rb := NewRigidBody()
	rb.SetMass(1)
	rb.SetInertiaTensor(mgl64.Ident3())

	// Huge torque for one step: every component must respect the clamp.
	rb.ApplyTorque(mgl64.Vec3{1e9, -1e9, 5e8})
	rb.Integrate(0.01)

	w := rb.AngularVelocity()
	for axis := 0; axis < 3; axis++ {
		if math.Abs(w[axis]) > MaxAngularSpeed {
			t.Errorf("|ω[%d]| = %v exceeds MaxAngularSpeed", axis, math.Abs(w[axis]))
		}
	}
	if w.X() != MaxAngularSpeed || w.Y() != -MaxAngularSpeed {
		t.Errorf("ω = %v, want saturation at ±%v", w, float64(MaxAngularSpeed))
	}
}

func TestRigidBody_Integrate_OrientationStaysOrthonormal(t *testing.T) {
	rb := NewRigidBody()
	rb.SetMass(2)
	rb.SetInertiaTensor(mgl64.Ident3())
	rb.SetAngularVelocity(mgl64.Vec3{0, 5, 0.5})

	for i := 0; i < 400; i++ {
		rb.Integrate(0.005)
	}

	r := rb.OrientationMatrix()
	for i := 0; i < 3; i++ {
		if l := r.Col(i).Len(); !almostEqual(l, 1.0, 5e-3) {
			t.Errorf("column %d length = %v, want 1", i, l)
		}
	}
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if d := r.Col(i).Dot(r.Col(j)); !almostEqual(d, 0, 5e-3) {
				t.Errorf("columns %d,%d dot = %v, want 0", i, j, d)
			}
		}
	}
}
