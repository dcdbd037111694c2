package actor

import "github.com/go-gl/mathgl/mgl64"

// Collider is the closed set of narrow-phase shapes: Sphere and AABB.
// The unexported kind method seals the interface; intersection is
// dispatched through a single triangle of pair functions consulted in
// canonical kind order, so a.Intersects(b) == b.Intersects(a) by
// construction.
type Collider interface {
	// Intersects reports whether the two colliders overlap. Touching
	// counts as overlap.
	Intersects(other Collider) bool
	// Center returns the shape's center point.
	Center() mgl64.Vec3

	kind() colliderKind
}

type colliderKind int

const (
	kindSphere colliderKind = iota
	kindAABB
)

// Sphere is a spherical collider.
type Sphere struct {
	center mgl64.Vec3
	radius float64
}

// NewSphere creates a sphere collider. A negative radius is clamped to
// zero.
func NewSphere(center mgl64.Vec3, radius float64) Sphere {
	if radius < 0 {
		radius = 0
	}
	return Sphere{center: center, radius: radius}
}

func (s Sphere) kind() colliderKind { return kindSphere }

// Center returns the sphere's center.
func (s Sphere) Center() mgl64.Vec3 {
	return s.center
}

// Radius returns the sphere's radius, always >= 0.
func (s Sphere) Radius() float64 {
	return s.radius
}

// Intersects reports whether the sphere overlaps other.
func (s Sphere) Intersects(other Collider) bool {
	return intersects(s, other)
}

// AABB is an axis-aligned bounding-box collider. Min_i <= Max_i holds on
// every axis.
type AABB struct {
	min mgl64.Vec3
	max mgl64.Vec3
}

// NewAABB creates an AABB from two corner points. Components are swapped
// per axis as needed so the stored minimum never exceeds the maximum.
func NewAABB(min, max mgl64.Vec3) AABB {
	for axis := 0; axis < 3; axis++ {
		if min[axis] > max[axis] {
			min[axis], max[axis] = max[axis], min[axis]
		}
	}
	return AABB{min: min, max: max}
}

func (a AABB) kind() colliderKind { return kindAABB }

// Center returns the box midpoint.
func (a AABB) Center() mgl64.Vec3 {
	return a.min.Add(a.max).Mul(0.5)
}

// Min returns the componentwise minimum corner.
func (a AABB) Min() mgl64.Vec3 {
	return a.min
}

// Max returns the componentwise maximum corner.
func (a AABB) Max() mgl64.Vec3 {
	return a.max
}

// Intersects reports whether the box overlaps other.
func (a AABB) Intersects(other Collider) bool {
	return intersects(a, other)
}

// intersects dispatches over the canonical ordering of the pair so only
// one triangle of the shape-pair table exists.
func intersects(a, b Collider) bool {
	if a.kind() > b.kind() {
		a, b = b, a
	}

	switch x := a.(type) {
	case Sphere:
		switch y := b.(type) {
		case Sphere:
			return sphereSphere(x, y)
		case AABB:
			return sphereAABB(x, y)
		}
	case AABB:
		return aabbAABB(x, b.(AABB))
	}
	return false
}

// sphereSphere: |c1 - c2|² <= (r1 + r2)².
func sphereSphere(a, b Sphere) bool {
	radiusSum := a.radius + b.radius
	return b.center.Sub(a.center).LenSqr() <= radiusSum*radiusSum
}

// aabbAABB: interval overlap on all three axes.
func aabbAABB(a, b AABB) bool {
	for axis := 0; axis < 3; axis++ {
		if a.max[axis] < b.min[axis] || a.min[axis] > b.max[axis] {
			return false
		}
	}
	return true
}

// sphereAABB: clamp the sphere center onto the box, then compare the
// squared distance to the closest point against r².
func sphereAABB(s Sphere, box AABB) bool {
	closest := s.center
	for axis := 0; axis < 3; axis++ {
		if closest[axis] < box.min[axis] {
			closest[axis] = box.min[axis]
		} else if closest[axis] > box.max[axis] {
			closest[axis] = box.max[axis]
		}
	}

	return s.center.Sub(closest).LenSqr() <= s.radius*s.radius
}
