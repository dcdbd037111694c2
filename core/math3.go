package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// machineEpsilon is the difference between 1.0 and the next representable
// float64.
const machineEpsilon = 2.220446049250313e-16

// orthoEpsilon is the squared-length threshold below which a column is
// considered degenerate during orthonormalization.
const orthoEpsilon = 1e-8

// FiniteVec3 reports whether every component of v is finite.
func FiniteVec3(v mgl64.Vec3) bool {
	return Finite(v.X()) && Finite(v.Y()) && Finite(v.Z())
}

// FiniteMat3 reports whether every entry of m is finite.
func FiniteMat3(m mgl64.Mat3) bool {
	for _, v := range m {
		if !Finite(v) {
			return false
		}
	}
	return true
}

// Skew returns the skew-symmetric matrix Ω(ω) satisfying Ω(ω)·v = ω×v
// for all v.
func Skew(w mgl64.Vec3) mgl64.Mat3 {
	wx, wy, wz := w.X(), w.Y(), w.Z()
	return mgl64.Mat3FromRows(
		mgl64.Vec3{0, -wz, wy},
		mgl64.Vec3{wz, 0, -wx},
		mgl64.Vec3{-wy, wx, 0},
	)
}

// ExpSkew computes the matrix exponential of a skew-symmetric matrix via
// Rodrigues' formula:
//
//	exp(Ω) = I + (sin θ / θ)·Ω + ((1 − cos θ)/θ²)·Ω²
//
// where θ = |ω|. For θ² below machine epsilon the coefficients use the
// series 1 − θ²/6 and 1/2 − θ²/24 to avoid the 0/0 forms.
//
// Ω must be skew-symmetric; θ is extracted from the canonical slots
// Ω[2][1], Ω[0][2], Ω[1][0] while the products use the full matrix. For
// skew-symmetric input the result is a proper rotation matrix up to
// floating-point tolerance.
func ExpSkew(omega mgl64.Mat3) mgl64.Mat3 {
	wx := omega.At(2, 1)
	wy := omega.At(0, 2)
	wz := omega.At(1, 0)

	thetaSquared := wx*wx + wy*wy + wz*wz

	var sinTerm, cosTerm float64
	if thetaSquared < machineEpsilon {
		sinTerm = 1.0 - thetaSquared/6.0
		cosTerm = 0.5 - thetaSquared/24.0
	} else {
		theta := math.Sqrt(thetaSquared)
		sinTerm = math.Sin(theta) / theta
		cosTerm = (1.0 - math.Cos(theta)) / thetaSquared
	}

	return mgl64.Ident3().
		Add(omega.Mul(sinTerm)).
		Add(omega.Mul3(omega).Mul(cosTerm))
}

// Orthonormalize projects m back onto an orthonormal column basis using
// modified Gram-Schmidt: column 0 is normalized, column 1 is made
// orthogonal to column 0 and normalized, column 2 is their cross product.
// Any column whose squared length falls to orthoEpsilon or below is
// replaced by the canonical basis vector for its index.
func Orthonormalize(m mgl64.Mat3) mgl64.Mat3 {
	col0 := safeUnit(m.Col(0), mgl64.Vec3{1, 0, 0})

	col1 := m.Col(1)
	col1 = col1.Sub(col0.Mul(col0.Dot(col1)))
	col1 = safeUnit(col1, mgl64.Vec3{0, 1, 0})

	col2 := safeUnit(col0.Cross(col1), mgl64.Vec3{0, 0, 1})

	return mgl64.Mat3FromCols(col0, col1, col2)
}

func safeUnit(v, fallback mgl64.Vec3) mgl64.Vec3 {
	if v.LenSqr() <= orthoEpsilon {
		return fallback
	}
	return v.Normalize()
}
