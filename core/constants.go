package core

import "math"

// Mathematical and physical constants in SI units. Only G participates in
// the physics pipeline; the rest are exposed for engine consumers.
const (
	// Pi is the mathematical constant π.
	Pi = math.Pi
	// Tau is 2π, one full turn in radians.
	Tau = 2 * math.Pi
	// HalfPi is π/2.
	HalfPi = math.Pi / 2

	// DegToRad converts degrees to radians when multiplied.
	DegToRad = math.Pi / 180.0
	// RadToDeg converts radians to degrees when multiplied.
	RadToDeg = 180.0 / math.Pi

	// G is the standard gravitational acceleration on Earth (m/s²).
	G = 9.80665
	// C is the speed of light in vacuum (m/s).
	C = 299792458.0
	// Avogadro is Avogadro's number (mol⁻¹).
	Avogadro = 6.02214076e23
	// Boltzmann is the Boltzmann constant (J/K).
	Boltzmann = 1.380649e-23
	// Planck is the Planck constant (J·s).
	Planck = 6.62607015e-34
	// ElementaryCharge is the elementary charge (C).
	ElementaryCharge = 1.602176634e-19
)
