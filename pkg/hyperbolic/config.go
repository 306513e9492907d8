// Package hyperbolic implements Möbius algebra, exponential/logarithmic
// maps, and entailment-cone containment on a fixed-dimension Poincaré ball.
//
// Coordinates are carried as float64 even though the rest of the engine is
// float32: the distance formula's arctanh guard needs precision below
// float32's ~1.19e-7 machine epsilon to honor the default eps of 1e-7 (see
// DESIGN.md). This mirrors how pkg/decay in the teacher codebase computes its
// exponential decay curve in float64 regardless of the float32 embeddings
// stored elsewhere in the engine.
package hyperbolic

import "github.com/hypergraphdb/core/pkg/hgerr"

// Dim is the fixed dimensionality of the Poincaré ball. The engine commits
// to 64 dimensions as a design choice (see spec §9), not an accident of
// implementation, so operations can be specialized for 64-wide SIMD later.
const Dim = 64

// Config holds the numeric parameters of the Poincaré ball model.
type Config struct {
	// Dim is the point dimensionality. Always Dim (64) for this engine.
	Dim int
	// Curvature is stored signed negative; AbsCurvature() is used in every
	// formula.
	Curvature float64
	// Eps guards divisions and arctanh arguments near the ball boundary.
	Eps float64
	// MaxNorm bounds a valid point's Euclidean norm (must stay < MaxNorm).
	MaxNorm float64
}

// DefaultConfig returns the engine's canonical parameters: 64 dimensions,
// curvature -1.0, eps 1e-7, max_norm 1 - 1e-5.
func DefaultConfig() Config {
	return Config{
		Dim:       Dim,
		Curvature: -1.0,
		Eps:       1e-7,
		MaxNorm:   1 - 1e-5,
	}
}

// AbsCurvature returns |Curvature|, the c used throughout the formulas.
func (c Config) AbsCurvature() float64 {
	if c.Curvature < 0 {
		return -c.Curvature
	}
	return c.Curvature
}

// Validate checks the invariants: dim > 0, curvature < 0, eps > 0,
// max_norm in (0, 1).
func (c Config) Validate() error {
	if c.Dim <= 0 {
		return hgerr.ErrInvalidConfig
	}
	if c.Curvature >= 0 {
		return hgerr.ErrInvalidCurvature
	}
	if c.Eps <= 0 {
		return hgerr.ErrInvalidConfig
	}
	if c.MaxNorm <= 0 || c.MaxNorm >= 1 {
		return hgerr.ErrInvalidConfig
	}
	return nil
}
