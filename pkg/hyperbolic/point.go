package hyperbolic

import (
	"math"

	"github.com/hypergraphdb/core/pkg/hgerr"
)

// Point is a fixed-length coordinate on (or in the tangent space of) the
// Poincaré ball. The zero value is the origin, a valid distinguished point.
type Point [Dim]float64

// NewPoint builds a Point from a slice of exactly Dim coordinates.
func NewPoint(coords []float64) (Point, error) {
	var p Point
	if len(coords) != Dim {
		return p, &hgerr.DimensionMismatchError{Expected: Dim, Actual: len(coords)}
	}
	copy(p[:], coords)
	return p, nil
}

// Origin returns the distinguished zero point of the ball.
func Origin() Point { return Point{} }

// NormSquared returns the squared Euclidean norm of p.
func (p Point) NormSquared() float64 {
	var sum float64
	for _, v := range p {
		sum += v * v
	}
	return sum
}

// Norm returns the Euclidean norm of p.
func (p Point) Norm() float64 {
	return math.Sqrt(p.NormSquared())
}

// Dot returns the Euclidean inner product of p and q.
func (p Point) Dot(q Point) float64 {
	var sum float64
	for i := range p {
		sum += p[i] * q[i]
	}
	return sum
}

// Add returns the pointwise sum p + q.
func (p Point) Add(q Point) Point {
	var out Point
	for i := range p {
		out[i] = p[i] + q[i]
	}
	return out
}

// Sub returns the pointwise difference p - q.
func (p Point) Sub(q Point) Point {
	var out Point
	for i := range p {
		out[i] = p[i] - q[i]
	}
	return out
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	var out Point
	for i := range p {
		out[i] = p[i] * s
	}
	return out
}

// Negate returns -p.
func (p Point) Negate() Point {
	return p.Scale(-1)
}

// IsNearZero reports whether p's norm is below eps.
func (p Point) IsNearZero(eps float64) bool {
	return p.Norm() < eps
}

// Project scales p back inside the open ball if its norm has reached or
// exceeded cfg.MaxNorm. Points already inside are returned unchanged.
func (p Point) Project(cfg Config) Point {
	norm := p.Norm()
	if norm < cfg.MaxNorm || norm == 0 {
		return p
	}
	return p.Scale(cfg.MaxNorm / norm)
}
