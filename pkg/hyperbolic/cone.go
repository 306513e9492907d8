package hyperbolic

import (
	"math"

	"github.com/hypergraphdb/core/pkg/hgerr"
)

// MembershipDecayRate is the decay constant used outside a cone's effective
// aperture. It is a named constant so a GPU kernel can be checked for
// numerical equivalence against it; it is never varied (spec §4.2).
const MembershipDecayRate = 2.0

const (
	minApertureFactor = 0.5
	maxApertureFactor = 2.0
)

// Cone is an entailment cone anchored at Apex. ApertureFactor is the only
// field mutable after construction, via UpdateAperture.
type Cone struct {
	Apex           Point
	Aperture       float64
	ApertureFactor float64
	NodeID         uint64
}

// NewCone constructs a cone with the given apex and base aperture. The
// aperture factor starts at 1.0, the neutral midpoint of its [0.5, 2.0]
// range.
func NewCone(apex Point, aperture float64, nodeID uint64) (*Cone, error) {
	if aperture <= 0 {
		return nil, hgerr.ErrInvalidAperture
	}
	return &Cone{Apex: apex, Aperture: aperture, ApertureFactor: 1.0, NodeID: nodeID}, nil
}

// EffectiveAperture returns Aperture * ApertureFactor.
func (c *Cone) EffectiveAperture() float64 {
	return c.Aperture * c.ApertureFactor
}

// UpdateAperture adjusts ApertureFactor by delta, clamped to [0.5, 2.0].
func (c *Cone) UpdateAperture(delta float64) {
	factor := c.ApertureFactor + delta
	if factor < minApertureFactor {
		factor = minApertureFactor
	}
	if factor > maxApertureFactor {
		factor = maxApertureFactor
	}
	c.ApertureFactor = factor
}

// angle computes θ for point under the canonical formula in spec §4.2: the
// single source of truth for membership across the whole system. Three
// conflicting formulas existed historically; this is the only valid one.
func (c *Cone) angle(b *Ball, point Point) float64 {
	eps := b.Config().Eps

	if b.Distance(c.Apex, point) < eps {
		return 0
	}
	if c.Apex.Norm() < eps {
		return 0
	}

	tangent := b.LogMap(c.Apex, point)
	axis := b.LogMap(c.Apex, Origin())

	tangentNorm := tangent.Norm()
	axisNorm := axis.Norm()
	if tangentNorm < eps || axisNorm < eps {
		return 0
	}

	cosTheta := tangent.Dot(axis) / (tangentNorm * axisNorm)
	if cosTheta > 1 {
		cosTheta = 1
	}
	if cosTheta < -1 {
		cosTheta = -1
	}
	return math.Acos(cosTheta)
}

// Contains reports whether point lies within the cone's effective aperture.
func (c *Cone) Contains(b *Ball, point Point) bool {
	return c.angle(b, point) <= c.EffectiveAperture()
}

// MembershipScore returns 1 when point is contained, and an exponentially
// decaying score in (0, 1) otherwise.
func (c *Cone) MembershipScore(b *Ball, point Point) float64 {
	theta := c.angle(b, point)
	eff := c.EffectiveAperture()
	if theta <= eff {
		return 1
	}
	return math.Exp(-MembershipDecayRate * (theta - eff))
}

// ContainsBatch evaluates Contains for each point, preserving input order.
func (c *Cone) ContainsBatch(b *Ball, points []Point) []bool {
	out := make([]bool, len(points))
	for i, p := range points {
		out[i] = c.Contains(b, p)
	}
	return out
}

// MembershipScoreBatch evaluates MembershipScore for each point, preserving
// input order.
func (c *Cone) MembershipScoreBatch(b *Ball, points []Point) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = c.MembershipScore(b, p)
	}
	return out
}
