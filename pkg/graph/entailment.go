package graph

import (
	"github.com/hypergraphdb/core/pkg/hgerr"
	"github.com/hypergraphdb/core/pkg/hyperbolic"
)

// NewEntailmentCone builds a hyperbolic.Cone anchored at node's hyperbolic
// coordinate, keyed on node's id the way spec §2's data flow describes: a
// candidate node id surfaces from vector search, then gets its own
// entailment-cone containment check. Fails if node was never placed in the
// Poincaré ball.
func NewEntailmentCone(node *Node, aperture float64) (*hyperbolic.Cone, error) {
	if node.HyperbolicPoint == nil {
		return nil, hgerr.ErrInvalidConfig
	}
	return hyperbolic.NewCone(*node.HyperbolicPoint, aperture, uint64(node.ID))
}

// Entails reports whether apex's cone, at the given aperture, contains
// candidate's hyperbolic coordinate — "is candidate entailed by apex?" keyed
// on node ids, per spec §1's second query class. Both nodes must carry a
// HyperbolicPoint.
func Entails(ball *hyperbolic.Ball, apex, candidate *Node, aperture float64) (bool, error) {
	cone, err := NewEntailmentCone(apex, aperture)
	if err != nil {
		return false, err
	}
	if candidate.HyperbolicPoint == nil {
		return false, hgerr.ErrInvalidConfig
	}
	return cone.Contains(ball, *candidate.HyperbolicPoint), nil
}
