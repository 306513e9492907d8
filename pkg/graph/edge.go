package graph

import "github.com/hypergraphdb/core/pkg/neuromod"

// ModulationAlpha mixes neuromodulation into an edge's base weight. The
// source left this constant unpinned (spec §9's open question); 0.1 is the
// chosen default and lives here as a named, tunable constant rather than an
// inline literal.
const ModulationAlpha = 0.1

// Edge is a typed, weighted, domain- and neuromodulation-aware relationship
// between two nodes.
type Edge struct {
	ID        uint64
	Source    NodeID
	Target    NodeID
	Type      EdgeType
	Weight    float32
	Domain    neuromod.Domain
	NtWeights neuromod.Weights
}

// ModulatedWeight returns the edge's weight blended with its neuromodulatory
// net activation and a domain-match bonus against queryDomain, clamped to
// [0, 1]. This is the value traversal compares against its minimum-weight
// threshold.
func (e *Edge) ModulatedWeight(queryDomain neuromod.Domain) float32 {
	net := e.NtWeights.NetActivation()
	bonus := neuromod.DomainBonus(e.Domain, queryDomain)
	w := float64(e.Weight)*(1+ModulationAlpha*net) + bonus
	if w < 0 {
		w = 0
	}
	if w > 1 {
		w = 1
	}
	return float32(w)
}
