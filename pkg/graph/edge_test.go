package graph

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hypergraphdb/core/pkg/neuromod"
)

func TestModulatedWeight_DomainBonusOnExactMatch(t *testing.T) {
	e := &Edge{
		Weight:    0.5,
		Domain:    neuromod.DomainCode,
		NtWeights: neuromod.Weights{Excitatory: 0.5, Inhibitory: 0.5, Modulatory: 0},
	}

	withMatch := e.ModulatedWeight(neuromod.DomainCode)
	withoutMatch := e.ModulatedWeight(neuromod.DomainLegal)

	require.Greater(t, withMatch, withoutMatch)
}

func TestModulatedWeight_ClampedToUnitRange(t *testing.T) {
	e := &Edge{
		Weight:    1.0,
		Domain:    neuromod.DomainCreative,
		NtWeights: neuromod.Weights{Excitatory: 1.0, Inhibitory: 0, Modulatory: 1.0},
	}
	require.LessOrEqual(t, e.ModulatedWeight(neuromod.DomainCreative), float32(1.0))

	e2 := &Edge{
		Weight:    0.0,
		Domain:    neuromod.DomainGeneral,
		NtWeights: neuromod.Weights{Excitatory: 0, Inhibitory: 1.0, Modulatory: 0},
	}
	require.GreaterOrEqual(t, e2.ModulatedWeight(neuromod.DomainGeneral), float32(0.0))
}
