package hyperbolic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPoint_RejectsWrongLength(t *testing.T) {
	_, err := NewPoint(make([]float64, 10))
	require.Error(t, err)
}

func TestOrigin_IsZero(t *testing.T) {
	require.Equal(t, 0.0, Origin().Norm())
}

func TestProject_ScalesBackInsideBall(t *testing.T) {
	cfg := DefaultConfig()
	coords := make([]float64, Dim)
	coords[0] = 10 // far outside the unit ball
	p, err := NewPoint(coords)
	require.NoError(t, err)

	projected := p.Project(cfg)
	require.Less(t, projected.Norm(), cfg.MaxNorm+1e-9)
}

func TestProject_LeavesInsidePointsUnchanged(t *testing.T) {
	cfg := DefaultConfig()
	coords := make([]float64, Dim)
	coords[0] = 0.1
	p, err := NewPoint(coords)
	require.NoError(t, err)

	require.Equal(t, p, p.Project(cfg))
}
