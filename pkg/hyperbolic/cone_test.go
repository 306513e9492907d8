package hyperbolic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCone_DegenerateApexAtOrigin(t *testing.T) {
	ball, err := NewBall(DefaultConfig())
	require.NoError(t, err)

	cone, err := NewCone(Origin(), 0.5, 1)
	require.NoError(t, err)

	point := randomPoint(t, 1)
	require.True(t, cone.Contains(ball, point))
	require.Equal(t, 1.0, cone.MembershipScore(ball, point))
}

func TestCone_DegeneratePointIsApex(t *testing.T) {
	ball, err := NewBall(DefaultConfig())
	require.NoError(t, err)

	apex := randomPoint(t, 2)
	cone, err := NewCone(apex, 0.2, 1)
	require.NoError(t, err)

	require.True(t, cone.Contains(ball, apex))
	require.Equal(t, 1.0, cone.MembershipScore(ball, apex))
}

func TestCone_MembershipScoreRange(t *testing.T) {
	ball, err := NewBall(DefaultConfig())
	require.NoError(t, err)

	apex := randomPoint(t, 1)
	cone, err := NewCone(apex, 0.3, 1)
	require.NoError(t, err)

	for scale := -3.0; scale <= 3.0; scale += 0.5 {
		point := randomPoint(t, scale)
		score := cone.MembershipScore(ball, point)
		require.Greater(t, score, 0.0)
		require.LessOrEqual(t, score, 1.0)
		if cone.Contains(ball, point) {
			require.Equal(t, 1.0, score)
		} else {
			require.Less(t, score, 1.0)
		}
	}
}

func TestCone_UpdateApertureClamps(t *testing.T) {
	cone, err := NewCone(Origin(), 0.5, 1)
	require.NoError(t, err)

	cone.UpdateAperture(-10)
	require.Equal(t, 0.5, cone.ApertureFactor)

	cone.UpdateAperture(10)
	require.Equal(t, 2.0, cone.ApertureFactor)
}

// canonicalMembershipScore mirrors the worked examples in spec §8 directly
// against the decay formula, independent of the geometric angle
// computation, to pin MembershipDecayRate = 2.0.
func canonicalMembershipScore(angle, effectiveAperture float64) float64 {
	if angle <= effectiveAperture {
		return 1
	}
	return math.Exp(-MembershipDecayRate * (angle - effectiveAperture))
}

func TestCanonicalMembershipScore_WorkedExamples(t *testing.T) {
	require.InDelta(t, 0.3679, canonicalMembershipScore(1.0, 0.5), 1e-4)
	require.InDelta(t, 0.1353, canonicalMembershipScore(1.5, 0.5), 1e-4)
}

func TestNewCone_RejectsNonPositiveAperture(t *testing.T) {
	_, err := NewCone(Origin(), 0, 1)
	require.Error(t, err)
	_, err = NewCone(Origin(), -1, 1)
	require.Error(t, err)
}
