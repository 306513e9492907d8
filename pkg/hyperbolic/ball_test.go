package hyperbolic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomPoint(t *testing.T, scale float64) Point {
	t.Helper()
	coords := make([]float64, Dim)
	for i := range coords {
		coords[i] = scale * (float64(i%7) - 3) / 10
	}
	p, err := NewPoint(coords)
	require.NoError(t, err)
	return p
}

func TestDistance_SelfIsZero(t *testing.T) {
	ball, err := NewBall(DefaultConfig())
	require.NoError(t, err)

	x := randomPoint(t, 1)
	require.InDelta(t, 0, ball.Distance(x, x), 1e-6)
}

func TestDistance_Symmetric(t *testing.T) {
	ball, err := NewBall(DefaultConfig())
	require.NoError(t, err)

	x := randomPoint(t, 1)
	y := randomPoint(t, 2)

	require.InDelta(t, ball.Distance(x, y), ball.Distance(y, x), 1e-6)
}

func TestDistance_NonNegative(t *testing.T) {
	ball, err := NewBall(DefaultConfig())
	require.NoError(t, err)

	x := randomPoint(t, 1)
	y := randomPoint(t, 3)
	require.GreaterOrEqual(t, ball.Distance(x, y), 0.0)
}

func TestExpLogMap_RoundTrip(t *testing.T) {
	ball, err := NewBall(DefaultConfig())
	require.NoError(t, err)

	// scale 1 gives norm ~1.62, outside the ball; 0.1 and 0.2 stay well inside.
	x := randomPoint(t, 0.1)
	y := randomPoint(t, 0.2)

	v := ball.LogMap(x, y)
	yPrime := ball.ExpMap(x, v)

	var diffSq float64
	for i := range y {
		d := y[i] - yPrime[i]
		diffSq += d * d
	}
	require.Less(t, math.Sqrt(diffSq), 1e-4)
}

func TestLogExpMap_RoundTrip(t *testing.T) {
	ball, err := NewBall(DefaultConfig())
	require.NoError(t, err)

	x := randomPoint(t, 0.1)
	v := randomPoint(t, 0.3)

	y := ball.ExpMap(x, v)
	vPrime := ball.LogMap(x, y)

	var diffSq float64
	for i := range v {
		d := v[i] - vPrime[i]
		diffSq += d * d
	}
	require.Less(t, math.Sqrt(diffSq), 1e-4)
}

func TestMobiusAdd_StaysInBall(t *testing.T) {
	ball, err := NewBall(DefaultConfig())
	require.NoError(t, err)

	x := randomPoint(t, 1)
	y := randomPoint(t, 1)

	result := ball.MobiusAdd(x, y)
	require.Less(t, result.Norm(), 1.0)
}

func TestConfig_ValidateRejectsNonNegativeCurvature(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Curvature = 0
	require.Error(t, cfg.Validate())
}

func TestConfig_ValidateRejectsBadMaxNorm(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxNorm = 1.5
	require.Error(t, cfg.Validate())
}
