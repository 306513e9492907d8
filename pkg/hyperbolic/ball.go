package hyperbolic

import "math"

// Ball performs Möbius algebra on the Poincaré ball described by its
// Config. Every operation takes points by value and returns new points; no
// operation mutates its arguments.
type Ball struct {
	cfg Config
}

// NewBall validates cfg and returns a Ball bound to it.
func NewBall(cfg Config) (*Ball, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Ball{cfg: cfg}, nil
}

// Config returns the ball's parameters.
func (b *Ball) Config() Config { return b.cfg }

// MobiusAdd computes x ⊕ y per spec §4.1 and projects the result back
// inside the open ball.
func (b *Ball) MobiusAdd(x, y Point) Point {
	c := b.cfg.AbsCurvature()
	xy := x.Dot(y)
	xx := x.NormSquared()
	yy := y.NormSquared()

	alpha := 1 + 2*c*xy + c*yy
	beta := 1 - c*xx
	delta := 1 + 2*c*xy + c*c*xx*yy
	if delta == 0 {
		delta = b.cfg.Eps
	}

	result := x.Scale(alpha).Add(y.Scale(beta)).Scale(1 / delta)
	return result.Project(b.cfg)
}

// Distance computes the hyperbolic distance between x and y. It is
// symmetric and non-negative, returning 0 when x == y within eps.
func (b *Ball) Distance(x, y Point) float64 {
	c := b.cfg.AbsCurvature()
	eps := b.cfg.Eps

	diffNormSq := x.Sub(y).NormSquared()
	if diffNormSq < eps*eps {
		return 0
	}

	xx := x.NormSquared()
	yy := y.NormSquared()
	denom := (1 - c*xx) * (1 - c*yy)
	if denom < eps {
		denom = eps
	}

	arg := math.Sqrt(c * diffNormSq / denom)
	if arg > 1-eps {
		arg = 1 - eps
	}

	return (2 / math.Sqrt(c)) * math.Atanh(arg)
}

// ExpMap transports the tangent vector v at x onto the ball.
func (b *Ball) ExpMap(x, v Point) Point {
	c := b.cfg.AbsCurvature()
	eps := b.cfg.Eps

	vNorm := v.Norm()
	if vNorm < eps {
		return x
	}

	lambdaX := 1 - c*x.NormSquared()
	s := math.Sqrt(c) * vNorm / lambdaX
	t := v.Scale(math.Tanh(s) / (math.Sqrt(c) * vNorm))

	return b.MobiusAdd(x, t)
}

// LogMap computes the tangent vector at x that exp_map would carry to y.
func (b *Ball) LogMap(x, y Point) Point {
	c := b.cfg.AbsCurvature()
	eps := b.cfg.Eps

	w := b.MobiusAdd(x.Negate(), y)
	wNorm := w.Norm()
	if wNorm < eps {
		return Point{}
	}

	lambdaX := 1 - c*x.NormSquared()
	arg := math.Sqrt(c) * wNorm
	if arg > 1-eps {
		arg = 1 - eps
	}
	factor := (lambdaX / math.Sqrt(c)) * math.Atanh(arg)

	return w.Scale(factor / wNorm)
}
