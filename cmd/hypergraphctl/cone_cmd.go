package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/hypergraphdb/core/pkg/hyperbolic"
)

func newConeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cone",
		Short: "Check entailment-cone containment for a random point",
	}

	var aperture float64
	cmd.Flags().Float64Var(&aperture, "aperture", 0.5, "base cone aperture")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg := hyperbolic.DefaultConfig()
		ball, err := hyperbolic.NewBall(cfg)
		if err != nil {
			return err
		}

		apex := randomPoint()
		point := randomPoint()

		cone, err := hyperbolic.NewCone(apex, aperture, 1)
		if err != nil {
			return err
		}

		contains := cone.Contains(ball, point)
		score := cone.MembershipScore(ball, point)
		fmt.Printf("contains=%v membership_score=%.4f effective_aperture=%.4f\n",
			contains, score, cone.EffectiveAperture())
		return nil
	}

	return cmd
}

func randomPoint() hyperbolic.Point {
	coords := make([]float64, hyperbolic.Dim)
	for i := range coords {
		coords[i] = (rand.Float64() - 0.5) * 0.1
	}
	p, _ := hyperbolic.NewPoint(coords)
	return p
}
