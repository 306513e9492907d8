package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hypergraphdb/core/pkg/graph"
	"github.com/hypergraphdb/core/pkg/graphstore"
	"github.com/hypergraphdb/core/pkg/hyperbolic"
	"github.com/hypergraphdb/core/pkg/neuromod"
	"github.com/hypergraphdb/core/pkg/traversal"
)

func newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Run a BFS traversal over a Badger-backed demo graph",
	}

	var dataDir string
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "Badger directory; empty runs in-memory")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		var store *graphstore.BadgerAdjacencyStore
		var err error
		if dataDir == "" {
			store, err = graphstore.OpenInMemory()
		} else {
			store, err = graphstore.Open(dataDir)
		}
		if err != nil {
			return fmt.Errorf("opening graph store: %w", err)
		}
		defer store.Close()

		if err := seedDemoGraph(store); err != nil {
			return fmt.Errorf("seeding demo graph: %w", err)
		}

		result, err := traversal.Traverse(store, 1, traversal.DefaultParams())
		if err != nil {
			return fmt.Errorf("traversing: %w", err)
		}

		fmt.Printf("visited %d nodes (max_depth_reached=%d truncated=%v)\n",
			len(result.Nodes), result.MaxDepthReached, result.Truncated)
		for _, n := range result.Nodes {
			fmt.Printf("  node %d\n", n)
		}
		return nil
	}

	return cmd
}

func newEntailsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entails apex-id candidate-id",
		Short: "Check whether candidate-id is entailed by apex-id's hierarchy cone",
		Args:  cobra.ExactArgs(2),
	}

	var aperture float64
	cmd.Flags().Float64Var(&aperture, "aperture", 0.5, "base cone aperture")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		var apexID, candidateID graph.NodeID
		if _, err := fmt.Sscanf(args[0], "%d", &apexID); err != nil {
			return fmt.Errorf("parsing apex-id: %w", err)
		}
		if _, err := fmt.Sscanf(args[1], "%d", &candidateID); err != nil {
			return fmt.Errorf("parsing candidate-id: %w", err)
		}

		store, err := graphstore.OpenInMemory()
		if err != nil {
			return fmt.Errorf("opening graph store: %w", err)
		}
		defer store.Close()

		if err := seedDemoGraph(store); err != nil {
			return fmt.Errorf("seeding demo graph: %w", err)
		}

		apexNode, err := store.GetNode(apexID)
		if err != nil {
			return fmt.Errorf("loading apex node: %w", err)
		}
		candidateNode, err := store.GetNode(candidateID)
		if err != nil {
			return fmt.Errorf("loading candidate node: %w", err)
		}

		ball, err := hyperbolic.NewBall(hyperbolic.DefaultConfig())
		if err != nil {
			return err
		}

		contained, err := graph.Entails(ball, apexNode, candidateNode, aperture)
		if err != nil {
			return fmt.Errorf("checking entailment: %w", err)
		}

		fmt.Printf("node %d entails node %d: %v\n", apexID, candidateID, contained)
		return nil
	}

	return cmd
}

// seedDemoGraph loads the fixed tree from spec §8: 1->{2,3}; 2->{4,5}; 3->{6,7}.
// Each node is also placed in the Poincaré ball along its branch's axis, with
// radius shrinking toward the origin as depth increases: spec §4.2's cone
// formula measures a point against the axis from apex toward the origin, so
// a shallower node's cone contains its own deeper descendants on the same
// branch, giving `entails` a concrete graph to check against.
func seedDemoGraph(store *graphstore.BadgerAdjacencyStore) error {
	tree := map[graph.NodeID][]graph.NodeID{
		1: {2, 3},
		2: {4, 5},
		3: {6, 7},
	}
	radius := map[graph.NodeID]float64{1: 0, 2: 0.2, 3: 0.2, 4: 0.1, 5: 0.1, 6: 0.1, 7: 0.1}
	direction := map[graph.NodeID]float64{1: 0, 2: 1, 3: -1, 4: 1, 5: 1, 6: -1, 7: -1}

	for id := graph.NodeID(1); id <= 7; id++ {
		node := graph.NewNode(id, []string{"Concept"})
		coords := make([]float64, hyperbolic.Dim)
		coords[0] = direction[id] * radius[id]
		point, err := hyperbolic.NewPoint(coords)
		if err != nil {
			return err
		}
		node.HyperbolicPoint = &point
		if err := store.UpsertNode(node); err != nil {
			return err
		}
	}

	var edgeID uint64
	for source, targets := range tree {
		for _, target := range targets {
			edgeID++
			edge := &graph.Edge{
				ID:     edgeID,
				Source: source,
				Target: target,
				Type:   graph.EdgeHierarchical,
				Weight: 1.0,
				Domain: neuromod.DomainGeneral,
			}
			if err := store.UpsertEdge(edge); err != nil {
				return err
			}
		}
	}
	return nil
}
