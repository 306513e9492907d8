package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/hypergraphdb/core/pkg/embedding"
	"github.com/hypergraphdb/core/pkg/vectorindex"
)

func newIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Exercise a FaissGpuIndex end to end: train, add, search",
	}

	var dim, nlist, n, k int
	cmd.Flags().IntVar(&dim, "dim", embedding.DefaultEmbeddingDim, "vector dimension")
	cmd.Flags().IntVar(&nlist, "nlist", 4, "number of IVF lists (small for a demo run)")
	cmd.Flags().IntVar(&n, "n", 200, "number of random vectors to add")
	cmd.Flags().IntVar(&k, "k", 5, "neighbors to return")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg := vectorindex.Config{
			Dimension:       dim,
			Nlist:           nlist,
			PQSegments:      8,
			Nprobe:          nlist,
			MinTrainVectors: 39 * nlist, // the smallest value Config.Validate accepts
			GpuID:           0,
		}

		idx, err := vectorindex.New(cfg)
		if err != nil {
			return fmt.Errorf("creating index: %w", err)
		}
		defer idx.Close()

		train := randomVectors(n, dim)
		if err := idx.Train(train); err != nil {
			return fmt.Errorf("training: %w", err)
		}

		ids := make([]int64, n)
		for i := range ids {
			ids[i] = int64(i)
		}
		if err := idx.AddWithIDs(train, ids); err != nil {
			return fmt.Errorf("adding vectors: %w", err)
		}

		query := randomVectors(1, dim)
		result, err := idx.Search(query, k)
		if err != nil {
			return fmt.Errorf("searching: %w", err)
		}

		resultIDs, dists := result.Row(0)
		fmt.Printf("trained=%v ntotal=%d factory=%s\n", idx.IsTrained(), idx.Ntotal(), cfg.FactoryString())
		for i, id := range resultIDs {
			fmt.Printf("  %d: id=%d distance=%.4f\n", i, id, dists[i])
		}
		return nil
	}

	return cmd
}

func randomVectors(n, dim int) []float32 {
	out := make([]float32, n*dim)
	for i := range out {
		out[i] = rand.Float32()
	}
	return out
}
