// Package vectorindex wraps an IVF-PQ-configured vector index behind a
// trained/untrained state machine, the way pkg/gpu.Manager in the teacher
// codebase wraps optional GPU acceleration behind a Config/Manager pair. The
// shipped native layer is an exact, in-memory brute-force search (see
// native.go), not a GPU-resident IVF-PQ structure.
package vectorindex

import (
	"fmt"

	"github.com/hypergraphdb/core/pkg/hgerr"
)

// minTrainMultiplier is FAISS's k-means minimum: at least 39 training
// vectors per cluster.
const minTrainMultiplier = 39

// Config describes a validated IVF-PQ index layout.
type Config struct {
	Dimension       int
	Nlist           int
	PQSegments      int
	Nprobe          int
	MinTrainVectors int
	GpuID           uint32
}

// DefaultConfig returns a configuration for vectors of the given dimension
// (embedding.DefaultEmbeddingDim for the canonical embedding), sized for a
// moderate index. The dimension must be a multiple of its 8 PQ segments.
func DefaultConfig(dimension int) Config {
	nlist := 100
	return Config{
		Dimension:       dimension,
		Nlist:           nlist,
		PQSegments:      8,
		Nprobe:          8,
		MinTrainVectors: minTrainMultiplier * nlist,
		GpuID:           0,
	}
}

// Validate checks dimension % pq_segments == 0, nprobe <= nlist, and
// min_train_vectors >= 39 * nlist.
func (c Config) Validate() error {
	if c.Dimension <= 0 || c.PQSegments <= 0 {
		return hgerr.ErrInvalidConfig
	}
	if c.Dimension%c.PQSegments != 0 {
		return hgerr.ErrInvalidConfig
	}
	if c.Nlist <= 0 {
		return hgerr.ErrInvalidConfig
	}
	if c.Nprobe <= 0 || c.Nprobe > c.Nlist {
		return hgerr.ErrInvalidConfig
	}
	if c.MinTrainVectors < minTrainMultiplier*c.Nlist {
		return hgerr.ErrInvalidConfig
	}
	return nil
}

// FactoryString describes the IVF-PQ layout the way FAISS's index_factory
// mini-language would: "IVF<nlist>,PQ<pq_segments>".
func (c Config) FactoryString() string {
	return fmt.Sprintf("IVF%d,PQ%d", c.Nlist, c.PQSegments)
}
