package vectorindex

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/hypergraphdb/core/pkg/hgerr"
)

// FaissGpuIndex owns a native GPU index handle exclusively and enforces the
// trained/untrained state machine from spec §4.5. It may be searched
// concurrently by any number of readers; train, add, save, and load each
// require exclusive access, mirroring pkg/gpu.Manager's
// "mu sync.RWMutex + atomic enabled flag" discipline in the teacher
// codebase.
type FaissGpuIndex struct {
	cfg       Config
	resources *GpuResources
	native    nativeIndex

	mu        sync.RWMutex
	trained   atomic.Bool
	closeOnce sync.Once
}

// New allocates GPU resources, builds a brute-force native index of
// cfg.Dimension, and returns an Untrained index. cfg's factory string is not
// consulted: the native index has no IVF lists or PQ codes.
func New(cfg Config) (*FaissGpuIndex, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	resources, err := AcquireGpuResources(cfg.GpuID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", hgerr.ErrGpuResourceAllocation, err)
	}

	native := newBruteForceNativeIndex(cfg.Dimension)

	return &FaissGpuIndex{
		cfg:       cfg,
		resources: resources,
		native:    native,
	}, nil
}

// IsTrained reports whether the index has completed training. It is safe
// to call from any thread that synchronized with a prior Train call.
func (idx *FaissGpuIndex) IsTrained() bool {
	return idx.trained.Load()
}

// Config returns the index's validated configuration.
func (idx *FaissGpuIndex) Config() Config { return idx.cfg }

// Train moves the index from Untrained to Trained. It requires at least
// cfg.MinTrainVectors vectors and is idempotent once trained: a second call
// returns nil without retraining or regressing the trained flag.
func (idx *FaissGpuIndex) Train(vectors []float32) error {
	if idx.trained.Load() {
		return nil
	}

	n := len(vectors) / idx.cfg.Dimension
	if n < idx.cfg.MinTrainVectors {
		return &hgerr.InsufficientTrainingDataError{
			Required: idx.cfg.MinTrainVectors,
			Provided: n,
		}
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	if err := idx.native.train(vectors); err != nil {
		return fmt.Errorf("%w: %v", hgerr.ErrFaissTrainingFailed, err)
	}
	if err := idx.native.setNprobe(idx.cfg.Nprobe); err != nil {
		return fmt.Errorf("%w: %v", hgerr.ErrFaissTrainingFailed, err)
	}

	idx.trained.Store(true)
	return nil
}

// AddWithIDs inserts vectors under caller-supplied ids. Allowed only once
// trained.
func (idx *FaissGpuIndex) AddWithIDs(vectors []float32, ids []int64) error {
	if !idx.trained.Load() {
		return hgerr.ErrIndexNotTrained
	}
	if len(vectors)/idx.cfg.Dimension != len(ids) {
		return hgerr.ErrInvalidConfig
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	if err := idx.native.addWithIDs(vectors, ids); err != nil {
		return fmt.Errorf("%w: %v", hgerr.ErrFaissAddFailed, err)
	}
	return nil
}

// Search finds the k nearest neighbors for each row of queries. Allowed
// only once trained; idempotent and side-effect-free.
func (idx *FaissGpuIndex) Search(queries []float32, k int) (SearchResult, error) {
	if !idx.trained.Load() {
		return SearchResult{}, hgerr.ErrIndexNotTrained
	}
	if len(queries)%idx.cfg.Dimension != 0 {
		return SearchResult{}, hgerr.ErrInvalidConfig
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	n := len(queries) / idx.cfg.Dimension
	ids, distances, err := idx.native.search(queries, k)
	if err != nil {
		return SearchResult{}, fmt.Errorf("%w: %v", hgerr.ErrFaissSearchFailed, err)
	}

	return SearchResult{N: n, K: k, IDs: ids, Distances: distances}, nil
}

// Ntotal returns the number of vectors currently stored in the index.
func (idx *FaissGpuIndex) Ntotal() int64 {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.native.ntotal()
}

// Save writes the current state (trained or not) to path plus a metadata
// sidecar.
func (idx *FaissGpuIndex) Save(path string) error {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	body, err := idx.native.writeIndex()
	if err != nil {
		return fmt.Errorf("%w: %v", hgerr.ErrSerialization, err)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("writing index body: %w", err)
	}

	return writeMetaSidecar(path, metaSidecar{Config: idx.cfg, Trained: idx.trained.Load()})
}

// Load loads a previously saved index. cfg.Dimension must match the
// persisted index's dimension.
func Load(path string, cfg Config) (*FaissGpuIndex, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	meta, err := readMetaSidecar(path)
	if err != nil {
		return nil, &hgerr.StorageOpenError{Path: path, Cause: err}
	}
	if meta.Config.Dimension != cfg.Dimension {
		return nil, &hgerr.DimensionMismatchError{Expected: cfg.Dimension, Actual: meta.Config.Dimension}
	}

	body, err := os.ReadFile(path)
	if err != nil {
		return nil, &hgerr.StorageOpenError{Path: path, Cause: err}
	}

	resources, err := AcquireGpuResources(cfg.GpuID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", hgerr.ErrGpuResourceAllocation, err)
	}

	native := newBruteForceNativeIndex(cfg.Dimension)
	if err := native.readIndex(body); err != nil {
		resources.Release()
		return nil, err
	}

	idx := &FaissGpuIndex{
		cfg:       cfg,
		resources: resources,
		native:    native,
	}
	idx.trained.Store(native.isTrained())
	return idx, nil
}

// Close releases the index's GPU resources exactly once.
func (idx *FaissGpuIndex) Close() error {
	var err error
	idx.closeOnce.Do(func() {
		err = idx.resources.Release()
	})
	return err
}
