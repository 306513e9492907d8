package vectorindex

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hypergraphdb/core/pkg/hgerr"
)

func flatVectors(n, dim int, seed float32) []float32 {
	out := make([]float32, n*dim)
	for i := range out {
		out[i] = seed + float32(i%13)*0.01
	}
	return out
}

func TestConfig_ValidateRejectsBadDimension(t *testing.T) {
	cfg := DefaultConfig(10)
	cfg.PQSegments = 3
	require.Error(t, cfg.Validate())
}

func TestConfig_ValidateRejectsNprobeAboveNlist(t *testing.T) {
	cfg := DefaultConfig(8)
	cfg.Nprobe = cfg.Nlist + 1
	require.Error(t, cfg.Validate())
}

func TestTrain_InsufficientTrainingDataScenario(t *testing.T) {
	cfg := Config{
		Dimension:       8,
		Nlist:           100,
		PQSegments:      8,
		Nprobe:          8,
		MinTrainVectors: 39 * 100,
	}
	require.NoError(t, cfg.Validate())

	idx, err := New(cfg)
	require.NoError(t, err)
	defer idx.Close()

	vectors := flatVectors(3800, cfg.Dimension, 0.1)
	err = idx.Train(vectors)

	var insufficient *hgerr.InsufficientTrainingDataError
	require.True(t, errors.As(err, &insufficient))
	require.Equal(t, 3900, insufficient.Required)
	require.Equal(t, 3800, insufficient.Provided)
}

func TestFaissGpuIndex_LifecycleHappyPath(t *testing.T) {
	cfg := DefaultConfig(8)
	cfg.MinTrainVectors = 39 * cfg.Nlist

	idx, err := New(cfg)
	require.NoError(t, err)
	defer idx.Close()

	require.False(t, idx.IsTrained())

	vectors := flatVectors(cfg.MinTrainVectors, cfg.Dimension, 0.05)
	require.NoError(t, idx.Train(vectors))
	require.True(t, idx.IsTrained())

	ids := make([]int64, cfg.MinTrainVectors)
	for i := range ids {
		ids[i] = int64(i)
	}
	require.NoError(t, idx.AddWithIDs(vectors, ids))
	require.Equal(t, int64(cfg.MinTrainVectors), idx.Ntotal())

	result, err := idx.Search(vectors[:cfg.Dimension], 3)
	require.NoError(t, err)
	require.Equal(t, 1, result.N)
	require.Equal(t, 3, result.K)
	gotIDs, _ := result.Row(0)
	require.Equal(t, int64(0), gotIDs[0])
}

func TestFaissGpuIndex_RejectsOperationsBeforeTraining(t *testing.T) {
	cfg := DefaultConfig(8)

	idx, err := New(cfg)
	require.NoError(t, err)
	defer idx.Close()

	_, err = idx.Search(flatVectors(1, cfg.Dimension, 0), 1)
	require.ErrorIs(t, err, hgerr.ErrIndexNotTrained)

	err = idx.AddWithIDs(flatVectors(1, cfg.Dimension, 0), []int64{1})
	require.ErrorIs(t, err, hgerr.ErrIndexNotTrained)
}

func TestFaissGpuIndex_TrainIsIdempotentOnceTrained(t *testing.T) {
	cfg := DefaultConfig(8)
	cfg.MinTrainVectors = 39 * cfg.Nlist

	idx, err := New(cfg)
	require.NoError(t, err)
	defer idx.Close()

	vectors := flatVectors(cfg.MinTrainVectors, cfg.Dimension, 0.2)
	require.NoError(t, idx.Train(vectors))
	require.NoError(t, idx.Train(vectors[:cfg.Dimension]))
	require.True(t, idx.IsTrained())
}

func TestFaissGpuIndex_SaveLoadRoundTrip(t *testing.T) {
	cfg := DefaultConfig(8)
	cfg.MinTrainVectors = 39 * cfg.Nlist

	idx, err := New(cfg)
	require.NoError(t, err)

	vectors := flatVectors(cfg.MinTrainVectors, cfg.Dimension, 0.3)
	require.NoError(t, idx.Train(vectors))

	ids := make([]int64, cfg.MinTrainVectors)
	for i := range ids {
		ids[i] = int64(i)
	}
	require.NoError(t, idx.AddWithIDs(vectors, ids))

	path := filepath.Join(t.TempDir(), "index.bin")
	require.NoError(t, idx.Save(path))
	require.NoError(t, idx.Close())

	loaded, err := Load(path, cfg)
	require.NoError(t, err)
	defer loaded.Close()

	require.True(t, loaded.IsTrained())
	require.Equal(t, int64(cfg.MinTrainVectors), loaded.Ntotal())
}

func TestLoad_RejectsDimensionMismatch(t *testing.T) {
	cfg := DefaultConfig(8)
	cfg.MinTrainVectors = 39 * cfg.Nlist

	idx, err := New(cfg)
	require.NoError(t, err)

	vectors := flatVectors(cfg.MinTrainVectors, cfg.Dimension, 0.4)
	require.NoError(t, idx.Train(vectors))

	path := filepath.Join(t.TempDir(), "index.bin")
	require.NoError(t, idx.Save(path))
	require.NoError(t, idx.Close())

	wrongCfg := DefaultConfig(16)
	wrongCfg.PQSegments = 8
	wrongCfg.MinTrainVectors = 39 * wrongCfg.Nlist

	_, err = Load(path, wrongCfg)
	var mismatch *hgerr.DimensionMismatchError
	require.True(t, errors.As(err, &mismatch))
}

func TestGpuResources_SharedRefCountAndReleaseOnce(t *testing.T) {
	a, err := AcquireGpuResources(7)
	require.NoError(t, err)
	b, err := AcquireGpuResources(7)
	require.NoError(t, err)

	require.Same(t, a, b)
	require.Equal(t, int64(2), a.RefCount())

	require.NoError(t, a.Release())
	require.Equal(t, int64(1), a.RefCount())
	require.NoError(t, b.Release())
	require.Equal(t, int64(0), b.RefCount())
}
