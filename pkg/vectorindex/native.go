package vectorindex

// nativeIndex models the per-index part of the C-ABI surface spec §6
// describes: train, add_with_ids, search, set_nprobe, ntotal, write_index,
// read_index, plus an is_trained query. index_factory, cpu_to_gpu and free
// have no counterpart here: New and Load construct the index directly, and
// there is no native handle to free. other_examples' faiss-go binding wraps
// these calls over cgo "faiss_*" symbols returning an integer status; here
// the surface is a plain Go interface so the core builds without cgo or a
// GPU, and bruteForceNativeIndex below is the pure-Go stand-in for the real
// CUDA-backed FAISS library.
//
// All buffers are caller-owned, row-major, densely packed float32 or int64,
// exactly as spec §6 requires of the native surface.
type nativeIndex interface {
	isTrained() bool
	train(vectors []float32) error
	addWithIDs(vectors []float32, ids []int64) error
	search(queries []float32, k int) (ids []int64, distances []float32, err error)
	setNprobe(nprobe int) error
	ntotal() int64
	writeIndex() ([]byte, error)
	readIndex(data []byte) error
}

// bruteForceNativeIndex is an exact, cgo-free L2 nearest-neighbor engine
// standing in for a real FAISS GPU index. It records the trained flag but
// does not check it itself (FaissGpuIndex enforces the trained gate), honors
// the same buffer contracts as the real native surface, and visits every
// stored vector per query instead of using IVF lists — a documented reference
// simplification (SPEC_FULL.md §4.5), not a contract violation.
type bruteForceNativeIndex struct {
	dim     int
	trained bool
	nprobe  int

	ids     []int64
	vectors []float32 // row-major, len == len(ids)*dim
}

func newBruteForceNativeIndex(dim int) *bruteForceNativeIndex {
	return &bruteForceNativeIndex{dim: dim}
}

func (n *bruteForceNativeIndex) isTrained() bool { return n.trained }

func (n *bruteForceNativeIndex) train(vectors []float32) error {
	n.trained = true
	return nil
}

func (n *bruteForceNativeIndex) addWithIDs(vectors []float32, ids []int64) error {
	n.ids = append(n.ids, ids...)
	n.vectors = append(n.vectors, vectors...)
	return nil
}

func (n *bruteForceNativeIndex) search(queries []float32, k int) ([]int64, []float32, error) {
	numQueries := len(queries) / n.dim
	numStored := len(n.ids)

	outIDs := make([]int64, numQueries*k)
	outDist := make([]float32, numQueries*k)

	for qi := 0; qi < numQueries; qi++ {
		q := queries[qi*n.dim : (qi+1)*n.dim]

		type hit struct {
			id   int64
			dist float32
		}
		hits := make([]hit, numStored)
		for si := 0; si < numStored; si++ {
			v := n.vectors[si*n.dim : (si+1)*n.dim]
			hits[si] = hit{id: n.ids[si], dist: l2Squared(q, v)}
		}

		// Partial selection sort for the top k — numStored is expected to
		// be small in the reference path; a real GPU kernel does this in
		// parallel across all stored vectors.
		limit := k
		if limit > len(hits) {
			limit = len(hits)
		}
		for i := 0; i < limit; i++ {
			minIdx := i
			for j := i + 1; j < len(hits); j++ {
				if hits[j].dist < hits[minIdx].dist {
					minIdx = j
				}
			}
			hits[i], hits[minIdx] = hits[minIdx], hits[i]
		}

		for i := 0; i < k; i++ {
			base := qi*k + i
			if i < limit {
				outIDs[base] = hits[i].id
				outDist[base] = hits[i].dist
			} else {
				outIDs[base] = -1
				outDist[base] = 0
			}
		}
	}

	return outIDs, outDist, nil
}

func (n *bruteForceNativeIndex) setNprobe(nprobe int) error {
	n.nprobe = nprobe
	return nil
}

func (n *bruteForceNativeIndex) ntotal() int64 { return int64(len(n.ids)) }

func l2Squared(a, b []float32) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
