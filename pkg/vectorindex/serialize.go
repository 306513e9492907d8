package vectorindex

import (
	"encoding/binary"
	"math"

	"github.com/hypergraphdb/core/pkg/hgerr"
)

// writeIndex serializes the index to bytes: a small header followed by the
// flat id and vector arrays, the same layout style as pkg/gpu's
// EmbeddingIndex.Serialize in the teacher codebase (header, then
// length-prefixed payload, all little-endian).
func (n *bruteForceNativeIndex) writeIndex() ([]byte, error) {
	count := len(n.ids)
	size := 4 + 4 + 4 + 1 + count*8 + count*n.dim*4
	buf := make([]byte, size)
	offset := 0

	binary.LittleEndian.PutUint32(buf[offset:], uint32(n.dim))
	offset += 4
	binary.LittleEndian.PutUint32(buf[offset:], uint32(count))
	offset += 4
	binary.LittleEndian.PutUint32(buf[offset:], uint32(n.nprobe))
	offset += 4
	if n.trained {
		buf[offset] = 1
	}
	offset++

	for _, id := range n.ids {
		binary.LittleEndian.PutUint64(buf[offset:], uint64(id))
		offset += 8
	}
	for _, v := range n.vectors {
		binary.LittleEndian.PutUint32(buf[offset:], math.Float32bits(v))
		offset += 4
	}

	return buf, nil
}

// readIndex loads a previously written index, inspecting the persisted
// trained flag so FaissGpuIndex.Load can restore the correct state-machine
// state (spec §4.5).
func (n *bruteForceNativeIndex) readIndex(data []byte) error {
	const headerSize = 4 + 4 + 4 + 1
	if len(data) < headerSize {
		return &hgerr.CorruptedDataError{Location: "index header", Details: "truncated"}
	}

	offset := 0
	dim := int(binary.LittleEndian.Uint32(data[offset:]))
	offset += 4
	count := int(binary.LittleEndian.Uint32(data[offset:]))
	offset += 4
	nprobe := int(binary.LittleEndian.Uint32(data[offset:]))
	offset += 4
	trained := data[offset] == 1
	offset++

	expected := headerSize + count*8 + count*dim*4
	if len(data) != expected {
		return &hgerr.CorruptedDataError{Location: "index body", Details: "length mismatch"}
	}

	ids := make([]int64, count)
	for i := range ids {
		ids[i] = int64(binary.LittleEndian.Uint64(data[offset:]))
		offset += 8
	}
	vectors := make([]float32, count*dim)
	for i := range vectors {
		vectors[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[offset:]))
		offset += 4
	}

	n.dim = dim
	n.nprobe = nprobe
	n.trained = trained
	n.ids = ids
	n.vectors = vectors
	return nil
}
