package graphstore

import (
	"encoding/binary"

	"github.com/hypergraphdb/core/pkg/graph"
)

// Key layout mirrors pkg/storage's BadgerEngine in the teacher codebase: a
// single prefix byte followed by a fixed-width big-endian id, so Badger's
// natural lexicographic key order doubles as a deterministic iteration
// order without needing a secondary index structure.
const (
	prefixNode           byte = 0x01
	prefixEdge           byte = 0x02
	prefixOutgoingIndex  byte = 0x03
)

func nodeKey(id graph.NodeID) []byte {
	key := make([]byte, 9)
	key[0] = prefixNode
	binary.BigEndian.PutUint64(key[1:], uint64(id))
	return key
}

func edgeKey(id uint64) []byte {
	key := make([]byte, 9)
	key[0] = prefixEdge
	binary.BigEndian.PutUint64(key[1:], id)
	return key
}

// outgoingIndexKey orders edges for a source node by edge id ascending,
// giving GetAdjacency a stable per-node order (spec §6) for free.
func outgoingIndexKey(source graph.NodeID, edgeID uint64) []byte {
	key := make([]byte, 17)
	key[0] = prefixOutgoingIndex
	binary.BigEndian.PutUint64(key[1:9], uint64(source))
	binary.BigEndian.PutUint64(key[9:], edgeID)
	return key
}

func outgoingIndexPrefix(source graph.NodeID) []byte {
	key := make([]byte, 9)
	key[0] = prefixOutgoingIndex
	binary.BigEndian.PutUint64(key[1:], uint64(source))
	return key
}
