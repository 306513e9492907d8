package traversal

import "github.com/hypergraphdb/core/pkg/graph"

// AdjacencyProvider exposes get_adjacency(node) -> edges per spec §6. It
// must return edges in a stable order per node; errors propagate to the
// caller as storage errors. graphstore.BadgerAdjacencyStore is the shipped
// implementation; MapAdjacency below is the in-memory fixture used by
// tests and the fixed-tree scenarios in spec §8.
type AdjacencyProvider interface {
	GetAdjacency(node graph.NodeID) ([]graph.Edge, error)
}

// MapAdjacency is a read-only, in-memory AdjacencyProvider backed by a
// plain map, used to exercise traversal without a storage engine.
type MapAdjacency map[graph.NodeID][]graph.Edge

// GetAdjacency returns the edges stored for node in insertion order,
// satisfying the stable-order contract.
func (m MapAdjacency) GetAdjacency(node graph.NodeID) ([]graph.Edge, error) {
	return m[node], nil
}
