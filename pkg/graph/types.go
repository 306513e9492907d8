// Package graph defines the typed property-graph primitives — node and edge
// records — that traversal and graphstore operate on.
package graph

import (
	"github.com/google/uuid"

	"github.com/hypergraphdb/core/pkg/hyperbolic"
)

// NodeID identifies a node in the persisted graph. It is the key used for
// Badger ordering in graphstore, distinct from a Node's stable ExternalID.
type NodeID uint64

// EdgeType is a closed enumeration of the relationship kinds an edge can
// carry.
type EdgeType string

const (
	EdgeSemantic     EdgeType = "semantic"
	EdgeHierarchical EdgeType = "hierarchical" // is-a
	EdgeCausal       EdgeType = "causal"
	EdgeTemporal     EdgeType = "temporal"
	EdgeReference    EdgeType = "reference"
)

// Node is a persisted graph node: an id, a label set, arbitrary properties,
// an optional dense embedding used to seed vector-index entries, and an
// optional hyperbolic coordinate used to anchor or test entailment cones.
type Node struct {
	ID         NodeID
	ExternalID string // stable across re-ingestion; NodeID is only storage-local
	Labels     []string
	Properties map[string]any
	Embedding  []float32

	// HyperbolicPoint is nil for nodes never placed in the Poincaré ball.
	// When present it is the apex or evaluee of an EntailmentCone keyed on
	// this node's id.
	HyperbolicPoint *hyperbolic.Point
}

// NewNode builds a Node with a freshly generated ExternalID, the way an
// ingestion pipeline would stamp a stable identifier onto a record before
// assigning it a storage-local NodeID.
func NewNode(id NodeID, labels []string) *Node {
	return &Node{
		ID:         id,
		ExternalID: uuid.NewString(),
		Labels:     labels,
		Properties: map[string]any{},
	}
}
