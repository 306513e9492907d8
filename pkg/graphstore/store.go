// Package graphstore provides the persisted adjacency backend consumed by
// pkg/traversal: a Badger-backed implementation of the spec's
// get_adjacency(node) -> edges contract, grounded on pkg/storage's
// BadgerEngine key-encoding scheme in the teacher codebase.
package graphstore

import (
	"encoding/json"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/hypergraphdb/core/pkg/graph"
	"github.com/hypergraphdb/core/pkg/hgerr"
)

// BadgerAdjacencyStore persists graph nodes and edges in an embedded
// Badger database and implements traversal.AdjacencyProvider.
type BadgerAdjacencyStore struct {
	db *badger.DB
}

// Open opens (or creates) a Badger database rooted at path.
func Open(path string) (*BadgerAdjacencyStore, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, &hgerr.StorageOpenError{Path: path, Cause: err}
	}
	return &BadgerAdjacencyStore{db: db}, nil
}

// OpenInMemory opens a Badger database with no on-disk footprint, for
// tests and ephemeral traversal fixtures.
func OpenInMemory() (*BadgerAdjacencyStore, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, &hgerr.StorageOpenError{Path: "<memory>", Cause: err}
	}
	return &BadgerAdjacencyStore{db: db}, nil
}

// Close releases the underlying Badger database.
func (s *BadgerAdjacencyStore) Close() error {
	return s.db.Close()
}

// UpsertNode writes (or overwrites) a node record.
func (s *BadgerAdjacencyStore) UpsertNode(node *graph.Node) error {
	data, err := json.Marshal(node)
	if err != nil {
		return fmt.Errorf("%w: %v", hgerr.ErrSerialization, err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(nodeKey(node.ID), data)
	})
}

// GetNode reads a node record by id.
func (s *BadgerAdjacencyStore) GetNode(id graph.NodeID) (*graph.Node, error) {
	var node graph.Node
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(nodeKey(id))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return hgerr.ErrNodeNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &node)
		})
	})
	if err != nil {
		return nil, err
	}
	return &node, nil
}

// UpsertEdge writes the edge record and its outgoing-adjacency index entry.
func (s *BadgerAdjacencyStore) UpsertEdge(edge *graph.Edge) error {
	data, err := json.Marshal(edge)
	if err != nil {
		return fmt.Errorf("%w: %v", hgerr.ErrSerialization, err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(edgeKey(edge.ID), data); err != nil {
			return err
		}
		return txn.Set(outgoingIndexKey(edge.Source, edge.ID), data)
	})
}

// GetAdjacency returns the outgoing edges of node in ascending edge-id
// order, the stable per-node order spec §6 requires of an adjacency
// provider.
func (s *BadgerAdjacencyStore) GetAdjacency(node graph.NodeID) ([]graph.Edge, error) {
	var edges []graph.Edge

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := outgoingIndexPrefix(node)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var edge graph.Edge
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &edge)
			}); err != nil {
				return fmt.Errorf("%w: %v", hgerr.ErrDeserialization, err)
			}
			edges = append(edges, edge)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", hgerr.ErrStorage, err)
	}
	return edges, nil
}

var _ interface {
	GetAdjacency(graph.NodeID) ([]graph.Edge, error)
} = (*BadgerAdjacencyStore)(nil)
