// Package traversal implements BFS, shortest-path, and neighborhood queries
// over an adjacency provider, consuming graph.Edge's neuromodulated weight
// to filter and bias expansion.
package traversal

import (
	"github.com/hypergraphdb/core/pkg/graph"
	"github.com/hypergraphdb/core/pkg/neuromod"
)

// Params configures a BFS traversal. Traverse uses every field as given and
// substitutes no defaults for zero values (a zero MaxNodes records no nodes);
// start from DefaultParams to get the defaults.
type Params struct {
	MaxDepth  int
	MaxNodes  int
	EdgeTypes map[graph.EdgeType]struct{} // nil means "no filter"

	// DomainFilter selects the query domain used to compute an edge's
	// modulated weight. A nil pointer means "no filter": the edge's raw
	// Weight is compared against MinWeight instead.
	DomainFilter *neuromod.Domain
	MinWeight    float32
	IncludeEdges bool

	// RecordTraversal exists per the upstream source but its effect on
	// edges (incrementing a traversal counter) is ambiguous there; this
	// implementation surfaces it as a documented no-op rather than guess
	// at semantics. TODO: wire up per-edge traversal counters once the
	// intended counter semantics are specified.
	RecordTraversal bool
}

// DefaultParams returns spec's defaults: max_depth=6, max_nodes=10000, no
// edge-type or domain filter, min_weight=0.0, include_edges=true,
// record_traversal=false.
func DefaultParams() Params {
	return Params{
		MaxDepth:     6,
		MaxNodes:     10_000,
		IncludeEdges: true,
	}
}
