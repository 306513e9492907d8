package traversal

import (
	"fmt"

	"github.com/hypergraphdb/core/pkg/graph"
	"github.com/hypergraphdb/core/pkg/hgerr"
)

// Result is the outcome of a BFS traversal: every node visited in BFS
// order, the edges that were followed (if Params.IncludeEdges), per-depth
// counts, the deepest level actually reached, and whether MaxNodes cut the
// traversal short.
type Result struct {
	Nodes           []graph.NodeID
	Edges           []graph.Edge
	DepthCounts     map[int]int
	MaxDepthReached int
	Truncated       bool
}

type queueItem struct {
	node  graph.NodeID
	depth int
}

// Traverse runs a breadth-first traversal from start per spec §4.6: each
// node is visited at most once, nodes[0] == start, and depths are
// nondecreasing in queue order.
func Traverse(adj AdjacencyProvider, start graph.NodeID, params Params) (*Result, error) {
	result := &Result{DepthCounts: make(map[int]int)}

	visited := map[graph.NodeID]bool{start: true}
	queue := []queueItem{{node: start, depth: 0}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		if len(result.Nodes) >= params.MaxNodes {
			result.Truncated = true
			break
		}

		result.Nodes = append(result.Nodes, item.node)
		result.DepthCounts[item.depth]++
		if item.depth > result.MaxDepthReached {
			result.MaxDepthReached = item.depth
		}

		if item.depth == params.MaxDepth {
			continue
		}

		outEdges, err := adj.GetAdjacency(item.node)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", hgerr.ErrStorage, err)
		}

		for _, e := range outEdges {
			if params.EdgeTypes != nil {
				if _, ok := params.EdgeTypes[e.Type]; !ok {
					continue
				}
			}

			var w float32
			if params.DomainFilter != nil {
				w = e.ModulatedWeight(*params.DomainFilter)
			} else {
				w = e.Weight
			}
			if w < params.MinWeight {
				continue
			}

			if visited[e.Target] {
				continue
			}
			visited[e.Target] = true
			queue = append(queue, queueItem{node: e.Target, depth: item.depth + 1})
			if params.IncludeEdges {
				result.Edges = append(result.Edges, e)
			}
		}
	}

	return result, nil
}

// Neighborhood is equivalent to Traverse with edges discarded, returning
// only the reachable node list within maxDistance hops.
func Neighborhood(adj AdjacencyProvider, start graph.NodeID, maxDistance int) ([]graph.NodeID, error) {
	params := DefaultParams()
	params.MaxDepth = maxDistance
	params.IncludeEdges = false

	result, err := Traverse(adj, start, params)
	if err != nil {
		return nil, err
	}
	return result.Nodes, nil
}

// ShortestPath runs a BFS recording parents and returns the path from start
// to target, inclusive, or nil if target is unreachable within maxDepth.
// Returns [start] when start == target. Ties are broken by adjacency order
// of the first discoverer.
func ShortestPath(adj AdjacencyProvider, start, target graph.NodeID, maxDepth int) ([]graph.NodeID, error) {
	if start == target {
		return []graph.NodeID{start}, nil
	}

	parent := map[graph.NodeID]graph.NodeID{}
	visited := map[graph.NodeID]bool{start: true}
	queue := []queueItem{{node: start, depth: 0}}

	found := false
	for len(queue) > 0 && !found {
		item := queue[0]
		queue = queue[1:]

		if item.depth == maxDepth {
			continue
		}

		outEdges, err := adj.GetAdjacency(item.node)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", hgerr.ErrStorage, err)
		}

		for _, e := range outEdges {
			if visited[e.Target] {
				continue
			}
			visited[e.Target] = true
			parent[e.Target] = item.node
			if e.Target == target {
				found = true
				break
			}
			queue = append(queue, queueItem{node: e.Target, depth: item.depth + 1})
		}
	}

	if !found {
		return nil, nil
	}

	path := []graph.NodeID{target}
	for cur := target; cur != start; {
		p := parent[cur]
		path = append(path, p)
		cur = p
	}
	// reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
