package safety

import (
	"errors"

	"github.com/katalvlaran/swarmgrid/grid"
)

// ErrSourceBlocked indicates Bridges was asked to traverse from an
// obstacle or out-of-bounds cell.
var ErrSourceBlocked = errors.New("safety: source cell is not free")

// Edge is an undirected free-space edge, canonicalized so that Edge{A,B}
// and Edge{B,A} compare equal and hash identically.
type Edge struct {
	A, B grid.Cell
}

func canonicalEdge(a, b grid.Cell) Edge {
	if cellLess(a, b) {
		return Edge{A: a, B: b}
	}
	return Edge{A: b, B: a}
}

func cellLess(a, b grid.Cell) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// frame is one level of the explicit DFS stack: the vertex being
// explored, its parent (if any), and how far we've progressed through
// its neighbor list.
type frame struct {
	vertex    grid.Cell
	parent    grid.Cell
	hasParent bool
	neighbors []grid.Cell
	idx       int
}

// Bridges computes the set of bridge edges in the connected component of
// the free-space graph reachable from source, using an iterative
// (stack-based) Tarjan low-link traversal: tin[v] is v's discovery time,
// low[v] is the lowest discovery time reachable from v's subtree via at
// most one back-edge. An edge (parent,child) is a bridge iff
// low[child] > tin[parent].
//
// Returns ErrSourceBlocked if source is not a free cell of g.
func Bridges(g *grid.Grid, source grid.Cell) (map[Edge]struct{}, error) {
	if !g.IsFree(source) {
		return nil, ErrSourceBlocked
	}

	tin := map[grid.Cell]int{source: 0}
	low := map[grid.Cell]int{source: 0}
	timer := 1
	bridges := make(map[Edge]struct{})

	stack := []*frame{{vertex: source, neighbors: g.Neighbors(source)}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if top.idx >= len(top.neighbors) {
			// Exhausted u's neighbors: pop and fold low[u] into the parent.
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				break
			}
			parent := stack[len(stack)-1]
			if low[top.vertex] < low[parent.vertex] {
				low[parent.vertex] = low[top.vertex]
			}
			if low[top.vertex] > tin[parent.vertex] {
				bridges[canonicalEdge(parent.vertex, top.vertex)] = struct{}{}
			}
			continue
		}

		v := top.neighbors[top.idx]
		top.idx++

		if top.hasParent && v == top.parent {
			// Never walk straight back along the edge we arrived on.
			continue
		}

		if discovered, ok := tin[v]; ok {
			// Back-edge to an already-discovered ancestor.
			if discovered < low[top.vertex] {
				low[top.vertex] = discovered
			}
			continue
		}

		tin[v] = timer
		low[v] = timer
		timer++
		stack = append(stack, &frame{vertex: v, parent: top.vertex, hasParent: true, neighbors: g.Neighbors(v)})
	}

	return bridges, nil
}
