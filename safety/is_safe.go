package safety

import (
	"github.com/katalvlaran/swarmgrid/grid"
	"github.com/katalvlaran/swarmgrid/swarm"
)

// IsSafe decides whether package pivot can succeed on cfg: the pivot must
// be a free cell, and every agent's current cell must lie in the same
// bridgeless component as the pivot. No error is raised for an unsafe
// instance — this is a policy decision the caller reports, not an
// exceptional condition.
func IsSafe(g *grid.Grid, pivot grid.Cell, cfg *swarm.Configuration) bool {
	if !g.IsFree(pivot) {
		return false
	}

	bridges, err := Bridges(g, pivot)
	if err != nil {
		return false
	}

	visited := bridgelessComponent(g, pivot, bridges)

	for _, a := range cfg.Agents() {
		pos, ok := cfg.Position(a)
		if !ok || !visited[pos] {
			return false
		}
	}

	return true
}

// bridgelessComponent returns the set of cells reachable from source over
// the free-space graph with all bridges removed.
func bridgelessComponent(g *grid.Grid, source grid.Cell, bridges map[Edge]struct{}) map[grid.Cell]bool {
	visited := map[grid.Cell]bool{source: true}
	queue := []grid.Cell{source}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, nbr := range g.Neighbors(cur) {
			if visited[nbr] {
				continue
			}
			if _, isBridge := bridges[canonicalEdge(cur, nbr)]; isBridge {
				continue
			}
			visited[nbr] = true
			queue = append(queue, nbr)
		}
	}

	return visited
}
