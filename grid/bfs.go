package grid

// ShortestPath runs breadth-first search over the free-space graph from
// start to goal, ignoring agent occupancy (obstacles only). Neighbor
// expansion uses the fixed (+y, −y, +x, −x) order, so among the many
// shortest paths a grid usually admits, the same one is always returned.
//
// Returns ErrNoPath if goal is unreachable from start, or if either cell
// is not a free cell of the grid. If start == goal, returns Path{start}.
func (g *Grid) ShortestPath(start, goal Cell) (Path, error) {
	if !g.IsFree(start) || !g.IsFree(goal) {
		return nil, ErrNoPath
	}
	if start == goal {
		return Path{start}, nil
	}

	visited := map[Cell]bool{start: true}
	queue := []Cell{start}
	parent := make(map[Cell]Cell)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, nbr := range g.Neighbors(cur) {
			if visited[nbr] {
				continue
			}
			visited[nbr] = true
			parent[nbr] = cur
			if nbr == goal {
				return reconstruct(parent, start, goal), nil
			}
			queue = append(queue, nbr)
		}
	}

	return nil, ErrNoPath
}

// reconstruct walks the parent map backward from goal to start and
// returns the forward path.
func reconstruct(parent map[Cell]Cell, start, goal Cell) Path {
	path := Path{goal}
	for cur := goal; cur != start; {
		prev := parent[cur]
		path = append(path, prev)
		cur = prev
	}
	// reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
