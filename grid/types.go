package grid

import "errors"

// Sentinel errors for grid construction and pathfinding.
var (
	// ErrEmptyGrid indicates zero width or zero height.
	ErrEmptyGrid = errors.New("grid: width and height must be positive")

	// ErrCellOutOfBounds indicates a coordinate outside [0,Width)×[0,Height).
	ErrCellOutOfBounds = errors.New("grid: cell out of bounds")

	// ErrCellBlocked indicates a coordinate that names an obstacle cell.
	ErrCellBlocked = errors.New("grid: cell is an obstacle")

	// ErrNoPath indicates BFS found no route between start and goal.
	ErrNoPath = errors.New("grid: no path between start and goal")
)

// Cell is an integer grid coordinate. Equality and hashing are structural,
// so Cell is safe to use directly as a map key.
type Cell struct {
	X, Y int
}

// Path is a nonempty ordered sequence of cells where consecutive cells
// are grid-adjacent and no cell repeats. path[0] is the start, path[len-1]
// is the goal.
type Path []Cell

// neighborOffsets is the fixed 4-neighborhood expansion order (+y, −y, +x, −x).
// Every BFS in this package (and every caller walking Grid.Neighbors) must
// use this exact order to keep traversal output deterministic.
var neighborOffsets = [4]Cell{
	{X: 0, Y: 1},
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: -1, Y: 0},
}

// Grid is an immutable rectangular board with a fixed obstacle set.
// The free-space graph has one vertex per non-obstacle cell and an edge
// between any two 4-adjacent free cells.
type Grid struct {
	width, height int
	obstacles     map[Cell]struct{}
}

// New builds a Grid of the given dimensions with obstacles at the listed
// cells (cells outside bounds are ignored). Returns ErrEmptyGrid if width
// or height is not positive.
func New(width, height int, obstacles []Cell) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	set := make(map[Cell]struct{}, len(obstacles))
	for _, c := range obstacles {
		if c.X < 0 || c.X >= width || c.Y < 0 || c.Y >= height {
			continue
		}
		set[c] = struct{}{}
	}

	return &Grid{width: width, height: height, obstacles: set}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies within [0,Width)×[0,Height).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// IsFree reports whether c is in bounds and not an obstacle.
func (g *Grid) IsFree(c Cell) bool {
	if !g.InBounds(c) {
		return false
	}
	_, blocked := g.obstacles[c]
	return !blocked
}

// Neighbors returns the free 4-adjacent cells of c in the fixed
// (+y, −y, +x, −x) order. c itself is not checked for freeness; callers
// that only want neighbors of a free cell should check IsFree(c) first.
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range neighborOffsets {
		n := Cell{X: c.X + d.X, Y: c.Y + d.Y}
		if g.IsFree(n) {
			out = append(out, n)
		}
	}
	return out
}
