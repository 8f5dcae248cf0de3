// Package swarm defines Configuration, the injective agent→cell placement
// that packages pivot and extend mutate, plus the Trajectory recorder that
// captures every elementary move applied to it.
package swarm

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/swarmgrid/grid"
)

// Sentinel errors for Configuration construction and mutation.
var (
	// ErrDuplicateCell indicates two agents were given the same initial cell.
	ErrDuplicateCell = errors.New("swarm: two agents cannot share a cell")

	// ErrUnknownAgent indicates an operation referenced an AgentID not in the Configuration.
	ErrUnknownAgent = errors.New("swarm: unknown agent")

	// ErrCellOccupied indicates Move's destination cell is already occupied by another agent.
	ErrCellOccupied = errors.New("swarm: destination cell is occupied")
)

// AgentID identifies one agent. Agents are distinguishable; two AgentIDs
// are equal iff they name the same agent.
type AgentID int

// Snapshot is a read-only copy of a Configuration at one instant, keyed by
// agent. It is produced by Configuration.Snapshot and stored in a Trajectory.
type Snapshot map[AgentID]grid.Cell

// Configuration is an injective mapping from AgentID to grid.Cell. It
// encapsulates its own inverse (cell → agent) index; callers never touch
// the two maps directly, only Move, ApplyCycle, Position, and At.
type Configuration struct {
	positions map[AgentID]grid.Cell
	occupancy map[grid.Cell]AgentID
	order     []AgentID // insertion order, fixed at construction
}

// New builds a Configuration from an initial placement, preserving the
// iteration order of order (the fixed agent order used for deterministic
// iteration elsewhere, e.g. extend's A_s scan). Returns ErrDuplicateCell
// if two agents share a cell, or ErrUnknownAgent if order names an agent
// absent from initial.
func New(order []AgentID, initial map[AgentID]grid.Cell) (*Configuration, error) {
	cfg := &Configuration{
		positions: make(map[AgentID]grid.Cell, len(order)),
		occupancy: make(map[grid.Cell]AgentID, len(order)),
		order:     append([]AgentID(nil), order...),
	}
	for _, a := range order {
		c, ok := initial[a]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownAgent, a)
		}
		if owner, taken := cfg.occupancy[c]; taken {
			return nil, fmt.Errorf("%w: %v held by agent %d and %d", ErrDuplicateCell, c, owner, a)
		}
		cfg.positions[a] = c
		cfg.occupancy[c] = a
	}

	return cfg, nil
}

// Agents returns the fixed agent order established at construction.
func (c *Configuration) Agents() []AgentID {
	return append([]AgentID(nil), c.order...)
}

// Position returns the cell currently occupied by agent a.
func (c *Configuration) Position(a AgentID) (grid.Cell, bool) {
	cell, ok := c.positions[a]
	return cell, ok
}

// At returns the agent currently occupying cell, if any.
func (c *Configuration) At(cell grid.Cell) (AgentID, bool) {
	a, ok := c.occupancy[cell]
	return a, ok
}

// Move relocates agent a to cell, updating the position and occupancy
// maps atomically. Returns ErrUnknownAgent if a is not in the
// Configuration, or ErrCellOccupied if cell is already held by a
// different agent. Moving an agent to its own current cell is a no-op.
func (c *Configuration) Move(a AgentID, cell grid.Cell) error {
	old, ok := c.positions[a]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownAgent, a)
	}
	if old == cell {
		return nil
	}
	if owner, taken := c.occupancy[cell]; taken && owner != a {
		return fmt.Errorf("%w: %v held by agent %d", ErrCellOccupied, cell, owner)
	}

	delete(c.occupancy, old)
	c.positions[a] = cell
	c.occupancy[cell] = a

	return nil
}

// ApplyCycle performs a circular one-step shift of occupants along cycle:
// the agent (if any) currently at cycle[i] moves to cycle[(i+1)%n]. Cells
// in cycle that are unoccupied stay unoccupied — the rotation is defined
// on the cycle of cells, not only the occupied ones. Reports whether any
// agent actually moved; a false return means the rotation was a
// legitimate no-op (no agent sat anywhere on the cycle), which callers
// may elide from a recorded trajectory.
//
// Because a rotation over a simple cycle is a permutation, applying it
// can never violate injectivity: this updates every occupant in one
// pass rather than one Move at a time, so no destination cell is ever
// checked against an occupant that is itself about to vacate it.
func (c *Configuration) ApplyCycle(cycle []grid.Cell) bool {
	n := len(cycle)
	occupants := make([]AgentID, n)
	present := make([]bool, n)
	moved := false
	for i, cell := range cycle {
		if a, ok := c.occupancy[cell]; ok {
			occupants[i] = a
			present[i] = true
			moved = true
		}
	}
	if !moved {
		return false
	}

	for i, cell := range cycle {
		if present[i] {
			delete(c.occupancy, cell)
		}
	}
	for i := 0; i < n; i++ {
		if !present[i] {
			continue
		}
		next := cycle[(i+1)%n]
		c.positions[occupants[i]] = next
		c.occupancy[next] = occupants[i]
	}

	return true
}

// Snapshot returns an immutable copy of the current placement.
func (c *Configuration) Snapshot() Snapshot {
	s := make(Snapshot, len(c.positions))
	for a, cell := range c.positions {
		s[a] = cell
	}
	return s
}
