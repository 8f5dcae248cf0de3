package pivot_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/swarmgrid/grid"
	"github.com/katalvlaran/swarmgrid/pivot"
	"github.com/katalvlaran/swarmgrid/swarm"
)

func mustGrid(t *testing.T, w, h int) *grid.Grid {
	t.Helper()
	g, err := grid.New(w, h, nil)
	require.NoError(t, err)
	return g
}

func mustConfig(t *testing.T, order []swarm.AgentID, agents map[swarm.AgentID]grid.Cell) *swarm.Configuration {
	t.Helper()
	cfg, err := swarm.New(order, agents)
	require.NoError(t, err)
	return cfg
}

// S1: 3x3 open grid, single agent at a corner ends up exactly at the pivot.
func TestVisit_SingleAgentReachesPivot(t *testing.T) {
	g := mustGrid(t, 3, 3)
	pivotCell := grid.Cell{X: 1, Y: 1}
	order := []swarm.AgentID{0}
	cfg := mustConfig(t, order, map[swarm.AgentID]grid.Cell{0: {X: 0, Y: 0}})

	traj, warnings := pivot.Visit(order, cfg, pivotCell, g)
	require.Empty(t, warnings)

	pos, ok := cfg.Position(0)
	require.True(t, ok)
	require.Equal(t, pivotCell, pos)

	// Every recorded step must keep the Configuration injective.
	for _, snap := range traj {
		cells := map[grid.Cell]bool{}
		for _, c := range snap {
			require.False(t, cells[c], "two agents on the same cell in a trajectory step")
			cells[c] = true
		}
	}
}

// Boundary: an agent already at the pivot is skipped, no trajectory entry.
func TestVisit_AgentAlreadyAtPivot(t *testing.T) {
	g := mustGrid(t, 3, 3)
	pivotCell := grid.Cell{X: 1, Y: 1}
	order := []swarm.AgentID{0}
	cfg := mustConfig(t, order, map[swarm.AgentID]grid.Cell{0: pivotCell})

	traj, warnings := pivot.Visit(order, cfg, pivotCell, g)
	require.Empty(t, warnings)
	require.Empty(t, traj)

	pos, _ := cfg.Position(0)
	require.Equal(t, pivotCell, pos)
}

// S3: two agents, diagonally opposite corners of a 3x3 grid, both visit
// the pivot in turn via cycle rotation without ever colliding.
func TestVisit_TwoAgentsBothVisitPivot(t *testing.T) {
	g := mustGrid(t, 3, 3)
	pivotCell := grid.Cell{X: 1, Y: 1}
	order := []swarm.AgentID{0, 1}
	cfg := mustConfig(t, order, map[swarm.AgentID]grid.Cell{
		0: {X: 0, Y: 0},
		1: {X: 2, Y: 2},
	})

	traj, warnings := pivot.Visit(order, cfg, pivotCell, g)
	require.Empty(t, warnings)
	require.NotEmpty(t, traj)

	visitedPivot := map[swarm.AgentID]bool{}
	for _, snap := range traj {
		cells := map[grid.Cell]bool{}
		for a, c := range snap {
			require.False(t, cells[c], "collision detected in trajectory")
			cells[c] = true
			if c == pivotCell {
				visitedPivot[a] = true
			}
		}
	}
	require.True(t, visitedPivot[0], "agent 0 should have visited the pivot")
	require.True(t, visitedPivot[1], "agent 1 should have visited the pivot")
}

// S2: the pivot engine itself doesn't gate on safety — but on an
// unreachable pivot (disconnected by obstacles) it must warn and
// continue rather than panic or abort other agents.
func TestVisit_UnreachablePivotWarns(t *testing.T) {
	g, err := grid.New(3, 1, []grid.Cell{{X: 1, Y: 0}})
	require.NoError(t, err)
	pivotCell := grid.Cell{X: 2, Y: 0}
	order := []swarm.AgentID{0, 1}
	cfg := mustConfig(t, order, map[swarm.AgentID]grid.Cell{
		0: {X: 0, Y: 0},
		1: {X: 2, Y: 0},
	})

	_, warnings := pivot.Visit(order, cfg, pivotCell, g)
	require.Len(t, warnings, 1)
	require.Equal(t, swarm.AgentID(0), warnings[0].Agent)

	// Agent 1 was already at the pivot and must be unaffected.
	pos, _ := cfg.Position(1)
	require.Equal(t, pivotCell, pos)
}

func TestVisit_OnWarningCallbackFiresAlongsideReturnedSlice(t *testing.T) {
	g, err := grid.New(3, 1, []grid.Cell{{X: 1, Y: 0}})
	require.NoError(t, err)
	pivotCell := grid.Cell{X: 2, Y: 0}
	order := []swarm.AgentID{0}
	cfg := mustConfig(t, order, map[swarm.AgentID]grid.Cell{0: {X: 0, Y: 0}})

	var seen []pivot.Warning
	_, warnings := pivot.Visit(order, cfg, pivotCell, g, pivot.WithOnWarning(func(w pivot.Warning) {
		seen = append(seen, w)
	}))

	require.Equal(t, warnings, seen)
	require.Len(t, seen, 1)
}

func TestVisit_HistoryCanBeDisabled(t *testing.T) {
	g := mustGrid(t, 3, 3)
	pivotCell := grid.Cell{X: 1, Y: 1}
	order := []swarm.AgentID{0}
	cfg := mustConfig(t, order, map[swarm.AgentID]grid.Cell{0: {X: 0, Y: 0}})

	traj, _ := pivot.Visit(order, cfg, pivotCell, g, pivot.WithHistory(false))
	require.Empty(t, traj)

	pos, _ := cfg.Position(0)
	require.Equal(t, pivotCell, pos)
}
