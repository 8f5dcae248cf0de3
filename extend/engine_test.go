package extend_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/swarmgrid/extend"
	"github.com/katalvlaran/swarmgrid/grid"
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

func TestExtend_SingleAgentNoBlocking(t *testing.T) {
	g := mustGrid(t, 3, 3)
	order := []swarm.AgentID{0}
	cfg := mustConfig(t, order, map[swarm.AgentID]grid.Cell{0: {X: 0, Y: 0}})
	dests := []grid.Cell{{X: 2, Y: 2}}

	traj, warnings := extend.Extend(order, cfg, dests, g)
	require.Empty(t, warnings)
	require.NotEmpty(t, traj)

	pos, ok := cfg.Position(0)
	require.True(t, ok)
	require.Equal(t, grid.Cell{X: 2, Y: 2}, pos)
}

func TestExtend_AgentAlreadyAtDestinationNeverMoves(t *testing.T) {
	g := mustGrid(t, 3, 3)
	order := []swarm.AgentID{0}
	dest := grid.Cell{X: 1, Y: 1}
	cfg := mustConfig(t, order, map[swarm.AgentID]grid.Cell{0: dest})

	traj, warnings := extend.Extend(order, cfg, []grid.Cell{dest}, g)
	require.Empty(t, warnings)
	require.Empty(t, traj)

	pos, _ := cfg.Position(0)
	require.Equal(t, dest, pos)
}

// S4: a settled agent directly ahead on a corridor gets pushed one cell
// forward ("freight-train" push) before the active agent steps in. In
// this 3-cell corridor the blocker ends up pushed all the way onto the
// mover's own destination cell, which would require pushing it a second
// time past the end of the path — an edge case the underlying algorithm
// cannot resolve. Extend must recover gracefully: the first, valid push
// still happens (verified via the trajectory), and the stuck agent is
// dropped with a Warning instead of corrupting the Configuration.
func TestExtend_DisplacementPushRecordsProgressThenWarnsOnOverflow(t *testing.T) {
	g := mustGrid(t, 3, 1)
	order := []swarm.AgentID{1, 0}
	cfg := mustConfig(t, order, map[swarm.AgentID]grid.Cell{
		1: {X: 1, Y: 0},
		0: {X: 0, Y: 0},
	})
	dests := []grid.Cell{{X: 1, Y: 0}, {X: 2, Y: 0}}

	traj, warnings := extend.Extend(order, cfg, dests, g)
	require.Len(t, warnings, 1)
	require.Equal(t, swarm.AgentID(0), warnings[0].Agent)

	// The displaced agent's own step and the mover's own step are each
	// a separate elementary move: two entries, not one entry combining
	// both position changes.
	require.Len(t, traj, 2)
	require.Equal(t, grid.Cell{X: 2, Y: 0}, traj[0][swarm.AgentID(1)], "agent 1 is pushed out of the way first")
	require.Equal(t, grid.Cell{X: 0, Y: 0}, traj[0][swarm.AgentID(0)], "agent 0 has not stepped yet")
	require.Equal(t, grid.Cell{X: 1, Y: 0}, traj[1][swarm.AgentID(0)], "agent 0 then steps into the vacated cell")

	last := traj[len(traj)-1]
	require.Equal(t, grid.Cell{X: 1, Y: 0}, last[swarm.AgentID(0)])
	require.Equal(t, grid.Cell{X: 2, Y: 0}, last[swarm.AgentID(1)])

	// Consecutive entries must differ by exactly one agent's cell — the
	// symmetric-difference invariant over occupied cells.
	for i := 1; i < len(traj); i++ {
		changed := 0
		for a, c := range traj[i] {
			if traj[i-1][a] != c {
				changed++
			}
		}
		require.Equal(t, 1, changed, "entry %d should change exactly one agent's position", i)
	}

	// Configuration must still be injective after the partial run.
	posA, _ := cfg.Position(0)
	posB, _ := cfg.Position(1)
	require.NotEqual(t, posA, posB)
}

// S5: every destination is already claimed by a settled agent, so the
// remaining unsettled agent can never be routed — it must be warned off
// rather than looped on forever.
func TestExtend_NoFreeDestinationWarnsAndStops(t *testing.T) {
	g := mustGrid(t, 3, 1)
	order := []swarm.AgentID{1, 0}
	dest := grid.Cell{X: 0, Y: 0}
	cfg := mustConfig(t, order, map[swarm.AgentID]grid.Cell{
		1: dest,
		0: {X: 2, Y: 0},
	})

	_, warnings := extend.Extend(order, cfg, []grid.Cell{dest}, g)
	require.Len(t, warnings, 1)
	require.Equal(t, swarm.AgentID(0), warnings[0].Agent)

	pos, _ := cfg.Position(0)
	require.Equal(t, grid.Cell{X: 2, Y: 0}, pos, "agent never routed stays put")
}

// Tie-break: among equidistant destinations, the first one in iteration
// order over the destinations slice wins.
func TestExtend_TieBreakPrefersFirstDestinationInOrder(t *testing.T) {
	g := mustGrid(t, 5, 1)
	order := []swarm.AgentID{0}
	cfg := mustConfig(t, order, map[swarm.AgentID]grid.Cell{0: {X: 2, Y: 0}})
	dests := []grid.Cell{{X: 1, Y: 0}, {X: 3, Y: 0}}

	_, warnings := extend.Extend(order, cfg, dests, g)
	require.Empty(t, warnings)

	pos, _ := cfg.Position(0)
	require.Equal(t, grid.Cell{X: 1, Y: 0}, pos)
}

func TestExtend_OnWarningCallbackFiresAlongsideReturnedSlice(t *testing.T) {
	g := mustGrid(t, 3, 1)
	order := []swarm.AgentID{1, 0}
	dest := grid.Cell{X: 0, Y: 0}
	cfg := mustConfig(t, order, map[swarm.AgentID]grid.Cell{
		1: dest,
		0: {X: 2, Y: 0},
	})

	var seen []extend.Warning
	_, warnings := extend.Extend(order, cfg, []grid.Cell{dest}, g, extend.WithOnWarning(func(w extend.Warning) {
		seen = append(seen, w)
	}))

	require.Equal(t, warnings, seen)
	require.Len(t, seen, 1)
}

func TestExtend_HistoryCanBeDisabled(t *testing.T) {
	g := mustGrid(t, 3, 3)
	order := []swarm.AgentID{0}
	cfg := mustConfig(t, order, map[swarm.AgentID]grid.Cell{0: {X: 0, Y: 0}})

	traj, _ := extend.Extend(order, cfg, []grid.Cell{{X: 2, Y: 2}}, g, extend.WithHistory(false))
	require.Empty(t, traj)

	pos, _ := cfg.Position(0)
	require.Equal(t, grid.Cell{X: 2, Y: 2}, pos)
}
