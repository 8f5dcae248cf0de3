package extend

import (
	"fmt"

	"github.com/katalvlaran/swarmgrid/grid"
	"github.com/katalvlaran/swarmgrid/swarm"
)

// Extend greedily routes every agent not already standing on a
// destination to the nearest free one, mutating cfg in place and
// returning the recorded Trajectory alongside any Warnings raised along
// the way.
//
// At each iteration it selects the (agent, destination) pair minimizing
// Manhattan distance over unsettled agents × free destinations, ties
// broken by iteration order (first agent encountered, then first
// destination encountered). It walks ShortestPath(agent, destination)
// one edge at a time, displacing a settled agent sitting in the way one
// cell further along the same path before stepping in. An agent that
// fails to find a path, or whose push is blocked, is dropped from
// consideration with a Warning; it never settles and never blocks the
// iteration from progressing to the next candidate.
func Extend(order []swarm.AgentID, cfg *swarm.Configuration, destinations []grid.Cell, g *grid.Grid, opts ...Option) (swarm.Trajectory, []Warning) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rec := swarm.NewRecorder(swarm.WithHistory(o.recordHistory))
	var warnings []Warning
	warn := func(w Warning) {
		warnings = append(warnings, w)
		o.onWarning(w)
	}

	// settled tracks A_r membership by agent identity, never re-derived
	// from position: once an agent reaches a destination it stays
	// "settled" even if a later push moves it off that exact cell.
	settled := map[swarm.AgentID]bool{}
	var unsettled []swarm.AgentID
	for _, a := range order {
		pos, ok := cfg.Position(a)
		if ok && isDestination(destinations, pos) {
			settled[a] = true
			continue
		}
		unsettled = append(unsettled, a)
	}

	for len(unsettled) > 0 {
		occupiedByR := make(map[grid.Cell]bool, len(settled))
		for a := range settled {
			if pos, ok := cfg.Position(a); ok {
				occupiedByR[pos] = true
			}
		}

		var vFree []grid.Cell
		for _, d := range destinations {
			if !occupiedByR[d] {
				vFree = append(vFree, d)
			}
		}
		if len(vFree) == 0 {
			for _, a := range unsettled {
				warn(Warning{Agent: a, Detail: "no free destination remains"})
			}
			break
		}

		selIdx, selDest, found := selectClosest(cfg, unsettled, vFree)
		if !found {
			// Every remaining unsettled agent has vanished from cfg; nothing left to do.
			break
		}
		selAgent := unsettled[selIdx]

		pos, _ := cfg.Position(selAgent)
		path, err := g.ShortestPath(pos, selDest)
		if err != nil {
			warn(Warning{Agent: selAgent, Detail: fmt.Sprintf("no path from %v to %v", pos, selDest)})
			unsettled = dropAt(unsettled, selIdx)
			continue
		}

		if err := walk(cfg, path, selAgent, settled, rec); err != nil {
			warn(Warning{Agent: selAgent, Detail: err.Error()})
			unsettled = dropAt(unsettled, selIdx)
			continue
		}

		settled[selAgent] = true
		unsettled = dropAt(unsettled, selIdx)
	}

	return rec.Trajectory(), warnings
}

// selectClosest scans agents × dests in order and returns the index (into
// agents) and destination of the pair with strictly smallest Manhattan
// distance, so the first pair encountered wins every tie.
func selectClosest(cfg *swarm.Configuration, agents []swarm.AgentID, dests []grid.Cell) (int, grid.Cell, bool) {
	best := -1
	bestIdx := -1
	var bestDest grid.Cell
	for i, a := range agents {
		pos, ok := cfg.Position(a)
		if !ok {
			continue
		}
		for _, d := range dests {
			dist := manhattan(pos, d)
			if best == -1 || dist < best {
				best = dist
				bestIdx = i
				bestDest = d
			}
		}
	}
	return bestIdx, bestDest, bestIdx != -1
}

func manhattan(a, b grid.Cell) int {
	return absInt(a.X-b.X) + absInt(a.Y-b.Y)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func isDestination(destinations []grid.Cell, c grid.Cell) bool {
	for _, d := range destinations {
		if d == c {
			return true
		}
	}
	return false
}

func dropAt(agents []swarm.AgentID, idx int) []swarm.AgentID {
	out := make([]swarm.AgentID, 0, len(agents)-1)
	out = append(out, agents[:idx]...)
	out = append(out, agents[idx+1:]...)
	return out
}

// walk advances mover one edge at a time along path, until it reaches
// path's final cell. Every elementary move along the way — the mover's
// own step and any settled agent displaced ahead of it — is recorded
// individually by push.
func walk(cfg *swarm.Configuration, path grid.Path, mover swarm.AgentID, settled map[swarm.AgentID]bool, rec *swarm.Recorder) error {
	for t := 0; t < len(path)-1; t++ {
		if err := push(cfg, path, mover, t, settled, rec); err != nil {
			return err
		}
	}
	return nil
}

// moveFrame is one pending step of the freight-train push: agent must
// advance from path[t] to path[t+1].
type moveFrame struct {
	agent swarm.AgentID
	t     int
}

// push advances mover from path[t] to path[t+1], first displacing a
// chain of settled agents occupying path[t+1], path[t+2], ... as needed.
// A frame is pushed whenever the cell ahead is held by a settled agent,
// and popped once its own occupant has actually moved; revisiting the
// top frame after its child resolves re-reads occupancy fresh. Each
// individual agent step is its own elementary move and is recorded as
// soon as it lands, deepest displaced agent first, so two consecutive
// trajectory entries never differ by more than one agent's position.
func push(cfg *swarm.Configuration, path grid.Path, mover swarm.AgentID, t int, settled map[swarm.AgentID]bool, rec *swarm.Recorder) error {
	stack := []moveFrame{{agent: mover, t: t}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.t+1 >= len(path) {
			return fmt.Errorf("extend: push chain ran past the end of the path")
		}
		next := path[top.t+1]

		if w, occupied := cfg.At(next); occupied && settled[w] {
			stack = append(stack, moveFrame{agent: w, t: top.t + 1})
			continue
		}

		if err := cfg.Move(top.agent, next); err != nil {
			return fmt.Errorf("agent %d blocked moving to %v: %w", top.agent, next, err)
		}
		rec.Record(cfg)
		stack = stack[:len(stack)-1]
	}
	return nil
}
