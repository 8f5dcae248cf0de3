package pivot

import (
	"fmt"

	"github.com/katalvlaran/swarmgrid/grid"
	"github.com/katalvlaran/swarmgrid/swarm"
)

// Visit routes every agent in order through pivot, mutating cfg in place
// and returning the recorded Trajectory alongside any Warnings raised
// along the way.
//
// For agent a already at pivot, Visit skips it (no trajectory entry).
// Otherwise it walks ShortestPath(x0, pivot) one edge (u,v) at a time,
// closes a rotation cycle via CycleBackPath(v,u), and applies the
// rotation. If the pivot is unreachable, or an edge has no back-path
// (graph not 2-edge-connected there), a Warning is recorded and
// processing continues with the next agent in order, skipping the rest
// of the failing agent's path, without rolling back prior moves.
func Visit(order []swarm.AgentID, cfg *swarm.Configuration, pivot grid.Cell, g *grid.Grid, opts ...Option) (swarm.Trajectory, []Warning) {
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

	for _, a := range order {
		x0, ok := cfg.Position(a)
		if !ok {
			continue
		}
		if x0 == pivot {
			continue
		}

		path, err := g.ShortestPath(x0, pivot)
		if err != nil {
			warn(Warning{Agent: a, Detail: fmt.Sprintf("pivot unreachable from %v", x0)})
			continue
		}

		for i := 0; i < len(path)-1; i++ {
			u, v := path[i], path[i+1]

			cycle, err := g.CycleBackPath(v, u)
			if err != nil {
				warn(Warning{Agent: a, Detail: fmt.Sprintf("no back-path closing edge %v-%v: graph not 2-edge-connected", u, v)})
				break
			}
			if len(cycle) < 3 {
				warn(Warning{Agent: a, Detail: fmt.Sprintf("degenerate cycle at edge %v-%v", u, v)})
				break
			}

			if cfg.ApplyCycle(cycle) {
				rec.Record(cfg)
			}
		}
	}

	return rec.Trajectory(), warnings
}
