// Package pivot implements the pivot-visit stage: routing every agent
// through a designated pivot cell via cycle-rotation moves, without ever
// placing two agents on the same cell.
//
// For each agent in turn, Visit walks the shortest path from the agent's
// current cell to the pivot one edge (u,v) at a time. For each edge it
// asks package grid for a CycleBackPath from v back to u that avoids the
// direct edge, forming a simple cycle; rotating every cell's occupant one
// step around that cycle moves the agent from u to v while keeping the
// Configuration injective (a rotation on a simple cycle is a permutation).
//
// Failures — an unreachable pivot, or an edge with no back-path (the
// bridge case package safety is meant to rule out ahead of time) — are
// reported as a Warning and processing moves on to the next agent (the
// failing agent's remaining edges are skipped): a partially-advanced
// agent is left where it stands rather than
// rolled back, so one bad edge never aborts the rest of the batch.
package pivot
