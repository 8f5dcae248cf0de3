// Package swarm holds the one piece of mutable state the whole algorithm
// core shares: the injective placement of agents onto grid cells.
//
// Configuration is a total mapping from AgentID to grid.Cell, kept in
// lock-step with its inverse (cell → agent) behind two mutators, Move
// (one agent) and ApplyCycle (a whole-cycle rotation), so the two
// directions can never drift apart.
//
// Recorder accumulates a Trajectory — the ordered sequence of
// Configurations produced by every elementary move (cycle rotation or
// single-step displacement) applied during package pivot's or package
// extend's run. Recording full history is optional (WithHistory);
// callers that only need milestone configurations can disable it to
// avoid the O(moves × agents) memory cost of deep-copying every step.
package swarm
