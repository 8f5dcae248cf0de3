// Package grid models a rectangular 4-connected free-space graph: a
// width×height board with a set of obstacle cells removed, plus the two
// BFS primitives the rest of swarmgrid builds on.
//
// What
//
//   - Grid: immutable (Width, Height, obstacles) tuple built once per scenario.
//   - ShortestPath: plain BFS shortest path between two free cells.
//   - CycleBackPath: BFS shortest path that is forbidden from taking the
//     direct edge v→u as its first step — used by package pivot to close
//     a rotation cycle around an edge.
//
// Neighbor order is fixed at (+y, −y, +x, −x) everywhere in this package,
// so that any two callers running BFS from the same start on the same
// grid get bit-identical paths.
//
// Occupancy (which agent, if any, sits on a cell) is not part of this
// package; Grid only knows about obstacles. Agent-aware routing lives in
// packages pivot and extend.
package grid
