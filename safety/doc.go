// Package safety decides whether package pivot can possibly succeed on a
// given scenario, before any move is attempted.
//
// An instance is "safe to pivot" iff the pivot cell is free and every
// agent's starting cell lies in the same bridgeless (2-edge-connected)
// component as the pivot. Package pivot rotates agents along cycles that
// must close back through an "ear" off the direct route to the pivot; a
// bridge edge has no such ear, so an agent separated from the pivot by a
// bridge can never be rotated across it.
//
// Bridges is computed with an iterative, stack-based Tarjan low-link
// traversal (not recursive DFS) so that arbitrarily large grids never
// risk a stack overflow.
package safety
