// Package extend implements the destination-extension stage: greedily
// assigning each not-yet-settled agent to its nearest free destination
// cell and walking it there one edge at a time, recursively displacing
// any already-settled agent that happens to be blocking the way.
//
// Extend keeps two disjoint agent sets: settled agents already sitting on
// a destination, and unsettled agents still being routed. At each
// iteration it picks the (agent, destination) pair with the smallest
// Manhattan distance over the Cartesian product of unsettled agents and
// free destinations — ties broken by iteration order, first over
// unsettled agents, then over free destinations — and walks that
// agent's shortest path to its destination.
//
// Advancing one step of that path may find a settled agent sitting on the
// next cell; this "freight-train" pushes that agent (and transitively,
// any further settled agent ahead of it on the same path) one cell
// further along the path before the advancing agent steps in. The push
// is implemented with an explicit stack of (agent, path-index) frames
// rather than native Go recursion, so stack depth never scales with
// path length.
package extend
