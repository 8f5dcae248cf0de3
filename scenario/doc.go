// Package scenario parses the map and scenario input files consumed by
// cmd/swarmgrid and writes the result and time-log files it produces.
// None of this is part of the reconfiguration algorithm itself — it is
// the ambient I/O plumbing a runnable batch tool needs around it,
// grounded on the input/output formats of the original experiment
// harness this system replaces.
package scenario
