// Package bfs provides breadth-first search over a cellgraph.Graph.
//
// It underlies the metrosat feasibility precheck: before a Spec is handed
// to the encoder, BFS from each line's start confirms its end is reachable
// at all (ignoring turn budgets, popular cells, and every other line). An
// unreachable end is conclusive proof of infeasibility without emitting a
// single CNF clause.
package bfs
