// Package flow computes maximum flow over directed, capacitated
// cellgraph.Graphs via Dinic's algorithm. See dinic.go for the metrosat
// use case: a necessary-condition feasibility check on K edge-disjoint
// paths, run before the CNF encoder.
package flow
