// Package precheck runs two cheap necessary-condition checks over a
// Spec's grid before the caller pays for a full CNF encode-and-dispatch
// round trip: per-line reachability (bfs) and edge-disjoint path
// capacity (flow's Dinic implementation) on an auxiliary super-source/
// super-sink network. Either check failing proves the instance
// infeasible outright; both checks passing is inconclusive (neither
// models turn budgets or popular cells) and the caller must still run
// the full encoder.
package precheck
