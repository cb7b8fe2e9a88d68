// Package flow computes maximum flow over a cellgraph.Graph using Dinic's
// algorithm (level graph + blocking flows). It is used by the metrosat
// feasibility precheck as a necessary (not sufficient) condition: if the
// grid cannot carry K edge-disjoint source-to-sink paths even ignoring
// turn budgets, no CNF encoding of the full problem can be satisfiable
// either.
package flow

import (
	"context"
	"math"

	"github.com/katalvlaran/metrosat/cellgraph"
)

// Dinic computes the maximum integer flow from source to sink in the
// directed, capacitated graph g.
//
// Steps:
//  1. Normalize options and capture context.
//  2. Validate that source and sink exist in g.
//  3. Build initial capacity map via buildCapMap.
//  4. Repeat until no more augmenting paths:
//     a. Check for cancellation.
//     b. BFS to build the level graph: distance from source for each vertex.
//     c. If sink unreachable, stop.
//     d. Build adjacency list for edges in the level graph.
//     e. DFS-based blocking flow pushes until none remains, optionally
//     rebuilding the level graph every LevelRebuildInterval augmentations.
//
// Complexity: O(V^2 * E) in general; O(E*sqrt(V)) on unit-capacity networks,
// which is the regime the precheck always runs in (every grid edge has
// capacity 1).
func Dinic(g *cellgraph.Graph, source, sink string, opts Options) (maxFlow int64, err error) {
	opts.normalize()
	ctx := opts.Ctx

	if !g.HasVertex(source) {
		return 0, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return 0, ErrSinkNotFound
	}

	capMap, err := buildCapMap(ctx, g)
	if err != nil {
		return 0, err
	}

	augmentCount := 0
	for {
		if err = ctx.Err(); err != nil {
			return maxFlow, err
		}

		level := make(map[string]int, len(capMap))
		for u := range capMap {
			level[u] = -1
		}
		queue := []string{source}
		level[source] = 0
		for i := 0; i < len(queue); i++ {
			u := queue[i]
			for v, capUV := range capMap[u] {
				if capUV > 0 && level[v] < 0 {
					level[v] = level[u] + 1
					queue = append(queue, v)
				}
			}
		}
		if level[sink] < 0 {
			break
		}

		next := make(map[string][]string, len(capMap))
		for u, nbrs := range capMap {
			for v, capUV := range nbrs {
				if capUV > 0 && level[v] == level[u]+1 {
					next[u] = append(next[u], v)
				}
			}
		}

		iter := make(map[string]int, len(next))
		for {
			if err = ctx.Err(); err != nil {
				return maxFlow, err
			}
			pushed := dfsDinicPush(ctx, capMap, next, iter, source, sink, math.MaxInt64)
			if pushed == 0 {
				break
			}
			maxFlow += pushed
			augmentCount++
			if opts.LevelRebuildInterval > 0 && augmentCount%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	return maxFlow, nil
}

// dfsDinicPush recursively pushes flow along the level graph, updating
// capMap in place, and returns the amount actually sent.
func dfsDinicPush(
	ctx context.Context,
	capMap map[string]map[string]int64,
	next map[string][]string,
	iter map[string]int,
	u, sink string,
	available int64,
) int64 {
	if err := ctx.Err(); err != nil {
		return 0
	}
	if u == sink {
		return available
	}
	for i := iter[u]; i < len(next[u]); i++ {
		iter[u] = i + 1
		v := next[u][i]
		capUV := capMap[u][v]
		if capUV <= 0 {
			continue
		}
		send := available
		if capUV < send {
			send = capUV
		}
		if send == 0 {
			continue
		}
		pushed := dfsDinicPush(ctx, capMap, next, iter, v, sink, send)
		if pushed > 0 {
			capMap[u][v] -= pushed
			capMap[v][u] += pushed

			return pushed
		}
	}

	return 0
}
