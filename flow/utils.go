package flow

import (
	"context"

	"github.com/katalvlaran/metrosat/cellgraph"
)

// buildCapMap constructs a nested map representing the residual capacities
// of graph g, aggregating parallel edges and ignoring self-loops.
//
// The returned capMap has structure capMap[u][v] = total capacity from
// u -> v after summing all parallel edges in g.
func buildCapMap(ctx context.Context, g *cellgraph.Graph) (map[string]map[string]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vertices := g.Vertices()
	capMap := make(map[string]map[string]int64, len(vertices))
	for _, u := range vertices {
		capMap[u] = make(map[string]int64)
	}

	for _, u := range vertices {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, e := range neighbors {
			if e.From == e.To {
				continue
			}
			capMap[u][e.To] += e.Weight
		}
		for v, total := range capMap[u] {
			if total <= 0 {
				delete(capMap[u], v)
			}
		}
	}

	return capMap, nil
}
