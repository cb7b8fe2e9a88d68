package precheck

import (
	"context"

	"github.com/katalvlaran/metrosat/bfs"
	"github.com/katalvlaran/metrosat/cellgraph"
	"github.com/katalvlaran/metrosat/flow"
	"github.com/katalvlaran/metrosat/grid"
	"github.com/katalvlaran/metrosat/spec"
)

// Option configures the precheck subsystem via functional arguments, in
// the same style as flow.Options and bfs.Option.
type Option func(*options)

type options struct {
	ctx context.Context
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext sets a context for cancellation of the underlying bfs/flow
// graph algorithms.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// buildGridGraph returns the 4-connected cellgraph.Graph for an N-by-M
// grid: one vertex per cell, one unit-weight directed edge per legal
// cardinal move (each undirected grid edge is split into two opposite
// unit-capacity arcs to model edge-disjointness rather than
// vertex-disjointness).
func buildGridGraph(n, m int) *cellgraph.Graph {
	g := cellgraph.NewGraph()
	for y := 0; y < m; y++ {
		for x := 0; x < n; x++ {
			_ = g.AddVertex(grid.Cell{X: x, Y: y}.String())
		}
	}
	for y := 0; y < m; y++ {
		for x := 0; x < n; x++ {
			c := grid.Cell{X: x, Y: y}
			for _, d := range grid.Directions {
				if !c.InBoundsDir(d, n, m) {
					continue
				}
				nb := c.Neighbor(d)
				_, _ = g.AddEdge(c.String(), nb.String(), 1)
			}
		}
	}

	return g
}

// Reachable reports whether every line k's end cell is reachable from its
// start cell over the unweighted 4-connected grid graph. A false result
// proves the instance infeasible; a true result says nothing about turn
// budgets or popular cells.
func Reachable(s *spec.Spec, opts ...Option) (bool, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := buildGridGraph(s.N, s.M)
	for k := 0; k < s.K; k++ {
		start, end := s.Starts[k], s.Ends[k]
		result, err := bfs.BFS(g, start.String(), bfs.WithContext(o.ctx))
		if err != nil {
			return false, err
		}
		if !result.Reaches(end.String()) {
			return false, nil
		}
	}

	return true, nil
}

// superSource, superSink are the auxiliary vertex IDs added on top of the
// grid's "x,y" cell IDs to pose the K-edge-disjoint-paths question as a
// single max-flow computation.
const (
	superSource = "$source"
	superSink   = "$sink"
)

// HasEdgeDisjointCapacity reports whether the grid graph has at least K
// edge-disjoint paths, one per line, ignoring turn budgets and popular
// cells: a necessary, not sufficient, condition for satisfiability.
//
// Implemented as one max-flow computation: a super-source connects to
// every starts[k] by a unit-capacity arc, every ends[k] connects to a
// super-sink by a unit-capacity arc, and the grid itself supplies unit
// capacity per directed cell-to-cell arc. The instance can carry K
// edge-disjoint lines only if the max flow from super-source to
// super-sink reaches K.
func HasEdgeDisjointCapacity(s *spec.Spec, opts ...Option) (bool, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if s.K == 0 {
		return true, nil
	}

	g := buildGridGraph(s.N, s.M)
	_ = g.AddVertex(superSource)
	_ = g.AddVertex(superSink)
	for k := 0; k < s.K; k++ {
		_, _ = g.AddEdge(superSource, s.Starts[k].String(), 1)
		_, _ = g.AddEdge(s.Ends[k].String(), superSink, 1)
	}

	maxFlow, err := flow.Dinic(g, superSource, superSink, flow.Options{Ctx: o.ctx})
	if err != nil {
		return false, err
	}

	return maxFlow >= int64(s.K), nil
}
