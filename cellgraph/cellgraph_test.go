package cellgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/metrosat/cellgraph"
)

// CellGraphSuite exercises cellgraph's vertex/edge bookkeeping.
type CellGraphSuite struct {
	suite.Suite
}

func (s *CellGraphSuite) TestAddVertex_EmptyID() {
	g := cellgraph.NewGraph()
	require.ErrorIs(s.T(), g.AddVertex(""), cellgraph.ErrEmptyVertexID)
}

func (s *CellGraphSuite) TestAddEdge_CreatesEndpointsAndAdjacency() {
	g := cellgraph.NewGraph()
	eid, err := g.AddEdge("0,0", "1,0", 1)
	require.NoError(s.T(), err)
	require.NotEmpty(s.T(), eid)
	require.True(s.T(), g.HasVertex("0,0"))
	require.True(s.T(), g.HasVertex("1,0"))
	require.True(s.T(), g.HasEdge("0,0", "1,0"))
	require.False(s.T(), g.HasEdge("1,0", "0,0"), "directed graph: reverse edge must not exist")
}

func (s *CellGraphSuite) TestNeighbors_SortedByEdgeID() {
	g := cellgraph.NewGraph()
	_, _ = g.AddEdge("0,0", "1,0", 1)
	_, _ = g.AddEdge("0,0", "0,1", 1)

	neighbors, err := g.Neighbors("0,0")
	require.NoError(s.T(), err)
	require.Len(s.T(), neighbors, 2)
	for i := 1; i < len(neighbors); i++ {
		require.Less(s.T(), neighbors[i-1].ID, neighbors[i].ID, "Neighbors not sorted by Edge.ID: %v", neighbors)
	}
}

func (s *CellGraphSuite) TestNeighbors_UnknownVertex() {
	g := cellgraph.NewGraph()
	_, err := g.Neighbors("9,9")
	require.ErrorIs(s.T(), err, cellgraph.ErrVertexNotFound)
}

func (s *CellGraphSuite) TestVerticesAndEdges_Deterministic() {
	g := cellgraph.NewGraph()
	_, _ = g.AddEdge("1,0", "0,0", 1)
	_, _ = g.AddEdge("0,0", "0,1", 1)

	require.Equal(s.T(), []string{"0,0", "0,1", "1,0"}, g.Vertices())
	require.Len(s.T(), g.Edges(), 2)
}

func TestCellGraphSuite(t *testing.T) {
	suite.Run(t, new(CellGraphSuite))
}
