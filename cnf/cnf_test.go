package cnf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metrosat/cnf"
)

func TestBuilder_AddDeduplicatesRegardlessOfOrder(t *testing.T) {
	b := cnf.NewBuilder()
	b.Add(1, -2, 3)
	b.Add(3, 1, -2)
	assert.Equal(t, 1, b.Len())
}

func TestBuilder_AddDropsTautology(t *testing.T) {
	b := cnf.NewBuilder()
	b.Add(1, -1, 2)
	assert.Equal(t, 0, b.Len())
}

func TestBuilder_ClausesPreserveInsertionOrder(t *testing.T) {
	b := cnf.NewBuilder()
	b.Add(1)
	b.Add(2)
	b.Add(3)
	got := b.Clauses()
	require.Len(t, got, 3)
	assert.Equal(t, cnf.Clause{1}, got[0])
	assert.Equal(t, cnf.Clause{2}, got[1])
	assert.Equal(t, cnf.Clause{3}, got[2])
}

func TestAtMostOne_PairwiseClauseCount(t *testing.T) {
	b := cnf.NewBuilder()
	b.AtMostOne([]int{1, 2, 3, 4})
	assert.Equal(t, 6, b.Len()) // C(4,2)
	for _, c := range b.Clauses() {
		assert.Len(t, c, 2)
	}
}

func TestExactlyOne_IncludesDisjunctionAndPairwise(t *testing.T) {
	b := cnf.NewBuilder()
	b.ExactlyOne([]int{1, 2, 3})
	assert.Equal(t, 1+3, b.Len()) // one disjunction + C(3,2) pairwise
	found := false
	for _, c := range b.Clauses() {
		if len(c) == 3 {
			found = true
		}
	}
	assert.True(t, found, "expected the disjunction clause among the output")
}

func TestExactlyOne_EmptyIsNoop(t *testing.T) {
	b := cnf.NewBuilder()
	b.ExactlyOne(nil)
	assert.Equal(t, 0, b.Len())
}

func TestAtMostKMinusOneSeq_VarsNoLargerThanJ_NoClauses(t *testing.T) {
	b := cnf.NewBuilder()
	nextAux := 100
	alloc := func() int { nextAux++; return nextAux }
	b.AtMostKMinusOneSeq([]int{1, 2, 3}, 3, alloc)
	assert.Equal(t, 0, b.Len())
}

func TestAtMostKMinusOneSeq_JZeroForcesAllFalse(t *testing.T) {
	b := cnf.NewBuilder()
	alloc := func() int { return 0 }
	b.AtMostKMinusOneSeq([]int{1, 2, 3}, 0, alloc)
	require.Equal(t, 3, b.Len())
	for _, c := range b.Clauses() {
		require.Len(t, c, 1)
		assert.Less(t, c[0], 0)
	}
}

func TestAtMostKMinusOneSeq_AllocatesJAuxPerPosition(t *testing.T) {
	b := cnf.NewBuilder()
	n, j := 5, 2
	vars := []int{1, 2, 3, 4, 5}
	nextAux := 1000
	allocated := 0
	alloc := func() int {
		nextAux++
		allocated++
		return nextAux
	}
	b.AtMostKMinusOneSeq(vars, j, alloc)
	assert.Equal(t, n*j, allocated)
	assert.Greater(t, b.Len(), 0)
}

func TestAtMostKMinusOneSeq_ForbidsTopCounterClausePresent(t *testing.T) {
	b := cnf.NewBuilder()
	nextAux := 0
	alloc := func() int { nextAux++; return 10000 + nextAux }
	vars := []int{1, 2, 3, 4}
	j := 2
	b.AtMostKMinusOneSeq(vars, j, alloc)

	// The final auxiliary allocated is a(n-1, j-1); its negation must be
	// a unit clause among the output.
	lastAux := 10000 + nextAux
	found := false
	for _, c := range b.Clauses() {
		if len(c) == 1 && c[0] == -lastAux {
			found = true
		}
	}
	assert.True(t, found, "expected unit clause forbidding the top counter")
}
