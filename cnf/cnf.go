package cnf

import (
	"sort"
	"strconv"
	"strings"
)

// Clause is an unordered set of signed literals (a positive int names a
// variable asserted true, a negative int the same variable negated). A
// DIMACS writer appends the trailing 0 terminator; Clause itself does not
// carry one.
type Clause []int

// key returns the canonical dedup key for a clause: its literals sorted
// ascending, joined by commas. Two clauses with the same literals in any
// order produce the same key.
func (c Clause) key() string {
	sorted := make([]int, len(c))
	copy(sorted, c)
	sort.Ints(sorted)
	parts := make([]string, len(sorted))
	for i, l := range sorted {
		parts[i] = strconv.Itoa(l)
	}

	return strings.Join(parts, ",")
}

// Builder accumulates a deduplicated, insertion-ordered set of clauses.
// Not safe for concurrent use; the encoder owns one Builder per run.
type Builder struct {
	order []Clause
	seen  map[string]struct{}
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{seen: make(map[string]struct{})}
}

// Add normalizes lits into a clause and appends it if its canonical form
// has not been seen before. A clause containing both a literal and its
// negation is a tautology and is dropped rather than stored, since it can
// never constrain the oracle.
func (b *Builder) Add(lits ...int) {
	if isTautology(lits) {
		return
	}
	c := Clause(append([]int(nil), lits...))
	key := c.key()
	if _, ok := b.seen[key]; ok {
		return
	}
	b.seen[key] = struct{}{}
	b.order = append(b.order, c)
}

// Clauses returns the accumulated clauses in insertion order.
func (b *Builder) Clauses() []Clause {
	return b.order
}

// Len returns the number of distinct clauses accumulated so far.
func (b *Builder) Len() int {
	return len(b.order)
}

func isTautology(lits []int) bool {
	present := make(map[int]bool, len(lits))
	for _, l := range lits {
		if present[-l] {
			return true
		}
		present[l] = true
	}

	return false
}

// AtMostOne emits the pairwise negative binary clauses forbidding two or
// more of vars from being simultaneously true: O(n^2) clauses in |vars|.
func (b *Builder) AtMostOne(vars []int) {
	for i := 0; i < len(vars); i++ {
		for j := i + 1; j < len(vars); j++ {
			b.Add(-vars[i], -vars[j])
		}
	}
}

// ExactlyOne emits the disjunction of all vars plus the AtMostOne pairwise
// clauses, forcing exactly one of vars to be true.
func (b *Builder) ExactlyOne(vars []int) {
	if len(vars) == 0 {
		return
	}
	b.Add(vars...)
	b.AtMostOne(vars)
}

// AllocFunc reserves and returns the next auxiliary variable ID; the
// encoder plugs in varspace.(*VarSpace).AllocAux here so cnf never needs
// to know how IDs are partitioned.
type AllocFunc func() int

// AtMostKMinusOneSeq forbids more than J-1 of vars from being true, via the
// standard sequential-counter cardinality encoding: a(i,j) means "at least
// j+1 of the first i+1 of vars are true."
//
//   - |vars| <= J: no clauses are emitted, so when |vars| == J all of
//     vars may be true together.
//   - J == 0: every var is forced false.
//   - Otherwise: J auxiliary variables per position, linked by the
//     activation, carry, and increment clauses below, with the final
//     clause forbidding the counter from reaching J.
func (b *Builder) AtMostKMinusOneSeq(vars []int, j int, alloc AllocFunc) {
	n := len(vars)
	if n <= j {
		return
	}
	if j == 0 {
		for _, v := range vars {
			b.Add(-v)
		}

		return
	}

	// aux[i][t] is a(i,t) for 0<=i<n, 0<=t<j.
	aux := make([][]int, n)
	for i := range aux {
		aux[i] = make([]int, j)
		for t := range aux[i] {
			aux[i][t] = alloc()
		}
	}

	// Position 0: activating the first counter when v_0 is true.
	b.Add(-vars[0], aux[0][0])
	for t := 1; t < j; t++ {
		b.Add(-aux[0][t]) // boundary: a(0,t) forced false for t>0
	}

	for i := 1; i < n; i++ {
		b.Add(-vars[i], aux[i][0])
		b.Add(-aux[i-1][0], aux[i][0])
		for t := 1; t < j; t++ {
			b.Add(-aux[i-1][t], aux[i][t])                 // monotone carry
			b.Add(-vars[i], -aux[i-1][t-1], aux[i][t]) // increment
		}
	}

	b.Add(-aux[n-1][j-1]) // the top counter must not be reached
}
