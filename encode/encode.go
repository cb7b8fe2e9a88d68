package encode

import (
	"github.com/katalvlaran/metrosat/cnf"
	"github.com/katalvlaran/metrosat/grid"
	"github.com/katalvlaran/metrosat/spec"
	"github.com/katalvlaran/metrosat/varspace"
)

// Result is the complete CNF model produced by Encode: the variable count
// for the DIMACS header and the deduplicated clause set.
type Result struct {
	NumVars int
	Clauses []cnf.Clause
}

// Encode realizes every invariant in the data model as CNF clauses over a
// fresh VarSpace sized for s. Encode assumes s has already passed
// spec.Parse's validation; it does not re-check bounds or duplicates.
func Encode(s *spec.Spec) *Result {
	vs := varspace.New(s.N, s.M, s.K)
	b := cnf.NewBuilder()

	emitTurnBudgets(b, vs, s)
	emitAtMostOneDirectionPerCell(b, vs, s)
	emitBoundaryExclusions(b, vs, s)
	emitEndpoints(b, vs, s)
	emitContinuation(b, vs, s)
	emitCrossLineEndProtection(b, vs, s)
	emitGlobalNonOverlap(b, vs, s)
	emitPopularCells(b, vs, s)

	return &Result{NumVars: vs.Count(), Clauses: b.Clauses()}
}

// rowMajorCells lists every cell of an N-by-M grid in y-major, then x
// order, matching the iteration order VarSpace's Dir/Occ IDs are laid out
// in.
func rowMajorCells(n, m int) []grid.Cell {
	cells := make([]grid.Cell, 0, n*m)
	for y := 0; y < m; y++ {
		for x := 0; x < n; x++ {
			cells = append(cells, grid.Cell{X: x, Y: y})
		}
	}

	return cells
}

// incomingDirs collects, for every in-bounds neighbor of c, the direction
// variable on line k at that neighbor that would point back into c. This
// single formula grounds the "end incoming" ExactlyOne, the "start no
// back-pointing" unit clauses, the continuation fan-in guard, and the
// cross-line end protection — all four are "who points at this cell"
// queries over the same neighbor set.
func incomingDirs(vs *varspace.VarSpace, k int, c grid.Cell, n, m int) []int {
	var lits []int
	for _, d := range grid.Directions {
		if !c.InBoundsDir(d, n, m) {
			continue
		}
		nb := c.Neighbor(d)
		lits = append(lits, vs.Dir(k, nb.X, nb.Y, d.Opposite()))
	}

	return lits
}

// emitTurnBudgets realizes invariant 9: per line, at most J of the line's
// occupancy variables (each marking a turn, per emitContinuation) are
// true. AtMostKMinusOneSeq forbids J+1 or more, i.e. allows up to J; see
// decision 5 under "Open Question decisions" in DESIGN.md for why the call
// passes s.J+1 rather than s.J.
func emitTurnBudgets(b *cnf.Builder, vs *varspace.VarSpace, s *spec.Spec) {
	cells := rowMajorCells(s.N, s.M)
	for k := 0; k < s.K; k++ {
		occList := make([]int, len(cells))
		for i, c := range cells {
			occList[i] = vs.Occ(k, c.X, c.Y)
		}
		b.AtMostKMinusOneSeq(occList, s.J+1, vs.AllocAux)
	}
}

// emitAtMostOneDirectionPerCell realizes invariant 1.
func emitAtMostOneDirectionPerCell(b *cnf.Builder, vs *varspace.VarSpace, s *spec.Spec) {
	cells := rowMajorCells(s.N, s.M)
	for k := 0; k < s.K; k++ {
		for _, c := range cells {
			dirs := make([]int, len(grid.Directions))
			for i, d := range grid.Directions {
				dirs[i] = vs.Dir(k, c.X, c.Y, d)
			}
			b.AtMostOne(dirs)
		}
	}
}

// emitBoundaryExclusions realizes invariant 2.
func emitBoundaryExclusions(b *cnf.Builder, vs *varspace.VarSpace, s *spec.Spec) {
	cells := rowMajorCells(s.N, s.M)
	for k := 0; k < s.K; k++ {
		for _, c := range cells {
			for _, d := range grid.Directions {
				if !c.InBoundsDir(d, s.N, s.M) {
					b.Add(-vs.Dir(k, c.X, c.Y, d))
				}
			}
		}
	}
}

// emitEndpoints realizes invariants 3, 4, 6, and 7.
func emitEndpoints(b *cnf.Builder, vs *varspace.VarSpace, s *spec.Spec) {
	for k := 0; k < s.K; k++ {
		start, end := s.Starts[k], s.Ends[k]

		// End cell: visited but contributes no outbound direction.
		b.Add(-vs.Occ(k, end.X, end.Y))
		for _, d := range grid.Directions {
			b.Add(-vs.Dir(k, end.X, end.Y, d))
		}

		// Start cell: contributes the first move, not a mid-path
		// occupancy; exactly one in-bounds outbound direction.
		b.Add(-vs.Occ(k, start.X, start.Y))
		var startDirs []int
		for _, d := range grid.Directions {
			if start.InBoundsDir(d, s.N, s.M) {
				startDirs = append(startDirs, vs.Dir(k, start.X, start.Y, d))
			}
		}
		b.ExactlyOne(startDirs)

		// End incoming: exactly one neighbor of end points into it.
		b.ExactlyOne(incomingDirs(vs, k, end, s.N, s.M))

		// Start no back-pointing: no neighbor of start points into it.
		for _, lit := range incomingDirs(vs, k, start, s.N, s.M) {
			b.Add(-lit)
		}
	}
}

// emitContinuation realizes invariant 5.
func emitContinuation(b *cnf.Builder, vs *varspace.VarSpace, s *spec.Spec) {
	cells := rowMajorCells(s.N, s.M)
	for k := 0; k < s.K; k++ {
		start, end := s.Starts[k], s.Ends[k]
		for _, c := range cells {
			if c == end {
				continue
			}
			for _, d := range grid.Directions {
				if !c.InBoundsDir(d, s.N, s.M) {
					continue
				}
				nb := c.Neighbor(d)
				if nb == start || nb == end {
					continue
				}

				dirLit := vs.Dir(k, c.X, c.Y, d)

				// The neighbor must continue in a non-reversing direction.
				continueClause := []int{-dirLit}
				for _, dp := range grid.Directions {
					if dp == d.Opposite() {
						continue
					}
					if !nb.InBoundsDir(dp, s.N, s.M) {
						continue
					}
					continueClause = append(continueClause, vs.Dir(k, nb.X, nb.Y, dp))
				}
				b.Add(continueClause...)

				// A turn at the neighbor contributes to its occupancy.
				for _, dp := range grid.Directions {
					if dp == d || dp == d.Opposite() {
						continue
					}
					if !nb.InBoundsDir(dp, s.N, s.M) {
						continue
					}
					b.Add(-dirLit, -vs.Dir(k, nb.X, nb.Y, dp), vs.Occ(k, nb.X, nb.Y))
				}
			}

			// At most one other neighbor of c points back at c.
			b.AtMostOne(incomingDirs(vs, k, c, s.N, s.M))
		}
	}
}

// emitCrossLineEndProtection realizes the propagation hint that other
// lines never touch line k's end cell.
func emitCrossLineEndProtection(b *cnf.Builder, vs *varspace.VarSpace, s *spec.Spec) {
	for k := 0; k < s.K; k++ {
		end := s.Ends[k]
		for kp := 0; kp < s.K; kp++ {
			if kp == k {
				continue
			}
			for _, d := range grid.Directions {
				b.Add(-vs.Dir(kp, end.X, end.Y, d))
			}
			for _, lit := range incomingDirs(vs, kp, end, s.N, s.M) {
				b.Add(-lit)
			}
		}
	}
}

// emitGlobalNonOverlap realizes invariant 8.
func emitGlobalNonOverlap(b *cnf.Builder, vs *varspace.VarSpace, s *spec.Spec) {
	cells := rowMajorCells(s.N, s.M)
	for _, c := range cells {
		allDirs := make([]int, 0, s.K*len(grid.Directions))
		for k := 0; k < s.K; k++ {
			for _, d := range grid.Directions {
				allDirs = append(allDirs, vs.Dir(k, c.X, c.Y, d))
			}
		}
		b.AtMostOne(allDirs)
	}
}

// emitPopularCells realizes invariant 10 (scenario 2 only).
func emitPopularCells(b *cnf.Builder, vs *varspace.VarSpace, s *spec.Spec) {
	if s.Scenario != 2 {
		return
	}
	for _, p := range s.Popular {
		lits := make([]int, 0, s.K*len(grid.Directions))
		for k := 0; k < s.K; k++ {
			for _, d := range grid.Directions {
				lits = append(lits, vs.Dir(k, p.X, p.Y, d))
			}
		}
		b.ExactlyOne(lits)
	}
}
