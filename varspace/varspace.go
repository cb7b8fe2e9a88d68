package varspace

import (
	"fmt"
	"sync/atomic"

	"github.com/katalvlaran/metrosat/grid"
)

// VarSpace maps (k,x,y,d) direction variables and (k,x,y) occupancy
// variables onto positive 1-based CNF IDs via a closed-form formula, and
// hands out auxiliary IDs contiguously after the primary blocks.
//
// The direction and occupancy blocks are sized once from N, M, K at
// construction and never change; AllocAux is the only moving part, and is
// safe for a single encoder goroutine to call repeatedly (see doc.go).
type VarSpace struct {
	n, m, k int

	// occBase is the first occupancy ID minus 1 (i.e. Dir's ID space size).
	occBase int

	// auxBase is the first auxiliary ID minus 1 (i.e. occBase + K*N*M).
	auxBase int

	// nextAux is the next unallocated aux ID, offset from auxBase.
	// Accessed only via atomic ops so a future sharded encoder (per §5
	// concurrency note) could allocate aux IDs from multiple goroutines
	// without racing.
	nextAux uint64
}

// New returns a VarSpace sized for an N-by-M grid with K lines. N, M, and K
// must be non-negative; the caller (encode) is responsible for validating
// the originating Spec before construction.
func New(n, m, k int) *VarSpace {
	dirCount := k * m * n * 4
	occCount := k * m * n

	return &VarSpace{
		n:       n,
		m:       m,
		k:       k,
		occBase: dirCount,
		auxBase: dirCount + occCount,
	}
}

// Dir returns the ID of dir(k,x,y,d). d must be one of grid.L, grid.R,
// grid.U, grid.D. Panics if k, x, or y is out of range, since an
// out-of-range request indicates an encoder bug, not bad input data (Spec
// has already validated every coordinate it hands to the encoder).
func (vs *VarSpace) Dir(k, x, y int, d grid.Direction) int {
	vs.checkCell(k, x, y)

	return 1 + (((k*vs.m+y)*vs.n+x)*4 + int(d))
}

// Occ returns the ID of occ(k,x,y).
func (vs *VarSpace) Occ(k, x, y int) int {
	vs.checkCell(k, x, y)

	return vs.occBase + 1 + ((k*vs.m+y)*vs.n + x)
}

// AllocAux reserves and returns the next auxiliary variable ID. Successive
// calls return distinct, increasing IDs starting immediately after the
// occupancy block.
func (vs *VarSpace) AllocAux() int {
	n := atomic.AddUint64(&vs.nextAux, 1)

	return vs.auxBase + int(n)
}

// Count returns the number of variable IDs allocated so far: the fixed
// primary blocks plus every auxiliary handed out by AllocAux to date. This
// is the CNF header's variable count once encoding is complete.
func (vs *VarSpace) Count() int {
	return vs.auxBase + int(atomic.LoadUint64(&vs.nextAux))
}

func (vs *VarSpace) checkCell(k, x, y int) {
	if k < 0 || k >= vs.k || x < 0 || x >= vs.n || y < 0 || y >= vs.m {
		panic(fmt.Sprintf("varspace: cell (k=%d,x=%d,y=%d) out of range for %dx%d grid with %d lines", k, x, y, vs.n, vs.m, vs.k))
	}
}
