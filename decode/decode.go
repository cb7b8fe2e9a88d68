package decode

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/metrosat/grid"
	"github.com/katalvlaran/metrosat/spec"
	"github.com/katalvlaran/metrosat/varspace"
)

// Sentinel errors wrapped by DecodeError; compare with errors.Is.
var (
	// ErrAmbiguousCell indicates a cell carries more than one positive
	// direction variable on the same line, which a sound model can never
	// produce.
	ErrAmbiguousCell = errors.New("decode: cell has more than one outbound direction on the same line")

	// ErrRevisit indicates a line's walk returned to a cell it already
	// visited, i.e. the model encodes a cycle rather than a simple path.
	ErrRevisit = errors.New("decode: line revisits a cell")

	// ErrStepBudgetExceeded indicates a line's walk exceeded N*M steps
	// without reaching its end cell.
	ErrStepBudgetExceeded = errors.New("decode: line exceeded the N*M step budget without reaching its end")

	// ErrNoOutbound indicates a line's walk reached a non-end cell that
	// carries no outbound direction on that line.
	ErrNoOutbound = errors.New("decode: line reaches a non-end cell with no outbound direction")
)

// DecodeError reports a failure decoding line K's walk.
type DecodeError struct {
	Line int
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode: line %d: %v", e.Line, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Path is one line's walk as a sequence of outbound directions, one per
// cell from starts[k] up to (but not including) ends[k].
type Path []grid.Direction

// Decode reconstructs one Path per line from model, the set of literal
// tokens a SAT oracle reported for a satisfying assignment (signed
// integers, zero-terminated, exactly as DIMACS model output reads). Only
// positive primary direction tokens matter here; auxiliaries, negative
// tokens, and the trailing zero are all ignored.
//
// Decode assumes s already passed spec.Parse's validation.
func Decode(s *spec.Spec, model []int) ([]Path, error) {
	vs := varspace.New(s.N, s.M, s.K)

	positive := make(map[int]bool, len(model))
	for _, tok := range model {
		if tok > 0 {
			positive[tok] = true
		}
	}

	paths := make([]Path, s.K)
	for k := 0; k < s.K; k++ {
		cellDir, err := buildCellDir(vs, s, k, positive)
		if err != nil {
			return nil, &DecodeError{Line: k, Err: err}
		}

		path, err := walk(s, k, cellDir)
		if err != nil {
			return nil, &DecodeError{Line: k, Err: err}
		}
		paths[k] = path
	}

	return paths, nil
}

// buildCellDir scans every cell for line k and records its single
// positive outbound direction, if any.
func buildCellDir(vs *varspace.VarSpace, s *spec.Spec, k int, positive map[int]bool) (map[grid.Cell]grid.Direction, error) {
	cellDir := make(map[grid.Cell]grid.Direction)
	for y := 0; y < s.M; y++ {
		for x := 0; x < s.N; x++ {
			c := grid.Cell{X: x, Y: y}
			found := false
			for _, d := range grid.Directions {
				if !positive[vs.Dir(k, x, y, d)] {
					continue
				}
				if found {
					return nil, ErrAmbiguousCell
				}
				cellDir[c] = d
				found = true
			}
		}
	}

	return cellDir, nil
}

// walk follows cellDir from s.Starts[k] until it reaches s.Ends[k],
// failing with ErrNoOutbound if a cell before the end has no outbound
// direction, and guarding against an unsound model looping forever by
// tracking visited cells and capping total steps at N*M.
func walk(s *spec.Spec, k int, cellDir map[grid.Cell]grid.Direction) (Path, error) {
	start, end := s.Starts[k], s.Ends[k]
	budget := s.N * s.M

	var path Path
	visited := map[grid.Cell]bool{start: true}
	cur := start
	for steps := 0; cur != end; steps++ {
		if steps >= budget {
			return nil, ErrStepBudgetExceeded
		}
		d, ok := cellDir[cur]
		if !ok {
			return nil, ErrNoOutbound
		}
		path = append(path, d)
		next := cur.Neighbor(d)
		if visited[next] {
			return nil, ErrRevisit
		}
		visited[next] = true
		cur = next
	}

	return path, nil
}
