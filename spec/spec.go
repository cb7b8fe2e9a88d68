package spec

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/metrosat/grid"
)

// Sentinel errors wrapped by ParseError; compare with errors.Is.
var (
	// ErrBadScenario indicates the scenario line was not "1" or "2".
	ErrBadScenario = errors.New("spec: scenario must be 1 or 2")

	// ErrBadDimensions indicates N or M was not a positive integer.
	ErrBadDimensions = errors.New("spec: N and M must be positive")

	// ErrBadCount indicates K, J, or P was negative.
	ErrBadCount = errors.New("spec: K, J, P must be non-negative")

	// ErrOutOfBounds indicates a cell coordinate fell outside the grid.
	ErrOutOfBounds = errors.New("spec: cell out of bounds")

	// ErrDuplicateStart indicates two lines share a start cell.
	ErrDuplicateStart = errors.New("spec: duplicate start cell")

	// ErrDuplicateEnd indicates two lines share an end cell.
	ErrDuplicateEnd = errors.New("spec: duplicate end cell")

	// ErrStartEqualsEnd indicates a line's start and end coincide.
	ErrStartEqualsEnd = errors.New("spec: start equals end")

	// ErrTruncated indicates the file ended before all expected lines were read.
	ErrTruncated = errors.New("spec: unexpected end of input")

	// ErrMalformedLine indicates a line did not parse as the expected
	// whitespace-separated integers.
	ErrMalformedLine = errors.New("spec: malformed line")
)

// ParseError reports a city-file parse or validation failure, pinpointing
// the 1-based line number (0 if the failure is not tied to one line, e.g.
// ErrTruncated) and wrapping one of the sentinels above.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("spec: line %d (%q): %v", e.Line, e.Text, e.Err)
	}

	return fmt.Sprintf("spec: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Spec is the immutable problem instance described by a ".city" file.
//
// Scenario is 1 or 2. N and M are the grid width and height. Starts and
// Ends are parallel K-length slices of distinct cells (Starts and Ends
// are each internally duplicate-free, and Starts union Ends is
// duplicate-free: no cell is both a start and an end, whether of the same
// or different lines). J is the turn budget shared by every line.
// Popular is non-empty only when Scenario == 2.
type Spec struct {
	Scenario int
	N, M     int
	K, J, P  int
	Starts   []grid.Cell
	Ends     []grid.Cell
	Popular  []grid.Cell
}

// InBounds reports whether c lies within this Spec's grid.
func (s *Spec) InBounds(c grid.Cell) bool {
	return c.InBounds(s.N, s.M)
}
