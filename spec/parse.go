package spec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/metrosat/grid"
)

// lineScanner yields non-empty, non-blank lines from r along with their
// 1-based line numbers, skipping blank lines per the ".city" format.
type lineScanner struct {
	sc   *bufio.Scanner
	line int
}

func newLineScanner(r io.Reader) *lineScanner {
	return &lineScanner{sc: bufio.NewScanner(r)}
}

// next returns the next non-blank line and its line number, or ok=false
// once input is exhausted.
func (ls *lineScanner) next() (text string, lineNo int, ok bool) {
	for ls.sc.Scan() {
		ls.line++
		t := strings.TrimSpace(ls.sc.Text())
		if t == "" {
			continue
		}

		return t, ls.line, true
	}

	return "", 0, false
}

// Parse reads a Spec from the ".city" format described in the external
// interfaces contract: a scenario line, a dimensions line, K endpoint
// lines, and (scenario 2 only) one popular-cells line.
//
// Stage 1 (read): pull each logical line via lineScanner, skipping blanks.
// Stage 2 (validate): parse integers and check every §6 constraint,
// failing fast with a *ParseError pinpointing the offending line.
// Stage 3 (finalize): return the immutable *Spec.
func Parse(r io.Reader) (*Spec, error) {
	ls := newLineScanner(r)

	scenario, err := parseScenario(ls)
	if err != nil {
		return nil, err
	}

	s := &Spec{Scenario: scenario}
	if err := parseDimensions(ls, s); err != nil {
		return nil, err
	}

	if err := parseLines(ls, s); err != nil {
		return nil, err
	}

	if s.Scenario == 2 {
		if err := parsePopular(ls, s); err != nil {
			return nil, err
		}
	}

	if err := validate(s); err != nil {
		return nil, err
	}

	return s, nil
}

func parseScenario(ls *lineScanner) (int, error) {
	text, lineNo, ok := ls.next()
	if !ok {
		return 0, &ParseError{Err: ErrTruncated}
	}
	switch text {
	case "1":
		return 1, nil
	case "2":
		return 2, nil
	default:
		return 0, &ParseError{Line: lineNo, Text: text, Err: ErrBadScenario}
	}
}

func parseDimensions(ls *lineScanner, s *Spec) error {
	text, lineNo, ok := ls.next()
	if !ok {
		return &ParseError{Err: ErrTruncated}
	}
	want := 4
	if s.Scenario == 2 {
		want = 5
	}
	fields, err := splitInts(text, want)
	if err != nil {
		return &ParseError{Line: lineNo, Text: text, Err: err}
	}

	s.N, s.M, s.K, s.J = fields[0], fields[1], fields[2], fields[3]
	if s.Scenario == 2 {
		s.P = fields[4]
	}

	if s.N <= 0 || s.M <= 0 {
		return &ParseError{Line: lineNo, Text: text, Err: ErrBadDimensions}
	}
	if s.K < 0 || s.J < 0 || s.P < 0 {
		return &ParseError{Line: lineNo, Text: text, Err: ErrBadCount}
	}

	return nil
}

func parseLines(ls *lineScanner, s *Spec) error {
	s.Starts = make([]grid.Cell, 0, s.K)
	s.Ends = make([]grid.Cell, 0, s.K)
	for i := 0; i < s.K; i++ {
		text, lineNo, ok := ls.next()
		if !ok {
			return &ParseError{Err: ErrTruncated}
		}
		fields, err := splitInts(text, 4)
		if err != nil {
			return &ParseError{Line: lineNo, Text: text, Err: err}
		}
		start := grid.Cell{X: fields[0], Y: fields[1]}
		end := grid.Cell{X: fields[2], Y: fields[3]}
		if !start.InBounds(s.N, s.M) || !end.InBounds(s.N, s.M) {
			return &ParseError{Line: lineNo, Text: text, Err: ErrOutOfBounds}
		}
		if start == end {
			return &ParseError{Line: lineNo, Text: text, Err: ErrStartEqualsEnd}
		}
		s.Starts = append(s.Starts, start)
		s.Ends = append(s.Ends, end)
	}

	return nil
}

func parsePopular(ls *lineScanner, s *Spec) error {
	if s.P == 0 {
		s.Popular = nil
		text, lineNo, ok := ls.next()
		if ok {
			if _, err := splitInts(text, 2*s.P); err == nil {
				return nil
			}
			return &ParseError{Line: lineNo, Text: text, Err: ErrMalformedLine}
		}

		return nil
	}

	text, lineNo, ok := ls.next()
	if !ok {
		return &ParseError{Err: ErrTruncated}
	}
	fields, err := splitInts(text, 2*s.P)
	if err != nil {
		return &ParseError{Line: lineNo, Text: text, Err: err}
	}

	s.Popular = make([]grid.Cell, 0, s.P)
	for i := 0; i < s.P; i++ {
		c := grid.Cell{X: fields[2*i], Y: fields[2*i+1]}
		if !c.InBounds(s.N, s.M) {
			return &ParseError{Line: lineNo, Text: text, Err: ErrOutOfBounds}
		}
		s.Popular = append(s.Popular, c)
	}

	return nil
}

func validate(s *Spec) error {
	seenStart := make(map[grid.Cell]bool, s.K)
	seenEnd := make(map[grid.Cell]bool, s.K)
	for i := 0; i < s.K; i++ {
		if seenStart[s.Starts[i]] {
			return &ParseError{Err: fmt.Errorf("%w: %v", ErrDuplicateStart, s.Starts[i])}
		}
		seenStart[s.Starts[i]] = true
		if seenEnd[s.Ends[i]] {
			return &ParseError{Err: fmt.Errorf("%w: %v", ErrDuplicateEnd, s.Ends[i])}
		}
		seenEnd[s.Ends[i]] = true
	}
	for c := range seenStart {
		if seenEnd[c] {
			return &ParseError{Err: fmt.Errorf("%w: %v is both a start and an end", ErrDuplicateStart, c)}
		}
	}

	return nil
}

// splitInts splits text on whitespace and parses exactly want integers,
// returning ErrMalformedLine on any token that is not a valid integer or
// any field-count mismatch.
func splitInts(text string, want int) ([]int, error) {
	fields := strings.Fields(text)
	if len(fields) != want {
		return nil, fmt.Errorf("%w: want %d fields, got %d", ErrMalformedLine, want, len(fields))
	}
	out := make([]int, want)
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrMalformedLine, f)
		}
		out[i] = n
	}

	return out, nil
}
