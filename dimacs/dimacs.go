package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/metrosat/decode"
	"github.com/katalvlaran/metrosat/encode"
	"github.com/katalvlaran/metrosat/spec"
)

// ErrMalformedOracleOutput indicates the oracle's output was neither a
// recognizable SAT/SATISFIABLE nor UNSAT declaration, or contained a
// non-integer model token.
var ErrMalformedOracleOutput = errors.New("dimacs: malformed oracle output")

// ModelError wraps ErrMalformedOracleOutput with the offending line.
type ModelError struct {
	Line string
	Err  error
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("dimacs: %v: %q", e.Err, e.Line)
}

func (e *ModelError) Unwrap() error { return e.Err }

// WriteCNF serializes r as DIMACS CNF: a "p cnf V C" header followed by
// one line per clause, each a space-separated list of signed integers
// terminated by " 0".
func WriteCNF(w io.Writer, r *encode.Result) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", r.NumVars, len(r.Clauses)); err != nil {
		return err
	}
	for _, c := range r.Clauses {
		parts := make([]string, len(c))
		for i, lit := range c {
			parts[i] = strconv.Itoa(lit)
		}
		if _, err := fmt.Fprintf(bw, "%s 0\n", strings.Join(parts, " ")); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ParseOracleOutput reads a SAT oracle's result: a line "SAT" or
// "SATISFIABLE" followed by a space-separated assignment of signed
// integers (an optional trailing 0 terminator is skipped), or a line
// beginning "UNSAT". sat reports which was found; model is nil when
// sat is false.
func ParseOracleOutput(r io.Reader) (sat bool, model []int, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var firstLine string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		firstLine = line
		break
	}

	switch {
	case firstLine == "":
		return false, nil, &ModelError{Line: firstLine, Err: ErrMalformedOracleOutput}
	case strings.HasPrefix(firstLine, "UNSAT"):
		return false, nil, nil
	case firstLine == "SAT" || firstLine == "SATISFIABLE":
		model, err = scanModel(sc)
		if err != nil {
			return false, nil, err
		}

		return true, model, nil
	default:
		return false, nil, &ModelError{Line: firstLine, Err: ErrMalformedOracleOutput}
	}
}

func scanModel(sc *bufio.Scanner) ([]int, error) {
	var model []int
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		for _, tok := range strings.Fields(line) {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, &ModelError{Line: line, Err: ErrMalformedOracleOutput}
			}
			if n == 0 {
				return model, nil
			}
			model = append(model, n)
		}
	}

	return model, nil
}

// WriteMetroMap renders a decoded solution per the §6 .metromap format: if
// sat is false (the oracle declared the instance infeasible), the single
// line "0"; otherwise one line per rail, that line's direction letters
// space-separated and terminated by a trailing "0", in encoder line
// order.
func WriteMetroMap(w io.Writer, s *spec.Spec, sat bool, paths []decode.Path) error {
	bw := bufio.NewWriter(w)
	if !sat {
		if _, err := fmt.Fprintln(bw, "0"); err != nil {
			return err
		}

		return bw.Flush()
	}

	for _, path := range paths {
		letters := make([]string, len(path))
		for i, d := range path {
			letters[i] = d.String()
		}
		letters = append(letters, "0")
		if _, err := fmt.Fprintln(bw, strings.Join(letters, " ")); err != nil {
			return err
		}
	}

	return bw.Flush()
}
