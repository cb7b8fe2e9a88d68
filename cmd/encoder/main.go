// Command encoder reads a "<basename>.city" problem instance and writes a
// "<basename>.satinput" DIMACS CNF file for an external SAT oracle.
//
// Usage: encoder <basename>[.city]
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/katalvlaran/metrosat/dimacs"
	"github.com/katalvlaran/metrosat/encode"
	"github.com/katalvlaran/metrosat/precheck"
	"github.com/katalvlaran/metrosat/spec"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: encoder <basename>[.city]")
	}
	basename := strings.TrimSuffix(os.Args[1], ".city")

	if err := run(basename); err != nil {
		log.Fatalf("encoder: %v", err)
	}
}

func run(basename string) error {
	cityFile, err := os.Open(basename + ".city")
	if err != nil {
		return err
	}
	defer cityFile.Close()

	s, err := spec.Parse(cityFile)
	if err != nil {
		return err
	}

	if reachable, err := precheck.Reachable(s); err != nil {
		return err
	} else if !reachable {
		fmt.Println("infeasible: at least one line's end is unreachable from its start")
	}
	if hasCapacity, err := precheck.HasEdgeDisjointCapacity(s); err != nil {
		return err
	} else if !hasCapacity {
		fmt.Println("infeasible: the grid lacks enough edge-disjoint capacity for all lines")
	}

	result := encode.Encode(s)

	out, err := os.Create(basename + ".satinput")
	if err != nil {
		return err
	}
	defer out.Close()

	if err := dimacs.WriteCNF(out, result); err != nil {
		return err
	}

	fmt.Printf("wrote %s.satinput: %d variables, %d clauses\n", basename, result.NumVars, len(result.Clauses))

	return nil
}
