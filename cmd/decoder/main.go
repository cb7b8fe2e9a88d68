// Command decoder reads a "<basename>.city" problem instance and its
// "<basename>.satoutput" oracle result, and writes a
// "<basename>.metromap" rendering of the decoded solution.
//
// Usage: decoder <basename>[.city]
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/katalvlaran/metrosat/decode"
	"github.com/katalvlaran/metrosat/dimacs"
	"github.com/katalvlaran/metrosat/spec"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: decoder <basename>[.city]")
	}
	basename := strings.TrimSuffix(os.Args[1], ".city")

	if err := run(basename); err != nil {
		log.Fatalf("decoder: %v", err)
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

	satFile, err := os.Open(basename + ".satoutput")
	if err != nil {
		return err
	}
	defer satFile.Close()

	sat, model, err := dimacs.ParseOracleOutput(satFile)
	if err != nil {
		return err
	}

	var paths []decode.Path
	if sat {
		paths, err = decode.Decode(s, model)
		if err != nil {
			return err
		}
	}

	out, err := os.Create(basename + ".metromap")
	if err != nil {
		return err
	}
	defer out.Close()

	if err := dimacs.WriteMetroMap(out, s, sat, paths); err != nil {
		return err
	}

	fmt.Printf("wrote %s.metromap\n", basename)

	return nil
}
