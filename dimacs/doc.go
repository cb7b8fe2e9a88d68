// Package dimacs handles the file formats the CLI surface reads and
// writes: the DIMACS CNF wire format handed to an external SAT oracle, the
// oracle's SAT/UNSAT result, and a plain-text metro-map rendering of a
// decoded solution.
//
// No example repo in the retrieval pack ships a DIMACS or SAT-oracle
// client, so this package is built directly on bufio/os, the same
// buffered-scanner-and-writer idiom core's own tests use for fixture I/O.
package dimacs
