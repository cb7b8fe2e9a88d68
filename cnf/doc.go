// Package cnf builds deduplicated sets of CNF clauses and exposes the
// cardinality-constraint helpers the encoder composes into a full
// propositional model: AtMostOne, ExactlyOne, and the sequential-counter
// AtMostKMinusOneSeq.
//
// Clauses are stored in a set keyed by their canonical sorted-literal
// tuple, the same set-over-sorted-key discipline core uses to dedupe
// parallel edges, so re-emitting an identical clause from two different
// invariants is a no-op rather than wasted oracle work.
package cnf
