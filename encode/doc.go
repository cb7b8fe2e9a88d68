// Package encode drives varspace and cnf to turn a *spec.Spec into a
// complete CNF model: one call to Encode walks the eight fixed emission
// families in order so the resulting clause set is reproducible given the
// same Spec, the way core's AddEdge always walks the same fixed sequence
// of steps to keep vertex and adjacency state in lockstep.
package encode
