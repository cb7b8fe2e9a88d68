// Package decode turns a satisfying SAT model back into a direction
// sequence per line, walking each line's rail from its start cell to its
// end cell one outbound direction at a time.
//
// Decode never trusts the model blindly: a malformed or inconsistent
// model (the oracle lied, or the encoding itself has a bug) must fail
// loudly rather than loop forever or silently return a truncated path,
// the way core's constructors reject structurally impossible input instead
// of returning a half-built Graph.
package decode
