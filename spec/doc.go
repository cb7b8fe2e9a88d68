// Package spec defines Spec, the immutable problem instance a metro-layout
// run is built from, and Parse, which reads it from the line-oriented
// ".city" file format.
//
// Spec is deliberately a plain, fully-validated value type: once Parse
// returns a *Spec successfully, every later package (cellgraph-based
// precheck, varspace, encode, decode) can assume N, M, K, J, P and every
// coordinate are in range and internally consistent, the way the teacher's
// builder package resolves a builderConfig once and hands it to
// constructors that never re-validate it.
package spec
