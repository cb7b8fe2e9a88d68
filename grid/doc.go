// Package grid provides the cardinal-direction and cell geometry shared by
// every other metrosat package: Direction, Cell, displacement vectors, and
// in-bounds checks.
//
// It plays the same foundational role gridgraph played for land/water
// component analysis in the library this project grew out of, but the
// shape is different: metrosat cells are not "land" or "water" values to
// be thresholded, they are addressable points a rail can run through in
// one of four directions, so the type here is Direction-first rather than
// Connectivity-first.
package grid
