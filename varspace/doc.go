// Package varspace allocates and reverses the CNF variable IDs that name
// every boolean unknown in a metro-layout encoding: one block of direction
// variables, one block of occupancy variables, and a contiguous run of
// auxiliary variables handed out on demand.
//
// The primary blocks use a closed-form row-major index, the way
// matrix.Dense flattens a 2D index into one flat-array offset, since N, M
// and K are all known before encoding starts. Auxiliary IDs are handed out
// by an atomic monotonic counter in the style of core's nextEdgeID
// generator, since the encoder requests them incrementally and
// unpredictably as it walks the sequential-counter construction.
package varspace
