// Package grid arranges a token stream as a square, row-major grid and
// detects adjacency conflicts.
// Invariants:
//   - Cell (r,c) holds the value at flat index r*side+c.
//   - Conflict marking is symmetric: both cells of an equal orthogonal
//     pair are reported.
//   - Wrap mode joins opposite edges (toroidal) and applies only when
//     side > 1; a 1x1 grid has no neighbors in either mode.
package grid
