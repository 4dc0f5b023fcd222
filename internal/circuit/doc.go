// Package circuit derives deterministic gate sequences from an accepted
// token grid: a quantum sequence over a 12-gate palette and its classical
// shadow, which keeps only the gates with an exact classical correspondent
// (x and cx).
// Invariants:
//   - Derivation is a pure function of the grid and options.
//   - Rotation angles are non-zero multiples of pi/16.
//   - Reversible-only mode emits nothing but x and cx in both sequences.
package circuit
