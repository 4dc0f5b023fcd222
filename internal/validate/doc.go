// Package validate runs the structural acceptance checks over a token
// stream: shape (perfect-square count), value range, and grid adjacency.
// Invariants:
//   - Checks run in fixed order shape, range, adjacency.
//   - Shape and range always run; adjacency runs only when both pass.
//   - Validation failures are outcomes, not errors: every run returns a
//     full Outcome and the reject reason is the first failing check.
package validate
