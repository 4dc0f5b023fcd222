// Package eval orchestrates one evaluation request through the pipeline:
// encode, tokenize, validate, colorize.
// Invariants:
//   - An evaluation runs to completion or returns an encoder error; there
//     is no partial or resumable state.
//   - Evaluations are idempotent: identical request and profile yield an
//     identical report.
//   - The Evaluator owns the symbol-table cache; tables are rebuilt on
//     profile change and read-only during a run.
package eval
