// Package charset builds the ordered symbol tables used by text encoding.
// Invariants:
//   - A Table never contains duplicate symbols; the first occurrence of a
//     code point (in range declaration order) wins its position.
//   - Newline and tab are always present, appended after range expansion
//     unless a range already produced them.
//   - Code points that cannot be materialized as graphic symbols are
//     skipped silently; the table is best-effort relative to the nominal
//     ranges and callers must not assume completeness.
//   - A Table is immutable once built; profile changes rebuild, never mutate.
package charset
