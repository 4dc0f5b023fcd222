// Package encode turns user-supplied state into one arbitrary-precision
// non-negative integer.
// Invariants:
//   - Decimal and binary modes accept exactly ^[0-9]+$ / ^[01]+$ after
//     trimming; anything else is ErrInputFormat.
//   - Text mode normalizes to NFC, then accumulates base-k digits over the
//     active symbol table. Classic uses digits 0..k-1 and is not injective
//     (a leading index-0 symbol collides with its absence); bijective uses
//     digits 1..k and maps every non-empty string to a distinct integer.
//   - Encoding is purely functional given a table; no state is kept.
package encode
