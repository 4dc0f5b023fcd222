// Package token slices the decimal text of an encoded integer into
// fixed-width windows.
// Invariants:
//   - Token.Text is the raw window, leading zeros preserved.
//   - Windows are Width digits, except the final one which may be shorter
//     and is parsed as-is, without left-padding ("5" is 5, not 5000000).
//   - Token count for text of length L is ceil(L / Width).
//   - Unparsable windows are skipped, not reported; with decimal-only
//     input none can occur.
package token
