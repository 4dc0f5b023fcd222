// Package colorize maps token values bijectively to 24-bit hex colors.
package colorize

import "fmt"

// MaxIndex is the largest colorizable token value (16^6).
const MaxIndex int64 = 16777216

// Sentinel stands in for values outside [1, MaxIndex].
const Sentinel = "------"

// InRange reports whether v has a color.
func InRange(v int64) bool { return v >= 1 && v <= MaxIndex }

// Hex returns the 6-hex-digit color for v: 1 -> "000000", 16^6 -> "ffffff".
// The second result is false for values outside [1, MaxIndex].
func Hex(v int64) (string, bool) {
	if !InRange(v) {
		return "", false
	}
	return fmt.Sprintf("%06x", v-1), true
}

// HexOrSentinel returns the color for v, or Sentinel when v has none.
func HexOrSentinel(v int64) string {
	if h, ok := Hex(v); ok {
		return h
	}
	return Sentinel
}
