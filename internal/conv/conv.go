// Package conv provides checked integer conversion helpers.
//
// These functions perform bounds checking before narrowing integer conversions
// to prevent silent overflow. They panic on overflow since this indicates a
// programming error (e.g., a needle offset that was not range-checked first).
package conv

import "math"

// FitsUint8 reports whether n can be converted to uint8 without loss.
//
//go:inline
func FitsUint8(n int) bool {
	return n >= 0 && n <= math.MaxUint8
}

// IntToUint8 safely converts an int to uint8.
// Panics if n < 0 or n > math.MaxUint8.
//
//go:inline
func IntToUint8(n int) uint8 {
	if !FitsUint8(n) {
		panic("integer overflow: int value out of uint8 range")
	}
	return uint8(n)
}
