package simd

import (
	"encoding/binary"
	"math/bits"
)

// memchrGeneric implements pure Go byte search using SWAR (SIMD Within A Register)
// technique. It processes 8 bytes at a time using uint64 bitwise operations.
//
// This function is used as a fallback on all platforms:
//   - On amd64: fallback for small inputs (< 32 bytes) or when AVX2 is not available
//   - On other platforms: primary implementation
//
// Algorithm:
//  1. Create a mask with needle replicated in every byte of uint64
//  2. Read 8 bytes from haystack as uint64
//  3. XOR with mask (matching bytes become 0x00)
//  4. Use zero-byte detection formula to find first zero
//  5. Extract position using trailing zero count
func memchrGeneric(haystack []byte, needle byte) int {
	haystackLen := len(haystack)
	if haystackLen == 0 {
		return -1
	}

	// For small inputs, byte-by-byte is faster (no setup overhead)
	if haystackLen < 8 {
		for idx := 0; idx < haystackLen; idx++ {
			if haystack[idx] == needle {
				return idx
			}
		}
		return -1
	}

	// SWAR technique: broadcast needle to all 8 bytes of uint64
	// Example: needle=0x42 -> needleMask=0x4242424242424242
	needleMask := uint64(needle) * lo8

	idx := 0

	for idx+8 <= haystackLen {
		chunk := binary.LittleEndian.Uint64(haystack[idx:])

		// XOR makes matching bytes become 0x00
		xor := chunk ^ needleMask

		// Zero-byte detection formula (Hacker's Delight technique):
		//   - Subtracting 0x01 from each byte causes borrow if byte was 0x00
		//   - AND with ~v isolates bytes that were originally zero
		//   - AND with 0x80 extracts high bit, marking zero-byte positions
		// Only bits above the lowest true zero can be spurious, and only the
		// lowest bit is used.
		hasZero := (xor - lo8) & ^xor & hi8

		if hasZero != 0 {
			return idx + bits.TrailingZeros64(hasZero)/8
		}

		idx += 8
	}

	// Process remaining bytes (0-7 bytes) byte-by-byte
	for idx < haystackLen {
		if haystack[idx] == needle {
			return idx
		}
		idx++
	}

	return -1
}

// PairMinHaystackLen is the shortest haystack a packed-pair scan with the
// given lane width can run over: one full stride starting at the larger
// index.
func PairMinHaystackLen(lanes, index1, index2 int) int {
	return max(index1, index2) + lanes
}

// FindPairSWAR returns the smallest pos such that
// haystack[pos+index1] == byte1 and haystack[pos+index2] == byte2,
// or -1 if there is none.
//
// This is the packed-pair technique: rather than locating byte1 and then
// probing for byte2, both bytes are compared across a whole stride at once.
// The stride for byte2 is loaded index2-index1 bytes further along, so bit k
// of the byte2 equality mask lines up with bit k of the byte1 mask exactly
// when the two bytes sit at the pair's distance. ANDing the masks leaves
// only positions where both bytes are present.
//
// Both indices must be non-negative; they are usually the positions of two
// literal bytes inside a needle, which makes pos a candidate needle start.
func FindPairSWAR(haystack []byte, byte1, byte2 byte, index1, index2 int) int {
	haystackLen := len(haystack)
	reach := max(index1, index2)
	if index1 < 0 || index2 < 0 || haystackLen <= reach {
		return -1
	}

	mask1 := uint64(byte1) * lo8
	mask2 := uint64(byte2) * lo8

	idx := 0

	// We need 8 bytes at idx+index1 AND 8 bytes at idx+index2
	for idx+8+reach <= haystackLen {
		chunk1 := binary.LittleEndian.Uint64(haystack[idx+index1:])
		chunk2 := binary.LittleEndian.Uint64(haystack[idx+index2:])

		// zeroBytes is exact, so the lowest common bit is a true pair.
		both := zeroBytes(chunk1^mask1) & zeroBytes(chunk2^mask2)
		if both != 0 {
			return idx + bits.TrailingZeros64(both)/8
		}

		idx += 8
	}

	for idx+reach < haystackLen {
		if haystack[idx+index1] == byte1 && haystack[idx+index2] == byte2 {
			return idx
		}
		idx++
	}

	return -1
}
