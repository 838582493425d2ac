package simd

import "encoding/binary"

// The masked equality kernels all compute the same predicate over a needle
// of n positions described by two parallel buffers:
//
//	for all i < n: mask[i] == 0xFF || word[i] == candidate[i]
//
// word and mask must hold at least len(candidate) bytes (needle buffers are
// padded, so they usually hold more). The vector forms compare full lanes
// up to boundary, which must be a multiple of their lane width and at most
// len(candidate), and finish the tail with the scalar loop.

// MaskedEqualScalar compares candidate one byte at a time.
func MaskedEqualScalar(word, mask, candidate []byte) bool {
	return maskedEqualFrom(word, mask, candidate, 0)
}

// maskedEqualFrom runs the scalar predicate over candidate[from:].
func maskedEqualFrom(word, mask, candidate []byte, from int) bool {
	word = word[:len(candidate)]
	mask = mask[:len(candidate)]
	for i := from; i < len(candidate); i++ {
		if word[i] != candidate[i] && mask[i] == 0x00 {
			return false
		}
	}
	return true
}

// MaskedEqualSWAR32 compares four bytes at a time.
//
// A lane mismatches when (word ^ candidate) &^ mask is non-zero: XOR leaves
// non-zero bytes where the values differ and the mask clears wildcards.
func MaskedEqualSWAR32(word, mask, candidate []byte, boundary int) bool {
	for i := 0; i < boundary; i += LanesSWAR32 {
		w := binary.LittleEndian.Uint32(word[i:])
		m := binary.LittleEndian.Uint32(mask[i:])
		c := binary.LittleEndian.Uint32(candidate[i:])
		if (w^c)&^m != 0 {
			return false
		}
	}
	return maskedEqualFrom(word, mask, candidate, boundary)
}

// MaskedEqualSWAR64 compares eight bytes at a time.
func MaskedEqualSWAR64(word, mask, candidate []byte, boundary int) bool {
	if !maskedEqualWords(word, mask, candidate, boundary) {
		return false
	}
	return maskedEqualFrom(word, mask, candidate, boundary)
}

// maskedEqualWords is the 64-bit lane loop shared by MaskedEqualSWAR64 and
// the portable builds of the SSE2 and AVX2 kernels.
func maskedEqualWords(word, mask, candidate []byte, boundary int) bool {
	for i := 0; i < boundary; i += LanesSWAR64 {
		w := binary.LittleEndian.Uint64(word[i:])
		m := binary.LittleEndian.Uint64(mask[i:])
		c := binary.LittleEndian.Uint64(candidate[i:])
		if (w^c)&^m != 0 {
			return false
		}
	}
	return true
}
