//go:build amd64

package simd

// Implemented in masked_amd64.s. Both compare n bytes, n a multiple of the
// lane width, and report whether every lane passed:
//
//	cmp     = cmpeq_epi8(word, candidate)
//	blended = blend(cmp, all_ones, mask)
//	movemask(blended) == all lanes
//
// word and mask are read with unaligned loads as well: heap needle buffers
// are 32-byte aligned, but the linker gives no alignment guarantee for the
// arrays a generated static needle is built from.
//
//go:noescape
func maskedEqualSSE2(word, mask, candidate *byte, n int) bool

//go:noescape
func maskedEqualAVX2(word, mask, candidate *byte, n int) bool

// MaskedEqualSSE2 compares sixteen bytes at a time.
// The caller must check HasSSE2 first.
func MaskedEqualSSE2(word, mask, candidate []byte, boundary int) bool {
	if boundary > 0 && !maskedEqualSSE2(&word[0], &mask[0], &candidate[0], boundary) {
		return false
	}
	return maskedEqualFrom(word, mask, candidate, boundary)
}

// MaskedEqualAVX2 compares thirty-two bytes at a time.
// The caller must check HasAVX2 first.
func MaskedEqualAVX2(word, mask, candidate []byte, boundary int) bool {
	if boundary > 0 && !maskedEqualAVX2(&word[0], &mask[0], &candidate[0], boundary) {
		return false
	}
	return maskedEqualFrom(word, mask, candidate, boundary)
}
