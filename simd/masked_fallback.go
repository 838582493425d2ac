//go:build !amd64

package simd

// MaskedEqualSSE2 compares sixteen-byte lanes as pairs of 64-bit words.
// There is no SSE2 off x86-64; the result is identical.
func MaskedEqualSSE2(word, mask, candidate []byte, boundary int) bool {
	if !maskedEqualWords(word, mask, candidate, boundary) {
		return false
	}
	return maskedEqualFrom(word, mask, candidate, boundary)
}

// MaskedEqualAVX2 compares thirty-two-byte lanes as four 64-bit words.
func MaskedEqualAVX2(word, mask, candidate []byte, boundary int) bool {
	if !maskedEqualWords(word, mask, candidate, boundary) {
		return false
	}
	return maskedEqualFrom(word, mask, candidate, boundary)
}
