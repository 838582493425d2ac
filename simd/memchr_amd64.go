//go:build amd64

package simd

// Assembly function declarations. These are implemented in memchr_amd64.s
// and pair_amd64.s and require the haystack to hold at least one full
// stride; shorter inputs are handled by the generic implementations.
//
//go:noescape
func memchrAVX2(haystack []byte, needle byte) int

//go:noescape
func pairSSE2(haystack []byte, byte1, byte2 byte, index1, index2 int) int

//go:noescape
func pairAVX2(haystack []byte, byte1, byte2 byte, index1, index2 int) int

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// This is the single-byte scan behind the Prefix prefilter, and the baseline
// the full search pipeline is benchmarked against.
//
// Example:
//
//	haystack := []byte("hello world")
//	pos := simd.Memchr(haystack, 'o')
//	// pos == 4
func Memchr(haystack []byte, needle byte) int {
	if len(haystack) == 0 {
		return -1
	}

	// For small inputs (< 32 bytes), the setup cost of SIMD outweighs the benefits.
	if hasAVX2 && len(haystack) >= LanesAVX2 {
		return memchrAVX2(haystack, needle)
	}

	return memchrGeneric(haystack, needle)
}

// FindPairSSE2 is the 16-lane packed-pair scan. It has the same contract as
// FindPairSWAR but requires HasSSE2 and
// len(haystack) >= PairMinHaystackLen(LanesSSE2, index1, index2).
func FindPairSSE2(haystack []byte, byte1, byte2 byte, index1, index2 int) int {
	if len(haystack) < PairMinHaystackLen(LanesSSE2, index1, index2) {
		return FindPairSWAR(haystack, byte1, byte2, index1, index2)
	}
	return pairSSE2(haystack, byte1, byte2, index1, index2)
}

// FindPairAVX2 is the 32-lane packed-pair scan. It requires HasAVX2 and
// len(haystack) >= PairMinHaystackLen(LanesAVX2, index1, index2).
func FindPairAVX2(haystack []byte, byte1, byte2 byte, index1, index2 int) int {
	if len(haystack) < PairMinHaystackLen(LanesAVX2, index1, index2) {
		return FindPairSWAR(haystack, byte1, byte2, index1, index2)
	}
	return pairAVX2(haystack, byte1, byte2, index1, index2)
}
