//go:build !amd64

package simd

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// On non-AMD64 platforms, this function uses the SWAR implementation, which
// processes 8 bytes at a time using uint64 bitwise operations.
func Memchr(haystack []byte, needle byte) int {
	return memchrGeneric(haystack, needle)
}

// FindPairSSE2 has no vector form off x86-64 and runs the SWAR scan.
func FindPairSSE2(haystack []byte, byte1, byte2 byte, index1, index2 int) int {
	return FindPairSWAR(haystack, byte1, byte2, index1, index2)
}

// FindPairAVX2 has no vector form off x86-64 and runs the SWAR scan.
func FindPairAVX2(haystack []byte, byte1, byte2 byte, index1, index2 int) int {
	return FindPairSWAR(haystack, byte1, byte2, index1, index2)
}
