// Package simd provides the vectorized primitives behind byte-pattern search:
// masked equality kernels used to verify a candidate window against a
// needle, and single-byte and byte-pair scanners used to produce candidates.
//
// Every primitive has a portable SWAR (SIMD Within A Register) form. On
// x86-64 the SSE2 and AVX2 forms are implemented in assembly and selected by
// the caller based on HasSSE2 and HasAVX2; on other platforms those entry
// points degrade to the SWAR form so that results never depend on the host.
package simd

// Lane widths, in bytes, of the supported vector forms.
const (
	LanesSWAR32 = 4
	LanesSWAR64 = 8
	LanesSSE2   = 16
	LanesAVX2   = 32
)

// SWAR constants shared by the generic kernels.
const (
	lo8 = uint64(0x0101010101010101)
	hi8 = uint64(0x8080808080808080)
	lo7 = uint64(0x7F7F7F7F7F7F7F7F)
)

// HasSSE2 reports whether the SSE2 kernels run natively on this host.
func HasSSE2() bool {
	return hasSSE2
}

// HasAVX2 reports whether the AVX2 kernels run natively on this host.
// Both the AVX and AVX2 feature bits must be present.
func HasAVX2() bool {
	return hasAVX2
}

// zeroBytes returns a word with 0x80 set in exactly the bytes of x that are
// zero. Unlike the (x - lo8) & ^x & hi8 test it never reports a false
// positive above a true zero byte, so every set bit can be trusted.
func zeroBytes(x uint64) uint64 {
	y := (x & lo7) + lo7
	return ^(y | x | lo7)
}
