package pattern

import (
	"math/bits"

	"github.com/coregx/aob/simd"
)

// Method identifies the masked-equality kernel a needle verifies
// candidates with.
type Method uint8

const (
	// MethodAuto asks SelectMethod to pick the kernel. It is only meaningful
	// as a configuration value; a built needle always carries a concrete one.
	MethodAuto Method = iota

	// Scalar compares one byte at a time.
	Scalar

	// Swar32 compares four bytes at a time in a 32-bit integer.
	Swar32

	// Swar64 compares eight bytes at a time in a 64-bit integer.
	Swar64

	// Sse2 compares sixteen bytes at a time with SSE2.
	Sse2

	// Avx2 compares thirty-two bytes at a time with AVX2.
	Avx2
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case MethodAuto:
		return "Auto"
	case Scalar:
		return "Scalar"
	case Swar32:
		return "Swar32"
	case Swar64:
		return "Swar64"
	case Sse2:
		return "Sse2"
	case Avx2:
		return "Avx2"
	default:
		return "Unknown"
	}
}

// Lanes returns the number of bytes the method compares per step.
func (m Method) Lanes() int {
	switch m {
	case Swar32:
		return simd.LanesSWAR32
	case Swar64:
		return simd.LanesSWAR64
	case Sse2:
		return simd.LanesSSE2
	case Avx2:
		return simd.LanesAVX2
	default:
		return 1
	}
}

// VectorizableBoundary returns the largest multiple of the lane width that
// does not exceed n. It is zero for Scalar, which has no vector part.
func (m Method) VectorizableBoundary(n int) int {
	if m == Scalar || m == MethodAuto {
		return 0
	}
	return n - n%m.Lanes()
}

// Supported reports whether the method can run on this host.
func (m Method) Supported() bool {
	switch m {
	case Scalar, Swar32:
		return true
	case Swar64:
		return bits.UintSize == 64
	case Sse2:
		return simd.HasSSE2()
	case Avx2:
		return simd.HasAVX2()
	default:
		return false
	}
}

// SelectMethod returns the widest supported kernel whose lane width does
// not exceed a needle of n positions.
func SelectMethod(n int) Method {
	switch {
	case n >= simd.LanesAVX2 && Avx2.Supported():
		return Avx2
	case n >= simd.LanesSSE2 && Sse2.Supported():
		return Sse2
	case n >= simd.LanesSWAR64 && Swar64.Supported():
		return Swar64
	case n >= simd.LanesSWAR32:
		return Swar32
	default:
		return Scalar
	}
}
