package pattern

import (
	"fmt"

	"github.com/coregx/aob/simd"
)

// Ref is a read-only view of a needle: its word and mask buffers, its
// length and the kernel used to verify candidates against it.
//
// A Ref does not own its buffers. It is a small value and is copied freely.
type Ref struct {
	word     []byte
	mask     []byte
	n        int
	method   Method
	boundary int
}

// NewRef returns a view over word and mask for a needle of n positions.
//
// MethodAuto is resolved with SelectMethod. word and mask must be the same
// length and hold at least n bytes; violating that is a programming error
// and panics.
func NewRef(word, mask []byte, n int, method Method) Ref {
	if len(word) != len(mask) {
		panic(fmt.Sprintf("pattern: word and mask lengths differ: %d != %d", len(word), len(mask)))
	}
	if n < 0 || n > len(word) {
		panic(fmt.Sprintf("pattern: needle length %d out of range [0, %d]", n, len(word)))
	}
	if method == MethodAuto {
		method = SelectMethod(n)
	}
	return Ref{
		word:     word,
		mask:     mask,
		n:        n,
		method:   method,
		boundary: method.VectorizableBoundary(n),
	}
}

// Len returns the number of positions in the needle.
func (r Ref) Len() int { return r.n }

// Method returns the kernel the needle verifies with.
func (r Ref) Method() Method { return r.method }

// Word returns the needle's literal bytes, without padding.
func (r Ref) Word() []byte { return r.word[:r.n] }

// Mask returns the needle's mask bytes, without padding.
func (r Ref) Mask() []byte { return r.mask[:r.n] }

// VectorizableBoundary returns the end of the lane-aligned prefix that the
// kernel compares in full lanes.
func (r Ref) VectorizableBoundary() int { return r.boundary }

// IsWildcard reports whether position i matches any byte.
func (r Ref) IsWildcard(i int) bool { return r.mask[i] == Wildcard }

// Equal reports whether candidate matches the needle: for every position
// either the needle has a wildcard there or the bytes are equal.
//
// candidate must be exactly Len bytes long.
func (r Ref) Equal(candidate []byte) bool {
	switch r.method {
	case Avx2:
		return simd.MaskedEqualAVX2(r.word, r.mask, candidate, r.boundary)
	case Sse2:
		return simd.MaskedEqualSSE2(r.word, r.mask, candidate, r.boundary)
	case Swar64:
		return simd.MaskedEqualSWAR64(r.word, r.mask, candidate, r.boundary)
	case Swar32:
		return simd.MaskedEqualSWAR32(r.word, r.mask, candidate, r.boundary)
	default:
		return simd.MaskedEqualScalar(r.word, r.mask, candidate)
	}
}

// WithMethod returns a copy of r that verifies with method m.
func (r Ref) WithMethod(m Method) Ref {
	return NewRef(r.word, r.mask, r.n, m)
}
