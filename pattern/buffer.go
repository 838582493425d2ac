package pattern

import (
	"unsafe"

	"github.com/coregx/aob/syntax"
)

// Alignment is the start alignment and length granularity of needle
// buffers. It matches the widest vector load used by the verifier.
const Alignment = 32

// Wildcard and Literal are the two values a mask byte may hold.
const (
	Literal  byte = 0x00
	Wildcard byte = 0xFF
)

// Buffer is a byte slice whose first element is aligned to Alignment and
// whose length is a multiple of Alignment.
type Buffer []byte

// Padded returns the buffer length needed for a needle of n positions:
// the smallest multiple of Alignment that is at least max(n, 1).
func Padded(n int) int {
	n = max(n, 1)
	return (n + Alignment - 1) &^ (Alignment - 1)
}

// NewBuffer returns a zeroed, aligned buffer of Padded(n) bytes.
//
// The Go allocator only guarantees word alignment, so the backing array is
// over-allocated by Alignment-1 bytes and resliced at the first aligned
// address. The slice keeps the backing array alive.
func NewBuffer(n int) Buffer {
	size := Padded(n)
	raw := make([]byte, size+Alignment-1)
	off := int(-uintptr(unsafe.Pointer(unsafe.SliceData(raw))) & (Alignment - 1))
	return Buffer(raw[off : off+size : off+size])
}

// Aligned reports whether b starts on an Alignment boundary.
func (b Buffer) Aligned() bool {
	if len(b) == 0 {
		return false
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))&(Alignment-1) == 0
}

// Clone returns a deep copy of b in a fresh aligned buffer.
func (b Buffer) Clone() Buffer {
	c := NewBuffer(len(b))
	copy(c, b)
	return c
}

// Build lays out the word and mask buffers for a needle.
//
// Literal positions store their value in word and Literal in mask;
// wildcard positions store zero and Wildcard. Padding past len(bytes)
// is zero in word and Wildcard in mask, so a full-width load over the
// tail of a short needle always compares equal there.
func Build(bytes []syntax.OptionalByte) (word, mask Buffer) {
	word = NewBuffer(len(bytes))
	mask = NewBuffer(len(bytes))
	for i := range mask {
		mask[i] = Wildcard
	}
	for i, b := range bytes {
		if b.Valid {
			word[i] = b.Value
			mask[i] = Literal
		}
	}
	return word, mask
}
