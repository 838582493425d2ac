package aob

import (
	"fmt"
	"iter"
	"sync"

	"github.com/coregx/aob/pattern"
	"github.com/coregx/aob/prefilter"
	"github.com/coregx/aob/syntax"
)

// StaticNeedle is a byte pattern whose buffers were computed ahead of time,
// usually by cmd/aobgen, and live in package-level arrays:
//
//	var prologueWord = [32]byte{0x55, 0x48, 0x89, 0xe5}
//	var prologueMask = [32]byte{0x00, 0x00, 0x00, 0x00, 0xff, ...}
//	var Prologue = aob.NewStatic(4, prologueWord[:], prologueMask[:], prefilter.Raw{...})
//
// The prefilter descriptor is compiled for the host on first use.
// A StaticNeedle is immutable and safe for concurrent use.
type StaticNeedle struct {
	word []byte
	mask []byte
	raw  prefilter.Raw
	ref  pattern.Ref

	once sync.Once
	s    searcher
}

// NewStatic wraps pre-computed needle buffers.
//
// word and mask must both be pattern.Padded(n) bytes long and raw must
// describe a needle of n positions. These hold for generated code; NewStatic
// panics otherwise. The buffers are not copied and must not be modified.
func NewStatic(n int, word, mask []byte, raw prefilter.Raw) *StaticNeedle {
	if len(word) != pattern.Padded(n) || len(mask) != pattern.Padded(n) {
		panic(fmt.Sprintf("aob: static needle of %d positions needs %d-byte buffers, got %d and %d",
			n, pattern.Padded(n), len(word), len(mask)))
	}
	if raw.Len != n {
		panic(fmt.Sprintf("aob: static needle of %d positions has prefilter for %d", n, raw.Len))
	}
	return &StaticNeedle{
		word: word,
		mask: mask,
		raw:  raw,
		ref:  pattern.NewRef(word, mask, n, pattern.MethodAuto),
	}
}

func (n *StaticNeedle) search() *searcher {
	n.once.Do(func() {
		n.s = searcher{
			ref:      n.ref,
			compiled: prefilter.Compile(n.raw),
		}
	})
	return &n.s
}

// Len returns the number of positions in the needle.
func (n *StaticNeedle) Len() int {
	return n.ref.Len()
}

// Method returns the verification kernel the needle uses.
func (n *StaticNeedle) Method() pattern.Method {
	return n.ref.Method()
}

// Raw returns the needle's prefilter descriptor.
func (n *StaticNeedle) Raw() prefilter.Raw {
	return n.raw
}

// String returns the needle in pattern notation.
func (n *StaticNeedle) String() string {
	return syntax.Format(optionalBytes(n.ref))
}

// Find returns the first match in haystack.
func (n *StaticNeedle) Find(haystack []byte) (Match, bool) {
	return n.search().find(haystack)
}

// FindIter returns an iterator over all matches in haystack.
func (n *StaticNeedle) FindIter(haystack []byte) *Iter {
	return n.search().iter(haystack)
}

// FindAll returns up to limit matches; a negative limit returns all of them.
func (n *StaticNeedle) FindAll(haystack []byte, limit int) []Match {
	return n.search().findAll(haystack, limit)
}

// All returns a range-over-func sequence of all matches in haystack.
func (n *StaticNeedle) All(haystack []byte) iter.Seq[Match] {
	return n.search().all(haystack)
}

// Count returns the number of matches in haystack.
func (n *StaticNeedle) Count(haystack []byte) int {
	return n.search().count(haystack)
}

// Contains reports whether haystack contains at least one match.
func (n *StaticNeedle) Contains(haystack []byte) bool {
	_, ok := n.search().find(haystack)
	return ok
}
