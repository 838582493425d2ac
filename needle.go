package aob

import (
	"iter"

	"github.com/coregx/aob/pattern"
	"github.com/coregx/aob/prefilter"
	"github.com/coregx/aob/syntax"
)

// Needle is a byte pattern built at run time.
//
// It owns 32-byte aligned word and mask buffers and a compiled prefilter.
// A Needle is immutable and safe for concurrent use.
type Needle struct {
	word pattern.Buffer
	mask pattern.Buffer
	raw  prefilter.Raw
	s    searcher
}

func newNeedle(bs []syntax.OptionalByte, config Config) *Needle {
	word, mask := pattern.Build(bs)
	ref := pattern.NewRef(word, mask, len(bs), config.Method)

	raw := prefilter.LengthOnly(len(bs))
	if config.Prefilter {
		raw = prefilter.FromPattern(ref)
	}

	return &Needle{
		word: word,
		mask: mask,
		raw:  raw,
		s: searcher{
			ref:      ref,
			compiled: prefilter.Compile(raw),
			track:    config.TrackPrefilter,
			tracker:  config.Tracker,
		},
	}
}

// Clone returns a deep copy of the needle with its own buffers.
func (n *Needle) Clone() *Needle {
	word := n.word.Clone()
	mask := n.mask.Clone()
	c := &Needle{
		word: word,
		mask: mask,
		raw:  n.raw,
		s:    n.s,
	}
	c.s.ref = pattern.NewRef(word, mask, n.s.ref.Len(), n.s.ref.Method())
	return c
}

// Len returns the number of positions in the needle.
func (n *Needle) Len() int {
	return n.s.ref.Len()
}

// Method returns the verification kernel the needle uses.
func (n *Needle) Method() pattern.Method {
	return n.s.ref.Method()
}

// Word returns a copy of the padded word buffer: literal bytes at literal
// positions, zero elsewhere.
func (n *Needle) Word() []byte {
	return append([]byte(nil), n.word...)
}

// Mask returns a copy of the padded mask buffer: 0x00 at literal positions,
// 0xFF at wildcards and padding.
func (n *Needle) Mask() []byte {
	return append([]byte(nil), n.mask...)
}

// Raw returns the needle's prefilter descriptor.
func (n *Needle) Raw() prefilter.Raw {
	return n.raw
}

// String returns the needle in pattern notation.
func (n *Needle) String() string {
	return syntax.Format(optionalBytes(n.s.ref))
}

// Find returns the first match in haystack.
func (n *Needle) Find(haystack []byte) (Match, bool) {
	return n.s.find(haystack)
}

// FindIter returns an iterator over all matches in haystack.
func (n *Needle) FindIter(haystack []byte) *Iter {
	return n.s.iter(haystack)
}

// FindAll returns up to limit matches; a negative limit returns all of them.
func (n *Needle) FindAll(haystack []byte, limit int) []Match {
	return n.s.findAll(haystack, limit)
}

// All returns a range-over-func sequence of all matches in haystack.
func (n *Needle) All(haystack []byte) iter.Seq[Match] {
	return n.s.all(haystack)
}

// Count returns the number of matches in haystack.
func (n *Needle) Count(haystack []byte) int {
	return n.s.count(haystack)
}

// Contains reports whether haystack contains at least one match.
func (n *Needle) Contains(haystack []byte) bool {
	_, ok := n.s.find(haystack)
	return ok
}

func optionalBytes(ref pattern.Ref) []syntax.OptionalByte {
	out := make([]syntax.OptionalByte, ref.Len())
	word := ref.Word()
	for i := range out {
		if !ref.IsWildcard(i) {
			out[i] = syntax.Literal(word[i])
		}
	}
	return out
}
