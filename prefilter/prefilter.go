// Package prefilter provides fast candidate filtering for byte-pattern search.
//
// A prefilter is used to quickly reject positions in the haystack that cannot
// possibly be the start of a match. Verifying a candidate costs time
// proportional to the needle length; a prefilter scans for one or two of the
// needle's literal bytes with SIMD-accelerated primitives and only reports
// offsets where those bytes sit at the right distance.
//
// The prefilter kind is chosen from the needle's literal positions:
//   - No literals → Length (every offset is a candidate)
//   - One distinct literal byte → Prefix (single-byte memchr)
//   - Two or more distinct literal bytes → PrefixPostfix (packed pair)
//
// A Raw descriptor records the choice with bytes and offsets only, so it can
// be embedded in generated source and compiled on first use:
//
//	ref := pattern.NewRef(word, mask, n, pattern.MethodAuto)
//	pf := prefilter.Compile(prefilter.FromPattern(ref))
//	pos, status := pf.Find(haystack, 0)
//	for status == prefilter.Candidate {
//	    // Verify the needle at pos
//	    pos, status = pf.Find(haystack, pos+1)
//	}
package prefilter

import (
	"fmt"

	"github.com/coregx/aob/internal/conv"
	"github.com/coregx/aob/pattern"
	"github.com/coregx/aob/simd"
)

// Kind selects the candidate strategy of a prefilter.
type Kind uint8

const (
	// Length reports every offset at which the needle fits.
	Length Kind = iota

	// Prefix reports offsets where a single literal byte occurs at its
	// position in the needle.
	Prefix

	// PrefixPostfix reports offsets where two distinct literal bytes occur
	// at their positions in the needle.
	PrefixPostfix
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Length:
		return "Length"
	case Prefix:
		return "Prefix"
	case PrefixPostfix:
		return "PrefixPostfix"
	default:
		return fmt.Sprintf("UnknownKind(%d)", k)
	}
}

// Status tells a caller of Prefilter.Find how to interpret the result.
type Status uint8

const (
	// Candidate means the returned offset may start a match.
	Candidate Status = iota

	// Exhausted means no offset at or after start can start a match.
	Exhausted

	// TooSmall means the remaining haystack is shorter than the vector scan
	// can handle. Matches may still exist; the caller must check the rest
	// of the haystack without the prefilter.
	TooSmall

	// Retired means the prefilter was disabled for producing too many false
	// positives. The caller handles it like TooSmall.
	Retired
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Candidate:
		return "Candidate"
	case Exhausted:
		return "Exhausted"
	case TooSmall:
		return "TooSmall"
	case Retired:
		return "Retired"
	default:
		return fmt.Sprintf("UnknownStatus(%d)", s)
	}
}

// Prefilter produces candidate match offsets in ascending order.
//
// Every true match start at or after start is reported before any larger
// offset, unless the status is TooSmall or Retired. False positives are
// allowed and are resolved by verifying the needle at the candidate.
type Prefilter interface {
	// Find returns the smallest candidate offset >= start together with
	// Candidate, or -1 together with the reason no candidate was produced.
	Find(haystack []byte, start int) (int, Status)

	// MinHaystackLen returns the shortest remaining haystack the prefilter
	// can scan. Zero means any length.
	MinHaystackLen() int
}

// Raw describes a prefilter with plain bytes and offsets.
//
// Offsets are positions within the needle. For PrefixPostfix both offsets
// fit in a byte and PrefixOffset < PostfixOffset.
type Raw struct {
	Kind Kind

	// Len is the needle length.
	Len int

	Prefix       byte
	PrefixOffset int

	Postfix       byte
	PostfixOffset int
}

// String formats the descriptor for diagnostics.
func (r Raw) String() string {
	switch r.Kind {
	case Length:
		return fmt.Sprintf("Length(%d)", r.Len)
	case Prefix:
		return fmt.Sprintf("Prefix(0x%02X@%d)", r.Prefix, r.PrefixOffset)
	case PrefixPostfix:
		return fmt.Sprintf("PrefixPostfix(0x%02X@%d, 0x%02X@%d)", r.Prefix, r.PrefixOffset, r.Postfix, r.PostfixOffset)
	default:
		return r.Kind.String()
	}
}

// LengthOnly returns the descriptor that treats every offset as a
// candidate for a needle of n positions.
func LengthOnly(n int) Raw {
	return Raw{Kind: Length, Len: n}
}

// FromPattern selects the prefilter for a needle.
//
// The prefix is the first literal position. The postfix is the last literal
// position whose byte differs from the prefix byte. A packed pair needs both
// offsets to fit in a byte; otherwise the needle falls back to Prefix.
func FromPattern(ref pattern.Ref) Raw {
	word := ref.Word()
	n := ref.Len()

	prefixOffset := -1
	for i := 0; i < n; i++ {
		if !ref.IsWildcard(i) {
			prefixOffset = i
			break
		}
	}
	if prefixOffset < 0 {
		return LengthOnly(n)
	}
	prefix := word[prefixOffset]

	postfixOffset := -1
	for i := n - 1; i > prefixOffset; i-- {
		if !ref.IsWildcard(i) && word[i] != prefix {
			postfixOffset = i
			break
		}
	}

	raw := Raw{Kind: Prefix, Len: n, Prefix: prefix, PrefixOffset: prefixOffset}
	if postfixOffset < 0 || !conv.FitsUint8(prefixOffset) || !conv.FitsUint8(postfixOffset) {
		return raw
	}

	raw.Kind = PrefixPostfix
	raw.Postfix = word[postfixOffset]
	raw.PostfixOffset = postfixOffset
	return raw
}

// PairFinder identifies the packed-pair scan a compiled PrefixPostfix
// prefilter runs.
type PairFinder uint8

const (
	// NoPair is reported by Length and Prefix prefilters.
	NoPair PairFinder = iota
	PairSWAR
	PairSSE2
	PairAVX2
)

// String returns the finder name.
func (f PairFinder) String() string {
	switch f {
	case NoPair:
		return "None"
	case PairSWAR:
		return "SWAR"
	case PairSSE2:
		return "SSE2"
	case PairAVX2:
		return "AVX2"
	default:
		return fmt.Sprintf("UnknownPairFinder(%d)", f)
	}
}

// Compiled is a Raw descriptor bound to the scan primitives of this host.
// It is immutable and safe for concurrent use.
type Compiled struct {
	raw    Raw
	finder PairFinder
	minLen int

	// pair indices, narrowed like the descriptor guarantees
	index1 uint8
	index2 uint8
}

// Compile binds raw to the widest packed-pair scan the host supports.
//
// Compile panics if a PrefixPostfix descriptor has offsets outside a byte,
// which only happens for a hand-edited descriptor.
func Compile(raw Raw) *Compiled {
	c := &Compiled{raw: raw}
	if raw.Kind != PrefixPostfix {
		return c
	}

	c.index1 = conv.IntToUint8(raw.PrefixOffset)
	c.index2 = conv.IntToUint8(raw.PostfixOffset)
	i1, i2 := int(c.index1), int(c.index2)
	switch {
	case simd.HasAVX2():
		c.finder = PairAVX2
		c.minLen = simd.PairMinHaystackLen(simd.LanesAVX2, i1, i2)
	case simd.HasSSE2():
		c.finder = PairSSE2
		c.minLen = simd.PairMinHaystackLen(simd.LanesSSE2, i1, i2)
	default:
		c.finder = PairSWAR
	}
	return c
}

// Raw returns the descriptor c was compiled from.
func (c *Compiled) Raw() Raw { return c.raw }

// Finder returns the packed-pair scan in use.
func (c *Compiled) Finder() PairFinder { return c.finder }

// MinHaystackLen implements Prefilter.
func (c *Compiled) MinHaystackLen() int { return c.minLen }

// Find implements Prefilter.
func (c *Compiled) Find(haystack []byte, start int) (int, Status) {
	if start > len(haystack) {
		return -1, Exhausted
	}
	if len(haystack)-start < c.minLen {
		return -1, TooSmall
	}

	switch c.raw.Kind {
	case Length:
		if start+c.raw.Len <= len(haystack) {
			return start, Candidate
		}
		return -1, Exhausted

	case Prefix:
		// Begin the byte scan at the prefix position of a needle starting
		// at start, so an occurrence before it never yields a candidate
		// below start.
		from := start + c.raw.PrefixOffset
		if from >= len(haystack) {
			return -1, Exhausted
		}
		pos := simd.Memchr(haystack[from:], c.raw.Prefix)
		if pos < 0 {
			return -1, Exhausted
		}
		return start + pos, Candidate

	default:
		pos := c.findPair(haystack[start:])
		if pos < 0 {
			return -1, Exhausted
		}
		return start + pos, Candidate
	}
}

func (c *Compiled) findPair(haystack []byte) int {
	i1, i2 := int(c.index1), int(c.index2)
	switch c.finder {
	case PairAVX2:
		return simd.FindPairAVX2(haystack, c.raw.Prefix, c.raw.Postfix, i1, i2)
	case PairSSE2:
		return simd.FindPairSSE2(haystack, c.raw.Prefix, c.raw.Postfix, i1, i2)
	default:
		return simd.FindPairSWAR(haystack, c.raw.Prefix, c.raw.Postfix, i1, i2)
	}
}
