package aob

import (
	"iter"

	"github.com/coregx/aob/pattern"
	"github.com/coregx/aob/prefilter"
)

// Finder is implemented by both needle shapes.
type Finder interface {
	// Find returns the first match in haystack.
	Find(haystack []byte) (Match, bool)

	// FindIter returns an iterator over all matches in haystack.
	FindIter(haystack []byte) *Iter

	// Len returns the number of positions in the needle.
	Len() int
}

var (
	_ Finder = (*Needle)(nil)
	_ Finder = (*StaticNeedle)(nil)
)

// searcher is the immutable search state shared by Needle and StaticNeedle.
type searcher struct {
	ref      pattern.Ref
	compiled *prefilter.Compiled
	track    bool
	tracker  prefilter.TrackerConfig
}

func (s *searcher) iter(haystack []byte) *Iter {
	var pf prefilter.Prefilter = s.compiled
	var tracker *prefilter.Tracker
	if s.track {
		tracker = prefilter.NewTracker(s.compiled, s.tracker)
		pf = tracker
	}
	return newIter(haystack, s.ref, pf, tracker)
}

func (s *searcher) find(haystack []byte) (Match, bool) {
	return s.iter(haystack).Next()
}

func (s *searcher) findAll(haystack []byte, n int) []Match {
	if n == 0 {
		return nil
	}
	var out []Match
	it := s.iter(haystack)
	for m, ok := it.Next(); ok; m, ok = it.Next() {
		out = append(out, m)
		if n > 0 && len(out) == n {
			break
		}
	}
	return out
}

func (s *searcher) all(haystack []byte) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		it := s.iter(haystack)
		for m, ok := it.Next(); ok; m, ok = it.Next() {
			if !yield(m) {
				return
			}
		}
	}
}

func (s *searcher) count(haystack []byte) int {
	c := 0
	it := s.iter(haystack)
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		c++
	}
	return c
}
