package aob

import (
	"fmt"

	"github.com/coregx/aob/pattern"
	"github.com/coregx/aob/prefilter"
)

// IterState is the phase an Iter is in.
type IterState uint8

const (
	// StatePrefilter pulls candidates from the prefilter and verifies them.
	StatePrefilter IterState = iota

	// StateTailScan verifies every remaining offset. It is entered when the
	// rest of the haystack is too short for the prefilter's vector scan, or
	// when a tracked prefilter is retired.
	StateTailScan

	// StateDone means no more matches will be produced.
	StateDone
)

// String returns the state name.
func (s IterState) String() string {
	switch s {
	case StatePrefilter:
		return "Prefilter"
	case StateTailScan:
		return "TailScan"
	case StateDone:
		return "Done"
	default:
		return fmt.Sprintf("UnknownIterState(%d)", s)
	}
}

// Iter produces the matches of a needle in a haystack in ascending order of
// start position. Matches may overlap: after a match at s the search
// resumes at s+1.
//
// An Iter holds per-search state and is not safe for concurrent use.
// Abandoning it early is fine; it holds no resources.
type Iter struct {
	haystack []byte
	ref      pattern.Ref
	pf       prefilter.Prefilter
	tracker  *prefilter.Tracker

	last  int
	state IterState
}

func newIter(haystack []byte, ref pattern.Ref, pf prefilter.Prefilter, tracker *prefilter.Tracker) *Iter {
	it := &Iter{
		haystack: haystack,
		ref:      ref,
		pf:       pf,
		tracker:  tracker,
	}
	if ref.Len() == 0 || ref.Len() > len(haystack) {
		it.state = StateDone
	}
	return it
}

// Next returns the next match, or false when there are no more.
func (it *Iter) Next() (Match, bool) {
	n := it.ref.Len()

	for {
		switch it.state {
		case StatePrefilter:
			pos, status := it.pf.Find(it.haystack, it.last)
			switch status {
			case prefilter.Candidate:
				end := pos + n
				if end > len(it.haystack) {
					it.finish()
					return Match{}, false
				}
				it.last = pos + 1
				if it.ref.Equal(it.haystack[pos:end]) {
					if it.tracker != nil {
						it.tracker.ConfirmMatch()
					}
					return newMatch(pos, end, it.haystack), true
				}
			case prefilter.TooSmall, prefilter.Retired:
				it.state = StateTailScan
			default:
				it.finish()
				return Match{}, false
			}

		case StateTailScan:
			for it.last+n <= len(it.haystack) {
				pos := it.last
				it.last++
				if it.ref.Equal(it.haystack[pos : pos+n]) {
					return newMatch(pos, pos+n, it.haystack), true
				}
			}
			it.finish()
			return Match{}, false

		default:
			return Match{}, false
		}
	}
}

func (it *Iter) finish() {
	it.last = len(it.haystack)
	it.state = StateDone
}

// Method returns the verification kernel in use.
func (it *Iter) Method() pattern.Method {
	return it.ref.Method()
}

// State returns the iterator's current phase.
func (it *Iter) State() IterState {
	return it.state
}

// Offset returns the position the next search step starts from.
func (it *Iter) Offset() int {
	return it.last
}
