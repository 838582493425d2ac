package aob

// Match represents one occurrence of a needle in a haystack.
//
// A Match contains:
//   - Start position (inclusive)
//   - End position (exclusive); End - Start is always the needle length
//   - Reference to the original haystack
//
// Example:
//
//	m, ok := aob.MustCompile("66 6F ? 31").Find([]byte("test foo123 end"))
//	println(ok, m.Start(), m.End()) // true 5 9
//	println(m.String())             // "foo1"
type Match struct {
	start    int
	end      int
	haystack []byte
}

// newMatch creates a Match. The haystack is stored by reference, not copied.
func newMatch(start, end int, haystack []byte) Match {
	return Match{
		start:    start,
		end:      end,
		haystack: haystack,
	}
}

// Start returns the inclusive start position of the match.
func (m Match) Start() int {
	return m.start
}

// End returns the exclusive end position of the match.
func (m Match) End() int {
	return m.end
}

// Range returns the half-open interval [start, end) of the match.
func (m Match) Range() (start, end int) {
	return m.start, m.end
}

// Len returns the length of the match in bytes.
func (m Match) Len() int {
	return m.end - m.start
}

// Bytes returns the matched bytes as a slice.
//
// The returned slice is a view into the original haystack (not a copy).
// Callers should copy the bytes if they need to retain them after the
// haystack is modified or deallocated.
func (m Match) Bytes() []byte {
	if m.start < 0 || m.end > len(m.haystack) || m.start > m.end {
		return nil
	}
	return m.haystack[m.start:m.end]
}

// String returns the matched bytes as a string.
//
// This allocates a new string by copying the matched bytes.
// For zero-allocation access, use Bytes() instead.
func (m Match) String() string {
	return string(m.Bytes())
}

// Contains returns true if the given position is within the match range.
//
// Returns true if start <= pos < end.
func (m Match) Contains(pos int) bool {
	return pos >= m.start && pos < m.end
}
