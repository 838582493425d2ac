package simd

import (
	"fmt"
	"math/rand"
	"testing"
)

// naivePair is the reference for the packed-pair finders.
func naivePair(haystack []byte, byte1, byte2 byte, index1, index2 int) int {
	reach := max(index1, index2)
	for pos := 0; pos+reach < len(haystack); pos++ {
		if haystack[pos+index1] == byte1 && haystack[pos+index2] == byte2 {
			return pos
		}
	}
	return -1
}

type pairFinder struct {
	name      string
	lanes     int
	supported func() bool
	fn        func(haystack []byte, byte1, byte2 byte, index1, index2 int) int
}

func pairFinders() []pairFinder {
	return []pairFinder{
		{"swar", 0, always, FindPairSWAR},
		{"sse2", LanesSSE2, HasSSE2, FindPairSSE2},
		{"avx2", LanesAVX2, HasAVX2, FindPairAVX2},
	}
}

func TestFindPairBasic(t *testing.T) {
	tests := []struct {
		name           string
		haystack       string
		byte1, byte2   byte
		index1, index2 int
		want           int
	}{
		{"adjacent", "the quick brown fox jumps over the lazy dog", 'o', 'x', 0, 1, 17},
		{"spread", "the quick brown fox jumps over the lazy dog", 'q', 'k', 1, 5, 3},
		{"reversed_order", "the quick brown fox jumps over the lazy dog", 'z', 'l', 2, 0, 35},
		{"not_found", "the quick brown fox jumps over the lazy dog", 'x', 'x', 0, 1, -1},
		{"pair_past_end", "abcdef", 'e', 'z', 0, 2, -1},
		{"haystack_shorter_than_reach", "ab", 'a', 'b', 0, 5, -1},
		{"empty", "", 'a', 'b', 0, 1, -1},
		{"same_byte", "aaaaXaaaaXaaaa", 'X', 'X', 0, 5, 4},
	}

	for _, tt := range tests {
		for _, f := range pairFinders() {
			t.Run(tt.name+"_"+f.name, func(t *testing.T) {
				if !f.supported() {
					t.Skipf("%s not supported on this host", f.name)
				}
				got := f.fn([]byte(tt.haystack), tt.byte1, tt.byte2, tt.index1, tt.index2)
				if got != tt.want {
					t.Errorf("%s(%q, %q, %q, %d, %d) = %d, want %d",
						f.name, tt.haystack, tt.byte1, tt.byte2, tt.index1, tt.index2, got, tt.want)
				}
			})
		}
	}
}

// TestFindPairSizes places a single pair at every position of haystacks
// around the stride boundaries, where the overlapping tail load kicks in.
func TestFindPairSizes(t *testing.T) {
	sizes := []int{1, 7, 8, 9, 15, 16, 17, 31, 32, 33, 47, 48, 63, 64, 65, 100, 257}
	offsets := [][2]int{{0, 1}, {0, 7}, {2, 31}, {40, 3}}

	for _, f := range pairFinders() {
		if !f.supported() {
			continue
		}
		for _, size := range sizes {
			for _, off := range offsets {
				index1, index2 := off[0], off[1]
				reach := max(index1, index2)
				t.Run(fmt.Sprintf("%s_size_%d_idx_%d_%d", f.name, size, index1, index2), func(t *testing.T) {
					for pos := 0; pos+reach < size; pos++ {
						haystack := make([]byte, size)
						for i := range haystack {
							haystack[i] = 'a'
						}
						haystack[pos+index1] = 'X'
						haystack[pos+index2] = 'Y'

						got := f.fn(haystack, 'X', 'Y', index1, index2)
						if got != pos {
							t.Fatalf("pair at %d: got %d", pos, got)
						}
					}

					haystack := make([]byte, size)
					if got := f.fn(haystack, 'X', 'Y', index1, index2); got != -1 {
						t.Errorf("empty haystack of %d: got %d, want -1", size, got)
					}
				})
			}
		}
	}
}

// TestFindPairRandom compares every finder with the naive scan over random
// haystacks drawn from a tiny alphabet so that partial pairs are common.
func TestFindPairRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []byte("abc")

	for iter := 0; iter < 500; iter++ {
		size := rng.Intn(200)
		haystack := make([]byte, size)
		for i := range haystack {
			haystack[i] = alphabet[rng.Intn(len(alphabet))]
		}
		byte1 := alphabet[rng.Intn(len(alphabet))]
		byte2 := alphabet[rng.Intn(len(alphabet))]
		index1 := rng.Intn(8)
		index2 := index1 + 1 + rng.Intn(40)

		want := naivePair(haystack, byte1, byte2, index1, index2)
		for _, f := range pairFinders() {
			if !f.supported() {
				continue
			}
			if got := f.fn(haystack, byte1, byte2, index1, index2); got != want {
				t.Fatalf("%s(%q, %q, %q, %d, %d) = %d, want %d",
					f.name, haystack, byte1, byte2, index1, index2, got, want)
			}
		}
	}
}

func TestPairMinHaystackLen(t *testing.T) {
	if got := PairMinHaystackLen(LanesAVX2, 0, 5); got != 37 {
		t.Errorf("PairMinHaystackLen(32, 0, 5) = %d, want 37", got)
	}
	if got := PairMinHaystackLen(LanesSSE2, 9, 2); got != 25 {
		t.Errorf("PairMinHaystackLen(16, 9, 2) = %d, want 25", got)
	}
}

func BenchmarkFindPair(b *testing.B) {
	sizes := []int{64, 4096, 65536}

	for _, size := range sizes {
		haystack := make([]byte, size)
		for i := range haystack {
			haystack[i] = 'a'
		}
		haystack[size-4] = 'X'
		haystack[size-1] = 'Y'

		for _, f := range pairFinders() {
			if !f.supported() {
				continue
			}
			b.Run(fmt.Sprintf("%s_%d", f.name, size), func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(size))
				for i := 0; i < b.N; i++ {
					_ = f.fn(haystack, 'X', 'Y', 0, 3)
				}
			})
		}
	}
}

func FuzzFindPair(f *testing.F) {
	f.Add([]byte("hello world"), byte('o'), byte('w'), uint8(0), uint8(2))
	f.Add(make([]byte, 100), byte(0), byte(0), uint8(3), uint8(60))

	f.Fuzz(func(t *testing.T, haystack []byte, byte1, byte2 byte, i1, i2 uint8) {
		index1, index2 := int(i1), int(i2)
		want := naivePair(haystack, byte1, byte2, index1, index2)
		for _, pf := range pairFinders() {
			if !pf.supported() {
				continue
			}
			if got := pf.fn(haystack, byte1, byte2, index1, index2); got != want {
				t.Errorf("%s = %d, want %d", pf.name, got, want)
			}
		}
	})
}
