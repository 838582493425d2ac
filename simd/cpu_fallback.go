//go:build !amd64

package simd

// No assembly is provided off x86-64.
var (
	hasSSE2 = false
	hasAVX2 = false
)
