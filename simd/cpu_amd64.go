//go:build amd64

package simd

import "golang.org/x/sys/cpu"

// CPU feature detection flags set at package initialization.
var (
	// hasSSE2 is part of the x86-64 baseline but is still queried so a
	// virtualized host that masks it never reaches the assembly.
	hasSSE2 = cpu.X86.HasSSE2

	// hasAVX2 requires both bits: AVX for the VEX encoding and YMM state,
	// AVX2 for 256-bit integer compares.
	hasAVX2 = cpu.X86.HasAVX && cpu.X86.HasAVX2
)
