// Package aob finds byte patterns with wildcards ("array of bytes"
// signatures) in byte slices.
//
// A needle is written as whitespace-separated hex bytes, with "?" or "??"
// for positions that match any byte:
//
//	needle := aob.MustCompile("48 8B ? ? 05")
//	for m := range needle.All(image) {
//	    fmt.Printf("found at %#x\n", m.Start())
//	}
//
// Search runs in two stages. A prefilter scans for one or two of the
// needle's literal bytes with SIMD (or SWAR) primitives and proposes
// candidate offsets; each candidate is then verified by a masked-equality
// kernel chosen once per needle from the host's CPU features. Matches are
// reported in ascending order and may overlap.
//
// Needles come in two shapes behind the Finder interface:
//   - Needle is built at run time from pattern text or optional bytes.
//   - StaticNeedle is emitted as Go source by cmd/aobgen and embeds its
//     buffers as package-level arrays.
//
// Both are immutable after construction and safe for concurrent use.
// An empty needle matches nothing.
package aob

import (
	"github.com/coregx/aob/syntax"
)

// Compile parses a textual pattern and builds a needle for it.
//
// Returns a *syntax.Error if the pattern is malformed.
//
// Example:
//
//	needle, err := aob.Compile("78 ? BC")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Needle, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile compiles a pattern and panics if it fails.
//
// This is useful for patterns known to be valid at compile time.
//
// Example:
//
//	var prologue = aob.MustCompile("55 48 89 E5")
func MustCompile(pattern string) *Needle {
	needle, err := Compile(pattern)
	if err != nil {
		panic("aob: Compile(`" + pattern + "`): " + err.Error())
	}
	return needle
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Example:
//
//	config := aob.DefaultConfig()
//	config.Prefilter = false // verify every offset
//	needle, err := aob.CompileWithConfig("78 ? BC", config)
func CompileWithConfig(pattern string, config Config) (*Needle, error) {
	bs, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}
	return FromOptionalBytesWithConfig(bs, config)
}

// FromOptionalBytes builds a needle from explicit positions. It cannot fail.
//
// Example:
//
//	needle := aob.FromOptionalBytes([]syntax.OptionalByte{
//	    syntax.Literal(0x78), syntax.Wildcard(), syntax.Literal(0xBC),
//	})
func FromOptionalBytes(bs []syntax.OptionalByte) *Needle {
	needle, err := FromOptionalBytesWithConfig(bs, DefaultConfig())
	if err != nil {
		// The default configuration is valid for every needle length.
		panic("aob: " + err.Error())
	}
	return needle
}

// FromOptionalBytesWithConfig builds a needle from explicit positions with
// custom configuration. It fails only if config is invalid for the needle.
func FromOptionalBytesWithConfig(bs []syntax.OptionalByte, config Config) (*Needle, error) {
	if err := config.validateFor(len(bs)); err != nil {
		return nil, err
	}
	return newNeedle(bs, config), nil
}
