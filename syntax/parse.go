// Package syntax parses the textual byte-pattern notation.
//
// A pattern is a whitespace-separated list of tokens. A token is either a
// byte written as exactly two hexadecimal digits, or a wildcard written as
// one or two question marks:
//
//	48 8B ? ?? 05 ff
//
// Leading and trailing whitespace is ignored, and an empty pattern denotes
// the empty needle.
package syntax

import (
	"strings"
	"unicode"
)

// OptionalByte is one position of a needle: a literal byte when Valid is
// set, otherwise a wildcard that matches any byte.
type OptionalByte struct {
	Value byte
	Valid bool
}

// Literal returns a position that matches exactly b.
func Literal(b byte) OptionalByte {
	return OptionalByte{Value: b, Valid: true}
}

// Wildcard returns a position that matches any byte.
func Wildcard() OptionalByte {
	return OptionalByte{}
}

const hexDigits = "0123456789ABCDEF"

// String returns the two upper-case hex digits of a literal, or "?".
func (b OptionalByte) String() string {
	if !b.Valid {
		return "?"
	}
	return string([]byte{hexDigits[b.Value>>4], hexDigits[b.Value&0x0F]})
}

// Format renders bs in pattern notation, one token per position separated
// by single spaces. Parse(Format(bs)) returns bs.
func Format(bs []OptionalByte) string {
	var sb strings.Builder
	sb.Grow(len(bs) * 3)
	for i, b := range bs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(b.String())
	}
	return sb.String()
}

// Parse converts pattern text into the positions of a needle.
//
// On failure it returns an *Error carrying the reason and the rune span of
// the offending input.
func Parse(pattern string) ([]OptionalByte, error) {
	p := parser{pattern: pattern, src: []rune(pattern)}
	return p.parse()
}

// MustParse is like Parse but panics if the pattern cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(pattern string) []OptionalByte {
	bs, err := Parse(pattern)
	if err != nil {
		panic("syntax: Parse(`" + pattern + "`): " + err.Error())
	}
	return bs
}

type parser struct {
	pattern string
	src     []rune
	pos     int
}

func (p *parser) parse() ([]OptionalByte, error) {
	out := make([]OptionalByte, 0, (len(p.src)+1)/3)

	p.skipSpace()
	for !p.eof() {
		b, err := p.token()
		if err != nil {
			return nil, err
		}
		out = append(out, b)

		if p.eof() {
			break
		}
		if !unicode.IsSpace(p.src[p.pos]) {
			return nil, p.fail(Unexpected, 0, p.pos, p.pos+1)
		}
		p.skipSpace()
	}
	return out, nil
}

// token parses one byte or wildcard starting at p.pos.
func (p *parser) token() (OptionalByte, error) {
	c := p.src[p.pos]

	if c == '?' {
		p.pos++
		if !p.eof() && p.src[p.pos] == '?' {
			p.pos++
		}
		if !p.eof() && p.src[p.pos] == '?' {
			return OptionalByte{}, p.fail(Unexpected, 0, p.pos, p.pos+1)
		}
		return Wildcard(), nil
	}

	start := p.pos
	hi, ok := unhex(c)
	if !ok {
		return OptionalByte{}, p.fail(InvalidHexdigit, c, start, start+1)
	}
	p.pos++
	if p.eof() {
		return OptionalByte{}, p.fail(Unclosed, 0, start, len(p.src))
	}
	c = p.src[p.pos]
	lo, ok := unhex(c)
	if !ok {
		return OptionalByte{}, p.fail(InvalidHexdigit, c, p.pos, p.pos+1)
	}
	p.pos++
	return Literal(hi<<4 | lo), nil
}

func (p *parser) skipSpace() {
	for !p.eof() && unicode.IsSpace(p.src[p.pos]) {
		p.pos++
	}
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) fail(kind ReasonKind, c rune, start, end int) *Error {
	return &Error{
		Pattern: p.pattern,
		Span:    Span{Start: start, End: end},
		Reason:  Reason{Kind: kind, Char: c},
	}
}

func unhex(c rune) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return byte(c - '0'), true
	case 'a' <= c && c <= 'f':
		return byte(c - 'a' + 10), true
	case 'A' <= c && c <= 'F':
		return byte(c - 'A' + 10), true
	}
	return 0, false
}
