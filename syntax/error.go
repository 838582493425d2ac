package syntax

import "fmt"

// ErrUnexpected matches any *Error whose reason is Unexpected.
var ErrUnexpected = &Error{Reason: Reason{Kind: Unexpected}}

// ErrUnclosed matches any *Error whose reason is Unclosed.
var ErrUnclosed = &Error{Reason: Reason{Kind: Unclosed}}

// ErrInvalidHexdigit matches any *Error whose reason is InvalidHexdigit,
// whatever the offending character.
var ErrInvalidHexdigit = &Error{Reason: Reason{Kind: InvalidHexdigit}}

// ReasonKind classifies parse failures.
type ReasonKind uint8

const (
	// Unexpected means a character appeared where none was allowed, such as
	// a third '?' in a wildcard or a third digit in a byte.
	Unexpected ReasonKind = iota

	// Unclosed means the pattern ended in the middle of a byte.
	Unclosed

	// InvalidHexdigit means a byte token contained a character that is not
	// a hexadecimal digit.
	InvalidHexdigit
)

// String returns the kind name.
func (k ReasonKind) String() string {
	switch k {
	case Unexpected:
		return "Unexpected"
	case Unclosed:
		return "Unclosed"
	case InvalidHexdigit:
		return "InvalidHexdigit"
	default:
		return fmt.Sprintf("UnknownReasonKind(%d)", k)
	}
}

// Reason describes why parsing failed.
type Reason struct {
	Kind ReasonKind

	// Char is the offending character for InvalidHexdigit.
	Char rune
}

// String renders the reason as shown inside Error messages.
func (r Reason) String() string {
	switch r.Kind {
	case Unexpected:
		return "unexpected input"
	case Unclosed:
		return "unclosed delimiter"
	case InvalidHexdigit:
		return fmt.Sprintf("'%c' is not a hexdigit", r.Char)
	default:
		return r.Kind.String()
	}
}

// Span is a half-open range [Start, End) of character (rune) indices into
// the pattern text.
type Span struct {
	Start int
	End   int
}

// String formats the span as "[start, end)".
func (s Span) String() string {
	return fmt.Sprintf("[%d, %d)", s.Start, s.End)
}

// Error is returned by Parse when the pattern text is malformed.
type Error struct {
	// Pattern is the full text that failed to parse.
	Pattern string

	// Span locates the offending characters.
	Span Span

	Reason Reason
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("'%s' while parsing pattern %q in range %s", e.Reason, e.Snippet(), e.Span)
}

// Snippet returns the characters of Pattern covered by Span.
func (e *Error) Snippet() string {
	runes := []rune(e.Pattern)
	start := min(max(e.Span.Start, 0), len(runes))
	end := min(max(e.Span.End, start), len(runes))
	return string(runes[start:end])
}

// Is implements error comparison for errors.Is. Errors compare equal when
// their reason kinds match.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Reason.Kind == t.Reason.Kind
}
