package codegen

import (
	"fmt"
	"strings"

	"github.com/coregx/aob/syntax"
)

// Diagnostic is a pattern that failed to parse.
type Diagnostic struct {
	Decl Decl
	Err  *syntax.Error
}

// Location returns "file:line" for declarations read from a file, or the
// needle name otherwise.
func (d Diagnostic) Location() string {
	if d.Decl.File == "" {
		return d.Decl.Name
	}
	return fmt.Sprintf("%s:%d", d.Decl.File, d.Decl.Line)
}

// Render formats the diagnostic with the pattern and a caret line under the
// offending characters:
//
//	needles.aob:3: Bad: 'unexpected input' while parsing pattern "?" in range [5, 6)
//	    11 ??? 22
//	         ^
func (d Diagnostic) Render() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s: %v\n", d.Location(), d.Decl.Name, d.Err)

	runes := []rune(d.Decl.Pattern)
	sb.WriteString("    ")
	sb.WriteString(strings.Map(visible, d.Decl.Pattern))
	sb.WriteString("\n    ")
	start := min(d.Err.Span.Start, len(runes))
	for _, r := range runes[:start] {
		// keep tabs so the caret lines up under tabbed input
		if r == '\t' {
			sb.WriteRune('\t')
		} else {
			sb.WriteByte(' ')
		}
	}
	sb.WriteString(strings.Repeat("^", max(d.Err.Span.End-d.Err.Span.Start, 1)))
	sb.WriteByte('\n')
	return sb.String()
}

// visible replaces line breaks so a pattern always renders on one line.
func visible(r rune) rune {
	if r == '\n' || r == '\r' {
		return ' '
	}
	return r
}

// ReportError collects every pattern that failed to parse in one run.
type ReportError struct {
	Diagnostics []Diagnostic
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	var sb strings.Builder
	for i, d := range e.Diagnostics {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(d.Render())
	}
	fmt.Fprintf(&sb, "%d pattern(s) failed to parse", len(e.Diagnostics))
	return sb.String()
}

// Unwrap returns the underlying parse errors.
func (e *ReportError) Unwrap() []error {
	errs := make([]error, len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		errs[i] = d.Err
	}
	return errs
}
