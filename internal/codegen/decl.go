package codegen

import (
	"bufio"
	"fmt"
	"go/token"
	"io"
	"strconv"
	"strings"
)

// Decl is one needle to generate: a Go identifier bound to a pattern.
type Decl struct {
	Name    string
	Pattern string

	// Where the declaration came from, for diagnostics. File may be empty
	// and Line zero for declarations given on the command line.
	File string
	Line int
}

// ParseDecl parses a single NAME=PATTERN argument. The pattern may be
// quoted; surrounding whitespace is ignored.
func ParseDecl(arg string) (Decl, error) {
	name, pat, ok := strings.Cut(arg, "=")
	if !ok {
		return Decl{}, fmt.Errorf("declaration %q: want NAME=PATTERN", arg)
	}
	d := Decl{Name: strings.TrimSpace(name), Pattern: strings.TrimSpace(pat)}
	if unq, err := strconv.Unquote(d.Pattern); err == nil {
		d.Pattern = unq
	}
	if err := checkName(d.Name); err != nil {
		return Decl{}, err
	}
	return d, nil
}

// ReadDecls reads a declarations file. Each non-empty line that does not
// start with '#' or "//" has the form
//
//	NAME = "PATTERN"
//
// where PATTERN is a Go string literal.
func ReadDecls(r io.Reader, file string) ([]Decl, error) {
	var decls []Decl
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") || strings.HasPrefix(text, "//") {
			continue
		}

		name, lit, ok := strings.Cut(text, "=")
		if !ok {
			return nil, fmt.Errorf("%s:%d: want NAME = \"PATTERN\"", file, line)
		}
		pat, err := strconv.Unquote(strings.TrimSpace(lit))
		if err != nil {
			return nil, fmt.Errorf("%s:%d: pattern must be a quoted string: %w", file, line, err)
		}
		name = strings.TrimSpace(name)
		if err := checkName(name); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", file, line, err)
		}
		decls = append(decls, Decl{Name: name, Pattern: pat, File: file, Line: line})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", file, err)
	}
	return decls, nil
}

func checkName(name string) error {
	if !token.IsIdentifier(name) {
		return fmt.Errorf("%q is not a valid Go identifier", name)
	}
	if name == "_" {
		return fmt.Errorf("blank identifier cannot name a needle")
	}
	return nil
}
