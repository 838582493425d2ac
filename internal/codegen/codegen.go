// Package codegen turns needle declarations into Go source that builds
// aob.StaticNeedle values from package-level arrays.
//
// For every declaration the pattern is parsed and compiled as a run-time
// needle; its padded word and mask buffers and its prefilter descriptor are
// then written out as literals, so the generated package does no parsing
// at start-up.
package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/coregx/aob"
	"github.com/coregx/aob/prefilter"
	"github.com/coregx/aob/syntax"
)

// Config controls the generated file.
type Config struct {
	// Package is the package clause of the generated file.
	Package string

	// Source names the declarations file in the header comment. Optional.
	Source string
}

// needle is the template view of one declaration.
type needle struct {
	Name    string
	Suffix  string
	Pattern string
	Len     int
	Word    string
	Mask    string
	Padded  int
	Raw     string
}

const fileTemplate = `// Code generated by aobgen{{if .Source}} from {{.Source}}{{end}}. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/coregx/aob"
	"github.com/coregx/aob/prefilter"
)
{{range .Needles}}
// {{.Name}} matches {{printf "%q" .Pattern}}.
var {{.Name}} = aob.NewStatic({{.Len}}, aobWord{{.Suffix}}[:], aobMask{{.Suffix}}[:], {{.Raw}})

var aobWord{{.Suffix}} = [{{.Padded}}]byte{
{{.Word}}}

var aobMask{{.Suffix}} = [{{.Padded}}]byte{
{{.Mask}}}
{{end}}`

var tmpl = template.Must(template.New("static").Parse(fileTemplate))

// Generate returns gofmt'ed Go source declaring one static needle per decl.
//
// Every pattern is parsed before anything is emitted; if any fail, the
// returned error is a *ReportError listing all of them.
func Generate(cfg Config, decls []Decl) ([]byte, error) {
	if !token.IsIdentifier(cfg.Package) {
		return nil, fmt.Errorf("codegen: invalid package name %q", cfg.Package)
	}

	// Array names share a suffix for names differing only in the case of
	// their first letter, so those collide too.
	seen := make(map[string]bool, len(decls))
	needles := make([]needle, 0, len(decls))
	var report ReportError

	for _, d := range decls {
		if seen[arraySuffix(d.Name)] {
			return nil, fmt.Errorf("codegen: needle %s declared twice", d.Name)
		}
		seen[arraySuffix(d.Name)] = true

		bs, err := syntax.Parse(d.Pattern)
		if err != nil {
			var perr *syntax.Error
			if !errors.As(err, &perr) {
				return nil, err
			}
			report.Diagnostics = append(report.Diagnostics, Diagnostic{Decl: d, Err: perr})
			continue
		}
		needles = append(needles, build(d, bs))
	}
	if len(report.Diagnostics) > 0 {
		return nil, &report
	}

	var buf bytes.Buffer
	err := tmpl.Execute(&buf, struct {
		Config
		Needles []needle
	}{cfg, needles})
	if err != nil {
		return nil, fmt.Errorf("codegen: executing template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("codegen: formatting generated source: %w", err)
	}
	return src, nil
}

func build(d Decl, bs []syntax.OptionalByte) needle {
	n := aob.FromOptionalBytes(bs)
	word := n.Word()
	return needle{
		Name:    d.Name,
		Suffix:  arraySuffix(d.Name),
		Pattern: syntax.Format(bs),
		Len:     n.Len(),
		Word:    byteRows(word),
		Mask:    byteRows(n.Mask()),
		Padded:  len(word),
		Raw:     RawLiteral(n.Raw()),
	}
}

// arraySuffix upper-cases the first letter of name for the buffer arrays.
func arraySuffix(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}

// byteRows formats b as composite literal elements, sixteen per line.
func byteRows(b []byte) string {
	var sb strings.Builder
	for i, v := range b {
		if i%16 == 0 {
			sb.WriteByte('\t')
		}
		fmt.Fprintf(&sb, "0x%02x,", v)
		if i%16 == 15 || i == len(b)-1 {
			sb.WriteByte('\n')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// RawLiteral renders a prefilter descriptor as a Go composite literal.
func RawLiteral(raw prefilter.Raw) string {
	switch raw.Kind {
	case prefilter.Length:
		return fmt.Sprintf("prefilter.Raw{Kind: prefilter.Length, Len: %d}", raw.Len)
	case prefilter.Prefix:
		return fmt.Sprintf("prefilter.Raw{Kind: prefilter.Prefix, Len: %d, Prefix: 0x%02x, PrefixOffset: %d}",
			raw.Len, raw.Prefix, raw.PrefixOffset)
	default:
		return fmt.Sprintf("prefilter.Raw{Kind: prefilter.PrefixPostfix, Len: %d, Prefix: 0x%02x, PrefixOffset: %d, Postfix: 0x%02x, PostfixOffset: %d}",
			raw.Len, raw.Prefix, raw.PrefixOffset, raw.Postfix, raw.PostfixOffset)
	}
}
