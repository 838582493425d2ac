// Command aobgen generates Go source declaring static byte-pattern needles.
//
// Declarations are given as NAME=PATTERN arguments or read from files with
// one NAME = "PATTERN" per line. Typical use is from a go:generate line:
//
//	//go:generate go run github.com/coregx/aob/cmd/aobgen -p needles -f needles.aob -o needles_gen.go
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/coregx/aob/internal/codegen"
)

type options struct {
	pkg     string
	output  string
	files   []string
	verbose bool
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "aobgen [flags] [NAME=PATTERN...]",
		Short: "Generate static byte-pattern needles",
		Long: `aobgen parses byte patterns at build time and writes a Go file that
declares one aob.StaticNeedle per pattern, so no parsing happens at run time.

A pattern is a whitespace-separated list of hex bytes and wildcards:
  48 8B ? ? 89 05      # '?' or '??' matches any byte

EXAMPLES:
  aobgen -p needles Prologue="55 48 89 E5"              # print to stdout
  aobgen -p needles -f needles.aob -o needles_gen.go    # from a declarations file

A declarations file holds one needle per line:
  # comments start with '#' or '//'
  Prologue = "55 48 89 E5"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), newLogger(stderr, opts.verbose), opts, args)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().StringVarP(&opts.pkg, "package", "p", "", "Package name of the generated file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().StringArrayVarP(&opts.files, "file", "f", nil, "Read declarations from file (repeatable)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log progress to stderr")
	_ = cmd.MarkFlagRequired("package")

	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(stdout io.Writer, log *slog.Logger, opts options, args []string) error {
	var decls []codegen.Decl
	for _, path := range opts.files {
		fileDecls, err := readDeclsFile(path)
		if err != nil {
			return err
		}
		log.Debug("read declarations", "file", path, "count", len(fileDecls))
		decls = append(decls, fileDecls...)
	}
	for _, arg := range args {
		d, err := codegen.ParseDecl(arg)
		if err != nil {
			return err
		}
		decls = append(decls, d)
	}
	if len(decls) == 0 {
		return fmt.Errorf("no needle declarations given")
	}

	cfg := codegen.Config{Package: opts.pkg}
	if len(opts.files) == 1 {
		cfg.Source = filepath.Base(opts.files[0])
	}

	src, err := codegen.Generate(cfg, decls)
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err = stdout.Write(src)
		return err
	}
	if err := os.WriteFile(opts.output, src, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	log.Info("generated needles", "output", opts.output, "needles", len(decls))
	return nil
}

func readDeclsFile(path string) ([]codegen.Decl, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening declarations: %w", err)
	}
	defer f.Close()
	return codegen.ReadDecls(f, filepath.Base(path))
}
