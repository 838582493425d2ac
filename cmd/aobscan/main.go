// Command aobscan searches files for a byte pattern with wildcards.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/coregx/aob"
	"github.com/coregx/aob/internal/scan"
	"github.com/coregx/aob/pattern"
)

type options struct {
	jsonOutput   bool
	countOnly    bool
	decimal      bool
	maxCount     int
	workers      int
	timeout      time.Duration
	method       string
	noPrefilter  bool
	noInflate    bool
	inflateLimit int64
	verbose      bool
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
		Use:   "aobscan [flags] PATTERN PATH...",
		Short: "Search files for a byte pattern",
		Long: `aobscan searches files for a byte pattern and prints the offset of every
match, overlapping matches included. Directories are searched recursively.

A pattern is a whitespace-separated list of hex bytes and wildcards; quote it
so the shell passes it as one argument:
  aobscan "48 8B ? ? 89 05" app.bin

Files ending in .gz or .zst, or starting with a gzip or zstd header, are
inflated before searching unless --no-inflate is given.

EXAMPLES:
  aobscan "4E 65 76 65 72" poem.txt                  # path:0xOFFSET per match
  aobscan -d "4E 65 76 65 72" poem.txt               # decimal offsets
  aobscan -c "E2 80 94" *.txt                        # match count per file
  aobscan --json -m 10 "55 48 89 E5" bin/*           # JSON lines, 10 per file
  aobscan --workers 8 --timeout 30s "CC ? CC" dumps/ # bounded parallel scan`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(stderr, opts.verbose)
			return run(cmd.Context(), cmd.OutOrStdout(), log, opts, args[0], args[1:])
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.BoolVar(&opts.jsonOutput, "json", false, "Print one JSON object per line")
	f.BoolVarP(&opts.countOnly, "count", "c", false, "Print only the number of matches per file")
	f.BoolVarP(&opts.decimal, "decimal", "d", false, "Print offsets in decimal instead of hex")
	f.IntVarP(&opts.maxCount, "max-count", "m", 0, "Stop after NUM matches per file (0 = unlimited)")
	f.IntVar(&opts.workers, "workers", 0, "Number of files searched concurrently (0 = GOMAXPROCS)")
	f.DurationVar(&opts.timeout, "timeout", 0, "Abort the search after this long (0 = no timeout)")
	f.StringVar(&opts.method, "method", "auto", "Verifier kernel: auto, scalar, swar32, swar64, sse2, avx2")
	f.BoolVar(&opts.noPrefilter, "no-prefilter", false, "Verify every offset instead of prefiltering")
	f.BoolVar(&opts.noInflate, "no-inflate", false, "Search compressed files as raw bytes")
	f.Int64Var(&opts.inflateLimit, "inflate-limit", 1<<30, "Maximum inflated size of one file in bytes (0 = unlimited)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Log progress to stderr")

	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func parseMethod(name string) (pattern.Method, error) {
	for _, m := range []pattern.Method{pattern.MethodAuto, pattern.Scalar, pattern.Swar32, pattern.Swar64, pattern.Sse2, pattern.Avx2} {
		if strings.EqualFold(name, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown method %q", name)
}

func run(ctx context.Context, stdout io.Writer, log *slog.Logger, opts options, pat string, paths []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	method, err := parseMethod(opts.method)
	if err != nil {
		return err
	}
	config := aob.DefaultConfig()
	config.Method = method
	config.Prefilter = !opts.noPrefilter

	needle, err := aob.CompileWithConfig(pat, config)
	if err != nil {
		return fmt.Errorf("compiling %q: %w", pat, err)
	}
	log.Debug("compiled needle", "pattern", needle.String(), "method", needle.Method(), "prefilter", needle.Raw())

	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	paths, err = scan.ExpandPaths(paths)
	if err != nil {
		return err
	}
	log.Debug("expanded paths", "files", len(paths))

	scanOpts := scan.Options{
		Workers:      opts.workers,
		MaxCount:     opts.maxCount,
		CountOnly:    opts.countOnly,
		Inflate:      !opts.noInflate,
		InflateLimit: opts.inflateLimit,
	}
	start := time.Now()
	results, err := scan.Files(ctx, needle, paths, scanOpts)
	if err != nil {
		if scan.IsCanceled(err) {
			return fmt.Errorf("search aborted: %w", err)
		}
		return err
	}
	log.Debug("scan finished", "files", len(results), "elapsed", time.Since(start))

	if err := printResults(stdout, opts, results); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	failed := scan.Failed(results)
	for _, r := range failed {
		log.Warn("skipped file", "path", r.Path, "err", r.Err)
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d file(s) could not be searched", len(failed))
	}
	return nil
}

type jsonMatch struct {
	Path   string `json:"path"`
	Offset int    `json:"offset"`
}

type jsonCount struct {
	Path        string `json:"path"`
	Count       int    `json:"count"`
	Size        int    `json:"size"`
	Compression string `json:"compression,omitempty"`
}

func printResults(w io.Writer, opts options, results []scan.Result) error {
	enc := json.NewEncoder(w)
	for _, r := range results {
		if r.Err != nil {
			continue
		}

		if opts.countOnly {
			if opts.jsonOutput {
				c := jsonCount{Path: r.Path, Count: r.Count, Size: r.Size}
				if r.Compression != scan.None {
					c.Compression = r.Compression.String()
				}
				if err := enc.Encode(c); err != nil {
					return err
				}
				continue
			}
			if _, err := fmt.Fprintf(w, "%s:%d\n", r.Path, r.Count); err != nil {
				return err
			}
			continue
		}

		for _, off := range r.Offsets {
			var err error
			switch {
			case opts.jsonOutput:
				err = enc.Encode(jsonMatch{Path: r.Path, Offset: off})
			case opts.decimal:
				_, err = fmt.Fprintf(w, "%s:%d\n", r.Path, off)
			default:
				_, err = fmt.Fprintf(w, "%s:0x%x\n", r.Path, off)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}
