// Package scan searches files for a byte-pattern needle.
//
// Each file is loaded as one contiguous haystack (memory-mapped, or inflated
// when compressed) and searched in full; files are processed concurrently
// by a bounded pool of workers.
package scan

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/coregx/aob"
)

// Options configures a scan.
type Options struct {
	// Workers bounds the number of files searched at once.
	// Zero means runtime.GOMAXPROCS(0).
	Workers int

	// MaxCount stops collecting matches in a file after this many.
	// Zero means no limit.
	MaxCount int

	// CountOnly records the number of matches without their offsets.
	CountOnly bool

	// Inflate decompresses gzip and zstd files before searching.
	Inflate bool

	// InflateLimit caps the inflated size of one file. Zero means no cap.
	InflateLimit int64
}

// DefaultOptions returns options that search every file, inflating
// compressed ones, on all available CPUs.
func DefaultOptions() Options {
	return Options{Inflate: true}
}

// Validate checks the options for negative values.
func (o Options) Validate() error {
	if o.Workers < 0 {
		return fmt.Errorf("scan: workers must be >= 0, got %d", o.Workers)
	}
	if o.MaxCount < 0 {
		return fmt.Errorf("scan: max count must be >= 0, got %d", o.MaxCount)
	}
	if o.InflateLimit < 0 {
		return fmt.Errorf("scan: inflate limit must be >= 0, got %d", o.InflateLimit)
	}
	return nil
}

// Result holds the matches found in one file.
type Result struct {
	Path        string
	Compression Compression

	// Size is the length of the searched haystack, after inflation.
	Size int

	// Offsets are match start offsets in ascending order. Nil when
	// CountOnly is set.
	Offsets []int

	// Count is the number of matches found, capped at MaxCount.
	Count int

	// Err is set when the file could not be loaded; the scan goes on with
	// the remaining files.
	Err error
}

// checkEvery is how many matches are collected between context checks.
const checkEvery = 4096

// Files searches every path for needle and returns one Result per path,
// in the order given.
//
// Errors loading individual files are reported in Result.Err. The returned
// error is non-nil only for invalid options or when ctx is done before the
// scan completes.
func Files(ctx context.Context, needle aob.Finder, paths []string, opts Options) ([]Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	workers := opts.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			res, err := File(gctx, needle, path, opts)
			results[i] = res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}

// File loads and searches a single file. Load failures are returned in
// Result.Err; the error return is reserved for context cancellation.
func File(ctx context.Context, needle aob.Finder, path string, opts Options) (res Result, err error) {
	res.Path = path
	if err := ctx.Err(); err != nil {
		return res, err
	}

	h, err := Load(path, opts.Inflate, opts.InflateLimit)
	if err != nil {
		res.Err = err
		return res, nil
	}
	defer func() {
		if cerr := h.Close(); cerr != nil && res.Err == nil {
			res.Err = cerr
		}
	}()

	res.Compression = h.Compression
	res.Size = len(h.Data)

	it := needle.FindIter(h.Data)
	for m, ok := it.Next(); ok; m, ok = it.Next() {
		if !opts.CountOnly {
			res.Offsets = append(res.Offsets, m.Start())
		}
		res.Count++
		if opts.MaxCount > 0 && res.Count >= opts.MaxCount {
			break
		}
		if res.Count%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}
	}
	return res, nil
}

// Failed returns the results whose files could not be loaded.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}

// IsCanceled reports whether err came from a canceled or expired context.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
