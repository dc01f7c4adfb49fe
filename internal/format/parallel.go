package format

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/Razoric480/gdformat/internal/fmtconfig"
	"github.com/Razoric480/gdformat/internal/source"
)

// FileResult is one file's outcome from FormatAll.
type FileResult struct {
	Path     string
	Output   string
	ParseErr *ParseError
}

// FormatAll formats every file concurrently, preserving input order in
// the returned slice (spec §5/§10.6: independent calls, nothing shared
// between goroutines beyond the read-only Options), modeled on the
// teacher's internal/driver.TokenizeDir: an indexed results slice sized
// up front needs no mutex, and each goroutine checks the group context
// before doing any work so a canceled run stops promptly.
func FormatAll(ctx context.Context, files []*source.File, opts fmtconfig.Options, jobs int) ([]FileResult, error) {
	if len(files) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			out, parseErr := Format(string(f.Content), opts)
			results[i] = FileResult{Path: f.Path, Output: out, ParseErr: parseErr}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
