package main

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/alnah/go-quotepdf"
)

// dirPermissions is rwxr-x---: owner full, group read+execute.
const dirPermissions = 0o750

// FileGenerator writes one rendered request into a directory.
type FileGenerator interface {
	GenerateFile(ctx context.Context, req *quotepdf.Request, dir string) (string, error)
}

// Compile-time interface implementation check.
var _ FileGenerator = (*quotepdf.Generator)(nil)

// RenderResult holds the outcome of a single request.
type RenderResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// renderBatch renders files concurrently. Results keep the input order.
// Files not started before ctx is cancelled fail with ctx.Err().
func renderBatch(ctx context.Context, gen FileGenerator, load func(string) (*quotepdf.Request, error), files []string, outDir string, workers int) []RenderResult {
	if len(files) == 0 {
		return nil
	}
	workers = min(max(workers, 1), len(files))

	results := make([]RenderResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = RenderResult{InputPath: files[idx], Err: ctx.Err()}
					continue
				}
				results[idx] = renderFile(ctx, gen, load, files[idx], outDir)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// renderFile processes a single request and returns the result.
func renderFile(ctx context.Context, gen FileGenerator, load func(string) (*quotepdf.Request, error), path, outDir string) RenderResult {
	start := time.Now()
	result := RenderResult{InputPath: path}

	req, err := load(path)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}
	result.OutputPath, result.Err = gen.GenerateFile(ctx, req, outDir)
	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed renders.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed renders.
func countResults(results []RenderResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults reports each file. quiet hides successes. A lone failure
// is left to the caller's error report.
func printResults(stdout, stderr io.Writer, results []RenderResult, quiet bool) {
	for _, r := range results {
		if r.Err != nil {
			if len(results) == 1 {
				continue
			}
			fmt.Fprintf(stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}
		if !quiet {
			fmt.Fprintf(stdout, "Created %s (%s)\n", r.OutputPath, r.Duration.Round(time.Millisecond))
		}
	}
	if len(results) > 1 && !quiet {
		s := countResults(results)
		fmt.Fprintf(stdout, "%d succeeded, %d failed\n", s.Succeeded, s.Failed)
	}
}

// batchError returns nil when every render succeeded. Otherwise it wraps
// the first failure so the exit code reflects it.
func batchError(results []RenderResult) error {
	s := countResults(results)
	if s.Failed == 0 {
		return nil
	}
	for _, r := range results {
		if r.Err == nil {
			continue
		}
		if len(results) == 1 {
			return r.Err
		}
		return fmt.Errorf("%d of %d requests failed, first %s: %w", s.Failed, len(results), r.InputPath, r.Err)
	}
	return nil
}
