// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pool runs batch conversions across a fixed-size worker pool. The
// work is an embarrassingly parallel map over independent files: no shared
// state between conversions, no retries, and no ordering guarantees between
// files.
package pool

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/docpdf/internal/convert"
	"github.com/pdiddy/docpdf/pkg/types"
)

// Runner converts one task. *convert.Converter is the production
// implementation.
type Runner interface {
	Convert(task convert.Task, opts convert.Options) types.FileResult
}

// Pool fans tasks out across a bounded number of concurrent workers.
type Pool struct {
	workers int
}

// New returns a pool with the given worker count, clamped to at least one.
func New(workers int) *Pool {
	if workers < 1 {
		workers = types.DefaultWorkers
	}
	return &Pool{workers: workers}
}

// Workers returns the configured worker count.
func (p *Pool) Workers() int { return p.workers }

// OptimalWorkers sizes the pool for a batch: small batches get fewer workers
// than the configured maximum, and the count never exceeds maxWorkers or the
// CPU count.
func OptimalWorkers(fileCount, maxWorkers int) int {
	cpus := runtime.NumCPU()
	if maxWorkers < 1 {
		maxWorkers = types.DefaultWorkers
	}
	n := maxWorkers
	switch {
	case fileCount <= 5:
		n = min(2, maxWorkers)
	case fileCount <= 20:
		n = min(4, maxWorkers)
	}
	return clamp(n, cpus)
}

func clamp(n, limit int) int {
	if n > limit {
		n = limit
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Process converts all tasks, writing one status line per file to w as
// results arrive, and returns the aggregated report. Individual failures are
// recorded and never stop the batch; a panic inside a conversion is contained
// to that file. Cancelling ctx stops dispatching new tasks and returns
// ctx.Err() after in-flight conversions finish.
func (p *Pool) Process(ctx context.Context, tasks []convert.Task, run Runner, opts convert.Options, w io.Writer) (*Report, error) {
	report := &Report{Discovered: len(tasks), Workers: p.workers, Started: time.Now()}
	if len(tasks) == 0 {
		return report, fmt.Errorf("no files to process")
	}

	results := make(chan types.FileResult)
	collected := make(chan struct{})

	// Fan-in: a single collector owns the report, so workers never share
	// mutable state.
	go func() {
		defer close(collected)
		for res := range results {
			report.add(res)
			printStatus(w, res)
		}
	}()

	var eg errgroup.Group
	eg.SetLimit(p.workers)

	var cancelled error
	for _, task := range tasks {
		if err := ctx.Err(); err != nil {
			cancelled = err
			break
		}
		task := task
		eg.Go(func() error {
			results <- runContained(run, task, opts)
			return nil
		})
	}

	eg.Wait()
	close(results)
	<-collected

	report.Finished = time.Now()
	return report, cancelled
}

// runContained executes one conversion, turning a panic into a failed result
// for that file only.
func runContained(run Runner, task convert.Task, opts convert.Options) (res types.FileResult) {
	defer func() {
		if r := recover(); r != nil {
			res = types.FileResult{
				Input:  task.Input,
				Output: task.Output,
				Status: types.StatusFailed,
				Error:  fmt.Sprintf("panic: %v", r),
			}
		}
	}()
	return run.Convert(task, opts)
}

func printStatus(w io.Writer, res types.FileResult) {
	switch res.Status {
	case types.StatusConverted:
		fmt.Fprintf(w, "converted: %s -> %s\n", res.Input, res.Output)
	case types.StatusSkipped:
		fmt.Fprintf(w, "skipped: %s (output exists)\n", res.Input)
	default:
		fmt.Fprintf(w, "failed:  %s (%s)\n", res.Input, res.Error)
	}
}
