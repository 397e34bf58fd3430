// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pool

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pdiddy/docpdf/pkg/types"
)

// Report aggregates the outcome of a batch run.
type Report struct {
	// Discovered is the number of tasks handed to the pool.
	Discovered int `json:"discovered" yaml:"discovered"`

	// Workers is the pool size used for the run.
	Workers int `json:"workers" yaml:"workers"`

	Converted int `json:"converted" yaml:"converted"`
	Skipped   int `json:"skipped" yaml:"skipped"`
	Failed    int `json:"failed" yaml:"failed"`

	Started  time.Time `json:"started" yaml:"started"`
	Finished time.Time `json:"finished" yaml:"finished"`

	// Results holds the per-file outcomes in completion order.
	Results []types.FileResult `json:"results" yaml:"results"`
}

// add folds one result into the report. Only the collector goroutine calls it.
func (r *Report) add(res types.FileResult) {
	r.Results = append(r.Results, res)
	switch res.Status {
	case types.StatusConverted:
		r.Converted++
	case types.StatusSkipped:
		r.Skipped++
	default:
		r.Failed++
	}
}

// Processed returns the number of files that reached a terminal status.
func (r *Report) Processed() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any file failed.
func (r *Report) HasFailures() bool {
	return r.Failed > 0
}

// Duration is the wall-clock time of the whole run.
func (r *Report) Duration() time.Duration {
	if r.Finished.IsZero() || r.Started.IsZero() {
		return 0
	}
	return r.Finished.Sub(r.Started)
}

// SuccessRate is the fraction of processed files that converted or were
// skipped, as a percentage.
func (r *Report) SuccessRate() float64 {
	processed := r.Processed()
	if processed == 0 {
		return 0
	}
	return float64(processed-r.Failed) / float64(processed) * 100
}

// MeanPerFile is the average wall-clock time per processed file.
func (r *Report) MeanPerFile() time.Duration {
	processed := r.Processed()
	if processed == 0 {
		return 0
	}
	return r.Duration() / time.Duration(processed)
}

// FilesPerMinute is the observed throughput of the run.
func (r *Report) FilesPerMinute() float64 {
	d := r.Duration()
	if d <= 0 {
		return 0
	}
	return float64(r.Processed()) / d.Minutes()
}

// Print writes the summary block for the run, followed by up to maxErrors
// failure lines.
func (r *Report) Print(w io.Writer) {
	const maxErrors = 10

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 60))
	fmt.Fprintf(w, "Batch report\n")
	fmt.Fprintf(w, "%s\n", strings.Repeat("=", 60))
	fmt.Fprintf(w, "Files discovered:  %d\n", r.Discovered)
	fmt.Fprintf(w, "Files processed:   %d\n", r.Processed())
	fmt.Fprintf(w, "Converted:         %d\n", r.Converted)
	fmt.Fprintf(w, "Skipped:           %d\n", r.Skipped)
	fmt.Fprintf(w, "Failed:            %d\n", r.Failed)
	fmt.Fprintf(w, "Success rate:      %.1f%%\n", r.SuccessRate())
	fmt.Fprintf(w, "Workers:           %d\n", r.Workers)
	fmt.Fprintf(w, "Total time:        %.2fs\n", r.Duration().Seconds())
	fmt.Fprintf(w, "Mean per file:     %.2fs\n", r.MeanPerFile().Seconds())
	fmt.Fprintf(w, "Files per minute:  %.1f\n", r.FilesPerMinute())

	if r.Failed > 0 {
		fmt.Fprintf(w, "\nFailures:\n")
		shown := 0
		for _, res := range r.Results {
			if res.Status != types.StatusFailed {
				continue
			}
			if shown == maxErrors {
				fmt.Fprintf(w, "  ... and %d more\n", r.Failed-maxErrors)
				break
			}
			fmt.Fprintf(w, "  %s: %s\n", res.Input, res.Error)
			shown++
		}
	}
	fmt.Fprintf(w, "%s\n", strings.Repeat("=", 60))
}
