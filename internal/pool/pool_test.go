// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pool

import (
	"bytes"
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pdiddy/docpdf/internal/convert"
	"github.com/pdiddy/docpdf/pkg/types"
)

// fakeRunner implements Runner with a configurable per-task outcome.
type fakeRunner struct {
	mu       sync.Mutex
	inFlight int32
	maxSeen  int32
	fail     map[string]string // input -> error message
	panics   map[string]bool   // input -> panic instead of returning
	delay    time.Duration
}

func (f *fakeRunner) Convert(task convert.Task, opts convert.Options) types.FileResult {
	cur := atomic.AddInt32(&f.inFlight, 1)
	defer atomic.AddInt32(&f.inFlight, -1)

	f.mu.Lock()
	if cur > f.maxSeen {
		f.maxSeen = cur
	}
	f.mu.Unlock()

	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	if f.panics[task.Input] {
		panic("converter exploded")
	}
	if msg, ok := f.fail[task.Input]; ok {
		return types.FileResult{Input: task.Input, Output: task.Output, Status: types.StatusFailed, Error: msg}
	}
	return types.FileResult{Input: task.Input, Output: task.Output, Status: types.StatusConverted}
}

func makeTasks(n int) []convert.Task {
	tasks := make([]convert.Task, n)
	for i := range tasks {
		tasks[i] = convert.Task{
			Input:  fmt.Sprintf("in/doc-%03d.docx", i),
			Output: fmt.Sprintf("out/doc-%03d.pdf", i),
		}
	}
	return tasks
}

func TestProcessCountsOutcomes(t *testing.T) {
	runner := &fakeRunner{
		fail:   map[string]string{"in/doc-001.docx": "boom", "in/doc-004.docx": "bad zip"},
		panics: map[string]bool{"in/doc-007.docx": true},
	}

	var out bytes.Buffer
	report, err := New(3).Process(context.Background(), makeTasks(10), runner, convert.Options{}, &out)
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}

	if report.Discovered != 10 {
		t.Errorf("Discovered = %d, want 10", report.Discovered)
	}
	if report.Processed() != 10 {
		t.Errorf("Processed = %d, want 10", report.Processed())
	}
	if report.Converted != 7 {
		t.Errorf("Converted = %d, want 7", report.Converted)
	}
	if report.Failed != 3 {
		t.Errorf("Failed = %d, want 3 (two errors and one panic)", report.Failed)
	}
	if !report.HasFailures() {
		t.Error("HasFailures() = false, want true")
	}
	if !strings.Contains(out.String(), "failed:  in/doc-001.docx (boom)") {
		t.Errorf("status output missing failure line:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "panic: converter exploded") {
		t.Errorf("status output missing contained panic:\n%s", out.String())
	}
}

func TestProcessBoundsConcurrency(t *testing.T) {
	runner := &fakeRunner{delay: 10 * time.Millisecond}

	var out bytes.Buffer
	_, err := New(2).Process(context.Background(), makeTasks(12), runner, convert.Options{}, &out)
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}

	if runner.maxSeen > 2 {
		t.Errorf("observed %d concurrent conversions, pool limit is 2", runner.maxSeen)
	}
}

func TestProcessEmptyBatch(t *testing.T) {
	var out bytes.Buffer
	report, err := New(4).Process(context.Background(), nil, &fakeRunner{}, convert.Options{}, &out)
	if err == nil {
		t.Fatal("expected error for empty batch")
	}
	if report.Processed() != 0 {
		t.Errorf("Processed = %d, want 0", report.Processed())
	}
}

func TestProcessCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := &fakeRunner{}
	var out bytes.Buffer
	report, err := New(2).Process(ctx, makeTasks(50), runner, convert.Options{}, &out)
	if err == nil {
		t.Fatal("expected ctx error after cancellation")
	}
	if report.Processed() == 50 {
		t.Error("cancelled run processed the whole batch")
	}
}

func TestOptimalWorkers(t *testing.T) {
	cpus := runtime.NumCPU()

	tests := []struct {
		name       string
		fileCount  int
		maxWorkers int
		want       int
	}{
		{"tiny batch", 3, 8, min(2, cpus)},
		{"small batch", 15, 8, min(4, cpus)},
		{"large batch", 200, 8, min(8, cpus)},
		{"zero max falls back", 200, 0, min(types.DefaultWorkers, cpus)},
		{"tiny batch capped by max", 3, 1, 1},
		{"small batch capped by max", 15, 3, min(3, cpus)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OptimalWorkers(tt.fileCount, tt.maxWorkers); got != tt.want {
				t.Errorf("OptimalWorkers(%d, %d) = %d, want %d",
					tt.fileCount, tt.maxWorkers, got, tt.want)
			}
		})
	}
}

func TestNewClampsWorkers(t *testing.T) {
	if got := New(0).Workers(); got != types.DefaultWorkers {
		t.Errorf("New(0).Workers() = %d, want %d", got, types.DefaultWorkers)
	}
	if got := New(-3).Workers(); got != types.DefaultWorkers {
		t.Errorf("New(-3).Workers() = %d, want %d", got, types.DefaultWorkers)
	}
	if got := New(7).Workers(); got != 7 {
		t.Errorf("New(7).Workers() = %d, want 7", got)
	}
}
