// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pool

import (
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v3"
)

func TestWriteReportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := WriteReportFile(path, sampleReport()); err != nil {
		t.Fatalf("WriteReportFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var rf reportFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		t.Fatalf("parsing report file: %v", err)
	}

	if rf.Report.Converted != 2 || rf.Report.Failed != 2 {
		t.Errorf("counters = %d converted, %d failed", rf.Report.Converted, rf.Report.Failed)
	}
	if len(rf.Report.Results) != 5 {
		t.Errorf("results = %d, want 5", len(rf.Report.Results))
	}
	if rf.Summary.Processed != 5 {
		t.Errorf("summary processed = %d, want 5", rf.Summary.Processed)
	}
	if rf.Summary.SuccessRate != 60.0 {
		t.Errorf("summary success rate = %v, want 60.0", rf.Summary.SuccessRate)
	}
}

func TestWriteReportFileBadPath(t *testing.T) {
	err := WriteReportFile(filepath.Join(t.TempDir(), "missing", "run.yaml"), sampleReport())
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
}
