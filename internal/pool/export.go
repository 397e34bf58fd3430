// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pool

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// reportFile is the on-disk representation of a run report. The computed
// statistics are stored alongside the raw counters so the file is readable
// without recomputing them.
type reportFile struct {
	Report  *Report       `yaml:"report"`
	Summary reportSummary `yaml:"summary"`
}

type reportSummary struct {
	Processed          int     `yaml:"processed"`
	SuccessRate        float64 `yaml:"success_rate_pct"`
	DurationSeconds    float64 `yaml:"duration_seconds"`
	MeanPerFileSeconds float64 `yaml:"mean_per_file_seconds"`
	FilesPerMinute     float64 `yaml:"files_per_minute"`
}

// WriteReportFile saves the full run report to a YAML file so a run's
// outcome can be archived or compared outside the history database.
func WriteReportFile(path string, report *Report) error {
	rf := reportFile{
		Report: report,
		Summary: reportSummary{
			Processed:          report.Processed(),
			SuccessRate:        report.SuccessRate(),
			DurationSeconds:    report.Duration().Seconds(),
			MeanPerFileSeconds: report.MeanPerFile().Seconds(),
			FilesPerMinute:     report.FilesPerMinute(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report file: %w", err)
	}
	return nil
}
