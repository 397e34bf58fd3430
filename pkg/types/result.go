// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// FileStatus indicates the outcome of converting a single file.
type FileStatus string

const (
	StatusPending   FileStatus = "pending"
	StatusConverted FileStatus = "converted"
	StatusSkipped   FileStatus = "skipped"
	StatusFailed    FileStatus = "failed"
)

// FileResult records the outcome of one file in a batch run.
type FileResult struct {
	// Input is the source document path.
	Input string `json:"input" yaml:"input"`

	// Output is the PDF path that was (or would have been) written.
	Output string `json:"output" yaml:"output"`

	// Status is the conversion outcome.
	Status FileStatus `json:"status" yaml:"status"`

	// Error is the failure message; empty unless Status is StatusFailed.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// Duration is the wall-clock time spent on this file.
	Duration time.Duration `json:"duration" yaml:"duration"`
}
