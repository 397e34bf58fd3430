// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"

	"github.com/pdiddy/docpdf/pkg/types"
)

// BatchResult splits a batch into accepted and rejected files. Err
// aggregates one error per rejected file.
type BatchResult struct {
	Valid   []string
	Invalid []string
	Err     error
}

// AllValid reports whether every file in the batch was accepted.
func (b BatchResult) AllValid() bool {
	return len(b.Invalid) == 0
}

// PrintReport writes a per-file validation report.
func (b BatchResult) PrintReport(w io.Writer) {
	fmt.Fprintf(w, "valid: %d, invalid: %d\n", len(b.Valid), len(b.Invalid))
	if merr, ok := b.Err.(*multierror.Error); ok {
		for _, err := range merr.Errors {
			fmt.Fprintf(w, "  - %v\n", err)
		}
	} else if b.Err != nil {
		fmt.Fprintf(w, "  - %v\n", b.Err)
	}
}

// BatchValidator validates whole batches with a size guard.
type BatchValidator struct {
	files        *FileValidator
	maxBatchSize int
}

// NewBatchValidator builds a batch validator over the file validator.
func NewBatchValidator(cfg types.ValidateConfig) *BatchValidator {
	maxBatch := cfg.MaxBatchSize
	if maxBatch <= 0 {
		maxBatch = types.DefaultMaxBatchSize
	}
	return &BatchValidator{
		files:        NewFileValidator(cfg),
		maxBatchSize: maxBatch,
	}
}

// Files exposes the underlying per-file validator.
func (v *BatchValidator) Files() *FileValidator {
	return v.files
}

// ValidateBatch checks every file, splitting the batch into accepted and
// rejected paths. Oversized batches are rejected outright.
func (v *BatchValidator) ValidateBatch(paths []string) BatchResult {
	if len(paths) > v.maxBatchSize {
		return BatchResult{
			Invalid: paths,
			Err:     fmt.Errorf("too many files (%d): the batch limit is %d", len(paths), v.maxBatchSize),
		}
	}

	var result BatchResult
	var errs *multierror.Error
	for _, path := range paths {
		if err := v.files.Validate(path); err != nil {
			result.Invalid = append(result.Invalid, path)
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		result.Valid = append(result.Valid, path)
	}
	result.Err = errs.ErrorOrNil()
	return result
}
