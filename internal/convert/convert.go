// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements document-to-PDF conversion of single files,
// wiring a format parser to the PDF renderer.
package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/docpdf/pkg/types"
)

// Parser reads a word-processing file into the Document model. Different
// formats (.docx via go-docx, legacy .doc via antiword) implement this
// interface.
type Parser interface {
	Parse(path string) (*types.Document, error)
}

// Renderer lays a Document out as a PDF file.
type Renderer interface {
	Render(doc *types.Document, outPath string) error
}

// Task names one input file and the PDF path it converts to.
type Task struct {
	Input  string
	Output string
}

// Options control per-file conversion behavior.
type Options struct {
	// Overwrite replaces an existing PDF at the output path. When false the
	// file is skipped and reported as such.
	Overwrite bool
}

// Converter converts individual files, selecting a parser by extension.
type Converter struct {
	modern   Parser
	legacy   Parser
	renderer Renderer
}

// New builds a Converter from a .docx parser, a legacy .doc parser, and a
// renderer.
func New(modern, legacy Parser, r Renderer) *Converter {
	return &Converter{modern: modern, legacy: legacy, renderer: r}
}

// Convert runs one task end to end and reports its outcome. Conversion
// errors are captured in the result rather than returned: one bad file must
// never abort a batch.
func (c *Converter) Convert(task Task, opts Options) types.FileResult {
	start := time.Now()
	result := types.FileResult{
		Input:  task.Input,
		Output: task.Output,
		Status: types.StatusPending,
	}

	fail := func(err error) types.FileResult {
		result.Status = types.StatusFailed
		result.Error = err.Error()
		result.Duration = time.Since(start)
		return result
	}

	if !opts.Overwrite {
		if _, err := os.Stat(task.Output); err == nil {
			result.Status = types.StatusSkipped
			result.Duration = time.Since(start)
			return result
		}
	}

	parser, err := c.parserFor(task.Input)
	if err != nil {
		return fail(err)
	}

	if err := os.MkdirAll(filepath.Dir(task.Output), 0o755); err != nil {
		return fail(fmt.Errorf("creating output directory: %w", err))
	}

	doc, err := parser.Parse(task.Input)
	if err != nil {
		return fail(err)
	}

	if err := c.renderer.Render(doc, task.Output); err != nil {
		return fail(err)
	}

	result.Status = types.StatusConverted
	result.Duration = time.Since(start)
	return result
}

// parserFor selects the parser matching the file extension.
func (c *Converter) parserFor(path string) (Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		return c.modern, nil
	case ".doc":
		return c.legacy, nil
	default:
		return nil, fmt.Errorf("unsupported format %q", filepath.Ext(path))
	}
}

// OutputPath derives the PDF path for input inside outDir.
func OutputPath(input, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(outDir, base+".pdf")
}

// SiblingOutputPath derives the PDF path next to the input file.
func SiblingOutputPath(input string) string {
	return OutputPath(input, filepath.Dir(input))
}
