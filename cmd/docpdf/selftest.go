// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pdiddy/docpdf/internal/convert"
	"github.com/pdiddy/docpdf/internal/docx"
	"github.com/pdiddy/docpdf/internal/validate"
	"github.com/pdiddy/docpdf/pkg/types"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Convert a built-in sample document end to end",
	Long: `Test writes a small sample .docx, runs it through validation and
conversion, and reports whether a PDF came out. Use it to check an
installation without supplying your own documents.`,
	RunE: runSelfTest,
}

func init() {
	testCmd.Flags().String("dir", "", "keep the sample and its PDF in this directory instead of a temporary one")

	rootCmd.AddCommand(testCmd)
}

func runSelfTest(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	keep := dir != ""
	if keep {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	} else {
		tmp, err := os.MkdirTemp("", "docpdf-test-")
		if err != nil {
			return err
		}
		defer os.RemoveAll(tmp)
		dir = tmp
	}

	input := filepath.Join(dir, "sample.docx")
	if err := docx.WriteSampleDocument(input); err != nil {
		return fmt.Errorf("writing sample document: %w", err)
	}

	fv := validate.NewFileValidator(appConfig().Validate)
	if err := fv.Validate(input); err != nil {
		return fmt.Errorf("sample failed validation: %w", err)
	}

	conv := newConverter(appConfig().Convert.Quality)
	result := conv.Convert(
		convert.Task{Input: input, Output: convert.SiblingOutputPath(input)},
		convert.Options{Overwrite: true},
	)

	if result.Status != types.StatusConverted {
		color.New(color.FgRed).Fprintf(os.Stderr, "self-test failed: %s\n", result.Error)
		return fmt.Errorf("self-test failed")
	}

	color.Green("ok: sample converted in %.2fs", result.Duration.Seconds())
	if keep {
		fmt.Printf("  %s\n  %s\n", result.Input, result.Output)
	}
	return nil
}
