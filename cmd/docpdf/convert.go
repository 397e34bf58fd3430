package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pdiddy/docpdf/internal/convert"
	"github.com/pdiddy/docpdf/internal/docx"
	"github.com/pdiddy/docpdf/internal/pdf"
	"github.com/pdiddy/docpdf/internal/validate"
	"github.com/pdiddy/docpdf/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input>",
	Short: "Convert a single Word document to PDF",
	Long: `Convert validates one .doc or .docx file and writes it as a PDF.
Without --output the PDF is placed next to the input file.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "output PDF path (default: <input stem>.pdf next to the input)")
	convertCmd.Flags().String("quality", "", "PDF quality preset: low, medium, or high")
	convertCmd.Flags().Bool("overwrite", false, "replace an existing PDF at the output path")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]

	cfg, err := convertConfig(cmd)
	if err != nil {
		return err
	}

	fv := validate.NewFileValidator(appConfig().Validate)
	if err := fv.Validate(input); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = convert.SiblingOutputPath(input)
	}

	conv := newConverter(cfg.Quality)
	result := conv.Convert(convert.Task{Input: input, Output: output}, convert.Options{Overwrite: cfg.Overwrite})

	switch result.Status {
	case types.StatusConverted:
		color.Green("ok: %s -> %s (%.2fs)", result.Input, result.Output, result.Duration.Seconds())
		return nil
	case types.StatusSkipped:
		color.Yellow("skipped: %s already exists (use --overwrite)", result.Output)
		return nil
	default:
		color.New(color.FgRed).Fprintf(os.Stderr, "failed: %s\n", result.Error)
		return fmt.Errorf("conversion failed")
	}
}

// newConverter wires the format parsers to the PDF renderer.
func newConverter(quality types.Quality) *convert.Converter {
	return convert.New(docx.NewParser(), docx.NewLegacyParser(), pdf.NewRenderer(quality))
}
