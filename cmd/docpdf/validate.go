package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pdiddy/docpdf/internal/validate"
	"github.com/pdiddy/docpdf/pkg/types"
)

var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Check a file or directory without converting it",
	Long: `Validate runs the pre-conversion checks (existence, extension, size
limit, magic numbers) on a single file or every document in a directory,
and prints what it finds.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolP("recursive", "r", false, "descend into subdirectories")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]
	vCfg := appConfig().Validate

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%s does not exist", path)
	}

	if !info.IsDir() {
		return validateFile(path, vCfg)
	}

	recursive, _ := cmd.Flags().GetBool("recursive")
	files, err := validate.Expand([]string{path}, vCfg.Extensions, recursive)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no documents found in %s", path)
	}

	batch := validate.NewBatchValidator(vCfg).ValidateBatch(files)
	batch.PrintReport(os.Stdout)
	if !batch.AllValid() {
		return fmt.Errorf("%d file(s) failed validation", len(batch.Invalid))
	}
	return nil
}

func validateFile(path string, cfg types.ValidateConfig) error {
	fv := validate.NewFileValidator(cfg)

	if err := fv.Validate(path); err != nil {
		color.Red("invalid: %v", err)
		return fmt.Errorf("validation failed")
	}

	fi, err := fv.Info(path)
	if err != nil {
		return err
	}

	color.Green("valid: %s", path)
	fmt.Printf("  name:     %s\n", fi.Name)
	fmt.Printf("  size:     %s\n", fi.HumanSize)
	fmt.Printf("  type:     %s\n", fi.MIME)
	fmt.Printf("  modified: %s\n", fi.Modified.Format("2006-01-02 15:04:05"))
	return nil
}
