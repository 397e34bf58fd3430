// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pdiddy/docpdf/internal/convert"
	"github.com/pdiddy/docpdf/internal/history"
	"github.com/pdiddy/docpdf/internal/pool"
	"github.com/pdiddy/docpdf/internal/validate"
)

var batchCmd = &cobra.Command{
	Use:   "batch <inputs...>",
	Short: "Convert many Word documents to PDF in parallel",
	Long: `Batch expands files and directories into a list of documents, validates
them, and converts the valid ones across a fixed-size worker pool. Each file
succeeds or fails on its own; a final report summarizes counts and
throughput, and the run is recorded in the history database.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringP("output-dir", "o", "", "directory for the generated PDFs (default ./output)")
	batchCmd.Flags().IntP("workers", "w", 0, "worker count (default: sized from the batch, capped by config)")
	batchCmd.Flags().String("quality", "", "PDF quality preset: low, medium, or high")
	batchCmd.Flags().BoolP("recursive", "r", false, "descend into subdirectories")
	batchCmd.Flags().Bool("overwrite", false, "replace existing PDFs in the output directory")
	batchCmd.Flags().Bool("no-history", false, "do not record this run in the history database")
	batchCmd.Flags().String("report", "", "write the full run report to this YAML file")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg := appConfig()
	convCfg, err := convertConfig(cmd)
	if err != nil {
		return err
	}

	recursive, _ := cmd.Flags().GetBool("recursive")

	files, err := validate.Expand(args, cfg.Validate.Extensions, recursive)
	if err != nil {
		color.New(color.FgYellow).Fprintf(os.Stderr, "warning: %v\n", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no documents found in the given inputs")
	}
	fmt.Printf("Found %d file(s)\n", len(files))

	bv := validate.NewBatchValidator(cfg.Validate)
	batch := bv.ValidateBatch(files)
	if !batch.AllValid() {
		color.New(color.FgYellow).Fprintf(os.Stderr, "warning: %d file(s) rejected by validation\n", len(batch.Invalid))
		batch.PrintReport(os.Stderr)
	}
	if len(batch.Valid) == 0 {
		return fmt.Errorf("no valid documents to process")
	}

	outputDir, _ := cmd.Flags().GetString("output-dir")
	if outputDir == "" {
		outputDir = cfg.Pool.OutputDir
	}
	tasks := make([]convert.Task, len(batch.Valid))
	for i, f := range batch.Valid {
		tasks[i] = convert.Task{Input: f, Output: convert.OutputPath(f, outputDir)}
	}

	workers, _ := cmd.Flags().GetInt("workers")
	if workers <= 0 {
		workers = pool.OptimalWorkers(len(tasks), cfg.Pool.Workers)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Converting %d file(s) with %d worker(s)\n\n", len(tasks), workers)

	p := pool.New(workers)
	report, runErr := p.Process(ctx, tasks, newConverter(convCfg.Quality), convert.Options{Overwrite: convCfg.Overwrite}, os.Stdout)
	report.Print(os.Stdout)

	if noHistory, _ := cmd.Flags().GetBool("no-history"); !noHistory {
		recordRun(report)
	}

	if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" {
		if err := pool.WriteReportFile(reportPath, report); err != nil {
			logrus.Warnf("saving report: %v", err)
		} else {
			fmt.Printf("Report saved to %s\n", reportPath)
		}
	}

	if runErr != nil {
		return fmt.Errorf("batch interrupted: %w", runErr)
	}
	if report.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", report.Failed)
	}
	return nil
}

// recordRun persists the report; history is best effort and never fails the
// batch.
func recordRun(report *pool.Report) {
	store, err := history.NewStore(appConfig().History)
	if err != nil {
		logrus.Warnf("history disabled: %v", err)
		return
	}
	defer store.Close()

	id, err := store.Record(context.Background(), report)
	if err != nil {
		logrus.Warnf("recording run: %v", err)
		return
	}
	fmt.Printf("Recorded as run %d\n", id)
}
