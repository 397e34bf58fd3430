// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/docpdf/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past batch runs",
	Long: `History lists batch runs recorded in the local SQLite database: when
they ran, how many files converted or failed, and the observed duration.
Use --run to list the per-file outcomes of one run.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "maximum number of runs to list")
	historyCmd.Flags().Int64("run", 0, "show the per-file results of one run ID")
	historyCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := history.NewStore(appConfig().History)
	if err != nil {
		return err
	}
	defer store.Close()

	jsonOutput, _ := cmd.Flags().GetBool("json")

	if runID, _ := cmd.Flags().GetInt64("run"); runID > 0 {
		return showRun(store, runID, jsonOutput)
	}

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.List(context.Background(), limit)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Printf("%-5s  %-19s  %-7s  %-5s  %-9s  %-7s  %-6s  %s\n",
		"Run", "Started", "Workers", "Files", "Converted", "Skipped", "Failed", "Time")
	fmt.Println(strings.Repeat("-", 80))
	for _, r := range runs {
		fmt.Printf("%-5d  %-19s  %-7d  %-5d  %-9d  %-7d  %-6d  %.1fs\n",
			r.ID, r.Started.Local().Format("2006-01-02 15:04:05"),
			r.Workers, r.Discovered, r.Converted, r.Skipped, r.Failed, r.Duration)
	}
	return nil
}

func showRun(store *history.Store, runID int64, jsonOutput bool) error {
	files, err := store.Files(context.Background(), runID)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no run with ID %d", runID)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(files)
	}

	for _, f := range files {
		line := fmt.Sprintf("%-9s  %s", f.Status, f.Input)
		if f.Error != "" {
			line += "  (" + f.Error + ")"
		}
		fmt.Println(line)
	}
	return nil
}
