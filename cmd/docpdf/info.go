package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/pdiddy/docpdf/pkg/types"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the effective configuration and system details",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := appConfig()
		maxSize := cfg.Validate.MaxFileSize
		if maxSize <= 0 {
			maxSize = types.DefaultMaxFileSize
		}
		exts := cfg.Validate.Extensions
		if len(exts) == 0 {
			exts = types.DefaultExtensions()
		}

		fmt.Println("Configuration:")
		fmt.Printf("  workers:        %d\n", cfg.Pool.Workers)
		fmt.Printf("  output dir:     %s\n", cfg.Pool.OutputDir)
		fmt.Printf("  quality:        %s\n", cfg.Convert.Quality)
		fmt.Printf("  max file size:  %s\n", humanize.IBytes(uint64(maxSize)))
		fmt.Printf("  max batch size: %d\n", cfg.Validate.MaxBatchSize)
		fmt.Printf("  extensions:     %s\n", strings.Join(exts, ", "))
		fmt.Printf("  history dir:    %s\n", cfg.History.Dir)
		fmt.Printf("  log level:      %s\n", cfg.Log.Level)

		fmt.Println("\nSystem:")
		fmt.Printf("  cpus:           %d\n", runtime.NumCPU())
		fmt.Printf("  go:             %s\n", runtime.Version())
		fmt.Printf("  platform:       %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
