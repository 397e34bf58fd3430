// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/pdiddy/docpdf/pkg/types"
)

func TestAppConfigDefaults(t *testing.T) {
	initConfig()
	cfg := appConfig()

	if cfg.Pool.Workers != types.DefaultWorkers {
		t.Errorf("pool workers = %d, want %d", cfg.Pool.Workers, types.DefaultWorkers)
	}
	if cfg.Pool.OutputDir != "./output" {
		t.Errorf("output dir = %q", cfg.Pool.OutputDir)
	}
	if cfg.Convert.Quality != types.QualityHigh {
		t.Errorf("quality = %q, want high", cfg.Convert.Quality)
	}
	if cfg.Validate.MaxFileSize != types.DefaultMaxFileSize {
		t.Errorf("max file size = %d", cfg.Validate.MaxFileSize)
	}
	if cfg.Validate.MaxBatchSize != types.DefaultMaxBatchSize {
		t.Errorf("max batch size = %d", cfg.Validate.MaxBatchSize)
	}
	if len(cfg.Validate.Extensions) != 2 {
		t.Errorf("extensions = %v", cfg.Validate.Extensions)
	}
	if cfg.History.Dir == "" {
		t.Error("history dir is empty")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level = %q, want info", cfg.Log.Level)
	}
}

func TestConvertConfig(t *testing.T) {
	initConfig()

	newCmd := func() *cobra.Command {
		cmd := &cobra.Command{}
		cmd.Flags().String("quality", "", "")
		cmd.Flags().Bool("overwrite", false, "")
		return cmd
	}

	t.Run("defaults from configuration", func(t *testing.T) {
		cfg, err := convertConfig(newCmd())
		if err != nil {
			t.Fatalf("convertConfig: %v", err)
		}
		if cfg.Quality != types.QualityHigh {
			t.Errorf("quality = %q, want high", cfg.Quality)
		}
		if cfg.Overwrite {
			t.Error("overwrite should default to false")
		}
	})

	t.Run("flags win", func(t *testing.T) {
		cmd := newCmd()
		cmd.Flags().Set("quality", "low")
		cmd.Flags().Set("overwrite", "true")

		cfg, err := convertConfig(cmd)
		if err != nil {
			t.Fatalf("convertConfig: %v", err)
		}
		if cfg.Quality != types.QualityLow {
			t.Errorf("quality = %q, want low", cfg.Quality)
		}
		if !cfg.Overwrite {
			t.Error("overwrite flag not applied")
		}
	})

	t.Run("invalid quality rejected", func(t *testing.T) {
		cmd := newCmd()
		cmd.Flags().Set("quality", "ultra")
		if _, err := convertConfig(cmd); err == nil {
			t.Fatal("expected error for unknown quality")
		}
	})
}
