// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the docpdf CLI, a parallel converter
// of word-processing documents (.doc/.docx) to PDF.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docpdf/internal/logging"
	"github.com/pdiddy/docpdf/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the docpdf CLI.
var rootCmd = &cobra.Command{
	Use:   "docpdf",
	Short: "Convert Word documents to PDF, in batches and in parallel",
	Long: `docpdf converts word-processing documents (.doc, .docx) to PDF.

Single files are converted with the convert command; whole directories are
fanned out across a worker pool with the batch command. Inputs are validated
(extension, size, magic numbers) before any conversion starts, and every
batch run is recorded in a local history database.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(cmd)
	},
}

func setupLogging(cmd *cobra.Command) error {
	cfg := appConfig().Log
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.Level = "debug"
	}
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		cfg.Level = "error"
	}
	return logging.Setup(cfg)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./docpdf.yaml or ~/.config/docpdf/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "errors only")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("docpdf")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "docpdf"))
		}
	}

	viper.SetEnvPrefix("DOCPDF")
	viper.AutomaticEnv()

	viper.SetDefault("log.level", "info")
	viper.SetDefault("convert.quality", string(types.QualityHigh))
	viper.SetDefault("pool.workers", types.DefaultWorkers)
	viper.SetDefault("pool.output_dir", "./output")
	viper.SetDefault("validate.max_file_size", int64(types.DefaultMaxFileSize))
	viper.SetDefault("validate.extensions", types.DefaultExtensions())
	viper.SetDefault("validate.max_batch_size", types.DefaultMaxBatchSize)
	viper.SetDefault("history.dir", defaultHistoryDir())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func defaultHistoryDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".docpdf"
	}
	return filepath.Join(home, ".local", "state", "docpdf")
}

// appConfig assembles the effective configuration from viper. Commands pull
// the sections they consume and apply their flag overrides on top.
func appConfig() types.AppConfig {
	return types.AppConfig{
		Convert: types.ConvertConfig{
			Quality: types.Quality(viper.GetString("convert.quality")),
		},
		Pool: types.PoolConfig{
			Workers:   viper.GetInt("pool.workers"),
			OutputDir: viper.GetString("pool.output_dir"),
		},
		Validate: types.ValidateConfig{
			MaxFileSize:  viper.GetInt64("validate.max_file_size"),
			Extensions:   viper.GetStringSlice("validate.extensions"),
			MaxBatchSize: viper.GetInt("validate.max_batch_size"),
		},
		History: types.HistoryConfig{Dir: viper.GetString("history.dir")},
		Log: types.LogConfig{
			Level: viper.GetString("log.level"),
			File:  viper.GetString("log.file"),
		},
	}
}

// convertConfig resolves the conversion settings: flags win over
// configuration.
func convertConfig(cmd *cobra.Command) (types.ConvertConfig, error) {
	cfg := appConfig().Convert
	if q, _ := cmd.Flags().GetString("quality"); q != "" {
		cfg.Quality = types.Quality(q)
	}
	if !cfg.Quality.Valid() {
		return cfg, fmt.Errorf("invalid quality %q: use low, medium, or high", cfg.Quality)
	}
	cfg.Overwrite, _ = cmd.Flags().GetBool("overwrite")
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
