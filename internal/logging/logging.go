// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging configures the process-wide logrus logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/docpdf/pkg/types"
)

// Setup applies the log configuration to the standard logrus logger.
// Diagnostics go to stderr; an optional file receives a copy. User-facing
// command output never goes through the logger.
func Setup(cfg types.LogConfig) error {
	level, err := logrus.ParseLevel(levelOrDefault(cfg.Level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})

	out := io.Writer(os.Stderr)
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file %s: %w", cfg.File, err)
		}
		out = io.MultiWriter(os.Stderr, f)
	}
	logrus.SetOutput(out)
	return nil
}

func levelOrDefault(level string) string {
	if level == "" {
		return "info"
	}
	return level
}
