// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package validate checks input files before conversion: existence,
// readability, supported extension, size limits, and magic-number sniffing.
package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/sirupsen/logrus"

	"github.com/pdiddy/docpdf/pkg/types"
)

// MIME types accepted per extension. A .docx is an OOXML zip; a legacy .doc
// is an OLE compound file.
var acceptedMIME = map[string][]string{
	".docx": {
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"application/zip",
	},
	".doc": {
		"application/msword",
		"application/x-ole-storage",
	},
}

// FileValidator checks individual input files against the configured limits.
type FileValidator struct {
	maxFileSize int64
	extensions  []string
}

// NewFileValidator builds a validator, applying defaults for unset limits.
func NewFileValidator(cfg types.ValidateConfig) *FileValidator {
	maxSize := cfg.MaxFileSize
	if maxSize <= 0 {
		maxSize = types.DefaultMaxFileSize
	}
	exts := cfg.Extensions
	if len(exts) == 0 {
		exts = types.DefaultExtensions()
	}
	return &FileValidator{maxFileSize: maxSize, extensions: exts}
}

// Validate checks one file. A nil return means the file is accepted for
// conversion.
func (v *FileValidator) Validate(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("file not found: %s", path)
	}
	if info.IsDir() {
		return fmt.Errorf("not a file: %s", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !v.supported(ext) {
		return fmt.Errorf("unsupported extension %q", ext)
	}

	if info.Size() > v.maxFileSize {
		return fmt.Errorf("file too large: %s (limit %s)",
			humanize.IBytes(uint64(info.Size())), humanize.IBytes(uint64(v.maxFileSize)))
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("not readable: %s", path)
	}
	f.Close()

	return v.checkMagic(path, ext)
}

// checkMagic sniffs the file content and compares it with what the
// extension claims. An undetectable type is accepted with a warning, as
// sniffing is a safety net rather than a gate.
func (v *FileValidator) checkMagic(path, ext string) error {
	accepted, known := acceptedMIME[ext]
	if !known {
		return nil
	}

	mt, err := mimetype.DetectFile(path)
	if err != nil {
		logrus.WithField("file", path).Warnf("magic-number check skipped: %v", err)
		return nil
	}

	for _, want := range accepted {
		if mt.Is(want) {
			return nil
		}
	}
	return fmt.Errorf("content type %s does not match extension %q", mt.String(), ext)
}

func (v *FileValidator) supported(ext string) bool {
	for _, e := range v.extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

// Extensions returns the accepted source extensions.
func (v *FileValidator) Extensions() []string {
	return append([]string(nil), v.extensions...)
}

// MaxFileSize returns the per-file size cap in bytes.
func (v *FileValidator) MaxFileSize() int64 {
	return v.maxFileSize
}

// FileInfo describes one input file for the validate command.
type FileInfo struct {
	Name      string    `json:"name" yaml:"name"`
	Extension string    `json:"extension" yaml:"extension"`
	Size      int64     `json:"size" yaml:"size"`
	HumanSize string    `json:"human_size" yaml:"human_size"`
	MIME      string    `json:"mime" yaml:"mime"`
	Modified  time.Time `json:"modified" yaml:"modified"`
}

// Info collects details about a file, independent of whether it validates.
func (v *FileValidator) Info(path string) (FileInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, fmt.Errorf("stat %s: %w", path, err)
	}

	fi := FileInfo{
		Name:      filepath.Base(path),
		Extension: strings.ToLower(filepath.Ext(path)),
		Size:      stat.Size(),
		HumanSize: humanize.IBytes(uint64(stat.Size())),
		Modified:  stat.ModTime(),
	}
	if mt, err := mimetype.DetectFile(path); err == nil {
		fi.MIME = mt.String()
	}
	return fi, nil
}
