// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/docpdf/pkg/types"
)

// writeDocx creates a minimal OOXML container so magic sniffing sees an
// archive rather than plain text.
func writeDocx(t *testing.T, dir, name string) string {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for entry, content := range map[string]string{
		"[Content_Types].xml": `<?xml version="1.0"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`,
		"word/document.xml":   `<?xml version="1.0"?><document/>`,
	} {
		w, err := zw.Create(entry)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// writeLegacyDoc creates a file with an OLE compound-document header.
func writeLegacyDoc(t *testing.T, dir, name string) string {
	t.Helper()
	header := []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
	data := append(header, make([]byte, 512)...)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeText(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFileValidator(t *testing.T) {
	dir := t.TempDir()
	v := NewFileValidator(types.ValidateConfig{})

	tests := []struct {
		name       string
		path       func() string
		wantErrSub string
	}{
		{
			name: "valid docx",
			path: func() string { return writeDocx(t, dir, "good.docx") },
		},
		{
			name: "valid legacy doc",
			path: func() string { return writeLegacyDoc(t, dir, "old.doc") },
		},
		{
			name:       "missing file",
			path:       func() string { return filepath.Join(dir, "nope.docx") },
			wantErrSub: "not found",
		},
		{
			name:       "unsupported extension",
			path:       func() string { return writeText(t, dir, "notes.txt", "hello") },
			wantErrSub: "unsupported extension",
		},
		{
			name:       "directory instead of file",
			path:       func() string { return dir },
			wantErrSub: "not a file",
		},
		{
			name:       "text masquerading as docx",
			path:       func() string { return writeText(t, dir, "fake.docx", "just words, no archive") },
			wantErrSub: "does not match extension",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.path())
			if tt.wantErrSub == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErrSub) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErrSub)
			}
		})
	}
}

func TestFileValidatorSizeLimit(t *testing.T) {
	dir := t.TempDir()
	path := writeDocx(t, dir, "big.docx")

	v := NewFileValidator(types.ValidateConfig{MaxFileSize: 10})
	err := v.Validate(path)
	if err == nil || !strings.Contains(err.Error(), "too large") {
		t.Errorf("Validate() = %v, want size error", err)
	}
}

func TestFileValidatorDefaults(t *testing.T) {
	v := NewFileValidator(types.ValidateConfig{})
	if v.MaxFileSize() != types.DefaultMaxFileSize {
		t.Errorf("MaxFileSize = %d, want default", v.MaxFileSize())
	}
	if got := v.Extensions(); len(got) != 2 {
		t.Errorf("Extensions = %v, want the two defaults", got)
	}
}

func TestInfo(t *testing.T) {
	dir := t.TempDir()
	path := writeDocx(t, dir, "info.docx")

	fi, err := NewFileValidator(types.ValidateConfig{}).Info(path)
	if err != nil {
		t.Fatalf("Info: %v", err)
	}
	if fi.Name != "info.docx" {
		t.Errorf("Name = %q", fi.Name)
	}
	if fi.Extension != ".docx" {
		t.Errorf("Extension = %q", fi.Extension)
	}
	if fi.Size == 0 || fi.HumanSize == "" {
		t.Errorf("size not populated: %d %q", fi.Size, fi.HumanSize)
	}
	if fi.MIME == "" {
		t.Error("MIME not detected")
	}
}

func TestValidateBatch(t *testing.T) {
	dir := t.TempDir()
	good1 := writeDocx(t, dir, "a.docx")
	good2 := writeLegacyDoc(t, dir, "b.doc")
	bad := writeText(t, dir, "c.docx", "not a real document")

	bv := NewBatchValidator(types.ValidateConfig{})
	res := bv.ValidateBatch([]string{good1, good2, bad})

	if len(res.Valid) != 2 {
		t.Errorf("Valid = %v, want 2 entries", res.Valid)
	}
	if len(res.Invalid) != 1 || res.Invalid[0] != bad {
		t.Errorf("Invalid = %v, want [%s]", res.Invalid, bad)
	}
	if res.AllValid() {
		t.Error("AllValid() = true with an invalid file")
	}
	if res.Err == nil || !strings.Contains(res.Err.Error(), "c.docx") {
		t.Errorf("Err = %v, want mention of c.docx", res.Err)
	}

	var buf bytes.Buffer
	res.PrintReport(&buf)
	if !strings.Contains(buf.String(), "valid: 2, invalid: 1") {
		t.Errorf("report: %s", buf.String())
	}
}

func TestValidateBatchSizeGuard(t *testing.T) {
	bv := NewBatchValidator(types.ValidateConfig{MaxBatchSize: 2})
	res := bv.ValidateBatch([]string{"a.docx", "b.docx", "c.docx"})

	if len(res.Valid) != 0 {
		t.Errorf("Valid = %v, want none", res.Valid)
	}
	if res.Err == nil || !strings.Contains(res.Err.Error(), "too many files") {
		t.Errorf("Err = %v, want batch limit error", res.Err)
	}
}
