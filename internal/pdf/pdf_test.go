// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdf

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pdiddy/docpdf/pkg/types"
)

func sampleDocument() *types.Document {
	return &types.Document{
		Title: "Project Plan",
		Metadata: types.Metadata{
			Title:   "Project Plan",
			Author:  "A. Author",
			Created: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		},
		Paragraphs: []types.Paragraph{
			{Text: "Overview", Style: "Heading1"},
			{Text: "Plain body paragraph with enough text to wrap onto a second line when rendered at A4 width."},
			{
				Text: "Bold and red",
				Runs: []types.Run{
					{Text: "Bold ", Bold: true},
					{Text: "and red", Color: "FF0000"},
				},
			},
			{Text: "Centered closing line.", Alignment: "center"},
		},
		Tables: []types.Table{
			{Rows: []types.TableRow{
				{Cells: []string{"Phase", "Owner", "Due"}},
				{Cells: []string{"Design", "A. Author", "2026-02-01"}},
				{Cells: []string{"Build", "B. Builder"}},
			}},
		},
	}
}

func TestRenderWritesPDF(t *testing.T) {
	for _, q := range []types.Quality{types.QualityLow, types.QualityMedium, types.QualityHigh} {
		t.Run(string(q), func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "out.pdf")
			r := NewRenderer(q)

			if err := r.Render(sampleDocument(), out); err != nil {
				t.Fatalf("Render: %v", err)
			}

			data, err := os.ReadFile(out)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.HasPrefix(data, []byte("%PDF-")) {
				t.Errorf("output does not start with a PDF header: %q", data[:min(len(data), 8)])
			}
			if len(data) < 500 {
				t.Errorf("output suspiciously small: %d bytes", len(data))
			}
		})
	}
}

func TestRenderEmptyDocument(t *testing.T) {
	out := filepath.Join(t.TempDir(), "empty.pdf")
	if err := NewRenderer(types.QualityMedium).Render(&types.Document{}, out); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("output missing: %v", err)
	}
}

func TestNewRendererUnknownQuality(t *testing.T) {
	r := NewRenderer(types.Quality("ultra"))
	if r.preset.bodySize != presets[types.QualityHigh].bodySize {
		t.Errorf("unknown quality should fall back to high, got %+v", r.preset)
	}
}

func TestStyleString(t *testing.T) {
	tests := []struct {
		run  types.Run
		want string
	}{
		{types.Run{}, ""},
		{types.Run{Bold: true}, "B"},
		{types.Run{Italic: true}, "I"},
		{types.Run{Bold: true, Italic: true, Underline: true}, "BIU"},
	}
	for _, tt := range tests {
		if got := styleString(tt.run); got != tt.want {
			t.Errorf("styleString(%+v) = %q, want %q", tt.run, got, tt.want)
		}
	}
}

func TestAlignString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "L"},
		{"left", "L"},
		{"center", "C"},
		{"Center", "C"},
		{"right", "R"},
		{"end", "R"},
		{"both", "J"},
		{"distribute", "J"},
		{"weird", "L"},
	}
	for _, tt := range tests {
		if got := alignString(tt.in); got != tt.want {
			t.Errorf("alignString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestColorRGB(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b int
	}{
		{"", 0, 0, 0},
		{"FF0000", 255, 0, 0},
		{"00ff00", 0, 255, 0},
		{"336699", 51, 102, 153},
		{"nothex", 0, 0, 0},
		{"FFF", 0, 0, 0},
	}
	for _, tt := range tests {
		r, g, b := colorRGB(tt.in)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("colorRGB(%q) = %d,%d,%d, want %d,%d,%d", tt.in, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}
