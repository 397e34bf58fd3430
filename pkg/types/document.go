// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the document content model, conversion results, and
// configuration shared by all stages.
package types

import "time"

// Document is the format-neutral content extracted from a word-processing
// file. The parser produces it; the PDF renderer consumes it.
type Document struct {
	// Title is the document title from core properties, falling back to the
	// first non-empty paragraph.
	Title string `json:"title" yaml:"title"`

	// Metadata carries the core document properties of the source file.
	Metadata Metadata `json:"metadata" yaml:"metadata"`

	// Paragraphs holds the body paragraphs in source order.
	Paragraphs []Paragraph `json:"paragraphs" yaml:"paragraphs"`

	// Tables holds the body tables in source order.
	Tables []Table `json:"tables" yaml:"tables"`
}

// Metadata holds the core properties of the source document.
type Metadata struct {
	Title    string    `json:"title,omitempty" yaml:"title,omitempty"`
	Author   string    `json:"author,omitempty" yaml:"author,omitempty"`
	Subject  string    `json:"subject,omitempty" yaml:"subject,omitempty"`
	Keywords string    `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Created  time.Time `json:"created,omitempty" yaml:"created,omitempty"`
	Modified time.Time `json:"modified,omitempty" yaml:"modified,omitempty"`
}

// Paragraph is one block of body text with its style and formatted runs.
type Paragraph struct {
	// Text is the plain concatenated text of all runs.
	Text string `json:"text" yaml:"text"`

	// Style is the source style name (e.g. "Heading1", "Normal").
	Style string `json:"style,omitempty" yaml:"style,omitempty"`

	// Alignment is the source justification value ("left", "center",
	// "right", "both"); empty means default.
	Alignment string `json:"alignment,omitempty" yaml:"alignment,omitempty"`

	// Runs holds the formatted fragments of the paragraph. Empty for
	// plain-text sources such as legacy .doc extraction.
	Runs []Run `json:"runs,omitempty" yaml:"runs,omitempty"`
}

// Heading reports whether the paragraph carries a heading or title style.
func (p Paragraph) Heading() bool {
	return hasStylePrefix(p.Style, "Heading") || hasStylePrefix(p.Style, "Title")
}

func hasStylePrefix(style, prefix string) bool {
	return len(style) >= len(prefix) && style[:len(prefix)] == prefix
}

// Run is a fragment of paragraph text with uniform character formatting.
type Run struct {
	Text      string `json:"text" yaml:"text"`
	Bold      bool   `json:"bold,omitempty" yaml:"bold,omitempty"`
	Italic    bool   `json:"italic,omitempty" yaml:"italic,omitempty"`
	Underline bool   `json:"underline,omitempty" yaml:"underline,omitempty"`

	// Color is the RRGGBB hex text color; empty means default.
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
}

// Table is a body table as rows of cells.
type Table struct {
	Rows []TableRow `json:"rows" yaml:"rows"`
}

// Columns returns the width of the widest row.
func (t Table) Columns() int {
	max := 0
	for _, r := range t.Rows {
		if len(r.Cells) > max {
			max = len(r.Cells)
		}
	}
	return max
}

// TableRow is one table row.
type TableRow struct {
	Cells []string `json:"cells" yaml:"cells"`
}
