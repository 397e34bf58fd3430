// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docx reads word-processing documents into the shared content
// model. Modern .docx files go through the go-docx document-object library;
// legacy .doc files are extracted with antiword.
package docx

import (
	"fmt"
	"os"
	"strings"

	godocx "github.com/fumiama/go-docx"

	"github.com/pdiddy/docpdf/pkg/types"
)

// Parser reads .docx files into the Document model.
type Parser struct{}

// NewParser returns a parser for modern .docx files.
func NewParser() *Parser {
	return &Parser{}
}

// Parse opens the .docx file at path and extracts its paragraphs, tables,
// and core properties.
func (p *Parser) Parse(path string) (*types.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	parsed, err := godocx.Parse(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	doc := &types.Document{}

	for _, item := range parsed.Document.Body.Items {
		switch v := item.(type) {
		case *godocx.Paragraph:
			para := mapParagraph(v)
			if strings.TrimSpace(para.Text) == "" {
				continue
			}
			doc.Paragraphs = append(doc.Paragraphs, para)
		case *godocx.Table:
			tbl := mapTable(v)
			if len(tbl.Rows) > 0 {
				doc.Tables = append(doc.Tables, tbl)
			}
		}
	}

	// Core properties live outside the main document part; read them
	// straight from the OOXML container.
	if meta, err := readCoreProperties(path); err == nil {
		doc.Metadata = *meta
	}

	doc.Title = fallbackTitle(doc)
	return doc, nil
}

// mapParagraph converts a go-docx paragraph into the content model.
func mapParagraph(p *godocx.Paragraph) types.Paragraph {
	para := types.Paragraph{}

	if p.Properties != nil {
		if p.Properties.Style != nil {
			para.Style = p.Properties.Style.Val
		}
		if p.Properties.Justification != nil {
			para.Alignment = p.Properties.Justification.Val
		}
	}

	var text strings.Builder
	for _, child := range p.Children {
		run, ok := child.(*godocx.Run)
		if !ok {
			continue
		}
		r := mapRun(run)
		if r.Text == "" {
			continue
		}
		text.WriteString(r.Text)
		para.Runs = append(para.Runs, r)
	}
	para.Text = text.String()
	return para
}

// mapRun flattens a go-docx run into text plus character formatting.
func mapRun(run *godocx.Run) types.Run {
	r := types.Run{}

	var text strings.Builder
	for _, child := range run.Children {
		if t, ok := child.(*godocx.Text); ok {
			text.WriteString(t.Text)
		}
	}
	r.Text = text.String()

	if rp := run.RunProperties; rp != nil {
		r.Bold = rp.Bold != nil
		r.Italic = rp.Italic != nil
		r.Underline = rp.Underline != nil && rp.Underline.Val != "none"
		if rp.Color != nil {
			r.Color = rp.Color.Val
		}
	}
	return r
}

// mapTable converts a go-docx table into rows of plain-text cells. Cell
// paragraphs are joined with newlines, matching how the renderer draws them.
func mapTable(t *godocx.Table) types.Table {
	tbl := types.Table{}
	for _, row := range t.TableRows {
		tr := types.TableRow{}
		for _, cell := range row.TableCells {
			var parts []string
			for _, p := range cell.Paragraphs {
				text := strings.TrimSpace(mapParagraph(p).Text)
				if text != "" {
					parts = append(parts, text)
				}
			}
			tr.Cells = append(tr.Cells, strings.Join(parts, "\n"))
		}
		if len(tr.Cells) > 0 {
			tbl.Rows = append(tbl.Rows, tr)
		}
	}
	return tbl
}

// fallbackTitle resolves the document title: core-properties title first,
// then the first non-empty paragraph.
func fallbackTitle(doc *types.Document) string {
	if doc.Metadata.Title != "" {
		return doc.Metadata.Title
	}
	for _, p := range doc.Paragraphs {
		if text := strings.TrimSpace(p.Text); text != "" {
			return text
		}
	}
	return ""
}
