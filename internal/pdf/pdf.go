// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdf renders the document content model to PDF files through the
// fpdf layout library.
package pdf

import (
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/pdiddy/docpdf/pkg/types"
)

const (
	pageMargin  = 25.4 // 1 inch, in mm
	lineHeight  = 5.5
	titleSize   = 18
	headingSize = 14
	fontFamily  = "Helvetica"
)

// preset holds the rendering knobs a quality level controls.
type preset struct {
	bodySize float64
	compress bool
}

var presets = map[types.Quality]preset{
	types.QualityLow:    {bodySize: 10, compress: true},
	types.QualityMedium: {bodySize: 11, compress: true},
	types.QualityHigh:   {bodySize: 12, compress: false},
}

// Renderer writes Documents as A4 PDFs.
type Renderer struct {
	preset preset
}

// NewRenderer returns a renderer for the given quality preset. Unknown
// quality values fall back to high.
func NewRenderer(q types.Quality) *Renderer {
	p, ok := presets[q]
	if !ok {
		p = presets[types.QualityHigh]
	}
	return &Renderer{preset: p}
}

// Render lays out doc and writes the PDF to outPath.
func (r *Renderer) Render(doc *types.Document, outPath string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.preset.compress)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	setMetadata(pdf, doc)

	if doc.Title != "" {
		pdf.SetFont(fontFamily, "B", titleSize)
		pdf.MultiCell(0, 8, tr(doc.Title), "", "C", false)
		pdf.Ln(6)
	}

	for _, para := range doc.Paragraphs {
		r.renderParagraph(pdf, tr, para)
	}

	for _, tbl := range doc.Tables {
		r.renderTable(pdf, tr, tbl)
		pdf.Ln(4)
	}

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}

// setMetadata copies the source document properties into the PDF info
// dictionary.
func setMetadata(pdf *fpdf.Fpdf, doc *types.Document) {
	title := doc.Metadata.Title
	if title == "" {
		title = doc.Title
	}
	if title != "" {
		pdf.SetTitle(title, true)
	}
	if doc.Metadata.Author != "" {
		pdf.SetAuthor(doc.Metadata.Author, true)
	}
	if doc.Metadata.Subject != "" {
		pdf.SetSubject(doc.Metadata.Subject, true)
	}
	if doc.Metadata.Keywords != "" {
		pdf.SetKeywords(doc.Metadata.Keywords, true)
	}
	pdf.SetCreator("docpdf", true)
}

func (r *Renderer) renderParagraph(pdf *fpdf.Fpdf, tr func(string) string, para types.Paragraph) {
	if para.Heading() {
		pdf.SetFont(fontFamily, "B", headingSize)
		pdf.MultiCell(0, 7, tr(para.Text), "", "L", false)
		pdf.Ln(3)
		return
	}

	// Runs with distinct formatting are written fragment by fragment;
	// uniform paragraphs get a single wrapped cell with their alignment.
	if formatted(para.Runs) {
		for _, run := range para.Runs {
			pdf.SetFont(fontFamily, styleString(run), r.preset.bodySize)
			rc, gc, bc := colorRGB(run.Color)
			pdf.SetTextColor(rc, gc, bc)
			pdf.Write(lineHeight, tr(run.Text))
		}
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(lineHeight)
		pdf.Ln(2)
		return
	}

	pdf.SetFont(fontFamily, "", r.preset.bodySize)
	pdf.MultiCell(0, lineHeight, tr(para.Text), "", alignString(para.Alignment), false)
	pdf.Ln(2)
}

func (r *Renderer) renderTable(pdf *fpdf.Fpdf, tr func(string) string, tbl types.Table) {
	cols := tbl.Columns()
	if cols == 0 {
		return
	}

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colW := (pageW - left - right) / float64(cols)

	for i, row := range tbl.Rows {
		header := i == 0
		if header {
			pdf.SetFont(fontFamily, "B", r.preset.bodySize)
			pdf.SetFillColor(200, 200, 200)
		} else {
			pdf.SetFont(fontFamily, "", r.preset.bodySize-1)
			pdf.SetFillColor(255, 255, 255)
		}

		for c := 0; c < cols; c++ {
			text := ""
			if c < len(row.Cells) {
				text = strings.ReplaceAll(row.Cells[c], "\n", "; ")
			}
			pdf.CellFormat(colW, 7, fitCell(pdf, tr(text), colW), "1", 0, "L", header, 0, "")
		}
		pdf.Ln(-1)
	}
}

// formatted reports whether any run carries character formatting worth
// rendering fragment by fragment.
func formatted(runs []types.Run) bool {
	for _, r := range runs {
		if r.Bold || r.Italic || r.Underline || r.Color != "" {
			return true
		}
	}
	return false
}

// styleString maps run formatting to an fpdf font style string.
func styleString(r types.Run) string {
	var s strings.Builder
	if r.Bold {
		s.WriteByte('B')
	}
	if r.Italic {
		s.WriteByte('I')
	}
	if r.Underline {
		s.WriteByte('U')
	}
	return s.String()
}

// alignString maps source justification values to fpdf alignment codes.
func alignString(alignment string) string {
	switch strings.ToLower(alignment) {
	case "center":
		return "C"
	case "right", "end":
		return "R"
	case "both", "distribute":
		return "J"
	default:
		return "L"
	}
}

// colorRGB parses an RRGGBB hex color, defaulting to black.
func colorRGB(hex string) (r, g, b int) {
	if len(hex) != 6 {
		return 0, 0, 0
	}
	var rv, gv, bv int
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &rv, &gv, &bv); err != nil {
		return 0, 0, 0
	}
	return rv, gv, bv
}

// fitCell trims text to fit a single grid cell, appending an ellipsis when
// it was cut.
func fitCell(pdf *fpdf.Fpdf, text string, width float64) string {
	const pad = 2.0
	if pdf.GetStringWidth(text) <= width-pad {
		return text
	}
	for len(text) > 0 && pdf.GetStringWidth(text+"...") > width-pad {
		text = text[:len(text)-1]
	}
	return text + "..."
}
