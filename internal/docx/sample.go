// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"archive/zip"
	"fmt"
	"os"
)

// Parts of the built-in sample document. The body exercises every construct
// the parser maps: a styled heading, plain text, formatted runs, alignment,
// an empty paragraph, and a table.
const (
	sampleContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>
</Types>`

	samplePackageRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>
</Relationships>`

	sampleDocumentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"/>`

	sampleCoreProps = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/">
<dc:title>Conversion Sample</dc:title>
<dc:creator>docpdf</dc:creator>
</cp:coreProperties>`

	sampleDocument = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t>Sample Document</w:t></w:r></w:p>
<w:p><w:r><w:t>This paragraph carries plain body text through the conversion path.</w:t></w:r></w:p>
<w:p><w:r><w:rPr><w:b/></w:rPr><w:t xml:space="preserve">Bold</w:t></w:r><w:r><w:rPr><w:i/></w:rPr><w:t xml:space="preserve"> italic</w:t></w:r><w:r><w:rPr><w:color w:val="FF0000"/></w:rPr><w:t xml:space="preserve"> red</w:t></w:r></w:p>
<w:p/>
<w:p><w:pPr><w:jc w:val="center"/></w:pPr><w:r><w:t>Centered closing line</w:t></w:r></w:p>
<w:tbl>
<w:tr><w:tc><w:p><w:r><w:t>Item</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>Count</w:t></w:r></w:p></w:tc></w:tr>
<w:tr><w:tc><w:p><w:r><w:t>Pages</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>1</w:t></w:r></w:p></w:tc></w:tr>
</w:tbl>
</w:body>
</w:document>`
)

// WriteSampleDocument writes a small self-contained .docx to path. The test
// command converts it end to end to check an installation without any
// user-supplied input.
func WriteSampleDocument(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	parts := []struct {
		name string
		body string
	}{
		{"[Content_Types].xml", sampleContentTypes},
		{"_rels/.rels", samplePackageRels},
		{"word/_rels/document.xml.rels", sampleDocumentRels},
		{corePropsPart, sampleCoreProps},
		{"word/document.xml", sampleDocument},
	}

	w := zip.NewWriter(f)
	for _, part := range parts {
		pw, err := w.Create(part.name)
		if err != nil {
			f.Close()
			return fmt.Errorf("adding %s: %w", part.name, err)
		}
		if _, err := pw.Write([]byte(part.body)); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", part.name, err)
		}
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("finalizing %s: %w", path, err)
	}
	return f.Close()
}
