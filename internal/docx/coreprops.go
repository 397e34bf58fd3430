// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/docpdf/pkg/types"
)

const corePropsPart = "docProps/core.xml"

// coreProperties mirrors the docProps/core.xml part of an OOXML container.
// Element names match by local name, so the dc/cp/dcterms prefixes are
// irrelevant to decoding.
type coreProperties struct {
	XMLName  xml.Name `xml:"coreProperties"`
	Title    string   `xml:"title"`
	Creator  string   `xml:"creator"`
	Subject  string   `xml:"subject"`
	Keywords string   `xml:"keywords"`
	Created  string   `xml:"created"`
	Modified string   `xml:"modified"`
}

// readCoreProperties extracts document metadata from the docx zip container.
// A missing part is not an error; the returned metadata is simply empty.
func readCoreProperties(path string) (*types.Metadata, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening container %s: %w", path, err)
	}
	defer r.Close()

	meta := &types.Metadata{}
	for _, f := range r.File {
		if f.Name != corePropsPart {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", corePropsPart, err)
		}
		defer rc.Close()

		var props coreProperties
		if err := xml.NewDecoder(rc).Decode(&props); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", corePropsPart, err)
		}

		meta.Title = strings.TrimSpace(props.Title)
		meta.Author = strings.TrimSpace(props.Creator)
		meta.Subject = strings.TrimSpace(props.Subject)
		meta.Keywords = strings.TrimSpace(props.Keywords)
		if t, err := time.Parse(time.RFC3339, strings.TrimSpace(props.Created)); err == nil {
			meta.Created = t
		}
		if t, err := time.Parse(time.RFC3339, strings.TrimSpace(props.Modified)); err == nil {
			meta.Modified = t
		}
		return meta, nil
	}
	return meta, nil
}
