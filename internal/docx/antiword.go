// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/pdiddy/docpdf/pkg/types"
)

const binAntiword = "antiword"

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunOutput(name string, args ...string) ([]byte, error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunOutput(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

var defaultExec executor = &osExecutor{}

// LegacyParser reads binary .doc files by extracting their text with the
// antiword tool. The result carries plain paragraphs with no run formatting.
type LegacyParser struct {
	exec executor
}

// NewLegacyParser returns a parser for legacy .doc files.
func NewLegacyParser() *LegacyParser {
	return &LegacyParser{exec: defaultExec}
}

// Available reports whether the antiword binary exists on PATH.
func (l *LegacyParser) Available() bool {
	_, err := l.exec.LookPath(binAntiword)
	return err == nil
}

// Parse extracts the text of the .doc file at path. Paragraphs are split on
// blank lines, as antiword renders them.
func (l *LegacyParser) Parse(path string) (*types.Document, error) {
	if !l.Available() {
		return nil, fmt.Errorf("legacy .doc support requires %s on PATH", binAntiword)
	}

	out, err := l.exec.RunOutput(binAntiword, path)
	if err != nil {
		return nil, fmt.Errorf("running %s on %s: %w", binAntiword, path, err)
	}

	doc := &types.Document{}
	for _, block := range strings.Split(string(out), "\n\n") {
		text := strings.TrimSpace(block)
		if text == "" {
			continue
		}
		doc.Paragraphs = append(doc.Paragraphs, types.Paragraph{Text: text})
	}

	if len(doc.Paragraphs) == 0 {
		return nil, fmt.Errorf("%s produced no text for %s", binAntiword, path)
	}

	doc.Title = fallbackTitle(doc)
	return doc, nil
}
