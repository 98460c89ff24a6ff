package gen

import (
	"bytes"
	"fmt"
	"path"
	"text/template"

	"board-stubgen/internal/boards"
	"board-stubgen/internal/pins"
)

// StubFilename is the name of every generated board stub.
const StubFilename = "board.pyi"

// DefaultSiteURL is the prefix joined with a board's site path in the stub
// docstring.
const DefaultSiteURL = "https://circuitpython.org/boards/"

// GeneratorConfig holds configuration for stub generation.
type GeneratorConfig struct {
	// SiteURL is the board page prefix written into the docstring.
	SiteURL string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{SiteURL: DefaultSiteURL}
}

// Generator renders board stubs.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated stub file.
type GeneratedFile struct {
	// Filename is the slash-separated path relative to the output directory
	// (e.g., "0x239A/0x80F4/board.pyi").
	Filename string
	// Content is the rendered stub.
	Content []byte
}

// StubPath returns the output-relative path of the stub for a VID/PID pair.
func StubPath(vid, pid string) string {
	return path.Join(vid, pid, StubFilename)
}

// stubData holds all data needed for the board stub template.
type stubData struct {
	Imports     []string
	Description string
	SiteURL     string
	Pins        []pins.Declaration
	Generic     []pins.GenericDecl
}

// Generate renders the stub for one board from its extracted pins.
func (g *Generator) Generate(board boards.Board, res *pins.Result) (*GeneratedFile, error) {
	data := &stubData{
		Imports:     res.Imports,
		Description: board.Description(),
		SiteURL:     g.config.SiteURL + board.SitePath,
		Pins:        res.Pins,
		Generic:     res.Generic,
	}

	var buf bytes.Buffer
	if err := boardTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template for %s: %w", board.SitePath, err)
	}

	return &GeneratedFile{
		Filename: StubPath(board.Config.VID, board.Config.PID),
		Content:  buf.Bytes(),
	}, nil
}

// Template for the board stub. Each generic declaration is followed by an
// extra newline.

var boardTemplate = template.Must(template.New("board").Parse(`from __future__ import annotations
{{range .Imports}}import {{.}}
{{end}}"""
board {{.Description}}
{{.SiteURL}}
"""
{{range .Pins}}{{.Line}}{{end}}{{range .Generic}}{{.Text}}
{{end}}`))
