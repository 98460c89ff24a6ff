package stub

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"board-stubgen/internal/diagnostic"
)

// DefinitionHeader matches a declaration header line and captures the symbol
// name.
var DefinitionHeader = regexp.MustCompile(`^def ([^(]*)\(`)

// Generic maps generic symbol names to their declaration text.
// It is read-only once returned by a Parser.
type Generic struct {
	decls map[string]string
}

// Lookup returns the declaration for name.
func (g *Generic) Lookup(name string) (string, bool) {
	if g == nil {
		return "", false
	}

	decl, ok := g.decls[name]

	return decl, ok
}

// Names returns the declared symbol names in sorted order.
func (g *Generic) Names() []string {
	if g == nil {
		return nil
	}

	names := make([]string, 0, len(g.decls))
	for name := range g.decls {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Len returns the number of declared symbols.
func (g *Generic) Len() int {
	if g == nil {
		return 0
	}

	return len(g.decls)
}

// Parser splits a generic stub on definition headers.
type Parser struct {
	header *regexp.Regexp
}

// NewParser creates a Parser that recognizes headers with the given pattern.
// The pattern's first capture group must be the symbol name.
func NewParser(header *regexp.Regexp) *Parser {
	return &Parser{header: header}
}

// header records where a definition starts.
type header struct {
	line int
	name string
}

// ParseFile reads and parses the generic stub at path.
func (p *Parser) ParseFile(path string) (*Generic, diagnostic.Diagnostics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, diagnostic.Diagnostics{}, fmt.Errorf("reading generic stub %s: %w", path, err)
	}

	g, diags := p.Parse(data)
	for i := range diags.Warnings {
		diags.Warnings[i].File = path
	}

	return g, diags, nil
}

// Parse splits data into declarations. When two headers share a name the
// later span replaces the earlier one and a warning is recorded.
func (p *Parser) Parse(data []byte) (*Generic, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	lines := splitLines(string(data))

	var headers []header
	for i, line := range lines {
		m := p.header.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		headers = append(headers, header{line: i, name: m[1]})
	}

	g := &Generic{decls: make(map[string]string, len(headers))}
	for i, h := range headers {
		end := len(lines)
		if i+1 < len(headers) {
			end = headers[i+1].line
		}

		if _, dup := g.decls[h.name]; dup {
			diags.AddWarning(diagnostic.CodeDuplicateDefinition,
				fmt.Sprintf("definition of %q on line %d replaces an earlier one", h.name, h.line+1),
				"", "")
		}

		g.decls[h.name] = strings.Join(lines[h.line:end], "")
	}

	return g, diags
}

// splitLines splits s into lines that keep their terminators, so joining
// them reproduces s exactly.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}

	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}
