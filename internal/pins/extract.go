package pins

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"regexp"
	"sort"
	"strings"

	"board-stubgen/internal/stub"
)

// TableEntry matches a pin table entry of the form
// { MP_ROM_QSTR(MP_QSTR_<name>), MP_ROM_PTR(<value>) }.
var TableEntry = regexp.MustCompile(
	`^\s*\{\s*MP_ROM_QSTR\(MP_QSTR_(?P<name>[^)]*)\)\s*,\s*MP_ROM_PTR\((?P<value>[^)]*)\).*`)

// busNamespace is imported whenever an adopted generic declaration uses it.
const busNamespace = "busio"

// Declaration is an inferred pin declaration.
type Declaration struct {
	Name  string
	Value string
	Kind  Kind
}

// Line renders the declaration as a stub line.
func (d Declaration) Line() string {
	return fmt.Sprintf("%s: %s = ...\n", d.Name, d.Kind.TypeName())
}

// GenericDecl is a generic stub declaration adopted by a board.
type GenericDecl struct {
	Name string
	Text string
}

// Result is everything a board stub needs from its pin table.
type Result struct {
	// Imports holds the required namespaces, sorted and unique.
	Imports []string
	// Pins holds inferred declarations in table order.
	Pins []Declaration
	// Generic holds adopted generic declarations in the order their names
	// first appeared in the table.
	Generic []GenericDecl
}

// ImportLines renders Imports as import statements.
func (r *Result) ImportLines() string {
	var b strings.Builder
	for _, ns := range r.Imports {
		b.WriteString("import " + ns + "\n")
	}

	return b.String()
}

// DeclarationLines renders Pins as stub lines.
func (r *Result) DeclarationLines() string {
	var b strings.Builder
	for _, d := range r.Pins {
		b.WriteString(d.Line())
	}

	return b.String()
}

// Extractor turns pin tables into stub declarations.
type Extractor struct {
	entry   *regexp.Regexp
	generic *stub.Generic
}

// NewExtractor creates an Extractor. The entry pattern must have "name" and
// "value" capture groups; generic may be nil.
func NewExtractor(entry *regexp.Regexp, generic *stub.Generic) *Extractor {
	return &Extractor{entry: entry, generic: generic}
}

// ExtractFile reads the pin table at name in fsys.
func (e *Extractor) ExtractFile(fsys fs.FS, name string) (*Result, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	res, err := e.Extract(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return res, nil
}

// Extract scans a pin table. Lines that are not table entries are ignored.
func (e *Extractor) Extract(r io.Reader) (*Result, error) {
	nameIdx := e.entry.SubexpIndex("name")
	valueIdx := e.entry.SubexpIndex("value")

	res := &Result{}
	imports := make(map[string]struct{})
	adopted := make(map[string]int)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		m := e.entry.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}

		name, value := m[nameIdx], m[valueIdx]

		if text, ok := e.generic.Lookup(name); ok {
			if i, seen := adopted[name]; seen {
				res.Generic[i].Text = text
			} else {
				adopted[name] = len(res.Generic)
				res.Generic = append(res.Generic, GenericDecl{Name: name, Text: text})
			}

			if strings.Contains(text, busNamespace) {
				imports[busNamespace] = struct{}{}
			}

			continue
		}

		kind := Classify(value)
		imports[kind.Namespace()] = struct{}{}
		res.Pins = append(res.Pins, Declaration{Name: name, Value: value, Kind: kind})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading pin table: %w", err)
	}

	for ns := range imports {
		res.Imports = append(res.Imports, ns)
	}

	sort.Strings(res.Imports)

	return res, nil
}
