package diagnostic

import (
	"fmt"
	"strings"
)

// Diagnostic codes reported by the generator.
const (
	CodeDuplicateDefinition = "STUB_DUPLICATE_DEFINITION"
	CodeMissingPins         = "BOARD_MISSING_PINS"
	CodeExcludedBoard       = "BOARD_EXCLUDED"
)

// Diagnostics holds all diagnostic information from a generation run.
type Diagnostics struct {
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Board identifies which board this relates to (if any).
	Board string
	// File is the input file this relates to (if any).
	File string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, board, file string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Board:    board,
		File:     file,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, board, file string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
		Board:    board,
		File:     file,
	})
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Len returns the total number of diagnostics of every severity.
func (d *Diagnostics) Len() int {
	return len(d.Warnings) + len(d.Infos)
}

// All returns every diagnostic, most severe first.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, d.Len())
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// WithCode returns the diagnostics carrying the given code.
func (d *Diagnostics) WithCode(code string) []Diagnostic {
	var out []Diagnostic

	for _, diag := range d.All() {
		if diag.Code == code {
			out = append(out, diag)
		}
	}

	return out
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Board != "" {
		prefix = append(prefix, "["+d.Board+"]")
	}

	if d.File != "" {
		prefix = append(prefix, d.File)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
