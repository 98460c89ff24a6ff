// Package stub parses the hand-written generic board stub into per-symbol
// declarations.
//
// The generic stub is a Python stub file whose top-level functions each start
// with a "def name(" header. A symbol's declaration is the verbatim text from
// its header line up to, but not including, the next header line or the end
// of the file. Board stubs reuse these declarations for pins that share a name
// with a generic symbol.
package stub
