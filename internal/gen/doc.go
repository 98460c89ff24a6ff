// Package gen renders and writes per-board Python stub files.
//
// A board stub is laid out as:
//   - the "from __future__ import annotations" directive
//   - sorted import lines required by the pin declarations
//   - a module docstring naming the board and its circuitpython.org page
//   - inferred pin declarations in pin table order
//   - generic declarations adopted from the hand-written board stub
//
// Stubs are written to <output>/<VID>/<PID>/board.pyi.
package gen
