// Package pins extracts pin declarations from a board's pins.c.
//
// Each MP_ROM_QSTR/MP_ROM_PTR table entry becomes either an inferred
// declaration such as "LED: microcontroller.Pin = ..." or, when the pin name
// matches a generic stub symbol, the generic declaration verbatim.
package pins
