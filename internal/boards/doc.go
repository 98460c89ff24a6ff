// Package boards discovers CircuitPython board definitions and reads their
// USB identity from mpconfigboard.mk.
//
// A board is a directory matching ports/*/boards/*/ that holds both an
// mpconfigboard.mk and a pins.c. Boards without a pins.c, and boards whose
// manufacturer is excluded by policy, are skipped with an info diagnostic.
package boards
