// Package diagnostic provides structured warnings and notices collected while
// generating board stubs.
//
// Nothing in a generation run is validated, so diagnostics never stop a run.
// They record why a board was left out or where a generic stub definition
// was shadowed by a later one:
//   - Boards skipped for a missing pins.c
//   - Boards dropped by manufacturer policy
//   - Duplicate definitions in the generic stub
package diagnostic
