// Package stubgen runs the board stub generation pipeline.
//
// The generic stub is parsed once; every discovered board is then processed
// in path order: its pin table is extracted, its stub written and its
// metadata record collected. metadata.json is written last. Boards are
// handled strictly one after another and the first I/O error stops the run,
// leaving stubs already written in place.
package stubgen
