// Package metadata collects one record per generated board and writes them
// to metadata.json as a single JSON array.
package metadata
