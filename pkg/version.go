// Package tradedb loads trade and economic indicator extracts into a star
// schema and builds a precomputed dashboard document from it.
package tradedb

var (
	// Version of the tradedb, set by build flags.
	Version = "v0.1.0"

	// Build timestamp, set by build flags.
	Build = "n/a"
)
