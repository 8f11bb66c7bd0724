// Package report renders simulation results as Markdown: statistics tables
// for a single (L, p), sweep curves and size-distribution snapshots as plain
// tabular data, and occupancy / burn / label frames as fixed-width grids.
// Nothing here draws images; downstream plotting tools consume the tables.
package report
