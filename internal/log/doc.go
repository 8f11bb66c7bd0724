// Package log builds the structured logger used by the percolate CLI:
// log/slog with a tint handler, colour only when writing to a terminal.
package log
