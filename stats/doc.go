// Package stats reduces per-trial percolation measurements into aggregate
// statistics for one (L, p) point and into curves across a p sweep.
//
// Aggregate is a commutative, associative accumulator: it stores only
// integer sums and a size histogram, so merging partial aggregates in any
// order yields identical Statistics. Worker goroutines each own an Aggregate
// and the runner merges them at the end.
//
// Errors:
//
//   - ErrMismatchedAggregate: Merge of aggregates for different (L, p).
//   - ErrInvalidBase, ErrInvalidSites: bad LogBins arguments.
package stats
