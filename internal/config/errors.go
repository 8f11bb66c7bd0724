package config

import "errors"

// Configuration validation errors.
// Package-level sentinels let callers use errors.Is while the messages stay
// readable on the command line.
var (
	// ErrInvalidSize is returned when a lattice edge length is not positive.
	ErrInvalidSize = errors.New("invalid lattice size: must be positive")

	// ErrInvalidProbability is returned when an occupation probability is
	// outside [0,1].
	ErrInvalidProbability = errors.New("invalid probability: must be within [0,1]")

	// ErrInvalidTrials is returned when the trial count is not positive.
	ErrInvalidTrials = errors.New("invalid trial count: must be positive")

	// ErrInvalidWorkers is returned when the worker count is negative.
	// Zero selects one worker per CPU.
	ErrInvalidWorkers = errors.New("invalid worker count: must be non-negative")

	// ErrEmptySweep is returned when a sweep has no sizes or no probabilities.
	ErrEmptySweep = errors.New("empty sweep: at least one size and one probability are required")

	// ErrUnorderedSweep is returned when sweep values are not strictly increasing.
	ErrUnorderedSweep = errors.New("unordered sweep: values must be strictly increasing")

	// ErrInvalidRange is returned when a probability range has a non-positive
	// step, ends before it starts, or has too many points.
	ErrInvalidRange = errors.New("invalid probability range: need from <= to, step > 0 and a bounded point count")

	// ErrInvalidConvergence is returned when an enabled convergence criterion
	// has a non-positive batch, a window below 2, or a negative tolerance.
	ErrInvalidConvergence = errors.New("invalid convergence: batch must be positive, window at least 2, tolerance non-negative")

	// ErrInvalidBinBase is returned when the log bin base is not above 1.
	ErrInvalidBinBase = errors.New("invalid bin base: must be greater than 1")
)
