package dfs

import (
	"context"
	"errors"
)

// ErrLatticeNil is returned when a nil lattice is passed to a sizing call.
var ErrLatticeNil = errors.New("dfs: lattice is nil")

// Option configures a DFS sizing pass.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS sizing.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context
}

// DefaultOptions returns DFSOptions with a background context.
func DefaultOptions() DFSOptions {
	return DFSOptions{Ctx: context.Background()}
}

// WithContext returns an Option that sets the Context for the pass.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
