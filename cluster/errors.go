package cluster

import "errors"

var (
	// ErrLatticeNil indicates Label received a nil lattice.
	ErrLatticeNil = errors.New("cluster: lattice is nil")
)
