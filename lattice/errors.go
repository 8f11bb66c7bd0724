package lattice

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is the umbrella error for rejected lattice parameters.
	ErrInvalidParameter = errors.New("lattice: invalid parameter")

	// ErrInvalidSize indicates a non-positive edge length L.
	ErrInvalidSize = fmt.Errorf("%w: size must be positive", ErrInvalidParameter)

	// ErrInvalidProbability indicates an occupation probability outside [0,1].
	ErrInvalidProbability = fmt.Errorf("%w: probability must be within [0,1]", ErrInvalidParameter)

	// ErrNonSquare indicates a grid whose rows do not form an L×L square.
	ErrNonSquare = fmt.Errorf("%w: grid must be square", ErrInvalidParameter)

	// ErrInvalidSite indicates a grid value other than Empty or Occupied.
	ErrInvalidSite = fmt.Errorf("%w: site value must be 0 or 1", ErrInvalidParameter)
)
