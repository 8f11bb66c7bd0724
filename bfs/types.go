package bfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/percolation/lattice"
)

// FirstBurnTime is the time assigned to the ignited first row. Values 0 and 1
// are taken by the raw occupancy (empty, occupied-unburned).
const FirstBurnTime = 2

// ErrLatticeNil is returned when Burn receives a nil lattice.
var ErrLatticeNil = errors.New("bfs: lattice is nil")

// Option configures Burn via functional arguments.
type Option func(*BurnOptions)

// BurnOptions holds parameters and callbacks for a burn.
type BurnOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnBurn is called when a site is ignited with its burn time.
	OnBurn func(row, col, t int)
}

// DefaultOptions returns BurnOptions with a background context and a
// no-op OnBurn hook.
func DefaultOptions() BurnOptions {
	return BurnOptions{
		Ctx:    context.Background(),
		OnBurn: func(int, int, int) {},
	}
}

// WithContext sets a custom context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BurnOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnBurn installs fn as the ignition hook. nil is ignored.
func WithOnBurn(fn func(row, col, t int)) Option {
	return func(o *BurnOptions) {
		if fn != nil {
			o.OnBurn = fn
		}
	}
}

// BurnResult is the outcome of the burning method on one lattice.
type BurnResult struct {
	// Spans reports whether the fire reached the last row.
	Spans bool

	// Rounds counts propagation rounds that ignited at least one site.
	// Igniting row 0 is not a round.
	Rounds int

	// Burned is the number of sites the fire reached.
	Burned int

	size  int
	times []int // row-major: 0 empty, 1 occupied-unburned, ≥2 burn time
}

// Size returns the edge length of the burned lattice.
func (r *BurnResult) Size() int { return r.size }

// TimeAt returns the state of (row, col) after the burn.
func (r *BurnResult) TimeAt(row, col int) int {
	return r.times[row*r.size+col]
}

// Times returns the burn-time grid as a fresh L×L copy.
func (r *BurnResult) Times() [][]int {
	return lattice.Reshape(r.times, r.size)
}

// Frame returns the burn-time grid with the given title.
func (r *BurnResult) Frame(title string) lattice.Frame {
	return lattice.Frame{Title: title, Cells: r.Times()}
}

// ShortestPath returns the number of sites on the shortest occupied path from
// row 0 to the last row (the chemical distance plus one), or -1 if the
// lattice does not span.
func (r *BurnResult) ShortestPath() int {
	if !r.Spans {
		return -1
	}
	best := -1
	last := r.times[(r.size-1)*r.size:]
	for _, t := range last {
		if t >= FirstBurnTime && (best < 0 || t < best) {
			best = t
		}
	}
	return best - FirstBurnTime + 1
}
