package lattice

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// New builds an L×L lattice where each site is occupied independently iff
// rng.Float64() < p. A nil rng is replaced by a randomly seeded PCG source.
// Returns ErrInvalidSize for size <= 0 and ErrInvalidProbability for p
// outside [0,1]; no lattice is produced on error.
// Complexity: O(L²) time and memory.
func New(size int, p float64, rng *rand.Rand) (*Lattice, error) {
	if err := Validate(size, p); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	sites := make([]State, size*size)
	for i := range sites {
		if rng.Float64() < p {
			sites[i] = Occupied
		}
	}

	return &Lattice{size: size, p: p, sites: sites}, nil
}

// Validate reports whether (size, p) are acceptable construction parameters.
func Validate(size int, p float64) error {
	if size <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidProbability, p)
	}
	return nil
}

// FromGrid builds a lattice from a fixed square grid of 0/1 values.
// The input is copied. P reports the observed occupied fraction.
func FromGrid(grid [][]int) (*Lattice, error) {
	n := len(grid)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrInvalidSize)
	}
	sites := make([]State, n*n)
	occupied := 0
	for r, row := range grid {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonSquare, r, len(row), n)
		}
		for c, v := range row {
			switch v {
			case 0:
			case 1:
				sites[r*n+c] = Occupied
				occupied++
			default:
				return nil, fmt.Errorf("%w: got %d at (%d,%d)", ErrInvalidSite, v, r, c)
			}
		}
	}

	return &Lattice{size: n, p: float64(occupied) / float64(n*n), sites: sites}, nil
}

// Size returns the edge length L.
func (l *Lattice) Size() int { return l.size }

// P returns the occupation probability the lattice was drawn with.
func (l *Lattice) P() float64 { return l.p }

// Len returns the number of sites, L².
func (l *Lattice) Len() int { return len(l.sites) }

// InBounds reports whether (row, col) lies on the lattice.
func (l *Lattice) InBounds(row, col int) bool {
	return row >= 0 && row < l.size && col >= 0 && col < l.size
}

// Index maps (row, col) to its row-major index.
func (l *Lattice) Index(row, col int) int {
	return row*l.size + col
}

// Coordinate converts a row-major index back to (row, col).
func (l *Lattice) Coordinate(idx int) (row, col int) {
	return idx / l.size, idx % l.size
}

// State returns the state of (row, col); out-of-bounds sites read as Empty.
func (l *Lattice) State(row, col int) State {
	if !l.InBounds(row, col) {
		return Empty
	}
	return l.sites[l.Index(row, col)]
}

// Occupied reports whether (row, col) is an occupied site.
func (l *Lattice) Occupied(row, col int) bool {
	return l.State(row, col) == Occupied
}

// OccupiedAt reports whether the site at row-major index idx is occupied.
func (l *Lattice) OccupiedAt(idx int) bool {
	return l.sites[idx] == Occupied
}

// OccupiedCount returns the number of occupied sites.
func (l *Lattice) OccupiedCount() int {
	n := 0
	for _, s := range l.sites {
		if s == Occupied {
			n++
		}
	}
	return n
}

// Cells returns a fresh row-major integer copy of the occupancy
// (0 = empty, 1 = occupied). Analyses mutate this copy, never the lattice.
func (l *Lattice) Cells() []int {
	cells := make([]int, len(l.sites))
	for i, s := range l.sites {
		cells[i] = int(s)
	}
	return cells
}

// Grid returns the occupancy as a fresh L×L integer grid.
func (l *Lattice) Grid() [][]int {
	return Reshape(l.Cells(), l.size)
}

// Frame returns the occupancy grid with the given title.
func (l *Lattice) Frame(title string) Frame {
	return Frame{Title: title, Cells: l.Grid()}
}

// Reshape splits a row-major slice of length size² into size rows.
// The rows are copies; cells is not retained.
func Reshape(cells []int, size int) [][]int {
	grid := make([][]int, size)
	for r := range grid {
		grid[r] = make([]int, size)
		copy(grid[r], cells[r*size:(r+1)*size])
	}
	return grid
}
