package lattice

// State is the occupancy of a single site.
type State uint8

const (
	// Empty marks a vacant site.
	Empty State = iota
	// Occupied marks a site present in the percolating medium.
	Occupied
)

// Int returns the raw integer value used in analysis copies.
func (s State) Int() int { return int(s) }

// String implements fmt.Stringer.
func (s State) String() string {
	if s == Occupied {
		return "occupied"
	}
	return "empty"
}

// Coord addresses a site by row and column.
type Coord struct {
	Row, Col int
}

// Lattice is an immutable L×L square lattice of sites.
// sites is a row-major arena: sites[row*size+col].
type Lattice struct {
	size  int
	p     float64
	sites []State
}

// Frame is the hand-off to a heatmap renderer: a title and an integer grid
// where 0 = empty, 1 = occupied, and values ≥ 2 carry a burn time or a
// cluster label, depending on which analysis produced the frame.
type Frame struct {
	Title string
	Cells [][]int
}
