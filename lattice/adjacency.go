package lattice

// neighborOffsets lists 4-neighbour offsets in the order up, left, down, right.
var neighborOffsets = [4][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}

// Neighbors returns the in-bounds 4-neighbours of (i, j) on an L×L lattice,
// in the order (i-1,j), (i,j-1), (i+1,j), (i,j+1). Boundary sites have fewer
// neighbours; there is no wraparound.
// Complexity: O(1).
func Neighbors(i, j, size int) []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range neighborOffsets {
		r, c := i+d[0], j+d[1]
		if r < 0 || r >= size || c < 0 || c >= size {
			continue
		}
		out = append(out, Coord{Row: r, Col: c})
	}
	return out
}

// AppendNeighbors appends the row-major indices of the in-bounds 4-neighbours
// of idx to dst and returns the extended slice. Order matches Neighbors.
// Passing dst[:0] of capacity 4 makes the call allocation-free.
func AppendNeighbors(dst []int, idx, size int) []int {
	row, col := idx/size, idx%size
	if row > 0 {
		dst = append(dst, idx-size)
	}
	if col > 0 {
		dst = append(dst, idx-1)
	}
	if row < size-1 {
		dst = append(dst, idx+size)
	}
	if col < size-1 {
		dst = append(dst, idx+1)
	}
	return dst
}
