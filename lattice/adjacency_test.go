package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/percolation/lattice"
)

func TestNeighbors(t *testing.T) {
	cases := []struct {
		name string
		i, j int
		size int
		want []lattice.Coord
	}{
		{"interior", 1, 1, 3, []lattice.Coord{{0, 1}, {1, 0}, {2, 1}, {1, 2}}},
		{"top-left corner", 0, 0, 3, []lattice.Coord{{1, 0}, {0, 1}}},
		{"bottom-right corner", 2, 2, 3, []lattice.Coord{{1, 2}, {2, 1}}},
		{"top edge", 0, 1, 3, []lattice.Coord{{0, 0}, {1, 1}, {0, 2}}},
		{"single site", 0, 0, 1, []lattice.Coord{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, lattice.Neighbors(tc.i, tc.j, tc.size))
		})
	}
}

// TestAppendNeighbors_MatchesNeighbors checks the flat-index variant against
// the coordinate variant on every site of a small lattice.
func TestAppendNeighbors_MatchesNeighbors(t *testing.T) {
	const size = 4
	buf := make([]int, 0, 4)
	for idx := 0; idx < size*size; idx++ {
		buf = lattice.AppendNeighbors(buf[:0], idx, size)
		coords := lattice.Neighbors(idx/size, idx%size, size)
		if assert.Len(t, buf, len(coords)) {
			for k, c := range coords {
				assert.Equal(t, c.Row*size+c.Col, buf[k])
			}
		}
	}
}
