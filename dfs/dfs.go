package dfs

import (
	"github.com/katalvlaran/percolation/lattice"
)

// sizer encapsulates state during a sizing pass.
type sizer struct {
	lat     *lattice.Lattice
	opts    DFSOptions
	visited []bool
	stack   []int
	nbuf    []int
}

// MaxClusterSize returns the size of the largest 4-connected component of
// occupied sites, or 0 if the lattice has none.
func MaxClusterSize(lat *lattice.Lattice, opts ...Option) (int, error) {
	best := 0
	err := walk(lat, opts, func(size int) {
		if size > best {
			best = size
		}
	})
	if err != nil {
		return 0, err
	}
	return best, nil
}

// ComponentSizes returns the size of every component, ordered by the
// row-major position of the component's first site.
func ComponentSizes(lat *lattice.Lattice, opts ...Option) ([]int, error) {
	var sizes []int
	err := walk(lat, opts, func(size int) {
		sizes = append(sizes, size)
	})
	if err != nil {
		return nil, err
	}
	return sizes, nil
}

// walk starts a DFS from every unvisited occupied site in scan order and
// reports each component's size to emit.
func walk(lat *lattice.Lattice, opts []Option, emit func(size int)) error {
	if lat == nil {
		return ErrLatticeNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	s := &sizer{
		lat:     lat,
		opts:    o,
		visited: make([]bool, lat.Len()),
		nbuf:    make([]int, 0, 4),
	}
	for idx := 0; idx < lat.Len(); idx++ {
		if s.visited[idx] || !lat.OccupiedAt(idx) {
			continue
		}
		select {
		case <-s.opts.Ctx.Done():
			return s.opts.Ctx.Err()
		default:
		}
		emit(s.component(idx))
	}
	return nil
}

// component runs an explicit-stack DFS from root and returns the number of
// sites reached. Sites are marked visited when pushed, so each is pushed once.
func (s *sizer) component(root int) int {
	size := s.lat.Size()
	s.visited[root] = true
	s.stack = append(s.stack[:0], root)
	count := 0
	for len(s.stack) > 0 {
		u := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		count++

		s.nbuf = lattice.AppendNeighbors(s.nbuf[:0], u, size)
		for _, v := range s.nbuf {
			if !s.visited[v] && s.lat.OccupiedAt(v) {
				s.visited[v] = true
				s.stack = append(s.stack, v)
			}
		}
	}
	return count
}
