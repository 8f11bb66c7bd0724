package bfs

import (
	"github.com/katalvlaran/percolation/lattice"
)

// walker encapsulates mutable burn state.
type walker struct {
	opts     BurnOptions
	size     int
	times    []int
	frontier []int
	next     []int
	nbuf     []int
	res      *BurnResult
}

// Burn runs the burning method on lat. The lattice itself is never modified.
// Returns ErrLatticeNil for a nil lattice, or the context error if the burn
// is cancelled.
func Burn(lat *lattice.Lattice, opts ...Option) (*BurnResult, error) {
	if lat == nil {
		return nil, ErrLatticeNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	size := lat.Size()
	w := &walker{
		opts:     o,
		size:     size,
		times:    lat.Cells(),
		frontier: make([]int, 0, size),
		nbuf:     make([]int, 0, 4),
		res:      &BurnResult{size: size},
	}

	w.ignite()
	if err := w.loop(); err != nil {
		return nil, err
	}

	w.res.times = w.times
	for _, t := range w.times[(size-1)*size:] {
		if t > lattice.Occupied.Int() {
			w.res.Spans = true
			break
		}
	}
	return w.res, nil
}

// ignite sets every occupied site of row 0 to FirstBurnTime.
func (w *walker) ignite() {
	for col := 0; col < w.size; col++ {
		if w.times[col] == lattice.Occupied.Int() {
			w.burn(col, FirstBurnTime)
			w.frontier = append(w.frontier, col)
		}
	}
}

// loop advances the fire one round per iteration: every site of the current
// frontier ignites its unburned occupied neighbours, which become the next
// frontier. It stops when a round ignites nothing.
func (w *walker) loop() error {
	t := FirstBurnTime
	for len(w.frontier) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		w.next = w.next[:0]
		for _, idx := range w.frontier {
			w.nbuf = lattice.AppendNeighbors(w.nbuf[:0], idx, w.size)
			for _, nb := range w.nbuf {
				if w.times[nb] != lattice.Occupied.Int() {
					continue
				}
				w.burn(nb, t+1)
				w.next = append(w.next, nb)
			}
		}
		if len(w.next) > 0 {
			w.res.Rounds++
		}
		w.frontier, w.next = w.next, w.frontier
		t++
	}
	return nil
}

// burn marks idx as burned at time t.
func (w *walker) burn(idx, t int) {
	w.times[idx] = t
	w.res.Burned++
	w.opts.OnBurn(idx/w.size, idx%w.size, t)
}
