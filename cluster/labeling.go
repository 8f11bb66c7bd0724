package cluster

import (
	"slices"

	"github.com/katalvlaran/percolation/lattice"
)

// FirstLabel is the label of the first cluster met in scan order.
const FirstLabel = 2

// Labeling is the cluster partition of one lattice.
// labels is row-major: 0 for empty sites, otherwise the cluster label.
// sizes[k-FirstLabel] holds the size of cluster k.
type Labeling struct {
	size   int
	labels []int
	sizes  []int
}

// Label assigns every occupied site of lat a cluster label.
// The lattice is not modified.
// Time: O(L²). Memory: O(L²).
func Label(lat *lattice.Lattice) (*Labeling, error) {
	if lat == nil {
		return nil, ErrLatticeNil
	}

	size := lat.Size()
	labels := lat.Cells()
	occupied := lattice.Occupied.Int()
	var sizes []int
	queue := make([]int, 0, size)
	nbuf := make([]int, 0, 4)

	k := FirstLabel
	for i0 := range labels {
		if labels[i0] != occupied {
			continue
		}
		// flood cluster k from i0
		labels[i0] = k
		count := 0
		queue = append(queue[:0], i0)
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			count++
			nbuf = lattice.AppendNeighbors(nbuf[:0], u, size)
			for _, v := range nbuf {
				if labels[v] == occupied {
					labels[v] = k
					queue = append(queue, v)
				}
			}
		}
		sizes = append(sizes, count)
		k++
	}

	return &Labeling{size: size, labels: labels, sizes: sizes}, nil
}

// Size returns the edge length of the labeled lattice.
func (lb *Labeling) Size() int { return lb.size }

// Count returns the number of clusters.
func (lb *Labeling) Count() int { return len(lb.sizes) }

// Sizes returns cluster sizes in label order (FirstLabel first).
func (lb *Labeling) Sizes() []int {
	return slices.Clone(lb.sizes)
}

// SizeOf returns the size of cluster label, or 0 if no such cluster exists.
func (lb *Labeling) SizeOf(label int) int {
	i := label - FirstLabel
	if i < 0 || i >= len(lb.sizes) {
		return 0
	}
	return lb.sizes[i]
}

// SizeByLabel returns the mapping label → size.
func (lb *Labeling) SizeByLabel() map[int]int {
	m := make(map[int]int, len(lb.sizes))
	for i, s := range lb.sizes {
		m[i+FirstLabel] = s
	}
	return m
}

// Max returns the size of the largest cluster, 0 for an empty lattice.
func (lb *Labeling) Max() int {
	best := 0
	for _, s := range lb.sizes {
		if s > best {
			best = s
		}
	}
	return best
}

// Total returns the number of labeled sites; it equals the occupied count.
func (lb *Labeling) Total() int {
	n := 0
	for _, s := range lb.sizes {
		n += s
	}
	return n
}

// Histogram returns the number of clusters of each size.
func (lb *Labeling) Histogram() map[int]int {
	h := make(map[int]int)
	for _, s := range lb.sizes {
		h[s]++
	}
	return h
}

// LabelAt returns the label of (row, col), 0 if the site is empty.
func (lb *Labeling) LabelAt(row, col int) int {
	return lb.labels[row*lb.size+col]
}

// Labels returns the label grid as a fresh L×L copy.
func (lb *Labeling) Labels() [][]int {
	return lattice.Reshape(lb.labels, lb.size)
}

// Frame returns the label grid with the given title.
func (lb *Labeling) Frame(title string) lattice.Frame {
	return lattice.Frame{Title: title, Cells: lb.Labels()}
}

// SpanningLabels returns, in ascending order, the labels of clusters that
// contain a site in row 0 and a site in the last row.
func (lb *Labeling) SpanningLabels() []int {
	top := make(map[int]struct{})
	for _, l := range lb.labels[:lb.size] {
		if l >= FirstLabel {
			top[l] = struct{}{}
		}
	}
	var out []int
	seen := make(map[int]struct{})
	for _, l := range lb.labels[(lb.size-1)*lb.size:] {
		if _, ok := top[l]; !ok {
			continue
		}
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	slices.Sort(out)
	return out
}

// Spans reports whether some cluster connects the first and last rows.
func (lb *Labeling) Spans() bool {
	return len(lb.SpanningLabels()) > 0
}
