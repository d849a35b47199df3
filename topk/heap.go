package topk

import "github.com/katalvlaran/junctions/points"

// Heap is a capacity-capped max-heap of edges keyed by Dist.
// The root always holds the largest retained distance.
type Heap struct {
	cap   int
	items []points.Edge
}

// NewHeap returns an empty heap retaining at most capacity edges.
// A capacity below 1 is treated as 1.
func NewHeap(capacity int) *Heap {
	if capacity < 1 {
		capacity = 1
	}
	return &Heap{
		cap:   capacity,
		items: make([]points.Edge, 0, capacity),
	}
}

// Len returns the number of retained edges.
func (h *Heap) Len() int { return len(h.items) }

// Cap returns the retention limit.
func (h *Heap) Cap() int { return h.cap }

// Max returns the retained edge with the largest distance.
func (h *Heap) Max() (points.Edge, bool) {
	if len(h.items) == 0 {
		return points.Edge{}, false
	}
	return h.items[0], true
}

// Offer inserts e while the heap is short of its cap, or replaces the current
// maximum when e is strictly closer. It reports whether e was retained.
func (h *Heap) Offer(e points.Edge) bool {
	if len(h.items) < h.cap {
		h.items = append(h.items, e)
		h.siftUp(len(h.items) - 1)
		return true
	}
	if e.Dist >= h.items[0].Dist {
		return false
	}
	h.items[0] = e
	h.siftDown(0)

	return true
}

// Edges returns the retained edges in heap order. The slice aliases the heap.
func (h *Heap) Edges() []points.Edge { return h.items }

func (h *Heap) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if h.items[i].Dist <= h.items[p].Dist {
			return
		}
		h.items[i], h.items[p] = h.items[p], h.items[i]
		i = p
	}
}

func (h *Heap) siftDown(i int) {
	n := len(h.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		if r := l + 1; r < n && h.items[r].Dist > h.items[l].Dist {
			best = r
		}
		if h.items[best].Dist <= h.items[i].Dist {
			return
		}
		h.items[i], h.items[best] = h.items[best], h.items[i]
		i = best
	}
}
