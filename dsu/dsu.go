package dsu

// DSU is a disjoint-set forest over [0, n). It is not safe for concurrent use.
type DSU struct {
	parent      []int
	sets        int
	countSets   bool
	compression Compression
}

// New returns a DSU with n singleton sets.
func New(n int, opts ...Option) *DSU {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	return &DSU{
		parent:      parent,
		sets:        n,
		countSets:   o.CountSets,
		compression: o.Compression,
	}
}

// Len returns the number of elements.
func (d *DSU) Len() int { return len(d.parent) }

// Sets returns the number of disjoint sets. ok is false when the DSU was
// built without WithSetCount.
func (d *DSU) Sets() (n int, ok bool) {
	if !d.countSets {
		return 0, false
	}
	return d.sets, true
}

// Find returns the representative of i's set, compressing the walked path.
func (d *DSU) Find(i int) int {
	if d.compression == FullPath {
		return d.findFull(i)
	}
	return d.findHalving(i)
}

func (d *DSU) findHalving(i int) int {
	for i != d.parent[i] {
		d.parent[i] = d.parent[d.parent[i]]
		i = d.parent[i]
	}

	return i
}

func (d *DSU) findFull(i int) int {
	root := i
	for root != d.parent[root] {
		root = d.parent[root]
	}
	for i != root {
		next := d.parent[i]
		d.parent[i] = root
		i = next
	}

	return root
}

// Union merges the sets holding i and j. It reports false when they were
// already joined, in which case nothing changes.
func (d *DSU) Union(i, j int) bool {
	ri, rj := d.Find(i), d.Find(j)
	if ri == rj {
		return false
	}
	d.parent[ri] = rj
	d.sets--

	return true
}

// Connected reports whether i and j share a set.
func (d *DSU) Connected(i, j int) bool {
	return d.Find(i) == d.Find(j)
}
