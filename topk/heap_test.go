package topk_test

import (
	"testing"

	"github.com/katalvlaran/junctions/points"
	"github.com/katalvlaran/junctions/topk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHeap_Offer checks the fill phase, strict replacement and the max invariant.
func TestHeap_Offer(t *testing.T) {
	h := topk.NewHeap(3)
	_, ok := h.Max()
	assert.False(t, ok)

	for _, d := range []int64{7, 3, 9} {
		assert.True(t, h.Offer(points.Edge{Dist: d}))
	}
	require.Equal(t, 3, h.Len())
	top, _ := h.Max()
	assert.Equal(t, int64(9), top.Dist)

	assert.False(t, h.Offer(points.Edge{Dist: 9}), "equal to max is rejected")
	assert.False(t, h.Offer(points.Edge{Dist: 12}))
	assert.True(t, h.Offer(points.Edge{Dist: 1}))

	top, _ = h.Max()
	assert.Equal(t, int64(7), top.Dist)
	assert.ElementsMatch(t, []int64{1, 3, 7}, []int64{h.Edges()[0].Dist, h.Edges()[1].Dist, h.Edges()[2].Dist})
}

// TestHeap_MinimumCap clamps a non-positive capacity to one.
func TestHeap_MinimumCap(t *testing.T) {
	h := topk.NewHeap(0)
	assert.Equal(t, 1, h.Cap())
	h.Offer(points.Edge{Dist: 4})
	h.Offer(points.Edge{Dist: 2})
	h.Offer(points.Edge{Dist: 8})
	top, ok := h.Max()
	require.True(t, ok)
	assert.Equal(t, int64(2), top.Dist)
}

// TestHeap_Stream keeps the k smallest of a long descending stream.
func TestHeap_Stream(t *testing.T) {
	h := topk.NewHeap(5)
	for d := int64(100); d > 0; d-- {
		h.Offer(points.Edge{Dist: d})
	}
	got := make([]int64, 0, h.Len())
	for _, e := range h.Edges() {
		got = append(got, e.Dist)
	}
	assert.ElementsMatch(t, []int64{1, 2, 3, 4, 5}, got)
}
