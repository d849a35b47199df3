package dsu_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/junctions/dsu"
)

// benchmarkUnions runs 5000 random unions over 1000 elements per iteration.
func benchmarkUnions(b *testing.B, c dsu.Compression) {
	r := rand.New(rand.NewSource(1))
	pairs := make([][2]int, 5000)
	for i := range pairs {
		pairs[i] = [2]int{r.Intn(1000), r.Intn(1000)}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d := dsu.New(1000, dsu.WithCompression(c))
		for _, p := range pairs {
			d.Union(p[0], p[1])
		}
	}
}

func BenchmarkUnion_Halving(b *testing.B)  { benchmarkUnions(b, dsu.Halving) }
func BenchmarkUnion_FullPath(b *testing.B) { benchmarkUnions(b, dsu.FullPath) }
