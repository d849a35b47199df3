package mst_test

import (
	"fmt"

	"github.com/katalvlaran/junctions/mst"
	"github.com/katalvlaran/junctions/points"
)

// ExamplePrim finds the widest gap on a line of four junction boxes.
func ExamplePrim() {
	p, _ := points.ParseString("0,0,0\n2,0,0\n9,0,0\n10,0,0\n")

	res, err := mst.Prim(p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Bottleneck.Dist, res.Endpoints[0].X, res.Endpoints[1].X, res.Product())
	// Output: 49 9 2 18
}

// ExampleKruskal runs the sort-and-union variant on the same line.
func ExampleKruskal() {
	p, _ := points.ParseString("0,0,0\n2,0,0\n9,0,0\n10,0,0\n")

	res, err := mst.Kruskal(p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Bottleneck.Dist, res.Product(), len(res.Edges))
	// Output: 49 18 3
}

func ExamplePrim_tooFewPoints() {
	p, _ := points.ParseString("1,2,3\n")
	_, err := mst.Prim(p)
	fmt.Println(err)
	// Output: mst: need at least two points
}
