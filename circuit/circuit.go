package circuit

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/junctions/cluster"
	"github.com/katalvlaran/junctions/mst"
	"github.com/katalvlaran/junctions/points"
	"github.com/katalvlaran/junctions/topk"
)

// Answer holds the result of both queries.
type Answer struct {
	Cluster    uint64
	Bottleneck uint64
}

// ClusterProduct connects the k nearest pairs of p and returns the product of
// the largest circuit sizes (three by default).
//
// Errors wrap topk.ErrInvalidK, cluster.ErrInvalidLargest or
// cluster.ErrInsufficientClusters.
func ClusterProduct(p *points.Points, k int, opts ...Option) (uint64, error) {
	o := buildOptions(opts)
	log := o.Logger.WithQuery("cluster")
	start := time.Now()

	edges, err := topk.Nearest(p, k, topk.WithWorkers(o.Workers))
	if err != nil {
		return 0, fmt.Errorf("circuit: select %d nearest pairs: %w", k, err)
	}

	res, err := cluster.Build(p, edges, cluster.WithLargest(o.Largest))
	if err != nil {
		return 0, fmt.Errorf("circuit: aggregate circuits: %w", err)
	}

	log.Debug("circuits joined",
		"points", p.Len(),
		"k", k,
		"edges", len(edges),
		"circuits", len(res.Sizes),
		"largest", res.Largest,
		"product", res.Product,
		"elapsed", time.Since(start),
	)

	return res.Product, nil
}

// BottleneckProduct builds the minimum spanning tree of p and returns the
// product of the x-coordinates of its heaviest edge's endpoints.
//
// Errors wrap mst.ErrTooFewPoints, mst.ErrUnknownMethod or ErrNegativeProduct.
func BottleneckProduct(p *points.Points, opts ...Option) (uint64, error) {
	o := buildOptions(opts)
	log := o.Logger.WithQuery("bottleneck")
	start := time.Now()

	res, err := mst.Compute(p, mst.WithMethod(o.Method))
	if err != nil {
		return 0, fmt.Errorf("circuit: spanning tree: %w", err)
	}

	prod := res.Product()
	if prod < 0 {
		return 0, fmt.Errorf("%w: %d × %d", ErrNegativeProduct, res.Endpoints[0].X, res.Endpoints[1].X)
	}

	log.Debug("bottleneck found",
		"points", p.Len(),
		"method", string(o.Method),
		"dist", res.Bottleneck.Dist,
		"u", res.Bottleneck.U,
		"v", res.Bottleneck.V,
		"product", prod,
		"elapsed", time.Since(start),
	)

	return uint64(prod), nil
}

// Solve runs ClusterProduct (with the configured connection budget) and
// BottleneckProduct concurrently. ctx is checked before each query starts;
// a running query is not interrupted. The first error wins.
func Solve(ctx context.Context, p *points.Points, opts ...Option) (Answer, error) {
	o := buildOptions(opts)

	var ans Answer
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		v, err := ClusterProduct(p, o.Connections, opts...)
		ans.Cluster = v
		return err
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		v, err := BottleneckProduct(p, opts...)
		ans.Bottleneck = v
		return err
	})
	if err := g.Wait(); err != nil {
		return Answer{}, err
	}

	return ans, nil
}
