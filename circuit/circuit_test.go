package circuit_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/katalvlaran/junctions/circuit"
	"github.com/katalvlaran/junctions/cluster"
	"github.com/katalvlaran/junctions/mst"
	"github.com/katalvlaran/junctions/points"
	"github.com/katalvlaran/junctions/topk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loadExample parses the 20-point reference layout.
func loadExample(t *testing.T) *points.Points {
	t.Helper()
	f, err := os.Open("testdata/example.txt")
	require.NoError(t, err)
	defer f.Close()

	p, err := points.Parse(f)
	require.NoError(t, err)
	require.Equal(t, 20, p.Len())

	return p
}

// TestClusterProduct_Example joins the ten closest pairs: circuits 5, 4, 2 → 40.
func TestClusterProduct_Example(t *testing.T) {
	p := loadExample(t)
	for _, w := range []int{1, 4} {
		got, err := circuit.ClusterProduct(p, 10, circuit.WithWorkers(w))
		require.NoError(t, err)
		assert.Equal(t, uint64(40), got, "workers=%d", w)
	}
}

// TestBottleneckProduct_Example expects 216 × 117 for both MST methods.
func TestBottleneckProduct_Example(t *testing.T) {
	p := loadExample(t)
	for _, m := range []mst.Method{mst.MethodPrim, mst.MethodKruskal} {
		got, err := circuit.BottleneckProduct(p, circuit.WithMethod(m))
		require.NoError(t, err)
		assert.Equal(t, uint64(25272), got, "method=%s", m)
	}
}

// TestSolve_Example runs both queries concurrently.
func TestSolve_Example(t *testing.T) {
	p := loadExample(t)
	ans, err := circuit.Solve(context.Background(), p, circuit.WithConnections(10), circuit.WithWorkers(2))
	require.NoError(t, err)
	assert.Equal(t, circuit.Answer{Cluster: 40, Bottleneck: 25272}, ans)
}

// TestQueries_Idempotent reruns both queries on identical input.
func TestQueries_Idempotent(t *testing.T) {
	p := loadExample(t)
	for i := 0; i < 3; i++ {
		c, err := circuit.ClusterProduct(p, 10)
		require.NoError(t, err)
		b, err := circuit.BottleneckProduct(p)
		require.NoError(t, err)
		assert.Equal(t, uint64(40), c)
		assert.Equal(t, uint64(25272), b)
	}
}

// TestClusterProduct_Errors propagates typed failures.
func TestClusterProduct_Errors(t *testing.T) {
	p := loadExample(t)

	_, err := circuit.ClusterProduct(p, 0)
	assert.ErrorIs(t, err, topk.ErrInvalidK)

	// Every pair joined: one circuit only.
	_, err = circuit.ClusterProduct(p, p.PairCount())
	assert.ErrorIs(t, err, cluster.ErrInsufficientClusters)
	var tf *cluster.TooFewError
	require.ErrorAs(t, err, &tf)
	assert.Equal(t, 1, tf.Got)

	_, err = circuit.ClusterProduct(p, 10, circuit.WithLargest(0))
	assert.ErrorIs(t, err, cluster.ErrInvalidLargest)
}

// TestBottleneckProduct_Errors covers too few points, unknown methods and negative products.
func TestBottleneckProduct_Errors(t *testing.T) {
	one, err := points.ParseString("1,2,3")
	require.NoError(t, err)
	_, err = circuit.BottleneckProduct(one)
	assert.ErrorIs(t, err, mst.ErrTooFewPoints)

	p := loadExample(t)
	_, err = circuit.BottleneckProduct(p, circuit.WithMethod("greedy"))
	assert.ErrorIs(t, err, mst.ErrUnknownMethod)

	neg, err := points.ParseString("-5,0,0\n3,0,0")
	require.NoError(t, err)
	_, err = circuit.BottleneckProduct(neg)
	assert.ErrorIs(t, err, circuit.ErrNegativeProduct)
}

// TestSolve_Errors surfaces the failing query and honours a cancelled context.
func TestSolve_Errors(t *testing.T) {
	one, err := points.ParseString("1,2,3")
	require.NoError(t, err)
	_, err = circuit.Solve(context.Background(), one)
	assert.Error(t, err)

	p := loadExample(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = circuit.Solve(ctx, p, circuit.WithConnections(10))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestLogger_Records checks the DEBUG record emitted per query.
func TestLogger_Records(t *testing.T) {
	p := loadExample(t)
	var buf bytes.Buffer
	log := circuit.NewTextLogger(&buf, slog.LevelDebug)

	_, err := circuit.ClusterProduct(p, 10, circuit.WithLogger(log))
	require.NoError(t, err)
	_, err = circuit.BottleneckProduct(p, circuit.WithLogger(log))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "query=cluster")
	assert.Contains(t, out, "product=40")
	assert.Contains(t, out, "query=bottleneck")
	assert.Contains(t, out, "product=25272")
}

// TestLogger_InfoHidesDebug keeps per-query records out of INFO output.
func TestLogger_InfoHidesDebug(t *testing.T) {
	p := loadExample(t)
	var buf bytes.Buffer

	_, err := circuit.ClusterProduct(p, 10, circuit.WithLogger(circuit.NewTextLogger(&buf, slog.LevelInfo)))
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
