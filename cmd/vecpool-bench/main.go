package main

import (
	"flag"
	"fmt"
	"math"
	"testing"

	"github.com/lixenwraith/vecpool/pool"
	"github.com/lixenwraith/vecpool/vmath"
)

var (
	vectorsFlag = flag.Int("vectors", 64, "Scratch vectors per simulated frame")
	poolFlag    = flag.Int("pool", 64, "Initial pool size")
	spikeFlag   = flag.Int("spike", 8, "Extra vectors in the spike frame of the growth trace")
)

// sink defeats dead-code elimination of frame results
var sink float64

// === FRAME WORKLOADS ===

// pooledFrame mirrors the demo's kinematics: direction, displacement, accumulated offset
func pooledFrame(p *pool.VectorPool, n int) float64 {
	p.Clear()
	acc := p.Get(0, 0)
	for i := 0; i < n; i++ {
		dir := p.FromAngle(float64(i) * 0.1)
		acc.Add(dir.Scale(1.5))
	}
	return acc.X + acc.Y
}

// heapFrame does the same math with a fresh allocation per vector
func heapFrame(n int) float64 {
	acc := newHeapVector(0, 0)
	for i := 0; i < n; i++ {
		v := vmath.FromAngle(float64(i) * 0.1)
		dir := newHeapVector(v.X, v.Y)
		acc.Add(dir.Scale(1.5))
	}
	return acc.X + acc.Y
}

//go:noinline
func newHeapVector(x, y float64) *vmath.Vector2D {
	return &vmath.Vector2D{X: x, Y: y}
}

// === ACCURACY VERIFICATION ===

func verifyEquivalence(p *pool.VectorPool, n int) {
	fmt.Println("=== Result Equivalence ===")
	pooled := pooledFrame(p, n)
	heap := heapFrame(n)
	fmt.Printf("  pooled %.12f heap %.12f delta %.3g\n", pooled, heap, math.Abs(pooled-heap))
	fmt.Println()
}

// traceGrowth shows grow-by-one capacity past the pre-allocation
func traceGrowth(initial, spike int) {
	fmt.Println("=== Growth Trace ===")
	p := pool.New(initial)
	for i := 0; i < initial+spike; i++ {
		p.Get(0, 0)
		if i >= initial-1 {
			fmt.Printf("  live %4d cap %4d\n", p.Live(), p.Cap())
		}
	}
	p.Clear()
	fmt.Printf("  after clear: live %d cap %d peak %d\n", p.Live(), p.Cap(), p.Peak())
	fmt.Println()
}

func report(name string, r testing.BenchmarkResult) {
	fmt.Printf("  %-8s %10d ns/frame %6d allocs/frame %8d B/frame\n",
		name, r.NsPerOp(), r.AllocsPerOp(), r.AllocedBytesPerOp())
}

func main() {
	flag.Parse()

	fmt.Println("vecpool Frame Allocation Benchmark")
	fmt.Println("==================================")
	fmt.Println()

	traceGrowth(*poolFlag, *spikeFlag)
	verifyEquivalence(pool.New(*poolFlag), *vectorsFlag)

	fmt.Printf("=== Running Benchmarks (%d vectors/frame) ===\n", *vectorsFlag)
	n := *vectorsFlag

	pooled := testing.Benchmark(func(b *testing.B) {
		p := pool.New(*poolFlag)
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			sink = pooledFrame(p, n)
		}
	})
	heap := testing.Benchmark(func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sink = heapFrame(n)
		}
	})

	report("pooled", pooled)
	report("heap", heap)
}
