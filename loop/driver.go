// Package loop drives per-frame updates that draw scratch vectors from a pool
//
// The Driver owns its VectorPool exclusively. Each Step clears the pool before
// running the update, so vectors obtained in one frame must not be retained into
// the next.
package loop

import (
	"log"
	"time"

	"github.com/lixenwraith/vecpool/pool"
)

// DefaultMaxDelta bounds dt after stalls (debugger, suspended terminal)
const DefaultMaxDelta = 100 * time.Millisecond

// Frame is the per-step view handed to update functions
type Frame struct {
	Index uint64
	Delta time.Duration
	Pool  *pool.VectorPool
}

// Seconds returns Delta as float seconds for kinematics
func (f Frame) Seconds() float64 {
	return f.Delta.Seconds()
}

// Stats summarizes pool behavior across frames
type Stats struct {
	Frames   uint64
	Cap      int
	PeakLive int
	LastLive int
	// Grows counts frames whose allocations extended pool capacity
	Grows uint64
}

// Driver runs frame steps against an exclusively owned pool
type Driver struct {
	pool     *pool.VectorPool
	clock    Clock
	maxDelta time.Duration
	last     time.Time
	started  bool
	stats    Stats
}

// NewDriver creates a driver with a pool of initialPoolSize slots
// A nil clock uses SystemClock, non-positive maxDelta uses DefaultMaxDelta
func NewDriver(initialPoolSize int, clock Clock, maxDelta time.Duration) *Driver {
	if clock == nil {
		clock = SystemClock{}
	}
	if maxDelta <= 0 {
		maxDelta = DefaultMaxDelta
	}
	p := pool.New(initialPoolSize)
	return &Driver{
		pool:     p,
		clock:    clock,
		maxDelta: maxDelta,
		stats:    Stats{Cap: p.Cap()},
	}
}

// Step runs one frame: clear pool, compute dt, update, record stats
// First frame has zero Delta
func (d *Driver) Step(update func(f Frame)) {
	d.pool.Clear()

	now := d.clock.Now()
	var dt time.Duration
	if d.started {
		dt = now.Sub(d.last)
		if dt < 0 {
			dt = 0
		}
		if dt > d.maxDelta {
			dt = d.maxDelta
		}
	}
	d.last = now
	d.started = true

	capBefore := d.pool.Cap()
	if update != nil {
		update(Frame{Index: d.stats.Frames, Delta: dt, Pool: d.pool})
	}

	d.stats.Frames++
	d.stats.LastLive = d.pool.Live()
	d.stats.PeakLive = d.pool.Peak()
	if c := d.pool.Cap(); c > capBefore {
		d.stats.Grows++
		d.stats.Cap = c
		log.Printf("loop: frame %d grew vector pool %d -> %d", d.stats.Frames-1, capBefore, c)
	}
}

// Pool exposes the owned pool for diagnostics
func (d *Driver) Pool() *pool.VectorPool {
	return d.pool
}

// Stats returns a snapshot of frame statistics
func (d *Driver) Stats() Stats {
	return d.stats
}
