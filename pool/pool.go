// Package pool provides frame-scoped 2D vector allocation
//
// A VectorPool hands out scratch vectors during one frame and reclaims all of them
// with a single Clear at the frame boundary. Backing storage is allocated once and
// reused; capacity only grows.
//
// Caller contract: vectors returned by Get, Clone, FromAngle and FromSource are valid
// until the next Clear. Reading one after Clear is undefined, the pool does not guard
// it. A VectorPool is owned by a single frame loop and is not safe for concurrent use.
package pool

import (
	"fmt"

	"github.com/lixenwraith/vecpool/vmath"
)

// VectorPool partitions its slots into a live prefix [0, live) and a free suffix
type VectorPool struct {
	slots []*vmath.Vector2D
	live  int
	peak  int
}

// New creates a pool with initialPoolSize pre-allocated slots, negative size is treated as 0
func New(initialPoolSize int) *VectorPool {
	if initialPoolSize < 0 {
		initialPoolSize = 0
	}
	p := &VectorPool{
		slots: make([]*vmath.Vector2D, initialPoolSize),
	}
	// Pre-allocated slots share one backing array, growth slots are allocated singly
	backing := make([]vmath.Vector2D, initialPoolSize)
	for i := range backing {
		p.slots[i] = &backing[i]
	}
	return p
}

// Get returns a live vector set to (x, y)
// Grows capacity by exactly one slot when the pool is exhausted
func (p *VectorPool) Get(x, y float64) *vmath.Vector2D {
	if p.live == len(p.slots) {
		p.slots = append(p.slots, &vmath.Vector2D{})
	}
	v := p.slots[p.live]
	v.Set(x, y)
	v.SetSlot(p.live)
	p.live++
	if p.live > p.peak {
		p.peak = p.live
	}
	return v
}

// Clone returns a new live vector with src components, src is not modified
func (p *VectorPool) Clone(src *vmath.Vector2D) *vmath.Vector2D {
	return p.Get(src.X, src.Y)
}

// FromAngle returns a live unit vector at angle radians
func (p *VectorPool) FromAngle(angle float64) *vmath.Vector2D {
	return p.Get(0, 0).SetAngle(angle)
}

// FromSource returns a live vector copied from an external position
func (p *VectorPool) FromSource(src Point) *vmath.Vector2D {
	return p.Get(src.X(), src.Y())
}

// Clear releases every live vector in O(1)
// Component values, recorded slots and capacity are left as-is
func (p *VectorPool) Clear() {
	p.live = 0
}

// ReleaseAt frees one live slot before frame end by swap-remove
// The last live vector moves to index; slot order is not stable across this call
func (p *VectorPool) ReleaseAt(index int) error {
	if p.live == 0 {
		return fmt.Errorf("%w: release index %d", ErrPoolEmpty, index)
	}
	if index < 0 || index >= p.live {
		return fmt.Errorf("%w: index %d, live %d", ErrIndexOutOfRange, index, p.live)
	}

	last := p.live - 1
	released := p.slots[index]
	if index != last {
		moved := p.slots[last]
		p.slots[index] = moved
		moved.SetSlot(index)
		p.slots[last] = released
	}
	released.SetSlot(-1)
	p.live = last
	return nil
}

// Release frees v if it is live in this pool
func (p *VectorPool) Release(v *vmath.Vector2D) error {
	index, ok := p.IndexOf(v)
	if !ok {
		return ErrNotOwned
	}
	return p.ReleaseAt(index)
}

// IndexOf returns v's position if it is live in this pool
func (p *VectorPool) IndexOf(v *vmath.Vector2D) (int, bool) {
	if v == nil {
		return 0, false
	}
	index, ok := v.SlotIndex()
	if !ok || index >= p.live || p.slots[index] != v {
		return 0, false
	}
	return index, true
}

// At returns the live vector at index, panics outside the live prefix
func (p *VectorPool) At(index int) *vmath.Vector2D {
	return p.slots[:p.live][index]
}

// Active returns the live prefix view (no allocation)
// Invalidated by the next Get-family call, ReleaseAt or Clear
func (p *VectorPool) Active() []*vmath.Vector2D {
	return p.slots[:p.live]
}

// Cap returns the number of allocated slots
func (p *VectorPool) Cap() int {
	return len(p.slots)
}

// Live returns the number of slots allocated this frame
func (p *VectorPool) Live() int {
	return p.live
}

// Peak returns the highest live count observed since construction
func (p *VectorPool) Peak() int {
	return p.peak
}
