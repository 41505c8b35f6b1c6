package vmath

import (
	"math"
)

// Vector2D is a mutable float64 2D vector
// Pool-issued vectors carry their slot position for O(1) targeted release
type Vector2D struct {
	X, Y float64

	// slot holds position+1 in the owning pool, 0 = not pool-owned
	slot int
}

// NewVector2D returns an unpooled vector
func NewVector2D(x, y float64) Vector2D {
	return Vector2D{X: x, Y: y}
}

// FromAngle returns an unpooled unit vector at angle radians
func FromAngle(angle float64) Vector2D {
	return Vector2D{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Right returns the (1, 0) unit vector, start value for rotation chains
func Right() Vector2D {
	return Vector2D{X: 1}
}

// SlotIndex reports the last pool position recorded on v
// Owning pool is the authority on liveness, see pool.VectorPool.IndexOf
func (v *Vector2D) SlotIndex() (int, bool) {
	if v.slot == 0 {
		return 0, false
	}
	return v.slot - 1, true
}

// SetSlot records pool position, negative index clears it
func (v *Vector2D) SetSlot(index int) {
	if index < 0 {
		v.slot = 0
		return
	}
	v.slot = index + 1
}

func (v *Vector2D) Set(x, y float64) *Vector2D {
	v.X, v.Y = x, y
	return v
}

// Copy takes components from src, slot identity is not copied
func (v *Vector2D) Copy(src *Vector2D) *Vector2D {
	v.X, v.Y = src.X, src.Y
	return v
}

// SetAngle makes v the unit vector at angle radians
func (v *Vector2D) SetAngle(angle float64) *Vector2D {
	v.X, v.Y = math.Cos(angle), math.Sin(angle)
	return v
}

// Right resets v to (1, 0)
func (v *Vector2D) Right() *Vector2D {
	v.X, v.Y = 1, 0
	return v
}

func (v *Vector2D) Add(o *Vector2D) *Vector2D {
	v.X += o.X
	v.Y += o.Y
	return v
}

func (v *Vector2D) Sub(o *Vector2D) *Vector2D {
	v.X -= o.X
	v.Y -= o.Y
	return v
}

func (v *Vector2D) Scale(s float64) *Vector2D {
	v.X *= s
	v.Y *= s
	return v
}

// RotateTo points v at absolute angle radians, length preserved
func (v *Vector2D) RotateTo(angle float64) *Vector2D {
	mag := v.Length()
	v.X, v.Y = mag*math.Cos(angle), mag*math.Sin(angle)
	return v
}

// Normalize scales v to unit length, zero-safe
func (v *Vector2D) Normalize() *Vector2D {
	mag := v.Length()
	if mag == 0 {
		return v
	}
	inv := 1.0 / mag
	v.X *= inv
	v.Y *= inv
	return v
}

func (v *Vector2D) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v *Vector2D) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Angle returns direction in radians, range (-π, π]
func (v *Vector2D) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

func (v *Vector2D) Dot(o *Vector2D) float64 {
	return v.X*o.X + v.Y*o.Y
}

// ApproxEqual compares components within eps
func (v *Vector2D) ApproxEqual(o *Vector2D, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}
