package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-12

func TestVector2D_SetAndCopy(t *testing.T) {
	var a, b Vector2D
	a.Set(3, -4)
	assert.Equal(t, 3.0, a.X)
	assert.Equal(t, -4.0, a.Y)

	a.SetSlot(7)
	b.Copy(&a)
	assert.Equal(t, a.X, b.X)
	assert.Equal(t, a.Y, b.Y)

	// Identity stays with the original
	_, ok := b.SlotIndex()
	assert.False(t, ok)
}

func TestVector2D_SlotIndex(t *testing.T) {
	var v Vector2D
	_, ok := v.SlotIndex()
	assert.False(t, ok, "zero value must not be pool-owned")

	v.SetSlot(0)
	idx, ok := v.SlotIndex()
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	v.SetSlot(-1)
	_, ok = v.SlotIndex()
	assert.False(t, ok)
}

func TestVector2D_Angle(t *testing.T) {
	v := FromAngle(0)
	assert.InDelta(t, 1.0, v.X, eps)
	assert.InDelta(t, 0.0, v.Y, eps)

	v.SetAngle(math.Pi / 2)
	assert.InDelta(t, 0.0, v.X, eps)
	assert.InDelta(t, 1.0, v.Y, eps)
	assert.InDelta(t, math.Pi/2, v.Angle(), eps)
}

func TestVector2D_AddScale(t *testing.T) {
	a := NewVector2D(1, 2)
	b := NewVector2D(10, 20)
	a.Add(&b).Scale(0.5)
	assert.Equal(t, 5.5, a.X)
	assert.Equal(t, 11.0, a.Y)

	a.Sub(&b)
	assert.Equal(t, -4.5, a.X)
	assert.Equal(t, -9.0, a.Y)
}

func TestVector2D_RotateTo(t *testing.T) {
	v := Right()
	v.Scale(2).RotateTo(math.Pi)
	assert.InDelta(t, -2.0, v.X, eps)
	assert.InDelta(t, 0.0, v.Y, eps)
	assert.InDelta(t, 2.0, v.Length(), eps)

	// Rotation chain from reset
	v.Right().RotateTo(-math.Pi / 2)
	assert.InDelta(t, 0.0, v.X, eps)
	assert.InDelta(t, -1.0, v.Y, eps)
}

func TestVector2D_Normalize(t *testing.T) {
	v := NewVector2D(3, 4)
	assert.Equal(t, 25.0, v.LengthSq())
	v.Normalize()
	assert.InDelta(t, 1.0, v.Length(), eps)
	assert.InDelta(t, 0.6, v.X, eps)

	var z Vector2D
	z.Normalize()
	assert.Equal(t, 0.0, z.X)
	assert.Equal(t, 0.0, z.Y)
}

func TestVector2D_Dot(t *testing.T) {
	a := NewVector2D(1, 0)
	b := NewVector2D(0, 1)
	assert.Equal(t, 0.0, a.Dot(&b))
	assert.True(t, a.ApproxEqual(&a, 0))
	assert.False(t, a.ApproxEqual(&b, 0.5))
}
