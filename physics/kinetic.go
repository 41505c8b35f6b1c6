package physics

import (
	"math"

	"github.com/lixenwraith/vecpool/pool"
	"github.com/lixenwraith/vecpool/vmath"
)

// CellCenter offsets a grid cell origin to its center
const CellCenter = 0.5

// Kinetic is player motion state, owned by the caller and never pooled
type Kinetic struct {
	Pos vmath.Vector2D
	// Heading in radians, 0 = right, π/2 = down in screen space
	Heading float64
	// Speed in cells per second
	Speed float64
	// TurnRate in radians per second
	TurnRate float64
}

// Position exposes k as a pool.Point for FromSource
func (k *Kinetic) Position() pool.Point {
	return pool.XY{k.Pos.X, k.Pos.Y}
}

// Integrate advances position along heading: p = p + dir*speed*dt
// Displacement is a frame-scoped pool vector
func Integrate(p *pool.VectorPool, k *Kinetic, dt float64) (x, y int) {
	disp := p.FromAngle(k.Heading).Scale(k.Speed * dt)
	k.Pos.Add(disp)
	return GridPos(k)
}

// Turn rotates heading by dir*TurnRate*dt, dir is -1, 0 or 1
func Turn(k *Kinetic, dir int, dt float64) {
	k.Heading = wrapAngle(k.Heading + float64(dir)*k.TurnRate*dt)
}

// Velocity returns the frame-scoped velocity vector
func Velocity(p *pool.VectorPool, k *Kinetic) *vmath.Vector2D {
	return p.FromAngle(0).Scale(k.Speed).RotateTo(k.Heading)
}

// ReflectBoundsX handles horizontal boundary collision, returns true if reflection occurred
// Clamps to centered position within valid cell range [minX, maxX)
func ReflectBoundsX(p *pool.VectorPool, k *Kinetic, minX, maxX int) bool {
	x := int(math.Floor(k.Pos.X))
	if x >= minX && x < maxX {
		return false
	}
	if x < minX {
		k.Pos.X = float64(minX) + CellCenter
	} else {
		k.Pos.X = float64(maxX-1) + CellCenter
	}
	dir := p.FromAngle(k.Heading)
	dir.X = -dir.X
	k.Heading = wrapAngle(dir.Angle())
	return true
}

// ReflectBoundsY handles vertical boundary collision, returns true if reflection occurred
// Clamps to centered position within valid cell range [minY, maxY)
func ReflectBoundsY(p *pool.VectorPool, k *Kinetic, minY, maxY int) bool {
	y := int(math.Floor(k.Pos.Y))
	if y >= minY && y < maxY {
		return false
	}
	if y < minY {
		k.Pos.Y = float64(minY) + CellCenter
	} else {
		k.Pos.Y = float64(maxY-1) + CellCenter
	}
	dir := p.FromAngle(k.Heading)
	dir.Y = -dir.Y
	k.Heading = wrapAngle(dir.Angle())
	return true
}

// ReflectBounds handles both axis boundary collisions, returns true if any reflection occurred
func ReflectBounds(p *pool.VectorPool, k *Kinetic, width, height int) bool {
	rx := ReflectBoundsX(p, k, 0, width)
	ry := ReflectBoundsY(p, k, 0, height)
	return rx || ry
}

// GridPos returns current integer grid position
func GridPos(k *Kinetic) (x, y int) {
	return int(math.Floor(k.Pos.X)), int(math.Floor(k.Pos.Y))
}

// SetGridPos sets position from integer grid coordinates (centered)
func SetGridPos(k *Kinetic, x, y int) {
	k.Pos.Set(float64(x)+CellCenter, float64(y)+CellCenter)
}

func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
