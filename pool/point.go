package pool

// Point is a read-only 2-component position accessor
// Implemented by external position handles fed to FromSource
type Point interface {
	X() float64
	Y() float64
}

// XY adapts a plain coordinate pair to Point
type XY [2]float64

func (p XY) X() float64 { return p[0] }
func (p XY) Y() float64 { return p[1] }

// GridPoint adapts integer cell coordinates to Point
type GridPoint struct {
	Col, Row int
}

func (p GridPoint) X() float64 { return float64(p.Col) }
func (p GridPoint) Y() float64 { return float64(p.Row) }
