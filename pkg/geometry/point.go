package geometry

import (
	"fmt"
	"math"
)

// Point is a position in 3D space. Unlike Vector3 it has no arithmetic:
// points are compared and measured, never added or scaled.
type Point struct {
	X, Y, Z float64
}

// NewPoint creates a point from its coordinates
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Coord returns coordinate i (0=X, 1=Y, 2=Z)
func (p Point) Coord(i int) (float64, error) {
	switch i {
	case 0:
		return p.X, nil
	case 1:
		return p.Y, nil
	case 2:
		return p.Z, nil
	}
	return 0, fmt.Errorf("%w: index %d, dimension 3", ErrVectorSize, i)
}

// SetX assigns the X coordinate.
func (p *Point) SetX(x float64) { p.X = x }

// SetY assigns the Y coordinate.
func (p *Point) SetY(y float64) { p.Y = y }

// SetZ assigns the Z coordinate.
func (p *Point) SetZ(z float64) { p.Z = z }

// Set assigns all three coordinates
func (p *Point) Set(x, y, z float64) {
	p.X, p.Y, p.Z = x, y, z
}

// Distance returns the Euclidean distance to other
func (p Point) Distance(other Point) float64 {
	dx, dy, dz := p.X-other.X, p.Y-other.Y, p.Z-other.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Equal reports exact coordinate equality. There is no tolerance: two
// points that differ in the last bit are distinct.
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y && p.Z == other.Z
}

// Vector3 returns the displacement from the origin to p
func (p Point) Vector3() Vector3 {
	return Vector3{X: p.X, Y: p.Y, Z: p.Z}
}

// PointAt returns the point reached by displacing the origin by v
func PointAt(v Vector3) Point {
	return Point{X: v.X, Y: v.Y, Z: v.Z}
}

func (p Point) String() string {
	return fmt.Sprintf("(%v, %v, %v)", p.X, p.Y, p.Z)
}
