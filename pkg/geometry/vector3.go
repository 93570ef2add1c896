package geometry

import (
	"fmt"
	"math"
)

// Vector3 represents a 3D displacement
type Vector3 struct {
	X, Y, Z float64
}

// NewVector3 creates a new 3D vector
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Vector3From converts a three-dimensional generic vector
func Vector3From(v Vector[float64]) (Vector3, error) {
	if v.Dim() != 3 {
		return Vector3{}, fmt.Errorf("%w: dimension %d, want 3", ErrVectorSize, v.Dim())
	}
	return Vector3{X: v.comps[0], Y: v.comps[1], Z: v.comps[2]}, nil
}

// Vector returns the generic form of the vector
func (v Vector3) Vector() Vector[float64] {
	return Vector[float64]{comps: []float64{v.X, v.Y, v.Z}}
}

// At returns component i (0=X, 1=Y, 2=Z)
func (v Vector3) At(i int) (float64, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	}
	return 0, fmt.Errorf("%w: index %d, dimension 3", ErrVectorSize, i)
}

// Add returns the sum of two vectors
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Sub returns the difference between two vectors
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Mul multiplies the vector by a scalar
func (v Vector3) Mul(scalar float64) Vector3 {
	return Vector3{
		X: v.X * scalar,
		Y: v.Y * scalar,
		Z: v.Z * scalar,
	}
}

// Dot returns the dot product of two vectors
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude of the vector
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Distance returns the distance between two vectors
func (v Vector3) Distance(other Vector3) float64 {
	return v.Sub(other).Length()
}

// Module is the same as Length
func (v Vector3) Module() float64 {
	return v.Length()
}

// L0 returns the number of non-zero components
func (v Vector3) L0() float64 {
	return v.Vector().L0()
}

// L1 returns the sum of absolute components
func (v Vector3) L1() float64 {
	return math.Abs(v.X) + math.Abs(v.Y) + math.Abs(v.Z)
}

// L2 returns the Euclidean norm
func (v Vector3) L2() float64 {
	return v.Length()
}

// L returns the norm of order p for any p >= 0
func (v Vector3) L(p int) (float64, error) {
	if p < 0 {
		return 0, fmt.Errorf("%w: p=%d", ErrLpNormNotDefined, p)
	}
	if p <= 2 {
		return v.Vector().L(p)
	}
	fp := float64(p)
	sum := math.Pow(math.Abs(v.X), fp) + math.Pow(math.Abs(v.Y), fp) + math.Pow(math.Abs(v.Z), fp)
	return math.Pow(sum, 1/fp), nil
}

// LInf returns the largest absolute component
func (v Vector3) LInf() float64 {
	return math.Max(math.Abs(v.X), math.Max(math.Abs(v.Y), math.Abs(v.Z)))
}

// Normalize returns a unit vector in the same direction
func (v Vector3) Normalize() Vector3 {
	length := v.Length()
	if length == 0 {
		return Vector3{}
	}
	return v.Mul(1.0 / length)
}

// Min returns a vector with the minimum components of two vectors
func (v Vector3) Min(other Vector3) Vector3 {
	return Vector3{
		X: math.Min(v.X, other.X),
		Y: math.Min(v.Y, other.Y),
		Z: math.Min(v.Z, other.Z),
	}
}

// Max returns a vector with the maximum components of two vectors
func (v Vector3) Max(other Vector3) Vector3 {
	return Vector3{
		X: math.Max(v.X, other.X),
		Y: math.Max(v.Y, other.Y),
		Z: math.Max(v.Z, other.Z),
	}
}

// Equal reports exact component equality
func (v Vector3) Equal(other Vector3) bool {
	return v == other
}

// String renders the vector as (x, y, z)
func (v Vector3) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}
