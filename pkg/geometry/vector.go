package geometry

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/constraints"
)

var (
	// ErrVectorSize is returned for component indices outside [0, Dim) and
	// for operands or component lists of the wrong dimension.
	ErrVectorSize = errors.New("vector size out of range")
	// ErrCrossProductNotDefined is returned when the cross product is
	// requested for a vector that is not three-dimensional.
	ErrCrossProductNotDefined = errors.New("cross product is not defined for this type of vector")
	// ErrLpNormNotDefined is returned when a general Lp norm is requested
	// from a vector type that only knows L0, L1 and L2.
	ErrLpNormNotDefined = errors.New("Lp norm is not defined for this type of vector")
)

// Vector is a fixed-dimension tuple of real components.
// The dimension is set at construction and never changes.
type Vector[T constraints.Float] struct {
	comps []T
}

// NewVector creates a zero vector of the given dimension.
func NewVector[T constraints.Float](dim int) Vector[T] {
	return Vector[T]{comps: make([]T, dim)}
}

// NewVectorOf creates a vector of dimension dim from comps.
// The number of components must equal dim.
func NewVectorOf[T constraints.Float](dim int, comps ...T) (Vector[T], error) {
	if len(comps) != dim {
		return Vector[T]{}, fmt.Errorf("%w: got %d components, want %d", ErrVectorSize, len(comps), dim)
	}
	return Vector[T]{comps: append([]T(nil), comps...)}, nil
}

// Dim returns the number of components.
func (v Vector[T]) Dim() int {
	return len(v.comps)
}

// At returns component i.
func (v Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.comps) {
		return 0, fmt.Errorf("%w: index %d, dimension %d", ErrVectorSize, i, len(v.comps))
	}
	return v.comps[i], nil
}

// Components returns a copy of the components.
func (v Vector[T]) Components() []T {
	return append([]T(nil), v.comps...)
}

// own gives v a private copy of its components. Vector values are copied
// by assignment, so every in-place mutation starts here.
func (v *Vector[T]) own() {
	v.comps = append([]T(nil), v.comps...)
}

// Set assigns component i.
func (v *Vector[T]) Set(i int, value T) error {
	if i < 0 || i >= len(v.comps) {
		return fmt.Errorf("%w: index %d, dimension %d", ErrVectorSize, i, len(v.comps))
	}
	v.own()
	v.comps[i] = value
	return nil
}

// SetAll assigns every component at once.
func (v *Vector[T]) SetAll(comps ...T) error {
	if len(comps) != len(v.comps) {
		return fmt.Errorf("%w: got %d components, want %d", ErrVectorSize, len(comps), len(v.comps))
	}
	v.own()
	copy(v.comps, comps)
	return nil
}

func (v Vector[T]) sameDim(other Vector[T]) error {
	if len(v.comps) != len(other.comps) {
		return fmt.Errorf("%w: dimension %d vs %d", ErrVectorSize, len(v.comps), len(other.comps))
	}
	return nil
}

// Add returns the component-wise sum of two vectors.
func (v Vector[T]) Add(other Vector[T]) (Vector[T], error) {
	if err := v.sameDim(other); err != nil {
		return Vector[T]{}, err
	}
	out := NewVector[T](len(v.comps))
	for i := range v.comps {
		out.comps[i] = v.comps[i] + other.comps[i]
	}
	return out, nil
}

// Sub returns the component-wise difference of two vectors.
func (v Vector[T]) Sub(other Vector[T]) (Vector[T], error) {
	if err := v.sameDim(other); err != nil {
		return Vector[T]{}, err
	}
	out := NewVector[T](len(v.comps))
	for i := range v.comps {
		out.comps[i] = v.comps[i] - other.comps[i]
	}
	return out, nil
}

// Scale returns the vector multiplied by a scalar.
func (v Vector[T]) Scale(k T) Vector[T] {
	out := NewVector[T](len(v.comps))
	for i := range v.comps {
		out.comps[i] = v.comps[i] * k
	}
	return out
}

// Cross returns the cross product. It is only defined for three dimensions.
func (v Vector[T]) Cross(other Vector[T]) (Vector[T], error) {
	if len(v.comps) != 3 || len(other.comps) != 3 {
		return Vector[T]{}, ErrCrossProductNotDefined
	}
	a, b := v.comps, other.comps
	return Vector[T]{comps: []T{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}}, nil
}

// AddAssign adds other to v in place.
func (v *Vector[T]) AddAssign(other Vector[T]) error {
	if err := v.sameDim(other); err != nil {
		return err
	}
	v.own()
	for i := range v.comps {
		v.comps[i] += other.comps[i]
	}
	return nil
}

// SubAssign subtracts other from v in place.
func (v *Vector[T]) SubAssign(other Vector[T]) error {
	if err := v.sameDim(other); err != nil {
		return err
	}
	v.own()
	for i := range v.comps {
		v.comps[i] -= other.comps[i]
	}
	return nil
}

// ScaleAssign multiplies v by a scalar in place.
func (v *Vector[T]) ScaleAssign(k T) {
	v.own()
	for i := range v.comps {
		v.comps[i] *= k
	}
}

// L0 returns the number of non-zero components.
func (v Vector[T]) L0() T {
	var n T
	for _, c := range v.comps {
		if c != 0 {
			n++
		}
	}
	return n
}

// L1 returns the sum of absolute component values.
func (v Vector[T]) L1() T {
	var sum T
	for _, c := range v.comps {
		sum += T(math.Abs(float64(c)))
	}
	return sum
}

// L2 returns the Euclidean norm.
func (v Vector[T]) L2() T {
	var sum T
	for _, c := range v.comps {
		sum += c * c
	}
	return T(math.Sqrt(float64(sum)))
}

// L returns the norm of order p. The generic vector only knows p <= 2;
// dimension-specific types such as Vector3 define the general case.
func (v Vector[T]) L(p int) (T, error) {
	switch p {
	case 0:
		return v.L0(), nil
	case 1:
		return v.L1(), nil
	case 2:
		return v.L2(), nil
	}
	return 0, fmt.Errorf("%w: p=%d", ErrLpNormNotDefined, p)
}

// LInf returns the largest absolute component value, 0 for an empty
// vector.
func (v Vector[T]) LInf() T {
	var result T
	for _, c := range v.comps {
		result = max(result, T(math.Abs(float64(c))))
	}
	return result
}

// Module is the Euclidean norm.
func (v Vector[T]) Module() T {
	return v.L2()
}

// Length is the Euclidean norm.
func (v Vector[T]) Length() T {
	return v.L2()
}

// Equal reports whether both vectors have the same dimension and exactly
// equal components.
func (v Vector[T]) Equal(other Vector[T]) bool {
	if len(v.comps) != len(other.comps) {
		return false
	}
	for i := range v.comps {
		if v.comps[i] != other.comps[i] {
			return false
		}
	}
	return true
}

// String renders the vector as (a, b, c).
func (v Vector[T]) String() string {
	parts := make([]string, len(v.comps))
	for i, c := range v.comps {
		parts[i] = fmt.Sprint(c)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
