package geometry

// LinePoints is the number of end points of a line.
const LinePoints = 2

// Line is a straight segment between two distinct points.
type Line struct {
	Element
}

// NewLine creates a line between a and b
func NewLine(a, b Point) (Line, error) {
	return NewLineFrom([]Point{a, b})
}

// NewLineFrom creates a line from a list that must hold exactly two
// distinct points
func NewLineFrom(pts []Point) (Line, error) {
	e, err := newFixedElement(LinePoints, pts)
	if err != nil {
		return Line{}, err
	}
	return Line{Element: e}, nil
}

// Vertices returns both end points in order
func (l Line) Vertices() [2]Point {
	return [2]Point{l.pointAt(0), l.pointAt(1)}
}

// Length returns the distance between the end points
func (l Line) Length() float64 {
	v := l.Vertices()
	return v[0].Distance(v[1])
}

// Area is always zero for a segment
func (l Line) Area() float64 {
	return 0
}

// Midpoint returns the point halfway between the end points
func (l Line) Midpoint() Point {
	v := l.Vertices()
	return Point{
		X: (v[0].X + v[1].X) / 2,
		Y: (v[0].Y + v[1].Y) / 2,
		Z: (v[0].Z + v[1].Z) / 2,
	}
}

// Equal reports whether both lines join the same two points, in either order.
func (l Line) Equal(other Line) bool {
	return l.Element.Equal(other.Element)
}

// Clone returns a line that shares no memory with l.
func (l Line) Clone() Line {
	return Line{Element: l.Element.Clone()}
}
