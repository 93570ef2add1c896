package analysis

import (
	"sort"

	"github.com/philipparndt/gomodel/pkg/geometry"
	"github.com/philipparndt/gomodel/pkg/model"
)

// FaceInfo describes one face of a model
type FaceInfo struct {
	Index     int
	Vertices  [3]geometry.Point
	Area      float64
	Perimeter float64
}

// LineInfo describes one line of a model
type LineInfo struct {
	Index    int
	Vertices [2]geometry.Point
	Length   float64
}

// Order selects how element listings are sorted
type Order int

const (
	// ModelOrder keeps the insertion order of the model
	ModelOrder Order = iota
	Descending
	Ascending
)

// DescribeFaces lists the faces of m sorted by area. count limits the
// result, a negative count means all.
func DescribeFaces(m *model.Model, order Order, count int) []FaceInfo {
	faces := m.Faces()
	out := make([]FaceInfo, len(faces))
	for i, f := range faces {
		out[i] = FaceInfo{Index: i, Vertices: f.Vertices(), Area: f.Area(), Perimeter: f.Perimeter()}
	}
	switch order {
	case Descending:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Area > out[j].Area })
	case Ascending:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Area < out[j].Area })
	}
	return out[:clampCount(count, len(out))]
}

// DescribeLines lists the lines of m sorted by length
func DescribeLines(m *model.Model, order Order, count int) []LineInfo {
	lines := m.Lines()
	out := make([]LineInfo, len(lines))
	for i, l := range lines {
		out[i] = LineInfo{Index: i, Vertices: l.Vertices(), Length: l.Length()}
	}
	switch order {
	case Descending:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Length > out[j].Length })
	case Ascending:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Length < out[j].Length })
	}
	return out[:clampCount(count, len(out))]
}
