// Package analysis computes statistics and edge measurements over models.
package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/gomodel/pkg/collection"
	"github.com/philipparndt/gomodel/pkg/geometry"
	"github.com/philipparndt/gomodel/pkg/model"
)

// EdgeSource tells whether an edge is a face side or a model line
type EdgeSource int

const (
	FaceEdge EdgeSource = iota
	LineEdge
)

func (s EdgeSource) String() string {
	if s == LineEdge {
		return "line"
	}
	return "face"
}

// EdgeInfo contains information about an edge in the model
type EdgeInfo struct {
	Start  geometry.Point
	End    geometry.Point
	Length float64
	Source EdgeSource
	// Index is the position of the owning face or line in the model
	Index int
}

// Summary holds the aggregate numbers of a model
type Summary struct {
	Name         string
	Description  string
	FaceCount    int
	LineCount    int
	PointCount   int
	UniquePoints int
	Area         float64
	Length       float64
	Volume       float64
}

// MeasurementResult contains the summary plus edge measurements of a model
type MeasurementResult struct {
	Summary
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	AllEdges      []EdgeInfo
}

// Summarize returns the aggregate numbers of m
func Summarize(m *model.Model) Summary {
	unique := &collection.Set[geometry.Point]{}
	for _, p := range m.Points() {
		unique.TryAdd(p)
	}
	return Summary{
		Name:         m.Name,
		Description:  m.Description,
		FaceCount:    m.FaceCount(),
		LineCount:    m.LineCount(),
		PointCount:   m.PointCount(),
		UniquePoints: unique.Len(),
		Area:         m.Area(),
		Length:       m.Length(),
		Volume:       m.BoundingBoxVolume(),
	}
}

// Edges lists the three sides of every face followed by every line
func Edges(m *model.Model) []EdgeInfo {
	edges := make([]EdgeInfo, 0, 3*m.FaceCount()+m.LineCount())
	for i, f := range m.Faces() {
		v := f.Vertices()
		for j := range v {
			start, end := v[j], v[(j+1)%len(v)]
			edges = append(edges, EdgeInfo{
				Start:  start,
				End:    end,
				Length: start.Distance(end),
				Source: FaceEdge,
				Index:  i,
			})
		}
	}
	for i, l := range m.Lines() {
		v := l.Vertices()
		edges = append(edges, EdgeInfo{
			Start:  v[0],
			End:    v[1],
			Length: l.Length(),
			Source: LineEdge,
			Index:  i,
		})
	}
	return edges
}

// AnalyzeModel performs comprehensive analysis on a model
func AnalyzeModel(m *model.Model) *MeasurementResult {
	result := &MeasurementResult{
		Summary:     Summarize(m),
		BoundingBox: m.BoundingBox(),
		AllEdges:    Edges(m),
	}
	result.Dimensions = result.BoundingBox.Size()
	result.EdgeCount = len(result.AllEdges)
	if result.EdgeCount == 0 {
		return result
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0
	for _, edge := range result.AllEdges {
		totalLength += edge.Length
		minLength = math.Min(minLength, edge.Length)
		maxLength = math.Max(maxLength, edge.Length)
	}
	result.MinEdgeLength = minLength
	result.MaxEdgeLength = maxLength
	result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	return result
}

// FindEdgesByLength finds all edges within a length range
func FindEdgesByLength(result *MeasurementResult, minLength, maxLength float64) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range result.AllEdges {
		if edge.Length >= minLength && edge.Length <= maxLength {
			edges = append(edges, edge)
		}
	}
	return edges
}

func sortedEdges(result *MeasurementResult, count int, less func(a, b float64) bool) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)
	sort.SliceStable(edges, func(i, j int) bool {
		return less(edges[i].Length, edges[j].Length)
	})
	return edges[:clampCount(count, len(edges))]
}

func clampCount(count, n int) int {
	if count < 0 || count > n {
		return n
	}
	return count
}

// FindLongestEdges returns the N longest edges in the model
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b float64) bool { return a > b })
}

// FindShortestEdges returns the N shortest edges in the model
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b float64) bool { return a < b })
}

// FindNearestVertex finds the element point nearest to a given point.
// It returns false for a model without points.
func FindNearestVertex(m *model.Model, point geometry.Point) (geometry.Point, float64, bool) {
	var nearest geometry.Point
	minDistance := math.MaxFloat64
	found := false

	for _, vertex := range m.Points() {
		distance := point.Distance(vertex)
		if distance < minDistance {
			minDistance = distance
			nearest = vertex
			found = true
		}
	}
	return nearest, minDistance, found
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatPoint formats a point with fixed precision
func FormatPoint(p geometry.Point) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", p.X, p.Y, p.Z)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
