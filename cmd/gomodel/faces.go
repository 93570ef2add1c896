package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gomodel/pkg/analysis"
)

var (
	faceCount    int
	faceLargest  bool
	faceSmallest bool

	lineCount    int
	lineLongest  bool
	lineShortest bool
)

var facesCmd = &cobra.Command{
	Use:   "faces [file]",
	Short: "Analyze the faces of a model",
	Long:  "Display information about faces including area, perimeter and vertex positions.",
	Args:  cobra.ExactArgs(1),
	RunE:  runFaces,
}

var linesCmd = &cobra.Command{
	Use:   "lines [file]",
	Short: "Analyze the lines of a model",
	Long:  "Display information about lines including length and end points.",
	Args:  cobra.ExactArgs(1),
	RunE:  runLines,
}

func init() {
	rootCmd.AddCommand(facesCmd)
	rootCmd.AddCommand(linesCmd)

	facesCmd.Flags().IntVarP(&faceCount, "count", "n", 10, "Number of faces to display")
	facesCmd.Flags().BoolVarP(&faceLargest, "largest", "l", false, "Show largest faces by area")
	facesCmd.Flags().BoolVarP(&faceSmallest, "smallest", "s", false, "Show smallest faces by area")
	facesCmd.MarkFlagsMutuallyExclusive("largest", "smallest")

	linesCmd.Flags().IntVarP(&lineCount, "count", "n", 10, "Number of lines to display")
	linesCmd.Flags().BoolVarP(&lineLongest, "longest", "l", false, "Show longest lines")
	linesCmd.Flags().BoolVarP(&lineShortest, "shortest", "s", false, "Show shortest lines")
	linesCmd.MarkFlagsMutuallyExclusive("longest", "shortest")
}

func order(desc, asc bool) analysis.Order {
	switch {
	case desc:
		return analysis.Descending
	case asc:
		return analysis.Ascending
	}
	return analysis.ModelOrder
}

func runFaces(cmd *cobra.Command, args []string) error {
	m, err := loadModel(args[0])
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	all := analysis.DescribeFaces(m, analysis.ModelOrder, -1)
	totalArea := 0.0
	minArea := math.MaxFloat64
	maxArea := 0.0
	for _, f := range all {
		totalArea += f.Area
		minArea = math.Min(minArea, f.Area)
		maxArea = math.Max(maxArea, f.Area)
	}

	var title string
	switch {
	case faceLargest:
		title = fmt.Sprintf("Top %d Largest Faces", faceCount)
	case faceSmallest:
		title = fmt.Sprintf("Top %d Smallest Faces", faceCount)
	default:
		title = fmt.Sprintf("First %d Faces", faceCount)
	}

	fmt.Fprintln(w, title)
	fmt.Fprintln(w, "====================")
	fmt.Fprintf(w, "Total faces: %d\n", len(all))
	if len(all) == 0 {
		return nil
	}
	fmt.Fprintf(w, "Total surface area: %.6f square units\n", totalArea)
	fmt.Fprintf(w, "Min face area: %.6f square units\n", minArea)
	fmt.Fprintf(w, "Max face area: %.6f square units\n", maxArea)
	fmt.Fprintf(w, "Avg face area: %.6f square units\n\n", totalArea/float64(len(all)))

	for _, f := range analysis.DescribeFaces(m, order(faceLargest, faceSmallest), faceCount) {
		fmt.Fprintf(w, "Face #%d:\n", f.Index)
		fmt.Fprintf(w, "  Area: %.6f square units\n", f.Area)
		fmt.Fprintf(w, "  Perimeter: %.6f units\n", f.Perimeter)
		fmt.Fprintf(w, "  Vertices: %s, %s, %s\n\n",
			analysis.FormatPoint(f.Vertices[0]),
			analysis.FormatPoint(f.Vertices[1]),
			analysis.FormatPoint(f.Vertices[2]))
	}
	return nil
}

func runLines(cmd *cobra.Command, args []string) error {
	m, err := loadModel(args[0])
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	var title string
	switch {
	case lineLongest:
		title = fmt.Sprintf("Top %d Longest Lines", lineCount)
	case lineShortest:
		title = fmt.Sprintf("Top %d Shortest Lines", lineCount)
	default:
		title = fmt.Sprintf("First %d Lines", lineCount)
	}

	fmt.Fprintln(w, title)
	fmt.Fprintln(w, "====================")
	fmt.Fprintf(w, "Total lines: %d\n", m.LineCount())
	fmt.Fprintf(w, "Total length: %.6f units\n\n", m.Length())

	for _, l := range analysis.DescribeLines(m, order(lineLongest, lineShortest), lineCount) {
		fmt.Fprintf(w, "Line #%d: %s -> %s  %.6f units\n",
			l.Index,
			analysis.FormatPoint(l.Vertices[0]),
			analysis.FormatPoint(l.Vertices[1]),
			l.Length)
	}
	return nil
}
