package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gomodel/pkg/analysis"
	"github.com/philipparndt/gomodel/pkg/model"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about a model file",
	Long:  "Show name, description, element counts, area, length, bounding box and edge statistics.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	m, err := loadModel(filename)
	if err != nil {
		return err
	}
	printInfo(cmd.OutOrStdout(), filename, m)
	return nil
}

func printInfo(w io.Writer, filename string, m *model.Model) {
	result := analysis.AnalyzeModel(m)

	fmt.Fprintln(w, "Model Information")
	fmt.Fprintln(w, "=================")
	fmt.Fprintf(w, "Name: %s\n", result.Name)
	fmt.Fprintf(w, "Description: %s\n", result.Description)
	fmt.Fprintf(w, "File: %s\n\n", filename)

	fmt.Fprintln(w, "Model Statistics:")
	fmt.Fprintf(w, "  Faces: %d\n", result.FaceCount)
	fmt.Fprintf(w, "  Lines: %d\n", result.LineCount)
	fmt.Fprintf(w, "  Points: %d (%d unique)\n", result.PointCount, result.UniquePoints)
	fmt.Fprintf(w, "  Edges: %d\n", result.EdgeCount)
	fmt.Fprintf(w, "  Surface Area: %.6f square units\n", result.Area)
	fmt.Fprintf(w, "  Line Length: %.6f units\n\n", result.Length)

	if result.BoundingBox.IsEmpty() {
		fmt.Fprintln(w, "Bounding Box: empty")
		return
	}

	fmt.Fprintln(w, "Bounding Box:")
	fmt.Fprintf(w, "  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Fprintf(w, "  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Fprintf(w, "  Center: %s\n\n", analysis.FormatPoint(result.BoundingBox.Center()))

	fmt.Fprintln(w, "Dimensions:")
	fmt.Fprintf(w, "  Width (X): %.6f units\n", result.Dimensions.X)
	fmt.Fprintf(w, "  Depth (Y): %.6f units\n", result.Dimensions.Y)
	fmt.Fprintf(w, "  Height (Z): %.6f units\n", result.Dimensions.Z)
	fmt.Fprintf(w, "  Diagonal: %.6f units\n", result.BoundingBox.Diagonal())
	fmt.Fprintf(w, "  Volume: %.6f cubic units\n\n", result.Volume)

	fmt.Fprintln(w, "Edge Lengths:")
	fmt.Fprintf(w, "  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Fprintf(w, "  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Fprintf(w, "  Average: %.6f units\n", result.AvgEdgeLength)
}
