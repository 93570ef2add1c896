package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gomodel/internal/store"
	"github.com/philipparndt/gomodel/pkg/geometry"
)

var addFaceCmd = &cobra.Command{
	Use:   "add-face [file] x1 y1 z1 x2 y2 z2 x3 y3 z3",
	Short: "Add a face to a model file",
	Args:  cobra.ExactArgs(10),
	RunE:  runAddFace,
}

var addLineCmd = &cobra.Command{
	Use:   "add-line [file] x1 y1 z1 x2 y2 z2",
	Short: "Add a line to a model file",
	Args:  cobra.ExactArgs(7),
	RunE:  runAddLine,
}

var removeFaceCmd = &cobra.Command{
	Use:   "remove-face [file] [index]",
	Short: "Remove a face by its 0-based index",
	Args:  cobra.ExactArgs(2),
	RunE:  runRemoveFace,
}

var removeLineCmd = &cobra.Command{
	Use:   "remove-line [file] [index]",
	Short: "Remove a line by its 0-based index",
	Args:  cobra.ExactArgs(2),
	RunE:  runRemoveLine,
}

var setFacePointCmd = &cobra.Command{
	Use:   "set-face-point [file] [face] [point] x y z",
	Short: "Move one corner (0-2) of a face",
	Args:  cobra.ExactArgs(6),
	RunE:  runSetFacePoint,
}

var setLinePointCmd = &cobra.Command{
	Use:   "set-line-point [file] [line] [point] x y z",
	Short: "Move one end (0-1) of a line",
	Args:  cobra.ExactArgs(6),
	RunE:  runSetLinePoint,
}

func init() {
	rootCmd.AddCommand(addFaceCmd)
	rootCmd.AddCommand(addLineCmd)
	rootCmd.AddCommand(removeFaceCmd)
	rootCmd.AddCommand(removeLineCmd)
	rootCmd.AddCommand(setFacePointCmd)
	rootCmd.AddCommand(setLinePointCmd)
}

func parsePoints(args []string) ([]geometry.Point, error) {
	if len(args)%3 != 0 {
		return nil, fmt.Errorf("expected coordinates in groups of 3, got %d values", len(args))
	}
	var c [3]float64
	pts := make([]geometry.Point, 0, len(args)/3)
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q: %w", arg, err)
		}
		c[i%3] = v
		if i%3 == 2 {
			pts = append(pts, geometry.NewPoint(c[0], c[1], c[2]))
		}
	}
	return pts, nil
}

func parseIndex(arg, what string) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid %s index %q: %w", what, arg, err)
	}
	return i, nil
}

// editFile opens filename in a store, applies edit to it and saves it back
// when edit reports OK.
func editFile(cmd *cobra.Command, filename string, edit func(s *store.Store) store.Result) error {
	s := newStore()
	if res := s.Open(filename); res != store.OK {
		return fmt.Errorf("failed to open %s: %w", filename, res.Err())
	}
	res := edit(s)
	fmt.Fprintln(cmd.OutOrStdout(), res)
	if res != store.OK {
		return res.Err()
	}
	if res := s.Save(filename, store.CurrentModel); res != store.OK {
		return fmt.Errorf("failed to save %s: %w", filename, res.Err())
	}
	return nil
}

func runAddFace(cmd *cobra.Command, args []string) error {
	pts, err := parsePoints(args[1:])
	if err != nil {
		return err
	}
	return editFile(cmd, args[0], func(s *store.Store) store.Result {
		return s.AddFace(store.CurrentModel, pts[0], pts[1], pts[2])
	})
}

func runAddLine(cmd *cobra.Command, args []string) error {
	pts, err := parsePoints(args[1:])
	if err != nil {
		return err
	}
	return editFile(cmd, args[0], func(s *store.Store) store.Result {
		return s.AddLine(store.CurrentModel, pts[0], pts[1])
	})
}

func runRemoveFace(cmd *cobra.Command, args []string) error {
	i, err := parseIndex(args[1], "face")
	if err != nil {
		return err
	}
	return editFile(cmd, args[0], func(s *store.Store) store.Result {
		return s.RemoveFace(store.CurrentModel, i)
	})
}

func runRemoveLine(cmd *cobra.Command, args []string) error {
	i, err := parseIndex(args[1], "line")
	if err != nil {
		return err
	}
	return editFile(cmd, args[0], func(s *store.Store) store.Result {
		return s.RemoveLine(store.CurrentModel, i)
	})
}

func parsePointEdit(args []string, what string) (int, int, geometry.Point, error) {
	elem, err := parseIndex(args[1], what)
	if err != nil {
		return 0, 0, geometry.Point{}, err
	}
	point, err := parseIndex(args[2], "point")
	if err != nil {
		return 0, 0, geometry.Point{}, err
	}
	pts, err := parsePoints(args[3:])
	if err != nil {
		return 0, 0, geometry.Point{}, err
	}
	return elem, point, pts[0], nil
}

func runSetFacePoint(cmd *cobra.Command, args []string) error {
	face, point, p, err := parsePointEdit(args, "face")
	if err != nil {
		return err
	}
	return editFile(cmd, args[0], func(s *store.Store) store.Result {
		return s.ChangeFacePoint(store.CurrentModel, face, point, p)
	})
}

func runSetLinePoint(cmd *cobra.Command, args []string) error {
	line, point, p, err := parsePointEdit(args, "line")
	if err != nil {
		return err
	}
	return editFile(cmd, args[0], func(s *store.Store) store.Result {
		return s.ChangeLinePoint(store.CurrentModel, line, point, p)
	})
}
