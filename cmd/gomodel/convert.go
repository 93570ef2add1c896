package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gomodel/pkg/model"
)

var (
	convertName        string
	convertDescription string
)

var convertCmd = &cobra.Command{
	Use:   "convert [in] [out]",
	Short: "Re-export a model file",
	Long: `Import a model and write it again. Duplicate elements are dropped and
shared vertices are written once.`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

var mergeCmd = &cobra.Command{
	Use:   "merge [out] [in...]",
	Short: "Combine models, skipping elements already present",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runMerge,
}

var subtractCmd = &cobra.Command{
	Use:   "subtract [out] [base] [in...]",
	Short: "Remove the elements of models from a base model",
	Long: `Remove every face and line of the input models from the base model.
The command fails without writing when an element is missing from the base.`,
	Args: cobra.MinimumNArgs(3),
	RunE: runSubtract,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(subtractCmd)

	convertCmd.Flags().StringVar(&convertName, "name", "", "Replace the model name")
	convertCmd.Flags().StringVar(&convertDescription, "description", "", "Replace the model description")
}

func writeModel(cmd *cobra.Command, filename string, m *model.Model) error {
	if err := newExporter().Export(filename, m); err != nil {
		return fmt.Errorf("failed to save model: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s: %d faces, %d lines\n", filename, m.FaceCount(), m.LineCount())
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	m, err := loadModel(args[0])
	if err != nil {
		return err
	}
	if convertName != "" {
		m.Name = convertName
	}
	if convertDescription != "" {
		m.Description = convertDescription
	}
	return writeModel(cmd, args[1], m)
}

func runMerge(cmd *cobra.Command, args []string) error {
	out, inputs := args[0], args[1:]

	merged, err := loadModel(inputs[0])
	if err != nil {
		return err
	}
	for _, in := range inputs[1:] {
		m, err := loadModel(in)
		if err != nil {
			return err
		}
		merged.AddModel(m)
	}
	return writeModel(cmd, out, merged)
}

func runSubtract(cmd *cobra.Command, args []string) error {
	out, base, inputs := args[0], args[1], args[2:]

	result, err := loadModel(base)
	if err != nil {
		return err
	}
	for _, in := range inputs {
		m, err := loadModel(in)
		if err != nil {
			return err
		}
		if result, err = result.Minus(m); err != nil {
			return fmt.Errorf("failed to subtract %s: %w", in, err)
		}
	}
	return writeModel(cmd, out, result)
}
