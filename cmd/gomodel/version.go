package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gomodel/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "gomodel %s\n", version.GetVersion())
		fmt.Fprintf(w, "  commit: %s\n", version.GitCommit)
		fmt.Fprintf(w, "  built:  %s\n", version.BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
