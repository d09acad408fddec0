package cmd

import (
	"fmt"

	"github.com/alexiusacademia/goseismic/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of goseismic",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("goseismic v%s\n", version.Version)
		fmt.Println("Seismic Load Calculator")
		fmt.Println("Based on ASCE 7-05 (Equivalent Lateral Force Procedure)")
		if version.GitCommit != "unknown" {
			fmt.Printf("Commit %s, built %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
