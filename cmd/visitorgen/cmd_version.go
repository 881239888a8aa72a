package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fast/visitor"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the visitorgen version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), visitor.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
