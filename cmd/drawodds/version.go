package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/drawodds"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of drawodds",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("drawodds version %s\n", drawodds.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
