package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/metarecord"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of metarecord",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "metarecord version %s\n", metarecord.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
