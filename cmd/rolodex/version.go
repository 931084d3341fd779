package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/pkg/rolodex"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the rolodex version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(rolodex.Version)
	},
}
