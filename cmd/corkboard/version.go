// Version command for the corkboard CLI.
package main

import (
	"fmt"

	"github.com/mesh-intelligence/corkboard/pkg/corkboard"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the corkboard version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("corkboard", corkboard.Version)
	},
}
