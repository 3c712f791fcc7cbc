// Version command for the sparsem CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/sparsem/pkg/sparsem"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the sparsem version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("sparsem", sparsem.Version)
	},
}
