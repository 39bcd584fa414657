package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

const Version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of phishcheck",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("phishcheck v" + Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
