package commands

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "phishcheck",
	Short: "phishcheck scores links for phishing risk",
	Long:  `phishcheck combines TLS validity, domain registration age and lexical patterns into an advisory phishing risk score. Without a subcommand it starts the HTTP server.`,
	RunE:  runServe,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
