package commands

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"url-risk-checker/config"
	"url-risk-checker/ui"
	"url-risk-checker/vetting"
)

var checkCmd = &cobra.Command{
	Use:   "check <url>",
	Short: "Score a single link from the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		analyzer := vetting.NewAnalyzer(vetting.AnalyzerOptions{
			TLSTimeout:     cfg.TLSTimeout,
			WhoisTimeout:   cfg.WhoisTimeout,
			AnalyzeTimeout: cfg.AnalyzeTimeout,
		})

		if asJSON {
			report, err := analyzer.Analyze(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}

		ui.PrintBanner()
		spinner := ui.StartSpinner("Checking TLS, WHOIS and domain patterns...")
		report, err := analyzer.Analyze(cmd.Context(), args[0])
		if err != nil {
			spinner.Fail(err.Error())
			return err
		}
		spinner.Success("Analysis complete")

		ui.PrintReport(vetting.NormalizeDomain(args[0]), report)
		return nil
	},
}

func init() {
	checkCmd.Flags().Bool("json", false, "Print the report as JSON")
	rootCmd.AddCommand(checkCmd)
}
