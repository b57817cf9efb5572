package cli

import (
	"github.com/spf13/cobra"

	"pyctl/internal/quality"
)

var fmtJSON bool

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().BoolVar(&fmtJSON, "json", false, "output JSON report")
}

var fmtCmd = &cobra.Command{
	Use:   "fmt <path>",
	Short: "Run available format checkers against a file",
	Long:  "Runs every detected format checker (black --check --diff, isort --check-only --diff) against the target path and reports per-tool results.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, _ := detect(cmd.Context())
		rep := quality.Format(cmd.Context(), snap, args[0])
		return printReport(rep, fmtJSON)
	},
}
