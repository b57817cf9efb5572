package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"pyctl/internal/sysinfo"
)

func init() {
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print session and system information as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, caps := detect(cmd.Context())
		info := sysinfo.Collect(cmd.Context(), snap, caps)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	},
}
