package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"pyctl/internal/config"
	"pyctl/internal/pip"
)

func init() {
	rootCmd.AddCommand(installCmd)
}

var installCmd = &cobra.Command{
	Use:   "install <package>...",
	Short: "Install Python packages via pip",
	Long:  "Installs each requested package with the resolved Python interpreter. Already-installed packages are skipped; one package's failure never stops the rest.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		python := config.ResolvePython()
		results := pip.Install(cmd.Context(), python, args)

		names := make([]string, 0, len(results))
		for n := range results {
			names = append(names, n)
		}
		sort.Strings(names)
		failed := 0
		for _, n := range names {
			outcome := results[n]
			fmt.Printf("%s: %s\n", n, outcome)
			if strings.HasPrefix(outcome, "failed:") || strings.HasPrefix(outcome, "error:") {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d package(s) failed to install", failed)
		}
		return nil
	},
}
