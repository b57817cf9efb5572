package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pyctl/internal/config"
)

func init() {
	pkgCmd.AddCommand(pkgAddCmd)
}

var pkgAddCmd = &cobra.Command{
	Use:   "add <package>...",
	Short: "Add packages to the extra probe list",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		added, existed, err := config.AddExtras(args)
		if err != nil {
			return err
		}
		if len(added) > 0 {
			fmt.Printf("added: %s\n", strings.Join(added, ", "))
		}
		if len(existed) > 0 {
			fmt.Printf("already present: %s\n", strings.Join(existed, ", "))
		}
		return nil
	},
}
