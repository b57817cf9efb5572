package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pyctl/internal/config"
)

func init() {
	pkgCmd.AddCommand(pkgRemoveCmd)
}

var pkgRemoveCmd = &cobra.Command{
	Use:     "rm <package>...",
	Aliases: []string{"remove"},
	Short:   "Remove packages from the extra probe list",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		removed, missing, err := config.RemoveExtras(args)
		if err != nil {
			return err
		}
		if len(removed) > 0 {
			fmt.Printf("removed: %s\n", strings.Join(removed, ", "))
		}
		if len(missing) > 0 {
			fmt.Printf("not in list: %s\n", strings.Join(missing, ", "))
		}
		return nil
	},
}
