package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pyctl/internal/config"
)

func init() {
	pkgCmd.AddCommand(pkgLsCmd)
}

var pkgLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the extra probe packages",
	RunE: func(cmd *cobra.Command, args []string) error {
		extras, err := config.LoadExtras()
		if err != nil {
			return err
		}
		if len(extras) == 0 {
			fmt.Println("no extra packages configured")
			return nil
		}
		for _, p := range extras {
			fmt.Printf("- %s\n", p)
		}
		return nil
	},
}
