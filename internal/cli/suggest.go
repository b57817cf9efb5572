package cli

import (
	"fmt"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"pyctl/internal/probe"
)

func init() {
	rootCmd.AddCommand(suggestCmd)
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <term>",
	Short: "Fuzzy-search the known dependency registry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		targets := make([]string, len(probe.Registry))
		for i, d := range probe.Registry {
			targets[i] = string(d.ID)
		}
		matches := fuzzy.Find(args[0], targets)
		if len(matches) == 0 {
			fmt.Println("no matching packages")
			return nil
		}
		for _, m := range matches {
			d := probe.Registry[m.Index]
			fmt.Printf("%s  %s\n", d.ID, mutedStyle.Render(d.DisplayName))
		}
		return nil
	},
}
