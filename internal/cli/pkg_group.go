package cli

import "github.com/spf13/cobra"

// pkgCmd groups management of user-added probe packages.
var pkgCmd = &cobra.Command{
	Use:   "pkg",
	Short: "Manage extra pip packages probed on top of the registry",
}

func init() { rootCmd.AddCommand(pkgCmd) }
