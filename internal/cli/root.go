package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pyctl/internal/capability"
	"pyctl/internal/config"
	"pyctl/internal/probe"
	"pyctl/internal/system"
)

var rootCmd = &cobra.Command{
	Use:           "pyctl",
	Short:         "pyctl – Python environment capability helper",
	Long:          "pyctl probes optional Python packages and tools, reports derived capabilities, and dispatches to the tools that are actually present.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// detect runs the startup probe once and derives the capability set.
func detect(ctx context.Context) (*probe.Snapshot, capability.Set) {
	extras, err := config.LoadExtras()
	if err != nil {
		system.Logger.Warn("could not load extra packages", "err", err)
	}
	snap := probe.Detect(ctx, probe.Options{
		Python: config.ResolvePython(),
		Extra:  extras,
	})
	return snap, capability.Derive(snap)
}
