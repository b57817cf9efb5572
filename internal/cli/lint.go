package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"pyctl/internal/quality"
	"pyctl/internal/system"
)

var (
	lintJSON  bool
	lintWatch bool
)

func init() {
	rootCmd.AddCommand(lintCmd)
	lintCmd.Flags().BoolVar(&lintJSON, "json", false, "output JSON report")
	lintCmd.Flags().BoolVar(&lintWatch, "watch", false, "re-run checks when the file changes")
}

var lintCmd = &cobra.Command{
	Use:   "lint <path>",
	Short: "Run available lint tools against a file",
	Long:  "Runs every detected lint tool (pylint, flake8, bandit) against the target path and reports per-tool results. Tools that are not installed are skipped silently.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, _ := detect(cmd.Context())
		path := args[0]

		run := func(ctx context.Context) error {
			rep := quality.Check(ctx, snap, path)
			return printReport(rep, lintJSON)
		}

		if !lintWatch {
			return run(cmd.Context())
		}

		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()
		if err := run(ctx); err != nil {
			system.Logger.Error("lint failed", "err", err)
		}
		system.Logger.Info("watching for changes", "path", path)
		return quality.Watch(ctx, path, func() {
			if err := run(ctx); err != nil {
				system.Logger.Error("lint failed", "err", err)
			}
		})
	},
}

func printReport(rep quality.Report, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	if rep.Error != "" {
		return fmt.Errorf("%s: %s", rep.File, rep.Error)
	}
	if len(rep.Tools) == 0 {
		fmt.Println("no tools available; run `pyctl check` to see what is missing")
		return nil
	}
	names := make([]string, 0, len(rep.Tools))
	for n := range rep.Tools {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		res := rep.Tools[n]
		if res.Failed() {
			fmt.Printf("%s %s: %s\n", badStyle.Render("×"), n, res.Err)
			continue
		}
		mark := okStyle.Render("✓")
		if res.ExitCode != 0 {
			mark = badStyle.Render("×")
		}
		fmt.Printf("%s %s (exit %d)\n", mark, n, res.ExitCode)
		if out := strings.TrimSpace(res.Stdout); out != "" {
			for _, line := range strings.Split(out, "\n") {
				fmt.Printf("    %s\n", line)
			}
		}
		if errs := strings.TrimSpace(res.Stderr); errs != "" {
			for _, line := range strings.Split(errs, "\n") {
				fmt.Printf("    %s\n", mutedStyle.Render(line))
			}
		}
	}
	return nil
}
