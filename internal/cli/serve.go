package cli

import (
	"encoding/json"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"pyctl/internal/capability"
	"pyctl/internal/system"
	"pyctl/internal/sysinfo"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the capability service until interrupted",
	Long:  "Detects capabilities once, logs a summary plus system info and missing-package recommendations, then idles until SIGINT/SIGTERM.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		snap, caps := detect(ctx)
		info := sysinfo.Collect(ctx, snap, caps)
		system.Logger.Info("pyctl initialized", "session", info.SessionID)
		system.Logger.Info("available capabilities", "capabilities", caps.Summary())

		if b, err := json.MarshalIndent(info, "", "  "); err != nil {
			// startup errors are logged in full, never crash-looped
			system.Logger.Error("could not encode system info", "err", err)
		} else {
			system.Logger.Info("system info collected\n" + string(b))
		}

		if recs := capability.Suggestions(caps); len(recs) > 0 {
			system.Logger.Info("missing package recommendations:")
			for category, pkgs := range recs {
				system.Logger.Info("  "+category, "packages", strings.Join(pkgs, ", "))
			}
		}

		system.Logger.Info("pyctl is running. Press Ctrl+C to stop.")
		t := time.NewTicker(time.Second)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				system.Logger.Info("pyctl stopped")
				return nil
			case <-t.C:
				// periodic no-op wait
			}
		}
	},
}
