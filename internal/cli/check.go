package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"pyctl/internal/capability"
	"pyctl/internal/probe"
)

// Vitesse-ish status colors
var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#4d9375"))
	badStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#cb7676"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#bfbaaa"))
)

var checkJSON bool

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "output JSON report")
}

type checkReport struct {
	Python          string                  `json:"python,omitempty"`
	Dependencies    map[string]probe.Result `json:"dependencies"`
	Capabilities    capability.Set          `json:"capabilities"`
	Recommendations map[string][]string     `json:"recommendations,omitempty"`
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Probe optional dependencies and report capabilities",
	Long:  "Probes every known optional package/tool once, then prints per-dependency status, the derived capability set, and missing-package recommendations.",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, caps := detect(cmd.Context())
		recs := capability.Suggestions(caps)

		if checkJSON {
			rep := checkReport{
				Python:          snap.Python(),
				Dependencies:    map[string]probe.Result{},
				Capabilities:    caps,
				Recommendations: recs,
			}
			for _, d := range snap.Dependencies() {
				if r, ok := snap.Lookup(d.ID); ok {
					rep.Dependencies[string(d.ID)] = r
				}
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(rep)
		}

		for _, d := range snap.Dependencies() {
			r, _ := snap.Lookup(d.ID)
			var line strings.Builder
			if r.Present {
				line.WriteString(okStyle.Render("✓"))
			} else {
				line.WriteString(badStyle.Render("×"))
			}
			line.WriteString(fmt.Sprintf(" %s", d.DisplayName))
			if r.Present {
				line.WriteString(" " + r.Version)
				if r.Source != "" {
					line.WriteString(mutedStyle.Render(" · via " + r.Source))
				}
			}
			fmt.Println(line.String())
		}

		fmt.Println()
		fmt.Printf("Capabilities: %s\n", caps.Summary())
		if len(recs) > 0 {
			fmt.Println("Missing package recommendations:")
			cats := make([]string, 0, len(recs))
			for c := range recs {
				cats = append(cats, c)
			}
			sort.Strings(cats)
			for _, c := range cats {
				fmt.Printf("  %s: %s\n", c, strings.Join(recs[c], ", "))
			}
		}
		return nil
	},
}
