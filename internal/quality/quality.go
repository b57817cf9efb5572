// Package quality dispatches lint and format tools against a target path.
// Each tool runs only when its dependency flag is set; absent tools are simply
// not listed in the report.
package quality

import (
	"context"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"pyctl/internal/probe"
	"pyctl/internal/toolrun"
)

const toolTimeout = 2 * time.Minute

// ErrFileNotFound is the report-level error for a missing target path.
const ErrFileNotFound = "File not found"

// Report holds per-tool results for one dispatch call, keyed by tool name.
type Report struct {
	File  string                    `json:"file"`
	Error string                    `json:"error,omitempty"`
	Tools map[string]toolrun.Result `json:"checks,omitempty"`
}

type toolSpec struct {
	name string
	dep  probe.DependencyID
	args func(path string) []string
}

var lintTools = []toolSpec{
	{"pylint", probe.DepPylint, func(p string) []string { return []string{p} }},
	{"flake8", probe.DepFlake8, func(p string) []string { return []string{p} }},
	{"bandit", probe.DepBandit, func(p string) []string { return []string{"-f", "json", p} }},
}

var formatTools = []toolSpec{
	{"black", probe.DepBlack, func(p string) []string { return []string{"--check", "--diff", p} }},
	{"isort", probe.DepIsort, func(p string) []string { return []string{"--check-only", "--diff", p} }},
}

// Check runs every available lint tool against path.
func Check(ctx context.Context, flags probe.Flags, path string) Report {
	return dispatch(ctx, flags, path, lintTools)
}

// Format runs every available format checker against path.
func Format(ctx context.Context, flags probe.Flags, path string) Report {
	return dispatch(ctx, flags, path, formatTools)
}

// dispatch fans the selected tools out concurrently; results land in per-index
// slots and are merged after all invocations settle, so no lock is needed.
func dispatch(ctx context.Context, flags probe.Flags, path string, specs []toolSpec) Report {
	rep := Report{File: path}
	if _, err := os.Stat(path); err != nil {
		rep.Error = ErrFileNotFound
		return rep
	}

	var selected []toolSpec
	for _, sp := range specs {
		if flags.Has(sp.dep) {
			selected = append(selected, sp)
		}
	}
	if len(selected) == 0 {
		return rep
	}

	results := make([]toolrun.Result, len(selected))
	g, gctx := errgroup.WithContext(ctx)
	for i, sp := range selected {
		i, sp := i, sp
		g.Go(func() error {
			cctx, cancel := context.WithTimeout(gctx, toolTimeout)
			defer cancel()
			results[i] = toolrun.Run(cctx, sp.name, sp.name, sp.args(path)...)
			return nil
		})
	}
	_ = g.Wait()

	rep.Tools = make(map[string]toolrun.Result, len(selected))
	for i, sp := range selected {
		rep.Tools[sp.name] = results[i]
	}
	return rep
}
