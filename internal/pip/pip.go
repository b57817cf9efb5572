// Package pip wraps the platform package installer: version lookups through
// pip metadata and per-package installs dispatched as child processes.
package pip

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pyctl/internal/system"
	"pyctl/internal/toolrun"
)

// Per-package install outcomes
const (
	OutcomeAlreadyInstalled = "already_installed"
	OutcomeInstalled        = "installed"
)

const (
	showTimeout    = 15 * time.Second
	installTimeout = 10 * time.Minute
)

// Version resolves the installed version of pkg via `<python> -m pip show`.
func Version(ctx context.Context, python, pkg string) (string, error) {
	if strings.TrimSpace(python) == "" {
		return "", errors.New("no python interpreter available")
	}
	res := toolrun.Run(ctx, pkg, python, "-m", "pip", "show", pkg)
	if res.Failed() {
		return "", errors.New(res.Err)
	}
	if res.ExitCode != 0 {
		return "", fmt.Errorf("package not found: %s", pkg)
	}
	for _, line := range strings.Split(res.Stdout, "\n") {
		if v, ok := strings.CutPrefix(line, "Version:"); ok {
			return strings.TrimSpace(v), nil
		}
	}
	return "", fmt.Errorf("no version in pip metadata for %s", pkg)
}

// Install installs each requested package and returns an outcome per name.
// Already-resolvable packages are skipped without launching a subprocess;
// any single package's failure never stops the remaining installs.
func Install(ctx context.Context, python string, names []string) map[string]string {
	results := make(map[string]string, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		vctx, vcancel := context.WithTimeout(ctx, showTimeout)
		v, err := Version(vctx, python, name)
		vcancel()
		if err == nil && v != "" {
			results[name] = OutcomeAlreadyInstalled
			continue
		}
		if strings.TrimSpace(python) == "" {
			results[name] = "error: no python interpreter available"
			continue
		}

		cctx, cancel := context.WithTimeout(ctx, installTimeout)
		res := toolrun.Run(cctx, name, python, "-m", "pip", "install", name)
		cancel()
		switch {
		case res.Failed():
			results[name] = "error: " + res.Err
			system.Logger.Error("error installing package", "package", name, "err", res.Err)
		case res.ExitCode == 0:
			results[name] = OutcomeInstalled
			system.Logger.Info("successfully installed package", "package", name)
		default:
			results[name] = "failed: " + strings.TrimSpace(res.Stderr)
			system.Logger.Error("failed to install package", "package", name, "exit", res.ExitCode)
		}
	}
	return results
}
