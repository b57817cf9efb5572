package probe

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"pyctl/internal/pip"
	"pyctl/internal/toolrun"
)

const (
	versionTimeout = 3 * time.Second
	pipTimeout     = 15 * time.Second

	// VersionUnknown marks a dependency whose presence was established but
	// whose version could not be resolved.
	VersionUnknown = "unknown"
)

// Options configure a detection pass.
type Options struct {
	// Python is the interpreter used for pip metadata lookups; empty means
	// no interpreter was found and every pip probe degrades to absent.
	Python string
	// Extra lists user-added pip packages probed on top of the registry.
	Extra []string
}

// Snapshot holds the outcome of one detection pass. It is immutable after
// construction: operations consult it on every call and never re-probe.
type Snapshot struct {
	deps    []DependencyInfo
	results map[DependencyID]Result
	python  string
}

// Detect probes every registry entry plus extras and returns the snapshot.
// Individual probe failures degrade that dependency to absent; Detect itself
// never fails.
func Detect(ctx context.Context, opts Options) *Snapshot {
	deps := make([]DependencyInfo, 0, len(Registry)+len(opts.Extra))
	deps = append(deps, Registry...)
	for _, name := range opts.Extra {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		deps = append(deps, DependencyInfo{
			ID:          DependencyID(name),
			DisplayName: name + " (extra)",
			Kind:        KindPip,
			Package:     name,
		})
	}

	results := make([]Result, len(deps))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, d := range deps {
		i, d := i, d
		g.Go(func() error {
			results[i] = probeOne(gctx, opts.Python, d)
			return nil
		})
	}
	_ = g.Wait()

	snap := &Snapshot{deps: deps, results: make(map[DependencyID]Result, len(deps)), python: opts.Python}
	for i, d := range deps {
		snap.results[d.ID] = results[i]
	}
	return snap
}

func probeOne(ctx context.Context, python string, d DependencyInfo) Result {
	switch d.Kind {
	case KindNative:
		ver, err := d.Native(ctx)
		if err != nil {
			return Result{Err: err.Error()}
		}
		if ver == "" {
			ver = VersionUnknown
		}
		return Result{Present: true, Version: ver, Source: "native"}
	case KindBinary:
		for _, bin := range d.Binaries {
			path, err := exec.LookPath(bin)
			if err != nil {
				continue
			}
			for _, args := range d.VersionArgs {
				cctx, cancel := context.WithTimeout(ctx, versionTimeout)
				res := toolrun.Run(cctx, bin, path, args...)
				cancel()
				if res.Failed() || res.Output() == "" {
					continue
				}
				ver := ParseVersion(res.Output())
				if ver == "" {
					ver = strings.Split(res.Output(), "\n")[0]
				}
				return Result{Present: true, Version: ver, Source: bin}
			}
			// Found binary but no version output; still consider present
			return Result{Present: true, Version: VersionUnknown, Source: bin}
		}
		fallthrough
	case KindPip:
		if d.Package == "" {
			return Result{Err: "not found in PATH"}
		}
		if python == "" {
			return Result{Err: "no python interpreter for pip lookup"}
		}
		cctx, cancel := context.WithTimeout(ctx, pipTimeout)
		defer cancel()
		ver, err := pip.Version(cctx, python, d.Package)
		if err != nil {
			return Result{Err: err.Error()}
		}
		if ver == "" {
			ver = VersionUnknown
		}
		return Result{Present: true, Version: ver, Source: "pip"}
	}
	return Result{Err: "unknown probe kind"}
}

// Has reports whether the dependency was detected as present.
func (s *Snapshot) Has(id DependencyID) bool {
	return s.results[id].Present
}

// Version returns the resolved version for a present dependency, "" otherwise.
func (s *Snapshot) Version(id DependencyID) string {
	r := s.results[id]
	if !r.Present {
		return ""
	}
	return r.Version
}

// Lookup returns the raw probe result for id.
func (s *Snapshot) Lookup(id DependencyID) (Result, bool) {
	r, ok := s.results[id]
	return r, ok
}

// Dependencies returns the probed entries in registry order (extras last).
func (s *Snapshot) Dependencies() []DependencyInfo {
	out := make([]DependencyInfo, len(s.deps))
	copy(out, s.deps)
	return out
}

// Python returns the interpreter the snapshot was probed with.
func (s *Snapshot) Python() string { return s.python }
