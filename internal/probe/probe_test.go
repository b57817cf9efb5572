package probe

import (
	"context"
	"testing"

	tu "pyctl/internal/testutil"
)

func TestRegistry_WellFormed(t *testing.T) {
	seen := map[DependencyID]bool{}
	for _, d := range Registry {
		if d.ID == "" {
			t.Fatalf("registry entry with empty ID: %+v", d)
		}
		if seen[d.ID] {
			t.Fatalf("duplicate registry ID %q", d.ID)
		}
		seen[d.ID] = true
		switch d.Kind {
		case KindPip:
			if d.Package == "" {
				t.Fatalf("pip entry %q has no package name", d.ID)
			}
		case KindBinary:
			if len(d.Binaries) == 0 {
				t.Fatalf("binary entry %q has no candidate binaries", d.ID)
			}
		case KindNative:
			if d.Native == nil {
				t.Fatalf("native entry %q has no probe func", d.ID)
			}
		}
	}
}

func TestDetect_BinaryInPath(t *testing.T) {
	tu.RequireShell(t)
	dir := t.TempDir()
	tu.StubCommand(t, dir, "pylint", `echo "pylint 3.1.0"`)
	defer tu.WithOnlyStubPath(t, dir)()

	snap := Detect(context.Background(), Options{})
	if !snap.Has(DepPylint) {
		t.Fatalf("expected pylint present")
	}
	if got := snap.Version(DepPylint); got != "3.1.0" {
		t.Fatalf("pylint version = %q, want 3.1.0", got)
	}
	// no interpreter: pip-backed probes degrade to absent, not errors
	if snap.Has(DepNumpy) {
		t.Fatalf("numpy should be absent without an interpreter")
	}
	if r, ok := snap.Lookup(DepNumpy); !ok || r.Err == "" {
		t.Fatalf("expected recorded probe error for numpy, got %+v", r)
	}
}

func TestDetect_PipFallbackForMissingBinary(t *testing.T) {
	tu.RequireShell(t)
	dir := t.TempDir()
	python := tu.StubCommand(t, dir, "python3", `
case "$3" in
  show) printf 'Name: %s\nVersion: 1.7.8\n' "$4"; exit 0 ;;
esac
exit 1`)
	defer tu.WithOnlyStubPath(t, dir)()

	snap := Detect(context.Background(), Options{Python: python})
	// bandit has no binary in PATH here, so presence comes from pip metadata
	r, ok := snap.Lookup(DepBandit)
	if !ok || !r.Present {
		t.Fatalf("expected bandit present via pip, got %+v", r)
	}
	if r.Source != "pip" || r.Version != "1.7.8" {
		t.Fatalf("unexpected bandit result: %+v", r)
	}
}

func TestDetect_ExtrasAreProbed(t *testing.T) {
	tu.RequireShell(t)
	dir := t.TempDir()
	python := tu.StubCommand(t, dir, "python3", `exit 1`)
	defer tu.WithOnlyStubPath(t, dir)()

	snap := Detect(context.Background(), Options{Python: python, Extra: []string{"httpx", " "}})
	if _, ok := snap.Lookup(DependencyID("httpx")); !ok {
		t.Fatalf("extra package was not probed")
	}
	if snap.Has(DependencyID("httpx")) {
		t.Fatalf("httpx should be absent when pip show fails")
	}
	deps := snap.Dependencies()
	if deps[len(deps)-1].ID != DependencyID("httpx") {
		t.Fatalf("extras should come after the registry, got %v", deps[len(deps)-1].ID)
	}
}
