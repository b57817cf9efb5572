package pip

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	tu "pyctl/internal/testutil"
)

func TestVersion_ParsesPipShow(t *testing.T) {
	tu.RequireShell(t)
	dir := t.TempDir()
	python := tu.StubCommand(t, dir, "python3", `printf 'Name: requests\nVersion: 2.32.3\nSummary: HTTP for Humans\n'`)

	v, err := Version(context.Background(), python, "requests")
	if err != nil {
		t.Fatalf("Version error: %v", err)
	}
	if v != "2.32.3" {
		t.Fatalf("version = %q, want 2.32.3", v)
	}
}

func TestVersion_NotInstalled(t *testing.T) {
	tu.RequireShell(t)
	dir := t.TempDir()
	python := tu.StubCommand(t, dir, "python3", `exit 1`)

	if _, err := Version(context.Background(), python, "requests"); err == nil {
		t.Fatalf("expected error for missing package")
	}
}

func TestVersion_NoInterpreter(t *testing.T) {
	if _, err := Version(context.Background(), "", "requests"); err == nil {
		t.Fatalf("expected error without interpreter")
	}
}

func TestInstall_Empty(t *testing.T) {
	got := Install(context.Background(), "python3", nil)
	if len(got) != 0 {
		t.Fatalf("expected empty result mapping, got %v", got)
	}
}

func TestInstall_AlreadyInstalledSkipsSubprocess(t *testing.T) {
	tu.RequireShell(t)
	dir := t.TempDir()
	marker := filepath.Join(dir, "install-ran")
	python := tu.StubCommand(t, dir, "python3", fmt.Sprintf(`
case "$3" in
  show) printf 'Name: X\nVersion: 1.0.0\n'; exit 0 ;;
  install) : > %s; exit 0 ;;
esac
exit 2`, marker))

	got := Install(context.Background(), python, []string{"X"})
	if got["X"] != OutcomeAlreadyInstalled {
		t.Fatalf("outcome = %q, want %q", got["X"], OutcomeAlreadyInstalled)
	}
	if _, err := os.Stat(marker); !os.IsNotExist(err) {
		t.Fatalf("installer subprocess should not have been launched")
	}
}

func TestInstall_Installs(t *testing.T) {
	tu.RequireShell(t)
	dir := t.TempDir()
	python := tu.StubCommand(t, dir, "python3", `
case "$3" in
  show) exit 1 ;;
  install) exit 0 ;;
esac
exit 2`)

	got := Install(context.Background(), python, []string{"Y"})
	if got["Y"] != OutcomeInstalled {
		t.Fatalf("outcome = %q, want %q", got["Y"], OutcomeInstalled)
	}
}

func TestInstall_FailureCarriesStderr(t *testing.T) {
	tu.RequireShell(t)
	dir := t.TempDir()
	python := tu.StubCommand(t, dir, "python3", `
case "$3" in
  show) exit 1 ;;
  install) echo boom >&2; exit 1 ;;
esac
exit 2`)

	got := Install(context.Background(), python, []string{"Y"})
	if got["Y"] != "failed: boom" {
		t.Fatalf("outcome = %q, want %q", got["Y"], "failed: boom")
	}
}

func TestInstall_LaunchErrorAndContinue(t *testing.T) {
	tu.RequireShell(t)
	dir := t.TempDir()
	// interpreter path that cannot be spawned at all
	badPython := filepath.Join(dir, "missing-python")

	got := Install(context.Background(), badPython, []string{"A", "B"})
	for _, name := range []string{"A", "B"} {
		outcome := got[name]
		if len(outcome) < 7 || outcome[:7] != "error: " {
			t.Fatalf("outcome[%s] = %q, want error: prefix", name, outcome)
		}
	}
}
