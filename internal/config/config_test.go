package config

import (
	"testing"

	tu "pyctl/internal/testutil"
)

func TestExtras_AddRemoveLoad(t *testing.T) {
	tmp := t.TempDir()
	// direct UserConfigDir to temp
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)() // fallback

	got, err := LoadExtras()
	if err != nil {
		t.Fatalf("LoadExtras error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty extras, got %v", got)
	}

	added, existed, err := AddExtras([]string{"httpx", "rich", "httpx", " "})
	if err != nil {
		t.Fatalf("AddExtras error: %v", err)
	}
	if len(added) != 2 || len(existed) != 0 {
		t.Fatalf("unexpected add result: added=%v existed=%v", added, existed)
	}

	_, existed, err = AddExtras([]string{"rich"})
	if err != nil {
		t.Fatalf("AddExtras error: %v", err)
	}
	if len(existed) != 1 || existed[0] != "rich" {
		t.Fatalf("expected rich to exist already, got %v", existed)
	}

	removed, missing, err := RemoveExtras([]string{"rich", "absent"})
	if err != nil {
		t.Fatalf("RemoveExtras error: %v", err)
	}
	if len(removed) != 1 || removed[0] != "rich" {
		t.Fatalf("unexpected removed: %v", removed)
	}
	if len(missing) != 1 || missing[0] != "absent" {
		t.Fatalf("unexpected missing: %v", missing)
	}

	got, err = LoadExtras()
	if err != nil {
		t.Fatalf("LoadExtras error: %v", err)
	}
	if len(got) != 1 || got[0] != "httpx" {
		t.Fatalf("unexpected extras after removal: %v", got)
	}
}

func TestResolvePython_EnvOverride(t *testing.T) {
	defer tu.WithEnv(t, PythonEnv, "/opt/py/bin/python3")()
	if got := ResolvePython(); got != "/opt/py/bin/python3" {
		t.Fatalf("ResolvePython = %q", got)
	}
}

func TestResolvePython_PathLookup(t *testing.T) {
	tu.RequireShell(t)
	dir := t.TempDir()
	want := tu.StubCommand(t, dir, "python3", `echo Python 3.12.1`)
	defer tu.WithEnv(t, PythonEnv, "")()
	defer tu.WithOnlyStubPath(t, dir)()

	if got := ResolvePython(); got != want {
		t.Fatalf("ResolvePython = %q, want %q", got, want)
	}
}

func TestResolvePython_NoneFound(t *testing.T) {
	defer tu.WithEnv(t, PythonEnv, "")()
	defer tu.WithOnlyStubPath(t, t.TempDir())()
	if got := ResolvePython(); got != "" {
		t.Fatalf("expected empty interpreter, got %q", got)
	}
}
