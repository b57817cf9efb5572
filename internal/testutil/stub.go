package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// RequireShell skips the test on platforms where /bin/sh stubs cannot run.
func RequireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs are not supported on windows")
	}
}

// StubCommand writes an executable shell script named name into dir so tests
// can fake external tools by prepending dir to PATH.
func StubCommand(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	return path
}

// WithStubPath prepends dir to PATH for the duration of the test scope.
func WithStubPath(t *testing.T, dir string) func() {
	t.Helper()
	return WithEnv(t, "PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

// WithOnlyStubPath replaces PATH with dir so nothing outside it resolves.
func WithOnlyStubPath(t *testing.T, dir string) func() {
	t.Helper()
	return WithEnv(t, "PATH", dir)
}
