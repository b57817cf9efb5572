package sysinfo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"pyctl/internal/capability"
	"pyctl/internal/probe"
	tu "pyctl/internal/testutil"
)

// Collect must never fail: with nothing installed every optional section is
// simply absent.
func TestCollect_DegradesToAbsentSections(t *testing.T) {
	tu.RequireShell(t)
	defer tu.WithOnlyStubPath(t, t.TempDir())()

	snap := probe.Detect(context.Background(), probe.Options{})
	caps := capability.Derive(snap)
	info := Collect(context.Background(), snap, caps)

	require.NotEmpty(t, info.SessionID)
	require.False(t, info.StartTime.IsZero())
	require.NotEmpty(t, info.Platform)
	require.NotEmpty(t, info.GoVersion)
	require.Equal(t, caps, info.Capabilities)
	// no GPU flag, no GPU section
	require.Empty(t, info.GPUs)
}

func TestCollect_ReportsPresentVersions(t *testing.T) {
	tu.RequireShell(t)
	dir := t.TempDir()
	tu.StubCommand(t, dir, "black", `echo "black, 24.4.2 (compiled: yes)"`)
	defer tu.WithOnlyStubPath(t, dir)()

	snap := probe.Detect(context.Background(), probe.Options{})
	info := Collect(context.Background(), snap, capability.Derive(snap))

	require.Equal(t, "24.4.2", info.InstalledPackages["black"])
	require.NotContains(t, info.InstalledPackages, "numpy")
}
