// Package sysinfo assembles the per-session environment report: platform,
// capability snapshot, installed versions, and best-effort resource readings.
package sysinfo

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"

	"pyctl/internal/capability"
	"pyctl/internal/probe"
	"pyctl/internal/system"
)

// ResourceInfo holds host utilization readings.
type ResourceInfo struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	DiskPercent   float64 `json:"disk_usage"`
	CPUCount      int     `json:"cpu_count"`
	MemoryTotalGB float64 `json:"memory_total_gb"`
}

// SessionInfo is the read-only environment report for this process lifetime.
type SessionInfo struct {
	SessionID         string            `json:"session_id"`
	StartTime         time.Time         `json:"start_time"`
	Platform          string            `json:"platform"`
	GoVersion         string            `json:"go_version"`
	Capabilities      capability.Set    `json:"capabilities"`
	InstalledPackages map[string]string `json:"installed_packages"`
	Resources         *ResourceInfo     `json:"system_resources,omitempty"`
	GPUs              []GPUInfo         `json:"gpus,omitempty"`
}

// Collect builds the session report. Every optional sub-section independently
// degrades to absent on error; Collect itself never fails.
func Collect(ctx context.Context, snap *probe.Snapshot, caps capability.Set) *SessionInfo {
	info := &SessionInfo{
		SessionID:         uuid.NewString(),
		StartTime:         time.Now(),
		Platform:          fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		GoVersion:         runtime.Version(),
		Capabilities:      caps,
		InstalledPackages: make(map[string]string),
	}

	for _, d := range snap.Dependencies() {
		r, ok := snap.Lookup(d.ID)
		if !ok || !r.Present {
			continue
		}
		ver := r.Version
		if ver == "" {
			ver = probe.VersionUnknown
		}
		info.InstalledPackages[string(d.ID)] = ver
	}

	if snap.Has(probe.DepHostMetrics) {
		if res, err := readResources(ctx); err != nil {
			system.Logger.Warn("could not get system resources", "err", err)
		} else {
			info.Resources = res
		}
	}

	if snap.Has(probe.DepNvidiaSMI) {
		if gpus, err := readGPUs(ctx); err != nil {
			system.Logger.Warn("could not get GPU information", "err", err)
		} else {
			info.GPUs = gpus
		}
	}

	return info
}

func readResources(ctx context.Context) (*ResourceInfo, error) {
	pct, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil || len(pct) == 0 {
		return nil, fmt.Errorf("cpu percent: %w", err)
	}
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("virtual memory: %w", err)
	}
	root := "/"
	if runtime.GOOS == "windows" {
		root = "C:"
	}
	du, err := disk.UsageWithContext(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("disk usage: %w", err)
	}
	count, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("cpu count: %w", err)
	}
	return &ResourceInfo{
		CPUPercent:    pct[0],
		MemoryPercent: vm.UsedPercent,
		DiskPercent:   du.UsedPercent,
		CPUCount:      count,
		MemoryTotalGB: float64(vm.Total) / (1 << 30),
	}, nil
}
