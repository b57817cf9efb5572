package sysinfo

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"pyctl/internal/toolrun"
)

const gpuQueryTimeout = 10 * time.Second

var gpuQueryArgs = []string{
	"--query-gpu=index,name,memory.used,memory.total,temperature.gpu,utilization.gpu",
	"--format=csv,noheader,nounits",
}

// GPUInfo holds one device's readings as reported by nvidia-smi.
type GPUInfo struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	MemoryUsed  float64 `json:"memory_used"`
	MemoryTotal float64 `json:"memory_total"`
	Temperature float64 `json:"temperature"`
	Load        float64 `json:"load"`
}

// readGPUs enumerates GPU devices by dispatching nvidia-smi.
func readGPUs(ctx context.Context) ([]GPUInfo, error) {
	cctx, cancel := context.WithTimeout(ctx, gpuQueryTimeout)
	defer cancel()
	res := toolrun.Run(cctx, "nvidia-smi", "nvidia-smi", gpuQueryArgs...)
	if res.Failed() {
		return nil, errors.New(res.Err)
	}
	if res.ExitCode != 0 {
		return nil, fmt.Errorf("nvidia-smi exited %d: %s", res.ExitCode, strings.TrimSpace(res.Stderr))
	}
	return parseGPUCSV(res.Stdout)
}

// parseGPUCSV parses nvidia-smi query output in csv,noheader,nounits form.
func parseGPUCSV(s string) ([]GPUInfo, error) {
	r := csv.NewReader(strings.NewReader(s))
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	var gpus []GPUInfo
	for _, row := range rows {
		if len(row) != 6 {
			return nil, fmt.Errorf("unexpected nvidia-smi row: %v", row)
		}
		id, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			return nil, fmt.Errorf("gpu index: %w", err)
		}
		g := GPUInfo{ID: id, Name: strings.TrimSpace(row[1])}
		for i, dst := range []*float64{&g.MemoryUsed, &g.MemoryTotal, &g.Temperature, &g.Load} {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[i+2]), 64)
			if err != nil {
				return nil, fmt.Errorf("gpu field %d: %w", i+2, err)
			}
			*dst = v
		}
		// utilization.gpu is a percentage; report it as a 0-1 load like GPUtil does
		g.Load /= 100
		gpus = append(gpus, g)
	}
	return gpus, nil
}
