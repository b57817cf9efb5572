package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseGPUCSV(t *testing.T) {
	out := "0, NVIDIA GeForce RTX 3080, 1024, 10240, 65, 45\n" +
		"1, NVIDIA GeForce RTX 3090, 2048, 24576, 70, 90\n"
	gpus, err := parseGPUCSV(out)
	require.NoError(t, err)
	require.Len(t, gpus, 2)

	require.Equal(t, 0, gpus[0].ID)
	require.Equal(t, "NVIDIA GeForce RTX 3080", gpus[0].Name)
	require.Equal(t, 1024.0, gpus[0].MemoryUsed)
	require.Equal(t, 10240.0, gpus[0].MemoryTotal)
	require.Equal(t, 65.0, gpus[0].Temperature)
	require.InDelta(t, 0.45, gpus[0].Load, 1e-9)

	require.Equal(t, 1, gpus[1].ID)
	require.InDelta(t, 0.90, gpus[1].Load, 1e-9)
}

func TestParseGPUCSV_Empty(t *testing.T) {
	gpus, err := parseGPUCSV("")
	require.NoError(t, err)
	require.Empty(t, gpus)
}

func TestParseGPUCSV_Malformed(t *testing.T) {
	_, err := parseGPUCSV("0, only, three, fields\n")
	require.Error(t, err)

	_, err = parseGPUCSV("x, name, 1, 2, 3, 4\n")
	require.Error(t, err)
}
