package config

import (
	"os"
	"os/exec"
	"strings"
)

// PythonEnv overrides interpreter discovery when set.
const PythonEnv = "PYCTL_PYTHON"

// ResolvePython locates the Python interpreter used for pip dispatch.
// Returns "" when no interpreter is available; pip-backed probes then
// degrade to absent.
func ResolvePython() string {
	if p := strings.TrimSpace(os.Getenv(PythonEnv)); p != "" {
		return p
	}
	for _, cand := range []string{"python3", "python"} {
		if p, err := exec.LookPath(cand); err == nil {
			return p
		}
	}
	return ""
}
