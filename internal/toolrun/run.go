package toolrun

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
)

// Result captures one external tool run: exit status plus both output streams.
// A launch failure (missing binary, permission denied) is recorded in Err and
// never propagated; ExitCode is -1 when the process never ran.
type Result struct {
	Tool     string `json:"tool"`
	ExitCode int    `json:"exit_code"`
	Stdout   string `json:"output"`
	Stderr   string `json:"errors"`
	Err      string `json:"error,omitempty"`
}

// Failed reports whether the tool could not be launched at all.
func (r Result) Failed() bool { return r.Err != "" }

// Run executes name with args and captures both streams separately.
// Callers bound the run with a context deadline where appropriate.
func Run(ctx context.Context, tool, name string, args ...string) Result {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	// Avoid opening pager or interactive prompts
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Tool: tool, Stdout: stdout.String(), Stderr: stderr.String()}
	if ctx.Err() == context.DeadlineExceeded {
		res.ExitCode = -1
		res.Err = ctx.Err().Error()
		return res
	}
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		res.ExitCode = cmd.ProcessState.ExitCode()
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	default:
		res.ExitCode = -1
		res.Err = err.Error()
	}
	return res
}

// Output returns combined trimmed output, preferring stdout.
func (r Result) Output() string {
	if s := strings.TrimSpace(r.Stdout); s != "" {
		return s
	}
	return strings.TrimSpace(r.Stderr)
}
