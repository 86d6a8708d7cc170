// Where: cli-rt/internal/infra/installer/runner.go
// What: External command execution for package managers.
// Why: Keep os/exec behind an interface so install steps are testable.
package installer

import (
	"context"
	"fmt"
	"os/exec"
)

// CommandRunner defines the interface for executing external commands.
type CommandRunner interface {
	RunOutput(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// ExecRunner is a concrete implementation of CommandRunner using os/exec.
type ExecRunner struct{}

// RunOutput runs name in dir and returns combined stdout and stderr.
func (r ExecRunner) RunOutput(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return output, fmt.Errorf("run %s: %w", name, err)
	}
	return output, nil
}
