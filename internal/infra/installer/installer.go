// Where: cli-rt/internal/infra/installer/installer.go
// What: Package installation for scaffolded projects.
// Why: Delegate dependency resolution to the project's Node package manager.
package installer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cli-rt/cli-rt/internal/domain/project"
)

// maxOutputTail caps how much installer output is carried in an error.
const maxOutputTail = 2048

// Installer installs packages into a project directory.
type Installer interface {
	// Install adds the given packages to the project manifest.
	Install(ctx context.Context, dir string, deps project.DependencyMap) error
	// ProjectInstall installs whatever the project manifest declares.
	ProjectInstall(ctx context.Context, dir string) error
}

// ErrInstallFailed matches any InstallError via errors.Is.
var ErrInstallFailed = errors.New("install failed")

// InstallError describes a failed package manager invocation.
type InstallError struct {
	Manager Manager
	Args    []string
	Output  string
	Err     error
}

func (e *InstallError) Error() string {
	msg := fmt.Sprintf("%s %s failed: %v", e.Manager, strings.Join(e.Args, " "), e.Err)
	if e.Output != "" {
		msg += "\n" + e.Output
	}
	return msg
}

func (e *InstallError) Unwrap() error { return e.Err }

func (e *InstallError) Is(target error) bool {
	return target == ErrInstallFailed
}

// NodeInstaller shells out to npm, yarn, pnpm or bun.
type NodeInstaller struct {
	Runner CommandRunner
	// Manager forces a package manager; empty means detect from lockfiles.
	Manager Manager
	Logger  *slog.Logger
}

// NewNodeInstaller returns an installer backed by os/exec.
func NewNodeInstaller(manager Manager, logger *slog.Logger) NodeInstaller {
	return NodeInstaller{Runner: ExecRunner{}, Manager: manager, Logger: logger}
}

func (n NodeInstaller) Install(ctx context.Context, dir string, deps project.DependencyMap) error {
	if len(deps) == 0 {
		return nil
	}
	manager := n.manager(dir)
	return n.run(ctx, dir, manager, manager.AddArgs(deps.Specifiers()))
}

func (n NodeInstaller) ProjectInstall(ctx context.Context, dir string) error {
	manager := n.manager(dir)
	return n.run(ctx, dir, manager, manager.InstallArgs())
}

func (n NodeInstaller) manager(dir string) Manager {
	if n.Manager != "" {
		return n.Manager
	}
	return Detect(dir)
}

func (n NodeInstaller) run(ctx context.Context, dir string, manager Manager, args []string) error {
	if n.Runner == nil {
		return fmt.Errorf("command runner is nil")
	}
	n.logger().Debug("running package manager", "dir", dir, "manager", manager, "args", args)
	output, err := n.Runner.RunOutput(ctx, dir, string(manager), args...)
	if err != nil {
		return &InstallError{
			Manager: manager,
			Args:    args,
			Output:  tail(strings.TrimSpace(string(output)), maxOutputTail),
			Err:     err,
		}
	}
	return nil
}

func (n NodeInstaller) logger() *slog.Logger {
	if n.Logger == nil {
		return slog.Default()
	}
	return n.Logger
}

func tail(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return "..." + s[len(s)-limit:]
}
