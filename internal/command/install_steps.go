// Where: cli-rt/internal/command/install_steps.go
// What: Best-effort post-copy install sequence.
// Why: A failed install is reported but never blocks the remaining steps.
package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/cli-rt/cli-rt/internal/domain/project"
	"github.com/cli-rt/cli-rt/internal/infra/installer"
)

type installStep struct {
	name    string
	enabled bool
	run     func(ctx context.Context) error
}

// StepResult records the outcome of one install step.
type StepResult struct {
	Name    string
	Skipped bool
	Err     error
}

func installSteps(opts project.ProjectOptions, inst installer.Installer, firebaseVersion string) []installStep {
	dir := opts.TargetDir
	return []installStep{
		{
			name:    "firebase",
			enabled: opts.InstallFirebase,
			run: func(ctx context.Context) error {
				return inst.Install(ctx, dir, project.DependencyMap{"firebase": firebaseVersion})
			},
		},
		{
			name:    "custom dependencies",
			enabled: opts.HasCustomDependencies(),
			run: func(ctx context.Context) error {
				return inst.Install(ctx, dir, opts.Dependencies)
			},
		},
		{
			name:    "dependencies",
			enabled: true,
			run: func(ctx context.Context) error {
				return inst.ProjectInstall(ctx, dir)
			},
		},
	}
}

// runInstallSteps runs the enabled steps in order. A failed step does not
// stop the sequence; a cancelled context does, and is returned.
func (s *session) runInstallSteps(ctx context.Context, steps []installStep) ([]StepResult, error) {
	results := make([]StepResult, 0, len(steps))
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		if !step.enabled {
			results = append(results, StepResult{Name: step.name, Skipped: true})
			continue
		}
		err := s.deps.Progress.Run(ctx, fmt.Sprintf("Installing %s...", step.name), step.run)
		results = append(results, StepResult{Name: step.name, Err: err})
		if err == nil {
			s.ui.Success(fmt.Sprintf("Successfully installed %s", step.name))
			continue
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			s.ui.Warn(fmt.Sprintf("Installing %s was cancelled.", step.name))
			return results, ctxErr
		}
		s.reportInstallFailure(step.name, err)
	}
	return results, nil
}

func (s *session) reportInstallFailure(name string, err error) {
	s.ui.Error(fmt.Sprintf("Oh, something went wrong while installing %s. :c", name))
	var installErr *installer.InstallError
	if errors.Is(err, installer.ErrInstallFailed) && errors.As(err, &installErr) {
		s.logger.Warn("install step failed",
			"step", name,
			"manager", installErr.Manager,
			"args", installErr.Args,
			"err", installErr.Err,
		)
		if installErr.Output != "" {
			s.logger.Debug("package manager output", "step", name, "output", installErr.Output)
		}
		return
	}
	// Anything else never reached the package manager.
	s.ui.Info(err.Error())
	s.logger.Warn("install step failed", "step", name, "err", err)
}
