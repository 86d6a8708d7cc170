// Where: cli-rt/internal/command/scaffold.go
// What: The scaffold pipeline: prompts, template resolution, copy, installs.
// Why: Keep the linear flow readable in one place.
package command

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cli-rt/cli-rt/internal/domain/project"
	"github.com/cli-rt/cli-rt/internal/domain/template"
	"github.com/cli-rt/cli-rt/internal/infra/config"
	"github.com/cli-rt/cli-rt/internal/infra/fileops"
	"github.com/cli-rt/cli-rt/internal/infra/templategen"
	"github.com/cli-rt/cli-rt/internal/infra/ui"
)

// exitInterrupted is the conventional status for a run stopped by SIGINT.
const exitInterrupted = 130

func runScaffold(ctx context.Context, opts project.CliOptions, deps Dependencies, console ui.UserInterface) int {
	s, err := newSession(deps, console)
	if err != nil {
		return exitWithError(console, err)
	}

	answers, err := collectAnswers(ctx, s.deps.Prompter, s.deps.Catalog.Labels(), opts)
	if err != nil {
		return exitWithError(console, err)
	}

	projectOpts, err := s.resolveProject(answers, opts)
	if err != nil {
		return s.reportFatal(err)
	}
	s.logger.Debug("resolved project",
		"template", projectOpts.TemplateID,
		"template_dir", projectOpts.TemplateDir,
		"target_dir", projectOpts.TargetDir,
	)

	stats, err := s.copyTemplate(ctx, projectOpts)
	if err != nil {
		return s.reportFatal(err)
	}
	s.recordProject(projectOpts)

	results, err := s.runInstallSteps(ctx, installSteps(projectOpts, s.deps.Installer, s.settings.FirebaseVersion))
	if err != nil {
		console.Error("Interrupted.")
		return exitInterrupted
	}
	s.printSummary(projectOpts, stats, results)
	return 0
}

// resolveProject maps the chosen label to a template and computes paths.
func (s *session) resolveProject(answers Answers, opts project.CliOptions) (project.ProjectOptions, error) {
	def, err := s.deps.Catalog.Resolve(answers.Template)
	if err != nil {
		return project.ProjectOptions{}, err
	}
	root, err := s.deps.TemplatesRoot(s.settings.TemplatesDir, opts.Test, s.cwd)
	if err != nil {
		return project.ProjectOptions{}, err
	}
	projectOpts, err := project.NewProjectOptions(def.ID, def.Label, answers.Name, root, s.cwd)
	if err != nil {
		return project.ProjectOptions{}, err
	}
	projectOpts.InstallFirebase = answers.Firebase
	projectOpts.Dependencies = project.ParsePackages(opts.Packages)
	return projectOpts, nil
}

// copyTemplate verifies the template tree before touching the target, then
// copies it without overwriting anything already there.
func (s *session) copyTemplate(ctx context.Context, opts project.ProjectOptions) (fileops.CopyStats, error) {
	if err := fileops.CheckReadableDir(opts.TemplateDir); err != nil {
		return fileops.CopyStats{}, &template.TemplateNotFoundError{ID: opts.TemplateID, Dir: opts.TemplateDir, Err: err}
	}

	renderer := templategen.Renderer{Data: templategen.Data{
		ProjectName:   opts.ProjectName,
		TemplateID:    opts.TemplateID,
		TemplateLabel: opts.TemplateLabel,
	}}
	var stats fileops.CopyStats
	err := s.deps.Progress.Run(ctx, "Copying template...", func(context.Context) error {
		var copyErr error
		stats, copyErr = renderer.Copy(opts.TemplateDir, opts.TargetDir)
		return copyErr
	})
	if err != nil {
		return stats, fmt.Errorf("copy template %s: %w", opts.TemplateID, err)
	}
	s.ui.Success(fmt.Sprintf("Successfully imported template %s!", s.ui.Accent(opts.TemplateLabel)))
	return stats, nil
}

func (s *session) recordProject(opts project.ProjectOptions) {
	if s.configPath == "" {
		return
	}
	next := s.userCfg.WithRecentProject(config.ProjectEntry{
		Name:      opts.ProjectName,
		Path:      opts.TargetDir,
		Template:  opts.TemplateID,
		CreatedAt: s.deps.Now().UTC().Format(time.RFC3339),
	}, config.RecentProjectsLimit)
	if err := config.SaveUserConfig(s.configPath, next); err != nil {
		s.logger.Warn("failed to record project", "err", err)
	}
}

func (s *session) printSummary(opts project.ProjectOptions, stats fileops.CopyStats, results []StepResult) {
	rows := []ui.KeyValue{
		{Key: "Template", Value: opts.TemplateLabel},
		{Key: "Location", Value: opts.TargetDir},
		{Key: "Files", Value: fmt.Sprintf("%d written, %d skipped", stats.Written, stats.Skipped)},
	}
	var failed []string
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r.Name)
		}
	}
	if len(failed) > 0 {
		rows = append(rows, ui.KeyValue{Key: "Failed installs", Value: strings.Join(failed, ", ")})
	}
	s.ui.Block("📦", opts.ProjectName, rows)

	// DONE follows a successful project dependency install.
	if last := results[len(results)-1]; last.Err == nil && !last.Skipped {
		s.ui.Done()
	}
}

// reportFatal prints a fatal scaffold error and returns exit code 1.
func (s *session) reportFatal(err error) int {
	switch {
	case errors.Is(err, template.ErrUnknownTemplate):
		s.ui.Error("Invalid template name")
		s.ui.Info("Available templates: " + strings.Join(s.deps.Catalog.Labels(), ", "))
	case errors.Is(err, project.ErrInvalidProjectName):
		s.ui.Error(err.Error())
	case errors.Is(err, template.ErrTemplateNotFound):
		s.ui.Error("Invalid template name")
		s.logger.Debug("template directory unavailable", "err", err)
	default:
		s.ui.Error(fmt.Sprintf("Oh, something went wrong. :c (%v)", err))
	}
	return 1
}
