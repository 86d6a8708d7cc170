// Where: cli-rt/internal/command/app_test.go
// What: Tests for CLI run behavior.
// Why: Ensure flag parsing, prompting, copying and installs stay wired together.
package command

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cli-rt/cli-rt/internal/infra/config"
	"github.com/cli-rt/cli-rt/internal/infra/installer"
	"github.com/cli-rt/cli-rt/internal/meta"
)

func TestRunWithAllFlagsDoesNotPrompt(t *testing.T) {
	env := newTestEnv(t)
	env.prompter.strict = true

	code := Run(context.Background(), []string{"--template", "react", "--name", "foo", "-f"}, env.deps)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, env.out.String())
	}
	if len(env.prompter.calls) != 0 {
		t.Fatalf("expected no prompts, got %v", env.prompter.calls)
	}

	target := filepath.Join(env.cwd, "foo")
	if got := readTestFile(t, filepath.Join(target, "package.json")); got != `{"name": "foo"}` {
		t.Fatalf("unexpected package.json: %q", got)
	}
	if got := readTestFile(t, filepath.Join(target, "src", "index.js")); got != "console.log('hi')\n" {
		t.Fatalf("unexpected index.js: %q", got)
	}
	if _, err := os.Stat(filepath.Join(target, "package.json.tmpl")); !os.IsNotExist(err) {
		t.Fatalf("template suffix should be stripped, stat err=%v", err)
	}
	if !strings.Contains(env.out.String(), "Successfully imported template") {
		t.Fatalf("missing import message: %s", env.out.String())
	}
}

func TestRunPromptsForMissingAnswers(t *testing.T) {
	env := newTestEnv(t)
	env.prompter.selects = []string{"React"}
	env.prompter.confirms = []bool{false}
	env.prompter.inputs = []string{"app"}

	code := Run(context.Background(), nil, env.deps)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, env.out.String())
	}

	want := []promptCall{
		{kind: "select", title: templatePromptTitle},
		{kind: "confirm", title: firebasePromptTitle},
		{kind: "input", title: namePromptTitle},
	}
	if len(env.prompter.calls) != len(want) {
		t.Fatalf("expected %d prompts, got %v", len(want), env.prompter.calls)
	}
	for i := range want {
		if env.prompter.calls[i] != want[i] {
			t.Fatalf("prompt %d: expected %v, got %v", i, want[i], env.prompter.calls[i])
		}
	}
	if _, err := os.Stat(filepath.Join(env.cwd, "app", "package.json")); err != nil {
		t.Fatalf("expected project copied: %v", err)
	}
	if len(env.installer.installs) != 0 {
		t.Fatalf("firebase declined, expected no installs, got %v", env.installer.installs)
	}
}

func TestRunMissingTemplateDirFails(t *testing.T) {
	env := newTestEnv(t)
	env.prompter.strict = true

	code := Run(context.Background(), []string{"-t", "tailwind", "-n", "foo", "-f"}, env.deps)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if _, err := os.Stat(filepath.Join(env.cwd, "foo")); !os.IsNotExist(err) {
		t.Fatalf("target must not be created, stat err=%v", err)
	}
	if !strings.Contains(env.out.String(), "Invalid template name") {
		t.Fatalf("missing error message: %s", env.out.String())
	}
	if len(env.installer.projectInstall) != 0 {
		t.Fatalf("no install expected after a failed copy")
	}
}

func TestRunUnknownTemplateLabelFails(t *testing.T) {
	env := newTestEnv(t)
	env.prompter.strict = true

	code := Run(context.Background(), []string{"-t", "vue", "-n", "foo", "-f"}, env.deps)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	out := env.out.String()
	if !strings.Contains(out, "Invalid template name") || !strings.Contains(out, "React with TailwindCSS") {
		t.Fatalf("expected error with available labels, got: %s", out)
	}
}

func TestRunFirebaseFailureStillInstallsProject(t *testing.T) {
	env := newTestEnv(t)
	env.installer.failOn = "firebase"

	code := Run(context.Background(), []string{"-t", "react", "-n", "foo", "-f", "-p", "lodash@4.0.0", "express"}, env.deps)
	if code != 0 {
		t.Fatalf("install failures are not fatal, got exit %d", code)
	}

	target := filepath.Join(env.cwd, "foo")
	if len(env.installer.installs) != 2 {
		t.Fatalf("expected firebase and custom installs, got %v", env.installer.installs)
	}
	if v := env.installer.installs[0].deps["firebase"]; v != meta.DefaultFirebaseVersion {
		t.Fatalf("expected firebase %s, got %q", meta.DefaultFirebaseVersion, v)
	}
	custom := env.installer.installs[1].deps
	if custom["lodash"] != "4.0.0" || custom["express"] != meta.LatestVersion {
		t.Fatalf("unexpected custom deps: %v", custom)
	}
	if len(env.installer.projectInstall) != 1 || env.installer.projectInstall[0] != target {
		t.Fatalf("expected project install in %s, got %v", target, env.installer.projectInstall)
	}
	out := env.out.String()
	if !strings.Contains(out, "something went wrong while installing firebase") {
		t.Fatalf("expected firebase failure message: %s", out)
	}
	if !strings.Contains(out, "Successfully installed dependencies") {
		t.Fatalf("expected project install success: %s", out)
	}
}

func TestRunDoesNotOverwriteExistingFiles(t *testing.T) {
	env := newTestEnv(t)
	existing := filepath.Join(env.cwd, "foo", "src", "index.js")
	writeTestFile(t, existing, "keep me\n")

	code := Run(context.Background(), []string{"-t", "react", "-n", "foo", "-f"}, env.deps)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, env.out.String())
	}
	if got := readTestFile(t, existing); got != "keep me\n" {
		t.Fatalf("existing file overwritten: %q", got)
	}
	if _, err := os.Stat(filepath.Join(env.cwd, "foo", "package.json")); err != nil {
		t.Fatalf("new files should still be copied: %v", err)
	}
}

func TestRunRecordsRecentProject(t *testing.T) {
	env := newTestEnv(t)
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	env.deps.UserConfigPath = func() (string, error) { return configPath, nil }

	if code := Run(context.Background(), []string{"-t", "react", "-n", "foo", "-f"}, env.deps); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, env.out.String())
	}

	cfg, err := config.LoadUserConfig(configPath)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.RecentProjects) != 1 {
		t.Fatalf("expected one recent project, got %v", cfg.RecentProjects)
	}
	entry := cfg.RecentProjects[0]
	if entry.Name != "foo" || entry.Template != "react" || entry.CreatedAt != "2024-01-02T03:04:05Z" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
}

func TestRunHelpPrintsUsage(t *testing.T) {
	env := newTestEnv(t)
	env.prompter.strict = true

	code := Run(context.Background(), []string{"-h"}, env.deps)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	out := env.out.String()
	if !strings.Contains(out, meta.Title) || !strings.Contains(out, "--template") {
		t.Fatalf("expected banner and usage, got: %s", out)
	}
	if _, err := os.Stat(filepath.Join(env.cwd, meta.DefaultProjectName)); !os.IsNotExist(err) {
		t.Fatalf("help must not scaffold")
	}
}

func TestRunUnknownFlagFails(t *testing.T) {
	env := newTestEnv(t)
	env.prompter.strict = true

	code := Run(context.Background(), []string{"--bogus"}, env.deps)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(env.out.String(), "--help") {
		t.Fatalf("expected help hint, got: %s", env.out.String())
	}
}

func TestRunMissingFlagValueShowsExample(t *testing.T) {
	env := newTestEnv(t)

	code := Run(context.Background(), []string{"--name"}, env.deps)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(env.out.String(), "-n my-app") {
		t.Fatalf("expected example hint, got: %s", env.out.String())
	}
}

func TestRunHonorsConfigPathFromDotEnv(t *testing.T) {
	env := newTestEnv(t)
	want := filepath.Join(t.TempDir(), "from-dotenv.yaml")
	writeTestFile(t, filepath.Join(env.cwd, ".env"), meta.EnvConfig+"="+want+"\n")
	t.Setenv(meta.EnvConfig, "")
	os.Unsetenv(meta.EnvConfig)
	env.deps.UserConfigPath = config.UserConfigPath

	if code := Run(context.Background(), []string{"-t", "react", "-n", "foo", "-f"}, env.deps); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, env.out.String())
	}
	cfg, err := config.LoadUserConfig(want)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.RecentProjects) != 1 || cfg.RecentProjects[0].Name != "foo" {
		t.Fatalf("expected project recorded at %s, got %+v", want, cfg.RecentProjects)
	}
}

func TestRunStopsInstallsWhenCancelled(t *testing.T) {
	env := newTestEnv(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	env.installer.onInstall = func(ctx context.Context) error {
		cancel()
		return ctx.Err()
	}

	code := Run(ctx, []string{"-t", "react", "-n", "foo", "-f", "-p", "lodash"}, env.deps)
	if code != exitInterrupted {
		t.Fatalf("expected exit %d, got %d: %s", exitInterrupted, code, env.out.String())
	}
	if len(env.installer.installs) != 1 {
		t.Fatalf("expected only the firebase install, got %v", env.installer.installs)
	}
	if len(env.installer.projectInstall) != 0 {
		t.Fatalf("project install must not start after cancellation")
	}
	out := env.out.String()
	if strings.Contains(out, "something went wrong") {
		t.Fatalf("cancellation must not be reported as an install failure: %s", out)
	}
	if !strings.Contains(out, "cancelled") {
		t.Fatalf("expected cancellation message: %s", out)
	}
}

func TestRunRejectsInvalidProjectNames(t *testing.T) {
	for _, name := range []string{`my"app`, "../escaped", "nested/app", ".."} {
		t.Run(name, func(t *testing.T) {
			env := newTestEnv(t)
			code := Run(context.Background(), []string{"-t", "react", "-n", name, "-f"}, env.deps)
			if code != 1 {
				t.Fatalf("expected exit 1, got %d", code)
			}
			if !strings.Contains(env.out.String(), "invalid project name") {
				t.Fatalf("expected invalid name message: %s", env.out.String())
			}
			if _, err := os.Stat(filepath.Join(filepath.Dir(env.cwd), "escaped")); !os.IsNotExist(err) {
				t.Fatalf("nothing may be written outside the working directory")
			}
			entries, err := os.ReadDir(env.cwd)
			if err != nil {
				t.Fatalf("read cwd: %v", err)
			}
			if len(entries) != 0 {
				t.Fatalf("expected empty working directory, got %d entries", len(entries))
			}
			if len(env.installer.projectInstall) != 0 {
				t.Fatalf("no install expected for an invalid name")
			}
		})
	}
}

func TestRunReportsInstallErrorKinds(t *testing.T) {
	env := newTestEnv(t)
	env.installer.onInstall = func(context.Context) error {
		return &installer.InstallError{Manager: installer.NPM, Args: []string{"install", "firebase@^9.6.2"}, Err: errors.New("exit status 1")}
	}
	env.installer.failProject = true

	code := Run(context.Background(), []string{"-t", "react", "-n", "foo", "-f"}, env.deps)
	if code != 0 {
		t.Fatalf("install failures are not fatal, got exit %d", code)
	}
	out := env.out.String()
	if !strings.Contains(out, "something went wrong while installing firebase") {
		t.Fatalf("expected firebase failure: %s", out)
	}
	if strings.Contains(out, "exit status 1") {
		t.Fatalf("package manager failures go to the log, not the console: %s", out)
	}
	// The project install fails outside the package manager and shows its cause.
	if !strings.Contains(out, "registry unavailable") {
		t.Fatalf("expected non-install error cause: %s", out)
	}
	if strings.Contains(out, "DONE") {
		t.Fatalf("DONE must follow a successful project install only: %s", out)
	}
}
