package command

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/cli-rt/cli-rt/internal/domain/project"
	"github.com/cli-rt/cli-rt/internal/infra/logging"
)

var errUnexpectedPrompt = errors.New("unexpected prompt")

type promptCall struct {
	kind  string
	title string
}

// fakePrompter answers from queues and records every call. With strict set,
// any prompt fails the run.
type fakePrompter struct {
	strict   bool
	selects  []string
	confirms []bool
	inputs   []string
	calls    []promptCall
}

func (p *fakePrompter) Select(_ context.Context, title string, _ []string, defaultValue string) (string, error) {
	p.calls = append(p.calls, promptCall{kind: "select", title: title})
	if p.strict {
		return "", errUnexpectedPrompt
	}
	if len(p.selects) == 0 {
		return defaultValue, nil
	}
	value := p.selects[0]
	p.selects = p.selects[1:]
	return value, nil
}

func (p *fakePrompter) Confirm(_ context.Context, title string, defaultValue bool) (bool, error) {
	p.calls = append(p.calls, promptCall{kind: "confirm", title: title})
	if p.strict {
		return false, errUnexpectedPrompt
	}
	if len(p.confirms) == 0 {
		return defaultValue, nil
	}
	value := p.confirms[0]
	p.confirms = p.confirms[1:]
	return value, nil
}

func (p *fakePrompter) Input(_ context.Context, title, defaultValue string) (string, error) {
	p.calls = append(p.calls, promptCall{kind: "input", title: title})
	if p.strict {
		return "", errUnexpectedPrompt
	}
	if len(p.inputs) == 0 {
		return defaultValue, nil
	}
	value := p.inputs[0]
	p.inputs = p.inputs[1:]
	return value, nil
}

type installCall struct {
	dir  string
	deps project.DependencyMap
}

// fakeInstaller records install requests. failOn makes Install fail for
// any request that contains the named package.
type fakeInstaller struct {
	mu             sync.Mutex
	installs       []installCall
	projectInstall []string
	failOn         string
	failProject    bool
	// onInstall, when set, decides the result of every Install call.
	onInstall func(ctx context.Context) error
}

func (f *fakeInstaller) Install(ctx context.Context, dir string, deps project.DependencyMap) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.installs = append(f.installs, installCall{dir: dir, deps: deps})
	if f.onInstall != nil {
		return f.onInstall(ctx)
	}
	if _, ok := deps[f.failOn]; ok && f.failOn != "" {
		return errors.New("registry unavailable")
	}
	return nil
}

func (f *fakeInstaller) ProjectInstall(_ context.Context, dir string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.projectInstall = append(f.projectInstall, dir)
	if f.failProject {
		return errors.New("registry unavailable")
	}
	return nil
}

type testEnv struct {
	cwd       string
	root      string
	out       *bytes.Buffer
	prompter  *fakePrompter
	installer *fakeInstaller
	deps      Dependencies
}

// newTestEnv builds Dependencies rooted in temp directories, with a single
// "react" template tree available under root.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		cwd:       t.TempDir(),
		root:      t.TempDir(),
		out:       &bytes.Buffer{},
		prompter:  &fakePrompter{},
		installer: &fakeInstaller{},
	}
	writeTestFile(t, filepath.Join(env.root, "react", "package.json.tmpl"), `{"name": {{ .ProjectName | kebabcase | toJson }}}`)
	writeTestFile(t, filepath.Join(env.root, "react", "src", "index.js"), "console.log('hi')\n")

	env.deps = Dependencies{
		Out:       env.out,
		ErrOut:    env.out,
		Prompter:  env.prompter,
		Installer: env.installer,
		Logger:    logging.Discard(),
		Getwd:     func() (string, error) { return env.cwd, nil },
		Getenv:    func(string) string { return "" },
		TemplatesRoot: func(string, bool, string) (string, error) {
			return env.root, nil
		},
		Now: func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) },
	}
	return env
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
