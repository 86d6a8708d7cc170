// Where: cli-rt/internal/infra/installer/manager.go
// What: Node package manager selection and argument building.
// Why: Match the project's lockfile the way pkg-install style tools do.
package installer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cli-rt/cli-rt/internal/infra/fileops"
)

// Manager names a Node package manager executable.
type Manager string

const (
	NPM  Manager = "npm"
	Yarn Manager = "yarn"
	PNPM Manager = "pnpm"
	Bun  Manager = "bun"
)

var lockfiles = []struct {
	file    string
	manager Manager
}{
	{file: "yarn.lock", manager: Yarn},
	{file: "pnpm-lock.yaml", manager: PNPM},
	{file: "bun.lockb", manager: Bun},
	{file: "package-lock.json", manager: NPM},
}

// ParseManager validates a manager name. The empty string is invalid.
func ParseManager(value string) (Manager, error) {
	switch m := Manager(strings.ToLower(strings.TrimSpace(value))); m {
	case NPM, Yarn, PNPM, Bun:
		return m, nil
	default:
		return "", fmt.Errorf("unsupported package manager %q (use npm, yarn, pnpm or bun)", value)
	}
}

// Detect picks the manager whose lockfile exists in dir, defaulting to npm.
func Detect(dir string) Manager {
	for _, lock := range lockfiles {
		if fileops.FileExists(filepath.Join(dir, lock.file)) {
			return lock.manager
		}
	}
	return NPM
}

// AddArgs returns the arguments that add specs to the project manifest.
func (m Manager) AddArgs(specs []string) []string {
	verb := "add"
	if m == NPM {
		verb = "install"
	}
	return append([]string{verb}, specs...)
}

// InstallArgs returns the arguments that install the declared manifest.
func (m Manager) InstallArgs() []string {
	return []string{"install"}
}
