// Where: cli-rt/internal/infra/config/templates.go
// What: Template root discovery.
// Why: Find the bundled templates directory from env, config, or the install location.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cli-rt/cli-rt/internal/meta"
)

var executablePath = os.Executable

// ResolveTemplatesRoot returns the directory holding one subdirectory per
// template id.
// Priority order.
// 1. configured (CLI_RT_TEMPLATES_DIR or templates_dir from the user config).
// 2. Test mode: <cwd>/templates.
// 3. <directory of the executable>/templates.
func ResolveTemplatesRoot(configured string, testMode bool, cwd string) (string, error) {
	if dir := strings.TrimSpace(configured); dir != "" {
		return filepath.Abs(dir)
	}
	if testMode {
		return filepath.Join(cwd, meta.TemplatesDir), nil
	}

	exe, err := executablePath()
	if err != nil {
		return "", fmt.Errorf("resolve executable path: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), meta.TemplatesDir), nil
}
