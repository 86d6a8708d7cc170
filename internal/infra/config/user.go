// Where: cli-rt/internal/infra/config/user.go
// What: User config load/save.
// Why: Manage ~/.cli-rt/config.yaml consistently.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cli-rt/cli-rt/internal/meta"
	"gopkg.in/yaml.v3"
)

// RecentProjectsLimit caps the recent_projects list.
const RecentProjectsLimit = 10

// UserConfig represents ~/.cli-rt/config.yaml.
type UserConfig struct {
	Version         int            `yaml:"version"`
	PackageManager  string         `yaml:"package_manager,omitempty"`
	TemplatesDir    string         `yaml:"templates_dir,omitempty"`
	FirebaseVersion string         `yaml:"firebase_version,omitempty"`
	RecentProjects  []ProjectEntry `yaml:"recent_projects,omitempty"`
}

// ProjectEntry records one scaffolded project.
type ProjectEntry struct {
	Name      string `yaml:"name"`
	Path      string `yaml:"path"`
	Template  string `yaml:"template"`
	CreatedAt string `yaml:"created_at"`
}

// DefaultUserConfig returns an initialized UserConfig with version set.
func DefaultUserConfig() UserConfig {
	return UserConfig{Version: 1}
}

// UserConfigPath returns the config file path, honoring CLI_RT_CONFIG.
func UserConfigPath() (string, error) {
	if override := strings.TrimSpace(os.Getenv(meta.EnvConfig)); override != "" {
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, meta.HomeDir, "config.yaml"), nil
}

// LoadUserConfig reads the config file. A missing file yields defaults.
func LoadUserConfig(path string) (UserConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultUserConfig(), nil
		}
		return UserConfig{}, fmt.Errorf("read user config: %w", err)
	}

	cfg := DefaultUserConfig()
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return UserConfig{}, fmt.Errorf("decode user config: %w", err)
	}
	return cfg, nil
}

// SaveUserConfig writes cfg to path, creating the parent directory.
func SaveUserConfig(path string, cfg UserConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encode user config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create user config dir: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return fmt.Errorf("write user config: %w", err)
	}
	return nil
}

// WithRecentProject puts entry first, drops older entries for the same
// path, and enforces limit.
func (c UserConfig) WithRecentProject(entry ProjectEntry, limit int) UserConfig {
	path := strings.TrimSpace(entry.Path)
	if path == "" {
		return c
	}
	next := make([]ProjectEntry, 0, limit)
	next = append(next, entry)
	for _, existing := range c.RecentProjects {
		if limit > 0 && len(next) >= limit {
			break
		}
		if strings.TrimSpace(existing.Path) == path {
			continue
		}
		next = append(next, existing)
	}
	c.RecentProjects = next
	return c
}
