// Where: cli-rt/internal/infra/config/settings.go
// What: Effective settings from environment, .env and user config.
// Why: Resolve each knob once with a fixed precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cli-rt/cli-rt/internal/meta"
	"github.com/joho/godotenv"
)

// Settings are the effective knobs for one run.
type Settings struct {
	PackageManager  string
	TemplatesDir    string
	FirebaseVersion string
	LogLevel        string
}

// LoadDotEnv loads <dir>/.env when present. Variables already set in the
// process environment win.
func LoadDotEnv(dir string) error {
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ResolveSettings applies environment variables over the user config.
func ResolveSettings(cfg UserConfig, getenv func(string) string) Settings {
	if getenv == nil {
		getenv = os.Getenv
	}
	pick := func(envKey, configured, fallback string) string {
		if v := strings.TrimSpace(getenv(envKey)); v != "" {
			return v
		}
		if v := strings.TrimSpace(configured); v != "" {
			return v
		}
		return fallback
	}
	firebase := strings.TrimSpace(cfg.FirebaseVersion)
	if firebase == "" {
		firebase = meta.DefaultFirebaseVersion
	}
	return Settings{
		PackageManager:  pick(meta.EnvPackageManager, cfg.PackageManager, ""),
		TemplatesDir:    pick(meta.EnvTemplatesDir, cfg.TemplatesDir, ""),
		FirebaseVersion: firebase,
		LogLevel:        pick(meta.EnvLogLevel, "", "warn"),
	}
}
