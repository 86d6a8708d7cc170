// Where: cli-rt/internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep branding, env names and defaults in one place.
package meta

const (
	// Project Identity
	AppName   = "cli-rt"
	Title     = "CLI - RT"
	EnvPrefix = "CLI_RT"

	// Directory Layout
	HomeDir      = ".cli-rt"
	TemplatesDir = "templates"

	// Environment variables
	EnvTemplatesDir   = EnvPrefix + "_TEMPLATES_DIR"
	EnvPackageManager = EnvPrefix + "_PACKAGE_MANAGER"
	EnvLogLevel       = EnvPrefix + "_LOG_LEVEL"
	EnvConfig         = EnvPrefix + "_CONFIG"

	// Scaffold defaults
	DefaultProjectName     = "untitled-project"
	DefaultTemplateLabel   = "React"
	DefaultFirebaseVersion = "^9.6.2"
	LatestVersion          = "latest"
)
