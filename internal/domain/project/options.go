// Where: cli-rt/internal/domain/project/options.go
// What: Resolved options for a single scaffold run.
// Why: Carry every decided value through the pipeline instead of globals.
package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
)

// ErrInvalidProjectName is returned for names that cannot be a directory
// directly under the working directory.
var ErrInvalidProjectName = errors.New("invalid project name")

// CliOptions are the flags as parsed from the command line.
type CliOptions struct {
	Packages []string
	Template string
	Firebase bool
	Test     bool
	Name     string
	Help     bool
}

// ProjectOptions is the resolved configuration of one scaffold operation.
type ProjectOptions struct {
	TemplateID      string
	TemplateLabel   string
	ProjectName     string
	TemplateDir     string
	TargetDir       string
	InstallFirebase bool
	Dependencies    DependencyMap
}

// NewProjectOptions computes the template and target directories.
// The template lives at <templatesRoot>/<id>; the target at <cwd>/<name>.
func NewProjectOptions(templateID, label, name, templatesRoot, cwd string) (ProjectOptions, error) {
	name = strings.TrimSpace(name)
	if err := ValidateProjectName(name); err != nil {
		return ProjectOptions{}, err
	}
	if strings.TrimSpace(templateID) == "" {
		return ProjectOptions{}, fmt.Errorf("template id is required")
	}
	return ProjectOptions{
		TemplateID:    templateID,
		TemplateLabel: label,
		ProjectName:   name,
		TemplateDir:   filepath.Join(templatesRoot, templateID),
		TargetDir:     filepath.Join(cwd, name),
	}, nil
}

// HasCustomDependencies reports whether user packages should be installed.
func (o ProjectOptions) HasCustomDependencies() bool {
	return len(o.Dependencies) > 0
}

// ValidateProjectName rejects names that are empty, are "." or "..",
// contain path separators, quotes or control characters.
func ValidateProjectName(name string) error {
	switch name {
	case "":
		return fmt.Errorf("%w: name is required", ErrInvalidProjectName)
	case ".", "..":
		return fmt.Errorf("%w: %q", ErrInvalidProjectName, name)
	}
	for _, r := range name {
		if r == '/' || r == '\\' || r == '"' || unicode.IsControl(r) {
			return fmt.Errorf("%w: %q contains %q", ErrInvalidProjectName, name, r)
		}
	}
	return nil
}
