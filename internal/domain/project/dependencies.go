// Where: cli-rt/internal/domain/project/dependencies.go
// What: Custom dependency specifier parsing.
// Why: Turn `name` / `name@version` flags into an installable map.
package project

import (
	"sort"
	"strings"

	"github.com/cli-rt/cli-rt/internal/meta"
)

// DependencyMap maps a package name to a version specifier.
type DependencyMap map[string]string

// ParsePackages builds a DependencyMap from package specifiers.
// The version separator is the last '@' that is not the leading character,
// so scoped packages such as "@scope/pkg@1.0.0" keep their scope.
// Specifiers without a version map to "latest". Blank entries are ignored
// and later duplicates win.
func ParsePackages(specs []string) DependencyMap {
	deps := DependencyMap{}
	for _, raw := range specs {
		name, version := splitSpecifier(strings.TrimSpace(raw))
		if name == "" {
			continue
		}
		deps[name] = version
	}
	return deps
}

func splitSpecifier(spec string) (string, string) {
	at := strings.LastIndex(spec, "@")
	if at <= 0 {
		return spec, meta.LatestVersion
	}
	name := strings.TrimSpace(spec[:at])
	version := strings.TrimSpace(spec[at+1:])
	if version == "" {
		version = meta.LatestVersion
	}
	return name, version
}

// Names returns the package names in lexical order.
func (d DependencyMap) Names() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Specifiers returns "name@version" strings in name order.
func (d DependencyMap) Specifiers() []string {
	names := d.Names()
	specs := make([]string, 0, len(names))
	for _, name := range names {
		specs = append(specs, name+"@"+d[name])
	}
	return specs
}
