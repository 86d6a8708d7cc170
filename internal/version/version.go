// Where: cli-rt/internal/version/version.go
// What: Version information retrieval.
// Why: Show the build revision in usage output without ldflags plumbing.
package version

import (
	"fmt"
	"runtime/debug"
)

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the module version when the binary was installed with
// `go install module@version`, otherwise the short VCS revision with a
// "(dirty)" suffix for modified trees. It returns "dev" when nothing is known.
func GetVersion() string {
	info, ok := readBuildInfo()
	if !ok || info == nil {
		return "dev"
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}

	if revision == "" {
		return "dev"
	}
	if modified {
		return fmt.Sprintf("%s (dirty)", revision)
	}
	return revision
}
