// Where: cli-rt/internal/command/error_helpers.go
// What: Shared CLI error output.
// Why: Keep parse and setup failures consistent.
package command

import (
	"fmt"
	"strings"

	"github.com/cli-rt/cli-rt/internal/infra/ui"
	"github.com/cli-rt/cli-rt/internal/meta"
)

// exitWithError prints an error message and returns exit code 1.
func exitWithError(console ui.UserInterface, err error) int {
	console.Error(err.Error())
	return 1
}

// handleParseError adds a usage hint for flags that are missing their value.
func handleParseError(console ui.UserInterface, err error) int {
	msg := err.Error()
	code := exitWithError(console, err)
	if strings.Contains(msg, "expected") {
		switch {
		case strings.Contains(msg, "--template"):
			console.Info(fmt.Sprintf("Example: %s -t tailwind", meta.AppName))
		case strings.Contains(msg, "--name"):
			console.Info(fmt.Sprintf("Example: %s -n my-app", meta.AppName))
		case strings.Contains(msg, "--packages"):
			console.Info(fmt.Sprintf("Example: %s -p lodash@4.0.0 express", meta.AppName))
		}
	}
	console.Info(fmt.Sprintf("Try: %s --help", meta.AppName))
	return code
}
