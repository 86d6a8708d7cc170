// Where: cli-rt/internal/command/output.go
// What: Output helpers for command adapters.
// Why: Centralize UserInterface construction.
package command

import (
	"io"

	"github.com/cli-rt/cli-rt/internal/infra/ui"
)

func newUI(out io.Writer, emojiEnabled bool) ui.UserInterface {
	return ui.New(out, emojiEnabled)
}
