// Where: cli-rt/internal/infra/interaction/interaction.go
// What: Interactive primitives for CLI prompts and TTY detection.
// Why: Centralize user interaction to keep command handlers focused on orchestration.
package interaction

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Prompter defines the interface for interactive user input and selection.
// Each call blocks until the user answers or ctx is cancelled.
type Prompter interface {
	Select(ctx context.Context, title string, options []string, defaultValue string) (string, error)
	Confirm(ctx context.Context, title string, defaultValue bool) (bool, error)
	Input(ctx context.Context, title, defaultValue string) (string, error)
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// NewPrompter returns the TUI prompter when in is a terminal and a
// line-based prompter reading from in and writing to out otherwise.
func NewPrompter(in *os.File, out io.Writer) Prompter {
	if IsTerminal(in) {
		return HuhPrompter{}
	}
	return NewLinePrompter(in, out)
}
