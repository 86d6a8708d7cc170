// Where: cli-rt/internal/infra/ui/progress.go
// What: Progress indicators for long-running steps.
// Why: Show a spinner on terminals and plain status lines elsewhere.
package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/huh/spinner"
)

// Progress runs action while showing title as the running state.
// Success and failure are reported by the caller from the returned error.
type Progress interface {
	Run(ctx context.Context, title string, action func(context.Context) error) error
}

// SpinnerProgress animates a huh spinner while the action runs.
type SpinnerProgress struct{}

func (SpinnerProgress) Run(ctx context.Context, title string, action func(context.Context) error) error {
	return spinner.New().
		Title(" " + title).
		Context(ctx).
		ActionWithErr(action).
		Run()
}

// LineProgress prints the title once and runs the action.
type LineProgress struct {
	Out io.Writer
}

func (p LineProgress) Run(ctx context.Context, title string, action func(context.Context) error) error {
	fmt.Fprintf(p.Out, "… %s\n", title)
	return action(ctx)
}
