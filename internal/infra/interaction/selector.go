// Where: cli-rt/internal/infra/interaction/selector.go
// What: Interactive prompts using the huh library.
// Why: Provide keyboard-based selection on a terminal.
package interaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

var runForm = func(ctx context.Context, field huh.Field) error {
	return huh.NewForm(huh.NewGroup(field)).RunWithContext(ctx)
}

// HuhPrompter implements the Prompter interface using the huh TUI library.
type HuhPrompter struct{}

func (p HuhPrompter) Select(ctx context.Context, title string, options []string, defaultValue string) (string, error) {
	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt, opt)
	}

	// huh preselects the option matching the bound value.
	selected := defaultValue
	field := huh.NewSelect[string]().
		Title(title).
		Options(huhOptions...).
		Value(&selected)
	if err := runForm(ctx, field); err != nil {
		return "", fmt.Errorf("prompt select: %w", err)
	}
	return selected, nil
}

func (p HuhPrompter) Confirm(ctx context.Context, title string, defaultValue bool) (bool, error) {
	confirmed := defaultValue
	field := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed)
	if err := runForm(ctx, field); err != nil {
		return false, fmt.Errorf("prompt confirm: %w", err)
	}
	return confirmed, nil
}

func (p HuhPrompter) Input(ctx context.Context, title, defaultValue string) (string, error) {
	var input string
	field := huh.NewInput().
		Title(title).
		Placeholder(defaultValue).
		Value(&input)
	if err := runForm(ctx, field); err != nil {
		return "", fmt.Errorf("prompt input: %w", err)
	}
	if strings.TrimSpace(input) == "" {
		return defaultValue, nil
	}
	return strings.TrimSpace(input), nil
}
